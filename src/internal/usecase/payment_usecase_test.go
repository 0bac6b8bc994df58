package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/src/internal/gateway/payment"
	"storefront-service/src/internal/model"
	httpError "storefront-service/src/pkg/http-error"
)

func newPaymentUseCase(t *testing.T, handler http.HandlerFunc) *PaymentUseCase {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := payment.NewClient(&payment.Config{BaseURL: server.URL, SecretKey: "sk_test"})
	require.NoError(t, err)

	return NewPaymentUseCase(newTestLogger(), validator.New(), client, viper.New(), nil)
}

func TestPaymentUseCase_ListBanks(t *testing.T) {
	uc := newPaymentUseCase(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "success", "data": [{"id": 1, "code": "044", "name": "Access Bank"}]}`))
	})

	result := uc.ListBanks(context.Background(), &model.ListBanksRequest{CountryCode: "NG"})
	require.NoError(t, result.Error)

	banks, ok := result.Data.([]model.BankResponse)
	require.True(t, ok)
	require.Len(t, banks, 1)
	assert.Equal(t, "044", banks[0].Code)
}

func TestPaymentUseCase_ListBanks_ProviderErrorIsBadRequest(t *testing.T) {
	uc := newPaymentUseCase(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "error", "message": "invalid country code"}`))
	})

	result := uc.ListBanks(context.Background(), &model.ListBanksRequest{CountryCode: "ZZ"})
	require.Error(t, result.Error)

	errObj, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 400, errObj.Code)
	assert.Equal(t, "invalid country code", errObj.Message)
}

func TestPaymentUseCase_ListBanks_ValidationError(t *testing.T) {
	uc := newPaymentUseCase(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("provider must not be called on invalid input")
	})

	result := uc.ListBanks(context.Background(), &model.ListBanksRequest{CountryCode: "NGA"})
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, 400, errObj.Code)
}

func TestPaymentUseCase_HandleFundingCallback(t *testing.T) {
	uc := newPaymentUseCase(t, func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name         string
		request      model.FundingCallbackRequest
		wantLocation string
	}{
		{
			name:         "successful with reference",
			request:      model.FundingCallbackRequest{Status: "successful", TxRef: "fund-123"},
			wantLocation: "/admin/wallet?funded=true&ref=fund-123",
		},
		{
			name:         "reference with reserved characters",
			request:      model.FundingCallbackRequest{Status: "successful", TxRef: "fund 1&funded=false"},
			wantLocation: "/admin/wallet?funded=true&ref=fund+1%26funded%3Dfalse",
		},
		{
			name:         "successful without reference",
			request:      model.FundingCallbackRequest{Status: "successful"},
			wantLocation: "/admin/wallet?funded=false",
		},
		{
			name:         "cancelled",
			request:      model.FundingCallbackRequest{Status: "cancelled", TxRef: "fund-123"},
			wantLocation: "/admin/wallet?funded=false",
		},
		{
			name:         "failed",
			request:      model.FundingCallbackRequest{Status: "failed"},
			wantLocation: "/admin/wallet?funded=false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			redirect := uc.HandleFundingCallback(context.Background(), &tt.request)
			assert.Equal(t, tt.wantLocation, redirect.Location())
		})
	}
}
