package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"storefront-service/src/internal/gateway/payment"
	"storefront-service/src/internal/model"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"
)

const bankCacheTTL = 24 * time.Hour

type PaymentUseCase struct {
	Log           log.Log
	Validate      *validator.Validate
	PaymentClient *payment.Client
	Config        *viper.Viper
	Redis         redis.UniversalClient
}

func NewPaymentUseCase(
	logger log.Log,
	validate *validator.Validate,
	paymentClient *payment.Client,
	cfg *viper.Viper,
	redisClient redis.UniversalClient,
) *PaymentUseCase {
	return &PaymentUseCase{
		Log:           logger,
		Validate:      validate,
		PaymentClient: paymentClient,
		Config:        cfg,
		Redis:         redisClient,
	}
}

// ListBanks reads through a per-country Redis cache to the payment
// provider. Cache failures fall through to the provider silently.
func (c *PaymentUseCase) ListBanks(ctx context.Context, request *model.ListBanksRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("ListBanks-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	country := strings.ToUpper(request.CountryCode)
	key := fmt.Sprintf("BANKS:%s", country)

	if c.Redis != nil {
		if cached, err := c.Redis.Get(ctx, key).Result(); err == nil && cached != "" {
			var banks []model.BankResponse
			if err := json.Unmarshal([]byte(cached), &banks); err == nil {
				result.Data = banks
				return result
			}
		}
	}

	banks, err := c.PaymentClient.ListBanks(ctx, country)
	if err != nil {
		var providerErr *payment.ProviderError
		if errors.As(err, &providerErr) {
			errObj := httpError.NewBadRequest()
			errObj.Message = providerErr.Message
			result.Error = errObj
			c.Log.Error("ListBanks-provider", providerErr.Message, "country", country)
			return result
		}
		c.Log.Error("ListBanks-transport", err.Error(), "country", country)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	if c.Redis != nil {
		if encoded, err := json.Marshal(banks); err == nil {
			if err := c.Redis.Set(ctx, key, encoded, bankCacheTTL).Err(); err != nil {
				c.Log.Error("ListBanks-cache", err.Error(), "country", country)
			}
		}
	}

	result.Data = banks
	return result
}

// HandleFundingCallback maps the provider's redirect parameters to an
// internal redirect target. Only "successful" with a reference present
// counts as funded; the callback itself never mutates a balance. No
// signature verification happens here, matching the provider's
// redirect-only flow.
func (c *PaymentUseCase) HandleFundingCallback(_ context.Context, request *model.FundingCallbackRequest) model.FundingRedirect {
	if request.Status == "successful" && request.TxRef != "" {
		c.Log.Info("FundingCallback", "funding reported successful", "txRef", request.TxRef)
		return model.FundingRedirect{
			Funded:    true,
			Reference: request.TxRef,
		}
	}

	c.Log.Info("FundingCallback", "funding reported failed", "status", request.Status)
	return model.FundingRedirect{Funded: false}
}
