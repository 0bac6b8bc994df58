package config

import (
	"time"

	"github.com/spf13/viper"

	"storefront-service/src/internal/gateway/payment"
)

func NewPaymentClient(v *viper.Viper) (*payment.Client, error) {
	return payment.NewClient(&payment.Config{
		BaseURL:   v.GetString("payment.base_url"),
		SecretKey: v.GetString("payment.secret_key"),
		Timeout:   time.Duration(v.GetInt("payment.timeout_seconds")) * time.Second,
	})
}
