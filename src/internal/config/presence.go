package config

import (
	"time"

	"github.com/spf13/viper"

	"storefront-service/src/internal/gateway/presence"
	"storefront-service/src/pkg/log"
)

func NewPresenceSubscriber(v *viper.Viper, logger log.Log) *presence.Subscriber {
	return presence.NewSubscriber(
		v.GetString("presence.url"),
		v.GetInt("presence.max_reconnects"),
		time.Duration(v.GetInt("presence.backoff_seconds"))*time.Second,
		logger,
	)
}
