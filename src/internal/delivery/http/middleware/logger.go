package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"storefront-service/src/pkg/log"
)

// NewLogger logs one line per request with latency and status.
func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		latency := time.Since(start)

		logger := log.GetLogger()
		meta := fmt.Sprintf("status=%d latency=%s ip=%s", ctx.Response().StatusCode(), latency, ctx.IP())
		logger.Info("http-request", fmt.Sprintf("%s %s", ctx.Method(), ctx.Path()), "request", meta)

		if latency > time.Second {
			logger.Slow("http-request", fmt.Sprintf("%s %s", ctx.Method(), ctx.Path()), "request", meta)
		}

		return err
	}
}
