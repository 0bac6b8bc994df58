package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"

	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/token"
	"storefront-service/src/pkg/utils"
)

const userContextKey = "auth:user"

// VerifyBearer gates the authenticated surface. Public routes must be
// registered before this middleware is attached.
func VerifyBearer(v *viper.Viper) fiber.Handler {
	secret := []byte(v.GetString("jwt.secret"))

	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return utils.ResponseError(httpError.NewUnauthorized(), ctx)
		}

		claim := &token.Claim{}
		parsed, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claim,
			func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			})
		if err != nil || !parsed.Valid || claim.UserID == "" {
			return utils.ResponseError(httpError.NewUnauthorized(), ctx)
		}

		ctx.Locals(userContextKey, claim)
		return ctx.Next()
	}
}

// GetUser returns the verified claim set by VerifyBearer.
func GetUser(ctx *fiber.Ctx) *token.Claim {
	if claim, ok := ctx.Locals(userContextKey).(*token.Claim); ok {
		return claim
	}
	return &token.Claim{}
}
