package utils

import (
	httpError "storefront-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result is what every usecase hands back to its controller.
type Result struct {
	Data  interface{}
	Error error
}

type responseEnvelope struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Response writes the success envelope.
func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(responseEnvelope{
		Success: true,
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// ResponseError converts a usecase error into the failure envelope. Errors
// that are not CommonError objects fall back to a generic 500.
func ResponseError(err error, ctx *fiber.Ctx) error {
	if errObj, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(errObj.Code).JSON(responseEnvelope{
			Success: false,
			Code:    errObj.Code,
			Error:   errObj.Message,
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(responseEnvelope{
		Success: false,
		Code:    fiber.StatusInternalServerError,
		Error:   "internal server error",
	})
}
