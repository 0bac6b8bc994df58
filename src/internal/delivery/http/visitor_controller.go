package http

import (
	"github.com/gofiber/fiber/v2"

	"storefront-service/src/internal/model"
	"storefront-service/src/internal/usecase"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"
)

type VisitorController struct {
	Log     log.Log
	UseCase *usecase.VisitorUseCase
}

func NewVisitorController(useCase *usecase.VisitorUseCase, logger log.Log) *VisitorController {
	return &VisitorController{
		Log:     logger,
		UseCase: useCase,
	}
}

// Track is fire and forget from the page's perspective: it answers 200 no
// matter what happened underneath.
func (c *VisitorController) Track(ctx *fiber.Ctx) error {
	request := new(model.TrackVisitRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("VisitorController.Track", "Failed to parse request body", "error", err.Error())
		return utils.Response(nil, "OK", fiber.StatusOK, ctx)
	}

	request.ClientIP = ctx.IP()
	request.UserAgent = ctx.Get(fiber.HeaderUserAgent)
	request.SessionID = ctx.Cookies("session_id")
	request.Country = ctx.Get("CF-IPCountry")

	c.UseCase.Track(ctx.Context(), request)
	return utils.Response(nil, "OK", fiber.StatusOK, ctx)
}

func (c *VisitorController) ActiveCount(ctx *fiber.Ctx) error {
	result := c.UseCase.ActiveCount(ctx.Context())
	return utils.Response(result.Data, "Active Visitors", fiber.StatusOK, ctx)
}
