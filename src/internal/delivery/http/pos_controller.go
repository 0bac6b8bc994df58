package http

import (
	"github.com/gofiber/fiber/v2"

	"storefront-service/src/internal/delivery/http/middleware"
	"storefront-service/src/internal/model"
	"storefront-service/src/internal/usecase"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"
)

type POSController struct {
	Log     log.Log
	UseCase *usecase.POSUseCase
}

func NewPOSController(useCase *usecase.POSUseCase, logger log.Log) *POSController {
	return &POSController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *POSController) CreateSale(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.CreateSaleRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("POSController.CreateSale", "Failed to parse request body", "error", err.Error())
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		return utils.ResponseError(errObj, ctx)
	}
	if auth.UserID != "" {
		request.UserID = &auth.UserID
	}

	result := c.UseCase.CreateSale(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Sale Recorded", fiber.StatusCreated, ctx)
}

func (c *POSController) ConfirmPayment(ctx *fiber.Ctx) error {
	request := &model.SaleLookupRequest{
		TransactionID: ctx.Params("id"),
	}
	result := c.UseCase.ConfirmPayment(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Payment Confirmed", fiber.StatusOK, ctx)
}

func (c *POSController) CancelSale(ctx *fiber.Ctx) error {
	request := &model.SaleLookupRequest{
		TransactionID: ctx.Params("id"),
	}
	result := c.UseCase.CancelSale(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Sale Cancelled", fiber.StatusOK, ctx)
}

// GetInvoice serves the public invoice lookup; this route is deliberately
// outside the authenticated group.
func (c *POSController) GetInvoice(ctx *fiber.Ctx) error {
	request := &model.SaleLookupRequest{
		TransactionID: ctx.Params("id"),
	}
	result := c.UseCase.GetInvoice(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Invoice", fiber.StatusOK, ctx)
}
