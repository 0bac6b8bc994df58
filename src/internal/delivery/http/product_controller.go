package http

import (
	"github.com/gofiber/fiber/v2"

	"storefront-service/src/internal/model"
	"storefront-service/src/internal/usecase"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"
)

type ProductController struct {
	Log     log.Log
	UseCase *usecase.ProductUseCase
}

func NewProductController(useCase *usecase.ProductUseCase, logger log.Log) *ProductController {
	return &ProductController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *ProductController) ListProducts(ctx *fiber.Ctx) error {
	request := &model.ListProductsRequest{
		Category: ctx.Query("category"),
		POSOnly:  ctx.QueryBool("pos"),
	}
	result := c.UseCase.ListProducts(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Products", fiber.StatusOK, ctx)
}

func (c *ProductController) GetProduct(ctx *fiber.Ctx) error {
	request := &model.GetProductRequest{
		ID: ctx.Params("id"),
	}
	result := c.UseCase.GetProduct(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Product", fiber.StatusOK, ctx)
}

func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	request := new(model.CreateProductRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ProductController.CreateProduct", "Failed to parse request body", "error", err.Error())
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		return utils.ResponseError(errObj, ctx)
	}

	result := c.UseCase.CreateProduct(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Product Created", fiber.StatusCreated, ctx)
}

func (c *ProductController) UpdateProduct(ctx *fiber.Ctx) error {
	request := new(model.UpdateProductRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("ProductController.UpdateProduct", "Failed to parse request body", "error", err.Error())
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		return utils.ResponseError(errObj, ctx)
	}
	request.ID = ctx.Params("id")

	result := c.UseCase.UpdateProduct(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Product Updated", fiber.StatusOK, ctx)
}
