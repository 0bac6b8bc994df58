package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/model"
	"storefront-service/src/internal/model/converter"
	"storefront-service/src/internal/repository"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"
)

type ProductUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	ProductRepository *repository.ProductRepository
}

func NewProductUseCase(
	logger log.Log,
	validate *validator.Validate,
	productRepository *repository.ProductRepository,
) *ProductUseCase {
	return &ProductUseCase{
		Log:               logger,
		Validate:          validate,
		ProductRepository: productRepository,
	}
}

func (c *ProductUseCase) ListProducts(ctx context.Context, request *model.ListProductsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	products, err := c.ProductRepository.List(ctx, request.Category, request.POSOnly)
	if err != nil {
		c.Log.Error("ListProducts-List", err.Error(), "category", request.Category)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = converter.ProductsToResponse(products)
	return result
}

// GetProduct returns one product for the storefront view and bumps its view
// counter. The counter bump is best effort.
func (c *ProductUseCase) GetProduct(ctx context.Context, request *model.GetProductRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	product, err := c.ProductRepository.FindByID(ctx, request.ID)
	if errors.Is(err, repository.ErrNotFound) {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("product %s not found", request.ID)
		result.Error = errObj
		return result
	}
	if err != nil {
		c.Log.Error("GetProduct-FindByID", err.Error(), "productID", request.ID)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	if err := c.ProductRepository.IncrementViews(ctx, request.ID); err != nil {
		c.Log.Error("GetProduct-views", err.Error(), "productID", request.ID)
	}

	result.Data = converter.ProductToResponse(product)
	return result
}

func (c *ProductUseCase) CreateProduct(ctx context.Context, request *model.CreateProductRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("CreateProduct-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	product := &entity.Product{
		ID:          uuid.NewString(),
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		Category:    request.Category,
		ImageURL:    request.ImageURL,
		Stock:       request.Stock,
		POSEnabled:  request.POSEnabled,
	}
	for _, v := range request.Variants {
		product.Variants = append(product.Variants, entity.ProductVariant{
			Name:  v.Name,
			Price: v.Price,
			Stock: v.Stock,
		})
	}

	if err := c.ProductRepository.Create(ctx, product); err != nil {
		c.Log.Error("CreateProduct-write", err.Error(), "name", request.Name)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	created, err := c.ProductRepository.FindByID(ctx, product.ID)
	if err != nil {
		c.Log.Error("CreateProduct-reload", err.Error(), "productID", product.ID)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = converter.ProductToResponse(created)
	return result
}

func (c *ProductUseCase) UpdateProduct(ctx context.Context, request *model.UpdateProductRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	fields := map[string]interface{}{}
	if request.Name != nil {
		fields["name"] = *request.Name
	}
	if request.Description != nil {
		fields["description"] = *request.Description
	}
	if request.Price != nil {
		fields["price"] = *request.Price
	}
	if request.Category != nil {
		fields["category"] = *request.Category
	}
	if request.ImageURL != nil {
		fields["image_url"] = *request.ImageURL
	}
	if request.Stock != nil {
		fields["stock"] = *request.Stock
	}
	if request.POSEnabled != nil {
		fields["pos_enabled"] = *request.POSEnabled
	}

	err := c.ProductRepository.Update(ctx, request.ID, fields)
	if errors.Is(err, repository.ErrNotFound) {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("product %s not found", request.ID)
		result.Error = errObj
		return result
	}
	if err != nil {
		c.Log.Error("UpdateProduct-write", err.Error(), "productID", request.ID)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	updated, err := c.ProductRepository.FindByID(ctx, request.ID)
	if err != nil {
		c.Log.Error("UpdateProduct-reload", err.Error(), "productID", request.ID)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = converter.ProductToResponse(updated)
	return result
}
