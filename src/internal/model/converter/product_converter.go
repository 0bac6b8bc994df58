package converter

import (
	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/model"
)

func ProductToResponse(product *entity.Product) *model.ProductResponse {
	variants := make([]model.ProductVariantResponse, 0, len(product.Variants))
	for _, v := range product.Variants {
		variants = append(variants, model.ProductVariantResponse{
			Name:  v.Name,
			Price: v.Price,
			Stock: v.Stock,
		})
	}

	return &model.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		ImageURL:    product.ImageURL,
		Stock:       product.Stock,
		Views:       product.Views,
		Sold:        product.Sold,
		Revenue:     product.Revenue,
		POSEnabled:  product.POSEnabled,
		Variants:    variants,
		CreatedAt:   product.CreatedAt,
	}
}

func ProductsToResponse(products []entity.Product) []model.ProductResponse {
	responses := make([]model.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *ProductToResponse(&products[i]))
	}
	return responses
}
