package model

import "time"

type ListProductsRequest struct {
	Category string `json:"-" validate:"max=100"`
	POSOnly  bool   `json:"-"`
}

type GetProductRequest struct {
	ID string `json:"-" validate:"required,max=100"`
}

type ProductVariantRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Price int64  `json:"price" validate:"min=0"`
	Stock int    `json:"stock" validate:"min=0"`
}

type CreateProductRequest struct {
	Name        string                  `json:"name" validate:"required,max=255"`
	Description string                  `json:"description" validate:"max=2000"`
	Price       int64                   `json:"price" validate:"min=0"`
	Category    string                  `json:"category" validate:"max=100"`
	ImageURL    string                  `json:"imageUrl" validate:"omitempty,url"`
	Stock       int                     `json:"stock" validate:"min=0"`
	POSEnabled  bool                    `json:"posEnabled"`
	Variants    []ProductVariantRequest `json:"variants" validate:"dive"`
}

type UpdateProductRequest struct {
	ID          string  `json:"-" validate:"required,max=100"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       *int64  `json:"price,omitempty" validate:"omitempty,min=0"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=100"`
	ImageURL    *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Stock       *int    `json:"stock,omitempty" validate:"omitempty,min=0"`
	POSEnabled  *bool   `json:"posEnabled,omitempty"`
}

type ProductVariantResponse struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
}

type ProductResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Price       int64                    `json:"price"`
	Category    string                   `json:"category"`
	ImageURL    string                   `json:"imageUrl"`
	Stock       int                      `json:"stock"`
	Views       int64                    `json:"views"`
	Sold        int64                    `json:"sold"`
	Revenue     int64                    `json:"revenue"`
	POSEnabled  bool                     `json:"posEnabled"`
	Variants    []ProductVariantResponse `json:"variants,omitempty"`
	CreatedAt   time.Time                `json:"createdAt"`
}
