package entity

import "time"

type Product struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       int64     `db:"price" json:"price"`
	Category    string    `db:"category" json:"category"`
	ImageURL    string    `db:"image_url" json:"imageUrl"`
	Stock       int       `db:"stock" json:"stock"`
	Views       int64     `db:"views" json:"views"`
	Sold        int64     `db:"sold" json:"sold"`
	Revenue     int64     `db:"revenue" json:"revenue"`
	POSEnabled  bool      `db:"pos_enabled" json:"posEnabled"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`

	Variants []ProductVariant `json:"variants,omitempty"`
}

type ProductVariant struct {
	ID        int64  `db:"id" json:"-"`
	ProductID string `db:"product_id" json:"-"`
	Name      string `db:"name" json:"name"`
	Price     int64  `db:"price" json:"price"`
	Stock     int    `db:"stock" json:"stock"`
}
