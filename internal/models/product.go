package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID `json:"id"`
	ShopID      uuid.UUID `json:"shop_id"`
	ProductCode string    `json:"product_code"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Color       string    `json:"color"`
	Category    string    `json:"category"`
	Size        *string   `json:"size,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Location    *string   `json:"location,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateProductRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	Type     string  `json:"type" validate:"required,producttype"`
	Color    string  `json:"color" validate:"required,productcolor"`
	Category string  `json:"category" validate:"required,productcategory"`
	Size     string  `json:"size,omitempty" validate:"omitempty,productsize"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Stock    int     `json:"stock" validate:"gte=0"`
	Location string  `json:"location,omitempty" validate:"omitempty,max=200"`
	ImageURL string  `json:"image_url,omitempty" validate:"omitempty,max=500"`
}

// product_code is generated at creation and never updatable.
type UpdateProductRequest struct {
	Name     *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Type     *string  `json:"type,omitempty" validate:"omitempty,producttype"`
	Color    *string  `json:"color,omitempty" validate:"omitempty,productcolor"`
	Category *string  `json:"category,omitempty" validate:"omitempty,productcategory"`
	Size     *string  `json:"size,omitempty" validate:"omitempty,productsize"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock    *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Location *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	ImageURL *string  `json:"image_url,omitempty" validate:"omitempty,max=500"`
}

type ProductDetail struct {
	Product *Product   `json:"product"`
	Related []*Product `json:"related"`
}
