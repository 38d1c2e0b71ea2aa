package models

import (
	"time"

	"github.com/google/uuid"
)

type ShopSettings struct {
	Theme        string `json:"theme,omitempty"`
	Currency     string `json:"currency,omitempty"`
	KioskEnabled *bool  `json:"kiosk_enabled,omitempty"`
}

// KioskVisible reports whether the public storefront is enabled. The
// default (unset) is visible.
func (s ShopSettings) KioskVisible() bool {
	return s.KioskEnabled == nil || *s.KioskEnabled
}

type Shop struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Description *string      `json:"description,omitempty"`
	Address     *string      `json:"address,omitempty"`
	City        *string      `json:"city,omitempty"`
	State       *string      `json:"state,omitempty"`
	PostalCode  *string      `json:"postal_code,omitempty"`
	Phone       *string      `json:"phone,omitempty"`
	Email       *string      `json:"email,omitempty"`
	LogoURL     *string      `json:"logo_url,omitempty"`
	Category    string       `json:"category"`
	Settings    ShopSettings `json:"settings"`
	IsOnboarded bool         `json:"is_onboarded"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type ShopFormData struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	Address     string `json:"address,omitempty" validate:"omitempty,max=200"`
	City        string `json:"city,omitempty" validate:"omitempty,max=100"`
	State       string `json:"state,omitempty" validate:"omitempty,max=100"`
	PostalCode  string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Category    string `json:"category" validate:"required,shopcategory"`
}

type CreateShopResponse struct {
	Success bool  `json:"success"`
	Shop    *Shop `json:"shop,omitempty"`
}

type ShopStats struct {
	TotalProducts   int     `json:"total_products"`
	LowStockCount   int     `json:"low_stock_count"`
	CategoriesCount int     `json:"categories_count"`
	TotalValue      float64 `json:"total_value"`
}
