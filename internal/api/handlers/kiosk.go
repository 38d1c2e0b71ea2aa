package handlers

import (
	"net/http"

	"github.com/google/uuid"
	appErrors "github.com/trystore/kiosk-platform/internal/errors"
	"github.com/trystore/kiosk-platform/internal/metrics"
	"github.com/trystore/kiosk-platform/internal/models"
	service "github.com/trystore/kiosk-platform/internal/services"
	"github.com/trystore/kiosk-platform/internal/utils/response"
)

// KioskHandler serves the public storefront. No authentication: the
// kiosk is the customer-facing view of one shop's catalog.
type KioskHandler struct {
	productService service.ProductService
	shopService    service.ShopService
}

func NewKioskHandler(productService service.ProductService, shopService service.ShopService) *KioskHandler {
	return &KioskHandler{productService: productService, shopService: shopService}
}

// ListProducts decodes the filter query parameters and returns the
// matching catalog slice for the shop named by ?shop=<slug>.
func (h *KioskHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.URL.Query().Get("shop")
		if slug == "" {
			response.Error(w, appErrors.BadRequestError("Missing shop parameter"))
			return
		}

		shop, err := h.shopService.GetShopBySlug(r.Context(), slug)
		if err != nil {
			response.NotFound(w, "Shop")
			return
		}

		if !shop.Settings.KioskVisible() {
			response.NotFound(w, "Shop")
			return
		}

		metrics.KioskView(slug)

		filters := models.DecodeFilters(r.URL.Query())
		products := h.productService.ListProducts(r.Context(), shop.ID, filters)

		response.Success(w, http.StatusOK, products)
	}
}

// GetProduct returns the detail page payload: the product plus its
// related recommendations.
func (h *KioskHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.NotFound(w, "Product")
			return
		}

		product, err := h.productService.GetProduct(r.Context(), id)
		if err != nil {
			response.NotFound(w, "Product")
			return
		}

		related := h.productService.RelatedProducts(r.Context(), product, service.DefaultRelatedLimit)

		response.Success(w, http.StatusOK, models.ProductDetail{Product: product, Related: related})
	}
}

// Meta exposes the fixed catalog enumerations the filter bar renders.
func (h *KioskHandler) Meta() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, models.CatalogMeta{
			Types:      models.ProductTypes,
			Categories: models.ProductCategories,
			Colors:     models.ProductColors,
			Sizes:      models.ProductSizes,
		})
	}
}
