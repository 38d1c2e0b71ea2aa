package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/trystore/kiosk-platform/internal/api/middleware"
	appErrors "github.com/trystore/kiosk-platform/internal/errors"
	"github.com/trystore/kiosk-platform/internal/models"
	service "github.com/trystore/kiosk-platform/internal/services"
	"github.com/trystore/kiosk-platform/internal/utils"
	"github.com/trystore/kiosk-platform/internal/utils/response"
)

const maxUploadSize = 5 << 20 // 5 MiB

type ProductHandler struct {
	productService service.ProductService
	userService    service.UserService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService, userService service.UserService) *ProductHandler {
	return &ProductHandler{productService: productService, userService: userService, validator: utils.NewValidator()}
}

// shopID resolves the caller's shop. Every admin product operation is
// scoped to it; a caller without a shop cannot touch products at all.
func (h *ProductHandler) shopID(ctx context.Context) (uuid.UUID, error) {
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return uuid.Nil, appErrors.UnauthorizedError("Authentication required")
	}

	status, err := h.userService.GetOnboardingStatus(ctx, claims.UserID)
	if err != nil {
		return uuid.Nil, err
	}

	if status.ShopID == nil {
		return uuid.Nil, appErrors.BadRequestError("No shop found. Please complete onboarding first.")
	}

	return *status.ShopID, nil
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		shopID, err := h.shopID(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), shopID, &req)
		if err != nil {
			logger.Error("Error during product creation", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product created", slog.String("productId", product.ID.String()), slog.String("code", product.ProductCode))
		response.Success(w, http.StatusCreated, product)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		shopID, err := h.shopID(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid product id"))
			return
		}

		product, err := h.productService.GetProductForShop(r.Context(), id, shopID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		shopID, err := h.shopID(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid product id"))
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, shopID, &req)
		if err != nil {
			logger.Error("Error during product update", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated", slog.String("productId", product.ID.String()))
		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		shopID, err := h.shopID(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid product id"))
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id, shopID); err != nil {
			logger.Error("Error during product deletion", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Product deleted", slog.String("productId", id.String()))
		response.Success(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}

// ListProducts serves the admin product table; filters arrive in the
// same query form the kiosk uses.
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		shopID, err := h.shopID(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		filters := models.DecodeFilters(r.URL.Query())
		products := h.productService.ListProducts(r.Context(), shopID, filters)

		response.Success(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) UploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if _, err := h.shopID(r.Context()); err != nil {
			response.Error(w, err)
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid upload"))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Missing image file"))
			return
		}

		defer file.Close()

		url, err := h.productService.UploadImage(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			logger.Error("Error during image upload", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, map[string]string{"url": url})
	}
}
