package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/trystore/kiosk-platform/internal/api/middleware"
	appErrors "github.com/trystore/kiosk-platform/internal/errors"
	"github.com/trystore/kiosk-platform/internal/models"
	service "github.com/trystore/kiosk-platform/internal/services"
	"github.com/trystore/kiosk-platform/internal/utils"
	"github.com/trystore/kiosk-platform/internal/utils/response"
)

type ShopHandler struct {
	shopService service.ShopService
	validator   *validator.Validate
}

func NewShopHandler(shopService service.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService, validator: utils.NewValidator()}
}

func (h *ShopHandler) GetShop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		shop, err := h.shopService.GetShop(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, shop)
	}
}

func (h *ShopHandler) UpdateShop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.ShopFormData
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		shop, err := h.shopService.UpdateShop(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Error("Error during shop update", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Shop updated", slog.String("shopId", shop.ID.String()))
		response.Success(w, http.StatusOK, shop)
	}
}

// Stats backs the dashboard cards. Failed reads come back as zeros, the
// same as an empty catalog.
func (h *ShopHandler) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		stats := h.shopService.GetStats(r.Context(), claims.UserID)

		response.Success(w, http.StatusOK, stats)
	}
}
