package handlers

import (
	"net/http"

	"github.com/trystore/kiosk-platform/internal/api/middleware"
	appErrors "github.com/trystore/kiosk-platform/internal/errors"
	"github.com/trystore/kiosk-platform/internal/models"
	service "github.com/trystore/kiosk-platform/internal/services"
	"github.com/trystore/kiosk-platform/internal/utils/response"
)

// AdminHandler serves the admin page routes the gate fronts. The pages
// themselves are client-rendered; these endpoints return the initial
// data each page hydrates from. Reaching any of them means the gate
// already admitted the request.
type AdminHandler struct {
	shopService    service.ShopService
	productService service.ProductService
	userService    service.UserService
}

func NewAdminHandler(shopService service.ShopService, productService service.ProductService, userService service.UserService) *AdminHandler {
	return &AdminHandler{shopService: shopService, productService: productService, userService: userService}
}

func (h *AdminHandler) Dashboard() http.HandlerFunc {
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

		stats := h.shopService.GetStats(r.Context(), claims.UserID)

		response.Success(w, http.StatusOK, map[string]any{
			"page":  "dashboard",
			"shop":  shop,
			"stats": stats,
		})
	}
}

func (h *AdminHandler) ProductsPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		status, err := h.userService.GetOnboardingStatus(r.Context(), claims.UserID)
		if err != nil || status.ShopID == nil {
			response.Error(w, appErrors.BadRequestError("No shop found. Please complete onboarding first."))
			return
		}

		filters := models.DecodeFilters(r.URL.Query())
		products := h.productService.ListProducts(r.Context(), *status.ShopID, filters)

		response.Success(w, http.StatusOK, map[string]any{
			"page":     "products",
			"products": products,
			"filters":  filters,
		})
	}
}

// OnboardingPage returns the wizard entry state; the gate lets any
// authenticated user through to here.
func (h *AdminHandler) OnboardingPage(onboarding service.OnboardingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		state, err := onboarding.EntryState(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]any{
			"page":   "onboarding",
			"wizard": state,
		})
	}
}

// LoginPage and RegisterPage are the gate's public routes; they carry no
// data, only a page marker for the shell.
func (h *AdminHandler) LoginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, map[string]string{"page": "login"})
	}
}

func (h *AdminHandler) RegisterPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, map[string]string{"page": "register"})
	}
}
