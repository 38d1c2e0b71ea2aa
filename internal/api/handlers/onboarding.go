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

type OnboardingHandler struct {
	onboarding service.OnboardingService
	validator  *validator.Validate
}

func NewOnboardingHandler(onboarding service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboarding: onboarding, validator: utils.NewValidator()}
}

// State reports where the wizard should start for this user.
func (h *OnboardingHandler) State() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		state, err := h.onboarding.EntryState(r.Context(), claims.UserID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, state)
	}
}

func (h *OnboardingHandler) Next() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.WizardAdvanceRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// The shop form is only fully validated at the commit point;
		// earlier steps carry partial data by design.
		if req.Step == models.StepLocation {
			if err := utils.ValidateStruct(h.validator, &req.Shop); err != nil {
				response.Error(w, appErrors.ValidationError("Invalid shop details").WithError(err))
				return
			}
		}

		resp, err := h.onboarding.Advance(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Wizard advance rejected",
				slog.Int("step", int(req.Step)),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

func (h *OnboardingHandler) Back() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.WizardBackRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.WriteJson(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		step, err := h.onboarding.Back(&req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.WizardAdvanceResponse{Step: step})
	}
}

func (h *OnboardingHandler) Complete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))
			return
		}

		resp, err := h.onboarding.Complete(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Onboarding completion failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Onboarding completed", slog.String("userId", claims.UserID.String()))
		response.Success(w, http.StatusOK, resp)
	}
}
