package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/trystore/kiosk-platform/internal/errors"
	"github.com/trystore/kiosk-platform/internal/metrics"
	"github.com/trystore/kiosk-platform/internal/models"
)

// OnboardingService drives the 4-step wizard. Steps 0-2 are pure state;
// the transition out of step 2 commits shop creation, and Complete at
// step 3 flips the shop's onboarded flag. Step state itself lives with
// the client and arrives on every call, so a reload restarts the wizard
// without losing anything durable.
type OnboardingService interface {
	EntryState(ctx context.Context, userID uuid.UUID) (*models.WizardStateResponse, error)
	Advance(ctx context.Context, userID uuid.UUID, req *models.WizardAdvanceRequest) (*models.WizardAdvanceResponse, error)
	Back(req *models.WizardBackRequest) (models.WizardStep, error)
	Complete(ctx context.Context, userID uuid.UUID) (*models.CompleteOnboardingResponse, error)
}

type onboardingService struct {
	shops ShopService
	users UserService
}

func NewOnboardingService(shops ShopService, users UserService) OnboardingService {
	return &onboardingService{shops: shops, users: users}
}

// EntryState resumes an interrupted run: a user whose shop already
// exists re-enters at the final step instead of re-answering the form.
func (s *onboardingService) EntryState(ctx context.Context, userID uuid.UUID) (*models.WizardStateResponse, error) {

	status, err := s.users.GetOnboardingStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	step := models.StepWelcome
	if status.HasShop {
		step = models.StepComplete
	}

	return &models.WizardStateResponse{Step: step, Status: *status}, nil
}

// guard reports whether the forward transition out of step is allowed
// for the collected data. Only the shop-details step has requirements.
func guard(step models.WizardStep, shop *models.ShopFormData) error {
	if step != models.StepShopDetails {
		return nil
	}

	if len(strings.TrimSpace(shop.Name)) < 2 {
		return errors.ValidationError("Shop name must be at least 2 characters")
	}

	if shop.Category == "" {
		return errors.ValidationError("Please select a category")
	}

	return nil
}

func (s *onboardingService) Advance(ctx context.Context, userID uuid.UUID, req *models.WizardAdvanceRequest) (*models.WizardAdvanceResponse, error) {

	if !req.Step.Valid() || req.Step == models.StepComplete {
		return nil, errors.BadRequestError("No further step to advance to")
	}

	if err := guard(req.Step, &req.Shop); err != nil {
		return nil, err
	}

	resp := &models.WizardAdvanceResponse{Step: req.Step + 1}

	// Leaving the location step is the commit point: the shop must be
	// persisted before the final step is ever reported back.
	if req.Step == models.StepLocation {
		shop, err := s.shops.CreateShop(ctx, userID, &req.Shop)
		if err != nil {
			return nil, err
		}

		resp.Shop = shop
	}

	return resp, nil
}

// Back walks one step toward the start. There is no way back out of the
// final step; the shop is already committed.
func (s *onboardingService) Back(req *models.WizardBackRequest) (models.WizardStep, error) {

	if !req.Step.Valid() {
		return 0, errors.BadRequestError("Unknown wizard step")
	}

	if req.Step == models.StepWelcome {
		return 0, errors.BadRequestError("Already at the first step")
	}

	if req.Step == models.StepComplete {
		return 0, errors.BadRequestError("Cannot go back after the shop has been created")
	}

	return req.Step - 1, nil
}

func (s *onboardingService) Complete(ctx context.Context, userID uuid.UUID) (*models.CompleteOnboardingResponse, error) {

	if err := s.shops.CompleteOnboarding(ctx, userID); err != nil {
		return nil, err
	}

	metrics.OnboardingCompleted()

	return &models.CompleteOnboardingResponse{
		Success:    true,
		RedirectTo: "/admin",
	}, nil
}
