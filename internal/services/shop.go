package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/trystore/kiosk-platform/internal/api/middleware"
	"github.com/trystore/kiosk-platform/internal/errors"
	"github.com/trystore/kiosk-platform/internal/models"
	repository "github.com/trystore/kiosk-platform/internal/repositories"
	"github.com/trystore/kiosk-platform/internal/utils"
	"github.com/trystore/kiosk-platform/pkg/sendgrid"
)

type ShopService interface {
	CreateShop(ctx context.Context, userID uuid.UUID, req *models.ShopFormData) (*models.Shop, error)
	CompleteOnboarding(ctx context.Context, userID uuid.UUID) error
	GetShop(ctx context.Context, userID uuid.UUID) (*models.Shop, error)
	GetShopBySlug(ctx context.Context, slug string) (*models.Shop, error)
	UpdateShop(ctx context.Context, userID uuid.UUID, req *models.ShopFormData) (*models.Shop, error)
	GetStats(ctx context.Context, userID uuid.UUID) *models.ShopStats
}

type shopService struct {
	shops repository.ShopRepository
	users repository.UserRepository
	email sendgrid.EmailService
}

func NewShopService(shops repository.ShopRepository, users repository.UserRepository, email sendgrid.EmailService) ShopService {
	return &shopService{shops: shops, users: users, email: email}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// CreateShop persists the shop and links it to the caller's profile.
// The two writes are sequential, not transactional: a failed link
// triggers a best-effort compensating delete of the shop so the account
// is left shopless rather than half-linked.
func (s *shopService) CreateShop(ctx context.Context, userID uuid.UUID, req *models.ShopFormData) (*models.Shop, error) {

	logger := middleware.LoggerFromContext(ctx)

	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, errors.UnauthorizedError("You must be logged in to create a shop").WithError(err)
	}

	if profile.ShopID != nil {
		return nil, errors.DuplicateEntryError("A shop already exists for this account")
	}

	shop := &models.Shop{
		Name:        req.Name,
		Slug:        utils.GenerateSlug(req.Name),
		Description: optional(req.Description),
		Address:     optional(req.Address),
		City:        optional(req.City),
		State:       optional(req.State),
		PostalCode:  optional(req.PostalCode),
		Phone:       optional(req.Phone),
		Email:       optional(req.Email),
		Category:    req.Category,
		IsOnboarded: false,
	}

	if err := s.shops.CreateShop(ctx, shop); err != nil {
		logger.Error("Shop creation failed", slog.String("error", err.Error()))
		return nil, errors.DatabaseError("Failed to create shop. Please try again.").WithError(err)
	}

	if err := s.users.LinkShopToProfile(ctx, userID, shop.ID); err != nil {
		logger.Error("Profile link failed, compensating",
			slog.String("shopId", shop.ID.String()),
			slog.String("error", err.Error()))

		if delErr := s.shops.DeleteShop(ctx, shop.ID); delErr != nil {
			// The orphan shop row survives; it is unreachable from any
			// profile but needs manual cleanup.
			logger.Error("Compensating shop delete failed, orphan record remains",
				slog.String("shopId", shop.ID.String()),
				slog.String("error", delErr.Error()))
		}

		return nil, errors.DatabaseError("Failed to link shop to your account. Please try again.").WithError(err)
	}

	return shop, nil
}

// CompleteOnboarding flips is_onboarded exactly once. The welcome email
// afterwards is best-effort and never fails the operation.
func (s *shopService) CompleteOnboarding(ctx context.Context, userID uuid.UUID) error {

	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil || profile.ShopID == nil {
		return errors.BadRequestError("No shop found. Please create a shop first.")
	}

	if err := s.shops.SetOnboarded(ctx, *profile.ShopID); err != nil {
		return errors.DatabaseError("Failed to complete onboarding. Please try again.").WithError(err)
	}

	s.sendWelcomeEmail(ctx, userID)

	return nil
}

func (s *shopService) sendWelcomeEmail(ctx context.Context, userID uuid.UUID) {
	logger := middleware.LoggerFromContext(ctx)

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		logger.Warn("Skipping welcome email, user lookup failed", slog.String("error", err.Error()))
		return
	}

	err = s.email.Send(ctx, &sendgrid.Email{
		To:          user.Email,
		Subject:     "Your shop is live on TryStore",
		Content:     "Your shop is set up and your kiosk is ready for customers. Head to the dashboard to add products.",
		HTMLContent: "<p>Your shop is set up and your kiosk is ready for customers. Head to the <a href=\"/admin\">dashboard</a> to add products.</p>",
	})
	if err != nil {
		logger.Warn("Welcome email failed", slog.String("error", err.Error()))
	}
}

func (s *shopService) GetShop(ctx context.Context, userID uuid.UUID) (*models.Shop, error) {

	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil || profile.ShopID == nil {
		return nil, errors.NotFoundError("No shop found")
	}

	shop, err := s.shops.GetShopByID(ctx, *profile.ShopID)
	if err != nil {
		return nil, errors.NotFoundError("Shop not found").WithError(err)
	}

	return shop, nil
}

func (s *shopService) GetShopBySlug(ctx context.Context, slug string) (*models.Shop, error) {

	shop, err := s.shops.GetShopBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NotFoundError("Shop not found").WithError(err)
	}

	return shop, nil
}

func (s *shopService) UpdateShop(ctx context.Context, userID uuid.UUID, req *models.ShopFormData) (*models.Shop, error) {

	shop, err := s.GetShop(ctx, userID)
	if err != nil {
		return nil, err
	}

	shop.Name = req.Name
	shop.Description = optional(req.Description)
	shop.Address = optional(req.Address)
	shop.City = optional(req.City)
	shop.State = optional(req.State)
	shop.PostalCode = optional(req.PostalCode)
	shop.Phone = optional(req.Phone)
	shop.Email = optional(req.Email)
	shop.Category = req.Category

	if err := s.shops.UpdateShop(ctx, shop); err != nil {
		return nil, errors.DatabaseError("Failed to update shop. Please try again.").WithError(err)
	}

	return shop, nil
}

// GetStats mirrors the dashboard's fail-soft reads: zeros on any error.
func (s *shopService) GetStats(ctx context.Context, userID uuid.UUID) *models.ShopStats {

	empty := &models.ShopStats{}

	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil || profile.ShopID == nil {
		return empty
	}

	stats, err := s.shops.GetShopStats(ctx, *profile.ShopID)
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to compute shop stats",
			slog.String("shopId", profile.ShopID.String()),
			slog.String("error", err.Error()))
		return empty
	}

	return stats
}
