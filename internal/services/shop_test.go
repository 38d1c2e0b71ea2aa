package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appErrors "github.com/trystore/kiosk-platform/internal/errors"
	"github.com/trystore/kiosk-platform/internal/models"
	"github.com/trystore/kiosk-platform/internal/repositories/mocks"
	service "github.com/trystore/kiosk-platform/internal/services"
	"github.com/trystore/kiosk-platform/pkg/sendgrid"
	emailMocks "github.com/trystore/kiosk-platform/pkg/sendgrid/mocks"
)

func newShopService(t *testing.T) (service.ShopService, *mocks.ShopRepository, *mocks.UserRepository, *emailMocks.EmailService) {
	t.Helper()

	mockShops := new(mocks.ShopRepository)
	mockUsers := new(mocks.UserRepository)
	mockEmail := new(emailMocks.EmailService)

	return service.NewShopService(mockShops, mockUsers, mockEmail), mockShops, mockUsers, mockEmail
}

func TestCreateShop(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	req := &models.ShopFormData{
		Name:     "Corner Boutique",
		Category: "fashion",
		City:     "Austin",
	}

	t.Run("Success - Creates And Links", func(t *testing.T) {
		// Arrange
		shopService, mockShops, mockUsers, _ := newShopService(t)
		shopID := uuid.New()

		mockUsers.On("GetProfile", mock.Anything, userID).Return(&models.Profile{ID: userID}, nil).Once()
		mockShops.On("CreateShop", mock.Anything, mock.MatchedBy(func(s *models.Shop) bool {
			return s.Name == req.Name && strings.HasPrefix(s.Slug, "corner-boutique-") && !s.IsOnboarded
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Shop).ID = shopID
		}).Return(nil).Once()
		mockUsers.On("LinkShopToProfile", mock.Anything, userID, shopID).Return(nil).Once()

		// Act
		shop, err := shopService.CreateShop(ctx, userID, req)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, shop)
		assert.Equal(t, shopID, shop.ID)
		require.NotNil(t, shop.City)
		assert.Equal(t, "Austin", *shop.City)
		assert.Nil(t, shop.Phone, "blank form fields should be stored as NULL")
		mockShops.AssertExpectations(t)
		mockUsers.AssertExpectations(t)
	})

	t.Run("Failure - Shop Already Exists", func(t *testing.T) {
		// Arrange
		shopService, mockShops, mockUsers, _ := newShopService(t)
		existingShopID := uuid.New()

		mockUsers.On("GetProfile", mock.Anything, userID).
			Return(&models.Profile{ID: userID, ShopID: &existingShopID}, nil).Once()

		// Act
		shop, err := shopService.CreateShop(ctx, userID, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, shop)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, appErr.Code)
		mockShops.AssertNotCalled(t, "CreateShop")
	})

	t.Run("Failure - No Profile", func(t *testing.T) {
		// Arrange
		shopService, mockShops, mockUsers, _ := newShopService(t)
		mockUsers.On("GetProfile", mock.Anything, userID).Return(nil, errors.New("no rows")).Once()

		// Act
		shop, err := shopService.CreateShop(ctx, userID, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, shop)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)
		mockShops.AssertNotCalled(t, "CreateShop")
	})

	t.Run("Failure - Link Fails, Shop Delete Compensates", func(t *testing.T) {
		// Arrange
		shopService, mockShops, mockUsers, _ := newShopService(t)
		shopID := uuid.New()

		mockUsers.On("GetProfile", mock.Anything, userID).Return(&models.Profile{ID: userID}, nil).Once()
		mockShops.On("CreateShop", mock.Anything, mock.AnythingOfType("*models.Shop")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Shop).ID = shopID
			}).Return(nil).Once()
		mockUsers.On("LinkShopToProfile", mock.Anything, userID, shopID).Return(errors.New("constraint violation")).Once()
		mockShops.On("DeleteShop", mock.Anything, shopID).Return(nil).Once()

		// Act
		shop, err := shopService.CreateShop(ctx, userID, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, shop)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		mockShops.AssertExpectations(t)
	})

	t.Run("Compensating Delete Failure Still Reports Link Error", func(t *testing.T) {
		// Arrange
		shopService, mockShops, mockUsers, _ := newShopService(t)
		shopID := uuid.New()

		mockUsers.On("GetProfile", mock.Anything, userID).Return(&models.Profile{ID: userID}, nil).Once()
		mockShops.On("CreateShop", mock.Anything, mock.AnythingOfType("*models.Shop")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.Shop).ID = shopID
			}).Return(nil).Once()
		mockUsers.On("LinkShopToProfile", mock.Anything, userID, shopID).Return(errors.New("constraint violation")).Once()
		mockShops.On("DeleteShop", mock.Anything, shopID).Return(errors.New("db down")).Once()

		// Act
		shop, err := shopService.CreateShop(ctx, userID, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, shop)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
	})
}

func TestCompleteOnboardingShop(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	shopID := uuid.New()

	t.Run("Success - Sends Welcome Email", func(t *testing.T) {
		// Arrange
		shopService, mockShops, mockUsers, mockEmail := newShopService(t)

		mockUsers.On("GetProfile", mock.Anything, userID).
			Return(&models.Profile{ID: userID, ShopID: &shopID}, nil).Once()
		mockShops.On("SetOnboarded", mock.Anything, shopID).Return(nil).Once()
		mockUsers.On("GetUserByID", mock.Anything, userID).
			Return(&models.User{ID: userID, Email: "owner@example.com"}, nil).Once()
		mockEmail.On("Send", mock.Anything, mock.MatchedBy(func(e *sendgrid.Email) bool {
			return e.To == "owner@example.com"
		})).Return(nil).Once()

		// Act
		err := shopService.CompleteOnboarding(ctx, userID)

		// Assert
		require.NoError(t, err)
		mockShops.AssertExpectations(t)
		mockEmail.AssertExpectations(t)
	})

	t.Run("Email Failure Does Not Fail Onboarding", func(t *testing.T) {
		// Arrange
		shopService, mockShops, mockUsers, mockEmail := newShopService(t)

		mockUsers.On("GetProfile", mock.Anything, userID).
			Return(&models.Profile{ID: userID, ShopID: &shopID}, nil).Once()
		mockShops.On("SetOnboarded", mock.Anything, shopID).Return(nil).Once()
		mockUsers.On("GetUserByID", mock.Anything, userID).
			Return(&models.User{ID: userID, Email: "owner@example.com"}, nil).Once()
		mockEmail.On("Send", mock.Anything, mock.AnythingOfType("*sendgrid.Email")).
			Return(errors.New("sendgrid 500")).Once()

		// Act
		err := shopService.CompleteOnboarding(ctx, userID)

		// Assert
		require.NoError(t, err)
	})

	t.Run("Failure - No Shop", func(t *testing.T) {
		// Arrange
		shopService, mockShops, mockUsers, _ := newShopService(t)

		mockUsers.On("GetProfile", mock.Anything, userID).
			Return(&models.Profile{ID: userID}, nil).Once()

		// Act
		err := shopService.CompleteOnboarding(ctx, userID)

		// Assert
		require.Error(t, err)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		mockShops.AssertNotCalled(t, "SetOnboarded")
	})

	t.Run("Failure - Update Error", func(t *testing.T) {
		// Arrange
		shopService, mockShops, mockUsers, mockEmail := newShopService(t)

		mockUsers.On("GetProfile", mock.Anything, userID).
			Return(&models.Profile{ID: userID, ShopID: &shopID}, nil).Once()
		mockShops.On("SetOnboarded", mock.Anything, shopID).Return(errors.New("db down")).Once()

		// Act
		err := shopService.CompleteOnboarding(ctx, userID)

		// Assert
		require.Error(t, err)
		mockEmail.AssertNotCalled(t, "Send")
	})
}

func TestGetShop(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	shopID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		shopService, mockShops, mockUsers, _ := newShopService(t)
		expected := &models.Shop{ID: shopID, Name: "Corner Boutique"}

		mockUsers.On("GetProfile", mock.Anything, userID).
			Return(&models.Profile{ID: userID, ShopID: &shopID}, nil).Once()
		mockShops.On("GetShopByID", mock.Anything, shopID).Return(expected, nil).Once()

		// Act
		shop, err := shopService.GetShop(ctx, userID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, shop)
	})

	t.Run("Failure - No Shop Linked", func(t *testing.T) {
		// Arrange
		shopService, mockShops, mockUsers, _ := newShopService(t)

		mockUsers.On("GetProfile", mock.Anything, userID).
			Return(&models.Profile{ID: userID}, nil).Once()

		// Act
		shop, err := shopService.GetShop(ctx, userID)

		// Assert
		require.Error(t, err)
		assert.Nil(t, shop)
		mockShops.AssertNotCalled(t, "GetShopByID")
	})
}

func TestUpdateShop(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	shopID := uuid.New()

	t.Run("Success - Blank Fields Clear Stored Values", func(t *testing.T) {
		// Arrange
		shopService, mockShops, mockUsers, _ := newShopService(t)
		oldPhone := "555-0100"
		existing := &models.Shop{ID: shopID, Name: "Old", Slug: "old-abc123", Category: "fashion", Phone: &oldPhone}

		mockUsers.On("GetProfile", mock.Anything, userID).
			Return(&models.Profile{ID: userID, ShopID: &shopID}, nil).Once()
		mockShops.On("GetShopByID", mock.Anything, shopID).Return(existing, nil).Once()
		mockShops.On("UpdateShop", mock.Anything, mock.MatchedBy(func(s *models.Shop) bool {
			return s.ID == shopID && s.Name == "Renamed" && s.Phone == nil && s.Slug == "old-abc123"
		})).Return(nil).Once()

		// Act
		shop, err := shopService.UpdateShop(ctx, userID, &models.ShopFormData{Name: "Renamed", Category: "fashion"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Renamed", shop.Name)
		assert.Equal(t, "old-abc123", shop.Slug, "the slug is fixed at creation")
		mockShops.AssertExpectations(t)
	})
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	shopID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		shopService, mockShops, mockUsers, _ := newShopService(t)
		expected := &models.ShopStats{TotalProducts: 12, LowStockCount: 3, CategoriesCount: 4, TotalValue: 1250.50}

		mockUsers.On("GetProfile", mock.Anything, userID).
			Return(&models.Profile{ID: userID, ShopID: &shopID}, nil).Once()
		mockShops.On("GetShopStats", mock.Anything, shopID).Return(expected, nil).Once()

		// Act
		stats := shopService.GetStats(ctx, userID)

		// Assert
		assert.Equal(t, expected, stats)
	})

	t.Run("No Shop Yields Zeros", func(t *testing.T) {
		// Arrange
		shopService, mockShops, mockUsers, _ := newShopService(t)

		mockUsers.On("GetProfile", mock.Anything, userID).
			Return(&models.Profile{ID: userID}, nil).Once()

		// Act
		stats := shopService.GetStats(ctx, userID)

		// Assert
		assert.Equal(t, &models.ShopStats{}, stats)
		mockShops.AssertNotCalled(t, "GetShopStats")
	})

	t.Run("Query Error Yields Zeros", func(t *testing.T) {
		// Arrange
		shopService, mockShops, mockUsers, _ := newShopService(t)

		mockUsers.On("GetProfile", mock.Anything, userID).
			Return(&models.Profile{ID: userID, ShopID: &shopID}, nil).Once()
		mockShops.On("GetShopStats", mock.Anything, shopID).Return(nil, errors.New("db down")).Once()

		// Act
		stats := shopService.GetStats(ctx, userID)

		// Assert
		assert.Equal(t, &models.ShopStats{}, stats)
	})
}
