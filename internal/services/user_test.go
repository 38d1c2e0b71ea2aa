package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appErrors "github.com/trystore/kiosk-platform/internal/errors"
	"github.com/trystore/kiosk-platform/internal/models"
	"github.com/trystore/kiosk-platform/internal/repositories/mocks"
	service "github.com/trystore/kiosk-platform/internal/services"
	"golang.org/x/crypto/bcrypt"
)

var testJWTKey = []byte("test-signing-key")

func newUserService(t *testing.T) (service.UserService, *mocks.UserRepository, *mocks.RateLimitRepository) {
	t.Helper()

	mockRepo := new(mocks.UserRepository)
	mockRateLimits := new(mocks.RateLimitRepository)

	return service.NewUserService(mockRepo, mockRateLimits, testJWTKey, time.Hour), mockRepo, mockRateLimits
}

func parseSessionClaims(t *testing.T, token string) *models.Claims {
	t.Helper()

	claims := &models.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (any, error) {
		return testJWTKey, nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	return claims
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	req := &models.RegisterRequest{
		Email:           "owner@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		FullName:        "Shop Owner",
	}

	t.Run("Success - Signs In And Points At Onboarding", func(t *testing.T) {
		// Arrange
		userService, mockRepo, _ := newUserService(t)
		userID := uuid.New()

		mockRepo.On("GetUserByEmail", mock.Anything, req.Email).Return(nil, errors.New("no rows")).Once()
		mockRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			if u.Email != req.Email || u.FullName != req.FullName {
				return false
			}
			return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.User).ID = userID
		}).Return(nil).Once()

		// Act
		resp, err := userService.Register(ctx, req)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.True(t, resp.Success)
		assert.Equal(t, "/admin/onboarding", resp.RedirectTo)
		assert.InDelta(t, 3600, resp.ExpiresIn, 5)

		claims := parseSessionClaims(t, resp.Token)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, req.Email, claims.Email)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Email Already Registered", func(t *testing.T) {
		// Arrange
		userService, mockRepo, _ := newUserService(t)
		mockRepo.On("GetUserByEmail", mock.Anything, req.Email).
			Return(&models.User{ID: uuid.New(), Email: req.Email}, nil).Once()

		// Act
		resp, err := userService.Register(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, resp)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, appErr.Code)
		mockRepo.AssertNotCalled(t, "CreateUser")
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		userService, mockRepo, _ := newUserService(t)
		mockRepo.On("GetUserByEmail", mock.Anything, req.Email).Return(nil, errors.New("no rows")).Once()
		mockRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User")).
			Return(errors.New("db down")).Once()

		// Act
		resp, err := userService.Register(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	password := "password123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	storedUser := &models.User{ID: userID, Email: "owner@example.com", Password: string(hash)}
	req := &models.LoginRequest{Email: storedUser.Email, Password: password}

	t.Run("Success - Onboarded User Lands On Dashboard", func(t *testing.T) {
		// Arrange
		userService, mockRepo, mockRateLimits := newUserService(t)

		mockRateLimits.On("CheckLoginRateLimit", mock.Anything, req.Email).Return(true, 4, 0, nil).Once()
		mockRepo.On("GetUserByEmail", mock.Anything, req.Email).Return(storedUser, nil).Once()
		mockRepo.On("GetOnboardingStatus", mock.Anything, userID).
			Return(&models.OnboardingStatus{HasShop: true, IsOnboarded: true}, nil).Once()

		// Act
		resp, err := userService.Login(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "/admin", resp.RedirectTo)
		assert.NotEmpty(t, resp.Token)
		mockRateLimits.AssertExpectations(t)
	})

	t.Run("Success - Pending Onboarding Redirects To Wizard", func(t *testing.T) {
		// Arrange
		userService, mockRepo, mockRateLimits := newUserService(t)

		mockRateLimits.On("CheckLoginRateLimit", mock.Anything, req.Email).Return(true, 4, 0, nil).Once()
		mockRepo.On("GetUserByEmail", mock.Anything, req.Email).Return(storedUser, nil).Once()
		mockRepo.On("GetOnboardingStatus", mock.Anything, userID).
			Return(&models.OnboardingStatus{HasShop: true, IsOnboarded: false}, nil).Once()

		// Act
		resp, err := userService.Login(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "/admin/onboarding", resp.RedirectTo)
	})

	t.Run("Status Lookup Failure Still Logs In", func(t *testing.T) {
		// Arrange
		userService, mockRepo, mockRateLimits := newUserService(t)

		mockRateLimits.On("CheckLoginRateLimit", mock.Anything, req.Email).Return(true, 4, 0, nil).Once()
		mockRepo.On("GetUserByEmail", mock.Anything, req.Email).Return(storedUser, nil).Once()
		mockRepo.On("GetOnboardingStatus", mock.Anything, userID).
			Return(nil, errors.New("db down")).Once()

		// Act
		resp, err := userService.Login(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "/admin/onboarding", resp.RedirectTo)
	})

	t.Run("Failure - Wrong Password", func(t *testing.T) {
		// Arrange
		userService, mockRepo, mockRateLimits := newUserService(t)

		mockRateLimits.On("CheckLoginRateLimit", mock.Anything, req.Email).Return(true, 3, 0, nil).Once()
		mockRepo.On("GetUserByEmail", mock.Anything, req.Email).Return(storedUser, nil).Once()

		// Act
		resp, err := userService.Login(ctx, &models.LoginRequest{Email: req.Email, Password: "wrong-password"})

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid email or password", resp.Message)
		assert.Equal(t, 3, resp.RemainingTries)
		assert.Empty(t, resp.Token)
	})

	t.Run("Failure - Unknown Email Gets The Same Message", func(t *testing.T) {
		// Arrange
		userService, mockRepo, mockRateLimits := newUserService(t)

		mockRateLimits.On("CheckLoginRateLimit", mock.Anything, req.Email).Return(true, 3, 0, nil).Once()
		mockRepo.On("GetUserByEmail", mock.Anything, req.Email).Return(nil, errors.New("no rows")).Once()

		// Act
		resp, err := userService.Login(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid email or password", resp.Message)
	})

	t.Run("Failure - Rate Limited", func(t *testing.T) {
		// Arrange
		userService, mockRepo, mockRateLimits := newUserService(t)

		mockRateLimits.On("CheckLoginRateLimit", mock.Anything, req.Email).Return(false, 0, 900, nil).Once()

		// Act
		resp, err := userService.Login(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, 900, resp.RetryAfter)
		mockRepo.AssertNotCalled(t, "GetUserByEmail")
	})

	t.Run("Failure - Rate Limit Backend Error", func(t *testing.T) {
		// Arrange
		userService, mockRepo, mockRateLimits := newUserService(t)

		mockRateLimits.On("CheckLoginRateLimit", mock.Anything, req.Email).
			Return(false, 0, 0, errors.New("redis down")).Once()

		// Act
		resp, err := userService.Login(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, resp)

		var appErr *appErrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
		mockRepo.AssertNotCalled(t, "GetUserByEmail")
	})
}

func TestGetOnboardingStatus(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		userService, mockRepo, _ := newUserService(t)
		shopID := uuid.New()
		expected := &models.OnboardingStatus{HasShop: true, ShopID: &shopID, IsOnboarded: true}

		mockRepo.On("GetOnboardingStatus", mock.Anything, userID).Return(expected, nil).Once()

		// Act
		status, err := userService.GetOnboardingStatus(ctx, userID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, expected, status)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		userService, mockRepo, _ := newUserService(t)
		mockRepo.On("GetOnboardingStatus", mock.Anything, userID).
			Return(nil, errors.New("db down")).Once()

		// Act
		status, err := userService.GetOnboardingStatus(ctx, userID)

		// Assert
		require.Error(t, err)
		assert.Nil(t, status)
	})
}
