package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/mock"
	"github.com/trystore/kiosk-platform/internal/api/middleware"
	"github.com/trystore/kiosk-platform/internal/models"
	"github.com/trystore/kiosk-platform/internal/services/mocks"
)

func TestDecideRoute(t *testing.T) {
	anonymous := middleware.GateStatus{}
	authenticated := middleware.GateStatus{Authenticated: true}
	withShop := middleware.GateStatus{Authenticated: true, HasShop: true}
	onboarded := middleware.GateStatus{Authenticated: true, HasShop: true, ShopOnboarded: true}

	cases := []struct {
		name       string
		path       string
		status     middleware.GateStatus
		allow      bool
		redirectTo string
	}{
		{"NonAdminAlwaysAllowed", "/kiosk/products", anonymous, true, ""},
		{"NonAdminAllowedWhenAuthed", "/kiosk/products", onboarded, true, ""},

		{"LoginAllowedAnonymous", "/admin/login", anonymous, true, ""},
		{"RegisterAllowedAnonymous", "/admin/register", anonymous, true, ""},
		{"LoginBouncesOnboardedToDashboard", "/admin/login", onboarded, false, "/admin"},
		{"RegisterBouncesOnboardedToDashboard", "/admin/register", onboarded, false, "/admin"},
		{"LoginBouncesPartialToOnboarding", "/admin/login", authenticated, false, "/admin/onboarding"},
		{"LoginBouncesUnOnboardedShopToOnboarding", "/admin/login", withShop, false, "/admin/onboarding"},

		{"DashboardRequiresAuth", "/admin", anonymous, false, "/admin/login"},
		{"ProductsRequiresAuth", "/admin/products", anonymous, false, "/admin/login"},
		{"OnboardingRequiresAuth", "/admin/onboarding", anonymous, false, "/admin/login"},

		{"OnboardingReachableWithoutShop", "/admin/onboarding", authenticated, true, ""},
		{"OnboardingReachableWithShop", "/admin/onboarding", withShop, true, ""},
		{"OnboardingReachableWhenOnboarded", "/admin/onboarding", onboarded, true, ""},

		{"DashboardFunnelsNoShop", "/admin", authenticated, false, "/admin/onboarding"},
		{"DashboardFunnelsUnOnboardedShop", "/admin", withShop, false, "/admin/onboarding"},
		{"ProductsFunnelsNoShop", "/admin/products", authenticated, false, "/admin/onboarding"},

		{"DashboardAllowedOnboarded", "/admin", onboarded, true, ""},
		{"ProductsAllowedOnboarded", "/admin/products", onboarded, true, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := middleware.DecideRoute(tc.path, tc.status)

			assert.Equal(t, tc.allow, decision.Allow)
			assert.Equal(t, tc.redirectTo, decision.RedirectTo)
		})
	}
}

func gateToken(t *testing.T, key []byte, userID uuid.UUID) string {
	t.Helper()

	claims := &models.Claims{
		UserID: userID,
		Email:  "owner@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestGateProtect(t *testing.T) {
	jwtKey := []byte("test-signing-key")
	cookieName := "trystore_session"
	auth := middleware.NewAuthMiddleware(jwtKey, cookieName)
	userID := uuid.New()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("AnonymousRedirectedToLogin", func(t *testing.T) {
		// Arrange
		resolver := new(mocks.UserService)
		gate := middleware.NewGate(auth, resolver)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		rec := httptest.NewRecorder()

		// Act
		gate.Protect(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
		resolver.AssertNotCalled(t, "GetOnboardingStatus")
	})

	t.Run("AuthenticatedWithoutShopFunneled", func(t *testing.T) {
		// Arrange
		resolver := new(mocks.UserService)
		resolver.On("GetOnboardingStatus", mock.Anything, userID).
			Return(&models.OnboardingStatus{HasProfile: true}, nil).Once()
		gate := middleware.NewGate(auth, resolver)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: gateToken(t, jwtKey, userID)})
		rec := httptest.NewRecorder()

		// Act
		gate.Protect(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/onboarding", rec.Header().Get("Location"))
		resolver.AssertExpectations(t)
	})

	t.Run("OnboardedUserAdmitted", func(t *testing.T) {
		// Arrange
		shopID := uuid.New()
		resolver := new(mocks.UserService)
		resolver.On("GetOnboardingStatus", mock.Anything, userID).
			Return(&models.OnboardingStatus{HasProfile: true, HasShop: true, IsOnboarded: true, ShopID: &shopID}, nil).Once()
		gate := middleware.NewGate(auth, resolver)

		var gotClaims *models.Claims
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotClaims, _ = middleware.ClaimsFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+gateToken(t, jwtKey, userID))
		rec := httptest.NewRecorder()

		// Act
		gate.Protect(inner).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotClaims, "admitted requests should carry claims in context")
		assert.Equal(t, userID, gotClaims.UserID)
		resolver.AssertExpectations(t)
	})

	t.Run("OnboardedUserBouncedFromLogin", func(t *testing.T) {
		// Arrange
		shopID := uuid.New()
		resolver := new(mocks.UserService)
		resolver.On("GetOnboardingStatus", mock.Anything, userID).
			Return(&models.OnboardingStatus{HasProfile: true, HasShop: true, IsOnboarded: true, ShopID: &shopID}, nil).Once()
		gate := middleware.NewGate(auth, resolver)

		req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: gateToken(t, jwtKey, userID)})
		rec := httptest.NewRecorder()

		// Act
		gate.Protect(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin", rec.Header().Get("Location"))
		resolver.AssertExpectations(t)
	})

	t.Run("StatusLookupFailureTreatedAsNotOnboarded", func(t *testing.T) {
		// Arrange
		resolver := new(mocks.UserService)
		resolver.On("GetOnboardingStatus", mock.Anything, userID).
			Return(nil, assert.AnError).Once()
		gate := middleware.NewGate(auth, resolver)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: gateToken(t, jwtKey, userID)})
		rec := httptest.NewRecorder()

		// Act
		gate.Protect(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/onboarding", rec.Header().Get("Location"))
		resolver.AssertExpectations(t)
	})

	t.Run("ExpiredTokenTreatedAsAnonymous", func(t *testing.T) {
		// Arrange
		resolver := new(mocks.UserService)
		gate := middleware.NewGate(auth, resolver)

		claims := &models.Claims{
			UserID: userID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
		rec := httptest.NewRecorder()

		// Act
		gate.Protect(next).ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
		resolver.AssertNotCalled(t, "GetOnboardingStatus")
	})
}
