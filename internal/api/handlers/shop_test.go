package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trystore/kiosk-platform/internal/api/handlers"
	appErrors "github.com/trystore/kiosk-platform/internal/errors"
	"github.com/trystore/kiosk-platform/internal/models"
	"github.com/trystore/kiosk-platform/internal/services/mocks"
	"github.com/trystore/kiosk-platform/internal/testutils"
)

func TestGetShopHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockShops := new(mocks.ShopService)
		handler := handlers.NewShopHandler(mockShops)

		mockShops.On("GetShop", mock.Anything, userID).
			Return(&models.Shop{ID: uuid.New(), Name: "Corner Boutique"}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/shops/me", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.GetShop().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockShops.AssertExpectations(t)
	})

	t.Run("Failure - No Shop", func(t *testing.T) {
		// Arrange
		mockShops := new(mocks.ShopService)
		handler := handlers.NewShopHandler(mockShops)

		mockShops.On("GetShop", mock.Anything, userID).
			Return(nil, appErrors.NotFoundError("No shop found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/shops/me", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.GetShop().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Failure - No Authentication", func(t *testing.T) {
		// Arrange
		mockShops := new(mocks.ShopService)
		handler := handlers.NewShopHandler(mockShops)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/shops/me", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.GetShop().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockShops.AssertNotCalled(t, "GetShop")
	})
}

func TestUpdateShopHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockShops := new(mocks.ShopService)
		handler := handlers.NewShopHandler(mockShops)

		mockShops.On("UpdateShop", mock.Anything, userID, mock.MatchedBy(func(req *models.ShopFormData) bool {
			return req.Name == "Renamed Boutique" && req.Category == "fashion"
		})).Return(&models.Shop{ID: uuid.New(), Name: "Renamed Boutique"}, nil).Once()

		body := `{"name":"Renamed Boutique","category":"fashion"}`
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/shops/me", bytes.NewBufferString(body), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.UpdateShop().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockShops.AssertExpectations(t)
	})

	t.Run("Failure - Missing Category", func(t *testing.T) {
		// Arrange
		mockShops := new(mocks.ShopService)
		handler := handlers.NewShopHandler(mockShops)

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/shops/me",
			bytes.NewBufferString(`{"name":"Renamed Boutique"}`), userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.UpdateShop().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockShops.AssertNotCalled(t, "UpdateShop")
	})
}

func TestStatsHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockShops := new(mocks.ShopService)
		handler := handlers.NewShopHandler(mockShops)

		mockShops.On("GetStats", mock.Anything, userID).
			Return(&models.ShopStats{TotalProducts: 12, LowStockCount: 2, CategoriesCount: 3, TotalValue: 840.0}).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/shops/me/stats", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Stats().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		resp := decodeResponse(t, rr)
		require.True(t, resp.Success)

		stats, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 12, stats["total_products"])
		mockShops.AssertExpectations(t)
	})

	t.Run("Zeros Are Still A Success", func(t *testing.T) {
		// Arrange
		mockShops := new(mocks.ShopService)
		handler := handlers.NewShopHandler(mockShops)

		mockShops.On("GetStats", mock.Anything, userID).Return(&models.ShopStats{}).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/shops/me/stats", nil, userID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.Stats().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
