package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/bentobaitos/bento-api/initializers"
	"github.com/bentobaitos/bento-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func seedMenuItem(t *testing.T, server *gin.Engine, body map[string]any) uint {
	t.Helper()
	recorder := doJSON(t, server, http.MethodPost, "/api/admin/menu", body)
	require.Equal(t, http.StatusCreated, recorder.Code)
	return uint(parseBody(t, recorder)["id"].(float64))
}

func fetchMenuItem(t *testing.T, itemID uint) models.MenuItem {
	t.Helper()
	var item models.MenuItem
	require.NoError(t, initializers.DB.First(&item, itemID).Error)
	return item
}

func TestCreateMenuItemValidation(t *testing.T) {
	server := newTestServer(t)

	cases := []map[string]any{
		{"category": "Beverages", "price": 10000},
		{"name": "Tea", "price": 10000},
		{"name": "Tea", "category": "Beverages"},
		{"name": "Tea", "category": "Beverages", "price": -5},
	}
	for _, body := range cases {
		recorder := doJSON(t, server, http.MethodPost, "/api/admin/menu", body)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
	}
}

func TestMenuItemDerivedFlags(t *testing.T) {
	server := newTestServer(t)
	itemID := seedMenuItem(t, server, map[string]any{
		"name":                "Tea",
		"price":               10000,
		"category":            "Beverages",
		"stock":               5,
		"low_stock_threshold": 5,
	})

	body := parseBody(t, doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/menu/%d", itemID), nil))
	require.Equal(t, true, body["is_low_stock"])
	require.Equal(t, false, body["is_sold_out"])
	require.Equal(t, float64(10000), body["price_cents"])
	require.Equal(t, float64(10000), body["price"])
}

func TestPublicMenuExcludesUnavailableItems(t *testing.T) {
	server := newTestServer(t)
	seedMenuItem(t, server, map[string]any{"name": "Curry Rice", "category": "Rice Bowls", "price": 20000})
	hiddenID := seedMenuItem(t, server, map[string]any{"name": "Secret Sando", "category": "Desserts", "price": 10000, "available": false})

	public := parseBody(t, doJSON(t, server, http.MethodGet, "/api/menu", nil))
	require.Len(t, public["items"].([]any), 1)

	adminList := parseBody(t, doJSON(t, server, http.MethodGet, "/api/admin/menu", nil))
	require.Len(t, adminList["items"].([]any), 2)

	// Unavailable items are invisible to the storefront even by direct ID.
	recorder := doJSON(t, server, http.MethodGet, fmt.Sprintf("/api/menu/%d", hiddenID), nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUpdateMenuItemPartialFields(t *testing.T) {
	server := newTestServer(t)
	itemID := seedMenuItem(t, server, map[string]any{
		"name":     "Curry Rice",
		"category": "Rice Bowls",
		"price":    20000,
		"stock":    10,
	})

	recorder := doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/admin/menu/%d", itemID), map[string]any{
		"price": 25000,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	item := fetchMenuItem(t, itemID)
	require.Equal(t, 25000, item.Price)
	require.Equal(t, "Curry Rice", item.Name)
	require.Equal(t, "Rice Bowls", item.Category)
	require.Equal(t, 10, item.Stock)

	// An explicit false is applied, not treated as absent.
	doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/admin/menu/%d", itemID), map[string]any{
		"available": false,
	})
	require.False(t, fetchMenuItem(t, itemID).Available)

	// Explicitly zeroing stock takes the item off the storefront.
	doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/admin/menu/%d", itemID), map[string]any{
		"available": true,
	})
	doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/admin/menu/%d", itemID), map[string]any{
		"stock": 0,
	})
	item = fetchMenuItem(t, itemID)
	require.Equal(t, 0, item.Stock)
	require.False(t, item.Available)
}

func TestUpdateMenuItemNotFound(t *testing.T) {
	server := newTestServer(t)

	recorder := doJSON(t, server, http.MethodPut, "/api/admin/menu/999", map[string]any{"price": 1})
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAdjustStock(t *testing.T) {
	server := newTestServer(t)
	itemID := seedMenuItem(t, server, map[string]any{
		"name": "Curry Rice", "category": "Rice Bowls", "price": 20000, "stock": 3,
	})
	path := fmt.Sprintf("/api/admin/menu/%d/stock", itemID)

	recorder := doJSON(t, server, http.MethodPut, path, map[string]any{"operation": "add", "amount": 2})
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 5, fetchMenuItem(t, itemID).Stock)

	recorder = doJSON(t, server, http.MethodPut, path, map[string]any{"operation": "set", "amount": 8})
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 8, fetchMenuItem(t, itemID).Stock)

	recorder = doJSON(t, server, http.MethodPut, path, map[string]any{"operation": "melt", "amount": 1})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSubtractClampsAtZeroAndDisables(t *testing.T) {
	server := newTestServer(t)
	itemID := seedMenuItem(t, server, map[string]any{
		"name": "Curry Rice", "category": "Rice Bowls", "price": 20000, "stock": 3,
	})

	recorder := doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/admin/menu/%d/stock", itemID), map[string]any{
		"operation": "subtract",
		"amount":    10,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	item := fetchMenuItem(t, itemID)
	require.Equal(t, 0, item.Stock)
	require.False(t, item.Available)

	body := parseBody(t, recorder)
	require.Equal(t, true, body["is_sold_out"])
}

func TestToggleAvailabilityTwiceRestoresOriginal(t *testing.T) {
	server := newTestServer(t)
	itemID := seedMenuItem(t, server, map[string]any{
		"name": "Curry Rice", "category": "Rice Bowls", "price": 20000, "stock": 3,
	})
	path := fmt.Sprintf("/api/admin/menu/%d/toggle", itemID)

	require.True(t, fetchMenuItem(t, itemID).Available)

	recorder := doJSON(t, server, http.MethodPut, path, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.False(t, fetchMenuItem(t, itemID).Available)

	recorder = doJSON(t, server, http.MethodPut, path, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, fetchMenuItem(t, itemID).Available)
}

func TestDeleteMenuItem(t *testing.T) {
	server := newTestServer(t)
	itemID := seedMenuItem(t, server, map[string]any{
		"name": "Curry Rice", "category": "Rice Bowls", "price": 20000,
	})
	path := fmt.Sprintf("/api/admin/menu/%d", itemID)

	recorder := doJSON(t, server, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	adminList := parseBody(t, doJSON(t, server, http.MethodGet, "/api/admin/menu", nil))
	require.Len(t, adminList["items"].([]any), 0)

	recorder = doJSON(t, server, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}
