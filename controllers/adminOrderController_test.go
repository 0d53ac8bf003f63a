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

func seedOrder(t *testing.T, server *gin.Engine, phone string, items []map[string]any) uint {
	t.Helper()
	recorder := doJSON(t, server, http.MethodPost, "/api/orders", map[string]any{
		"customer_name": "Ayu",
		"phone":         phone,
		"items":         items,
	})
	require.Equal(t, http.StatusCreated, recorder.Code)
	return uint(parseBody(t, recorder)["order_id"].(float64))
}

func orderStatus(t *testing.T, orderID uint) string {
	t.Helper()
	var order models.Order
	require.NoError(t, initializers.DB.First(&order, orderID).Error)
	return order.Status
}

func TestUpdateOrderStatus(t *testing.T) {
	server := newTestServer(t)
	orderID := seedOrder(t, server, "0811", []map[string]any{
		{"item_id": 1, "name": "Sando", "quantity": 1, "unit_price_cents": 10000},
	})

	recorder := doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/admin/orders/%d/status", orderID), map[string]any{
		"status": "preparing",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "preparing", orderStatus(t, orderID))

	// Any member of the enum may follow any other, including going backwards.
	recorder = doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/admin/orders/%d/status", orderID), map[string]any{
		"status": "pending",
	})
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "pending", orderStatus(t, orderID))
}

func TestUpdateOrderStatusRejectsUnknownValues(t *testing.T) {
	server := newTestServer(t)
	orderID := seedOrder(t, server, "0811", []map[string]any{
		{"item_id": 1, "name": "Sando", "quantity": 1, "unit_price_cents": 10000},
	})

	recorder := doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/admin/orders/%d/status", orderID), map[string]any{
		"status": "shipped",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	body := parseBody(t, recorder)
	require.Equal(t, "Invalid status", body["error"])
	require.Len(t, body["valid_statuses"].([]any), 6)
	require.Equal(t, "pending", orderStatus(t, orderID))
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	server := newTestServer(t)

	recorder := doJSON(t, server, http.MethodPut, "/api/admin/orders/999/status", map[string]any{
		"status": "paid",
	})
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestVerifyPaymentIsIdempotent(t *testing.T) {
	server := newTestServer(t)
	orderID := seedOrder(t, server, "0811", []map[string]any{
		{"item_id": 1, "name": "Sando", "quantity": 1, "unit_price_cents": 10000},
	})

	path := fmt.Sprintf("/api/admin/orders/%d/verify-payment", orderID)
	for i := 0; i < 2; i++ {
		recorder := doJSON(t, server, http.MethodPut, path, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	var order models.Order
	require.NoError(t, initializers.DB.First(&order, orderID).Error)
	require.True(t, order.PaymentVerified)

	missing := doJSON(t, server, http.MethodPut, "/api/admin/orders/999/verify-payment", nil)
	require.Equal(t, http.StatusNotFound, missing.Code)
}

func TestGetAdminOrdersStatusFilter(t *testing.T) {
	server := newTestServer(t)
	item := []map[string]any{{"item_id": 1, "name": "Sando", "quantity": 1, "unit_price_cents": 10000}}

	first := seedOrder(t, server, "0811", item)
	seedOrder(t, server, "0812", item)

	doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/admin/orders/%d/status", first), map[string]any{"status": "ready"})

	all := parseBody(t, doJSON(t, server, http.MethodGet, "/api/admin/orders", nil))
	require.Len(t, all["orders"].([]any), 2)

	pagination := all["pagination"].(map[string]any)
	require.Equal(t, float64(50), pagination["limit"])
	require.Equal(t, float64(2), pagination["count"])

	ready := parseBody(t, doJSON(t, server, http.MethodGet, "/api/admin/orders?status=ready", nil))
	orders := ready["orders"].([]any)
	require.Len(t, orders, 1)
	require.Equal(t, "ready", orders[0].(map[string]any)["status"])

	limited := parseBody(t, doJSON(t, server, http.MethodGet, "/api/admin/orders?limit=1&offset=1", nil))
	require.Len(t, limited["orders"].([]any), 1)
}

func TestGetAdminStats(t *testing.T) {
	server := newTestServer(t)

	seedOrder(t, server, "0811", []map[string]any{
		{"item_id": 1, "name": "Curry Rice", "quantity": 3, "unit_price_cents": 20000},
	})
	seedOrder(t, server, "0812", []map[string]any{
		{"item_id": 2, "name": "Java Tea", "quantity": 1, "unit_price_cents": 10000},
	})
	cancelled := seedOrder(t, server, "0813", []map[string]any{
		{"item_id": 1, "name": "Curry Rice", "quantity": 5, "unit_price_cents": 20000},
	})
	doJSON(t, server, http.MethodPut, fmt.Sprintf("/api/admin/orders/%d/status", cancelled), map[string]any{"status": "cancelled"})

	stats := parseBody(t, doJSON(t, server, http.MethodGet, "/api/admin/stats", nil))

	// Cancelled orders are excluded from counts and revenue.
	require.Equal(t, float64(2), stats["totalOrders"])
	require.Equal(t, float64(70000), stats["totalRevenue"])
	require.Equal(t, float64(2), stats["todayOrders"])
	require.Equal(t, float64(70000), stats["todayRevenue"])

	items := stats["items"].([]any)
	require.Len(t, items, 2)
	top := items[0].(map[string]any)
	require.Equal(t, "Curry Rice", top["name"])
	require.Equal(t, float64(3), top["quantity_sold"])
	require.Equal(t, float64(1), top["order_count"])

	byStatus := stats["ordersByStatus"].([]any)
	counts := map[string]float64{}
	for _, entry := range byStatus {
		row := entry.(map[string]any)
		counts[row["status"].(string)] = row["count"].(float64)
	}
	require.Equal(t, float64(2), counts["pending"])
	require.Equal(t, float64(1), counts["cancelled"])
}
