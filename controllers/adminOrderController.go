package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/bentobaitos/bento-api/initializers"
	"github.com/bentobaitos/bento-api/models"
	"github.com/gin-gonic/gin"
)

func GetAdminOrders(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	query := initializers.DB.Preload("OrderItems").Preload("User")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	result := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orders)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch orders", result.Error)
		return
	}

	orderList := make([]gin.H, 0, len(orders))
	for _, order := range orders {
		items := make([]gin.H, 0, len(order.OrderItems))
		for _, item := range order.OrderItems {
			items = append(items, gin.H{
				"item_name":      item.ItemName,
				"quantity":       item.Quantity,
				"unit_price":     item.UnitPrice,
				"customizations": decodeCustomizations(item.Customizations),
			})
		}
		orderList = append(orderList, gin.H{
			"id":                order.ID,
			"order_uid":         order.OrderUID,
			"customer_name":     order.User.Name,
			"phone":             order.User.Phone,
			"status":            order.Status,
			"payment_method":    order.PaymentMethod,
			"payment_proof_url": order.PaymentProofURL,
			"payment_verified":  order.PaymentVerified,
			"total_price":       order.TotalPrice,
			"items":             items,
			"created_at":        order.CreatedAt,
			"updated_at":        order.UpdatedAt,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orderList,
		"pagination": gin.H{
			"limit":  limit,
			"offset": offset,
			"count":  len(orderList),
		},
	})
}

func UpdateOrderStatus(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid order ID", err)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if !models.IsValidStatus(body.Status) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":          "Invalid status",
			"valid_statuses": models.ValidStatuses,
		})
		return
	}

	result := initializers.DB.Model(&models.Order{}).Where("id = ?", orderID).Update("status", body.Status)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update order status", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		respondWithError(ctx, http.StatusNotFound, "Order not found", nil)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"order_id": orderID,
		"status":   body.Status,
		"message":  "Order status updated successfully",
	})
}

// VerifyPayment is idempotent: marking an already verified order succeeds and
// changes nothing.
func VerifyPayment(ctx *gin.Context) {
	orderID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid order ID", err)
		return
	}

	var order models.Order
	if result := initializers.DB.First(&order, orderID); result.Error != nil {
		respondWithError(ctx, http.StatusNotFound, "Order not found", nil)
		return
	}

	if !order.PaymentVerified {
		if err := initializers.DB.Model(&order).Update("payment_verified", true).Error; err != nil {
			log.Println("Database error:", err)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to verify payment", err)
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"order_id": orderID,
		"message":  "Payment verified successfully",
	})
}

func GetAdminStats(ctx *gin.Context) {
	db := initializers.DB

	var totals struct {
		TotalOrders  int64
		TotalRevenue int64
	}
	if err := db.Model(&models.Order{}).
		Select("COUNT(*) as total_orders, COALESCE(SUM(total_price), 0) as total_revenue").
		Where("status != ?", models.StatusCancelled).
		Scan(&totals).Error; err != nil {
		log.Println("Database error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch stats", err)
		return
	}

	// Calendar-day boundary in server-local time.
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var today struct {
		TodayOrders  int64
		TodayRevenue int64
	}
	if err := db.Model(&models.Order{}).
		Select("COUNT(*) as today_orders, COALESCE(SUM(total_price), 0) as today_revenue").
		Where("created_at >= ? AND status != ?", startOfDay, models.StatusCancelled).
		Scan(&today).Error; err != nil {
		log.Println("Database error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch stats", err)
		return
	}

	var topItems []struct {
		ItemName     string
		QuantitySold int64
		OrderCount   int64
	}
	if err := db.Model(&models.OrderItem{}).
		Select("order_items.item_name, SUM(order_items.quantity) as quantity_sold, COUNT(DISTINCT order_items.order_id) as order_count").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status != ?", models.StatusCancelled).
		Group("order_items.item_name").
		Order("quantity_sold DESC").
		Limit(10).
		Scan(&topItems).Error; err != nil {
		log.Println("Database error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch stats", err)
		return
	}

	var byStatus []struct {
		Status string
		Count  int64
	}
	if err := db.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		log.Println("Database error:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch stats", err)
		return
	}

	items := make([]gin.H, 0, len(topItems))
	for _, item := range topItems {
		items = append(items, gin.H{
			"name":          item.ItemName,
			"quantity_sold": item.QuantitySold,
			"order_count":   item.OrderCount,
		})
	}

	statusCounts := make([]gin.H, 0, len(byStatus))
	for _, entry := range byStatus {
		statusCounts = append(statusCounts, gin.H{
			"status": entry.Status,
			"count":  entry.Count,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"totalOrders":    totals.TotalOrders,
		"totalRevenue":   totals.TotalRevenue,
		"todayOrders":    today.TodayOrders,
		"todayRevenue":   today.TodayRevenue,
		"items":          items,
		"ordersByStatus": statusCounts,
	})
}
