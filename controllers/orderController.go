package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bentobaitos/bento-api/initializers"
	"github.com/bentobaitos/bento-api/models"
	"github.com/bentobaitos/bento-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	body := gin.H{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	ctx.JSON(statusCode, body)
}

type OrderItemInput struct {
	ItemID         uint           `json:"item_id"`
	Name           string         `json:"name"`
	Quantity       int            `json:"quantity"`
	UnitPriceCents int            `json:"unit_price_cents"`
	Customizations map[string]any `json:"customizations"`
}

type CreateOrderInput struct {
	CustomerName  string           `json:"customer_name"`
	Phone         string           `json:"phone"`
	Items         []OrderItemInput `json:"items"`
	PaymentMethod string           `json:"payment_method"`
}

// Static bank-transfer instructions returned with every new order.
var paymentInstructions = gin.H{
	"bank":           "BCA",
	"account_number": "1234567890",
	"account_holder": "Bento Baitos",
	"qr_code_url":    "",
}

func CreateOrder(ctx *gin.Context) {
	var input CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Printf("JSON binding error: %v", err)
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if input.CustomerName == "" || input.Phone == "" || len(input.Items) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "Missing required fields: customer_name, phone, items", nil)
		return
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentMethodBankTransfer
	}
	if !models.IsValidPaymentMethod(paymentMethod) {
		respondWithError(ctx, http.StatusBadRequest, "Invalid payment method", nil)
		return
	}

	// Total is always recomputed server-side, never trusted from the client.
	totalPrice := 0
	for _, item := range input.Items {
		totalPrice += item.UnitPriceCents * item.Quantity
	}

	var order models.Order

	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		result := tx.Where("phone = ?", input.Phone).First(&user)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			user = models.User{Name: input.CustomerName, Phone: input.Phone}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		} else if result.Error != nil {
			return result.Error
		} else if user.Name != input.CustomerName {
			if err := tx.Model(&user).Update("name", input.CustomerName).Error; err != nil {
				return err
			}
		}

		orderUID, err := nextOrderUID(tx)
		if err != nil {
			return err
		}

		order = models.Order{
			OrderUID:        orderUID,
			UserID:          user.ID,
			TotalPrice:      totalPrice,
			PaymentMethod:   paymentMethod,
			PaymentVerified: paymentMethod == models.PaymentMethodCash,
			Status:          models.StatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range input.Items {
			itemName := item.Name
			if itemName == "" {
				itemName = fmt.Sprintf("Item %d", item.ItemID)
			}

			orderItem := models.OrderItem{
				OrderID:   order.ID,
				ItemName:  itemName,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPriceCents,
			}
			if item.Customizations != nil {
				serialized, err := json.Marshal(item.Customizations)
				if err != nil {
					return err
				}
				orderItem.Customizations = serialized
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Println("Order creation failed:", err)
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create order", err)
		return
	}

	utils.NotifyNewOrder(order.OrderUID, input.CustomerName, totalPrice)

	ctx.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"order_uid":   order.OrderUID,
		"order_id":    order.ID,
		"total_cents": totalPrice,
		"status":      order.Status,
		"payment":     paymentInstructions,
		"message":     "Order created successfully. Please transfer the exact amount and upload payment proof.",
	})
}

// nextOrderUID draws the next sequence number for today from the day counter
// row. The seq bump runs as a single UPDATE inside the caller's transaction,
// so the row lock it takes serializes concurrent checkouts and no two orders
// can share a UID.
func nextOrderUID(tx *gorm.DB) (string, error) {
	day := time.Now().Format("20060102")

	var counter models.DayCounter
	if err := tx.Where(models.DayCounter{Day: day}).FirstOrCreate(&counter).Error; err != nil {
		return "", err
	}
	if err := tx.Model(&counter).Update("seq", gorm.Expr("seq + 1")).Error; err != nil {
		return "", err
	}
	if err := tx.First(&counter, counter.ID).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("BENTO-%s-%04d", day, counter.Seq), nil
}

func decodeCustomizations(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var customizations any
	if err := json.Unmarshal(raw, &customizations); err != nil {
		log.Println("Failed to decode customizations:", err)
		return nil
	}
	return customizations
}

func GetOrderByUID(ctx *gin.Context) {
	orderUID := ctx.Param("uid")

	var order models.Order
	result := initializers.DB.Preload("OrderItems").Preload("User").Where("order_uid = ?", orderUID).First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Order not found", nil)
		} else {
			log.Println("Database error:", result.Error)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to fetch order", result.Error)
		}
		return
	}

	items := make([]gin.H, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		items = append(items, gin.H{
			"item_name":      item.ItemName,
			"quantity":       item.Quantity,
			"unit_price":     item.UnitPrice,
			"customizations": decodeCustomizations(item.Customizations),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"order_uid":         order.OrderUID,
		"customer_name":     order.User.Name,
		"phone":             order.User.Phone,
		"status":            order.Status,
		"payment_method":    order.PaymentMethod,
		"payment_proof_url": order.PaymentProofURL,
		"total_price":       order.TotalPrice,
		"items":             items,
		"created_at":        order.CreatedAt,
		"updated_at":        order.UpdatedAt,
	})
}

func GetOrdersByPhone(ctx *gin.Context) {
	phone := ctx.Param("phone")

	var orders []models.Order
	result := initializers.DB.Preload("OrderItems").
		Select("orders.*").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("users.phone = ?", phone).
		Order("orders.created_at DESC").
		Find(&orders)
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
				"item_name":  item.ItemName,
				"quantity":   item.Quantity,
				"unit_price": item.UnitPrice,
			})
		}
		orderList = append(orderList, gin.H{
			"order_uid":         order.OrderUID,
			"status":            order.Status,
			"total_price":       order.TotalPrice,
			"payment_proof_url": order.PaymentProofURL,
			"items":             items,
			"created_at":        order.CreatedAt,
			"updated_at":        order.UpdatedAt,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"phone":  phone,
		"orders": orderList,
	})
}
