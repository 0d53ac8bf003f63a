package utils

import (
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// NotifyNewOrder posts a short order summary to the webhook configured in
// ORDER_WEBHOOK_URL so staff hear about new orders without polling the admin
// panel. Best effort: failures are logged and never affect the order.
func NotifyNewOrder(orderUID, customerName string, totalCents int) {
	webhookURL := os.Getenv("ORDER_WEBHOOK_URL")
	if webhookURL == "" {
		return
	}

	resp, err := resty.New().SetTimeout(5 * time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"order_uid":     orderUID,
			"customer_name": customerName,
			"total_cents":   totalCents,
		}).
		Post(webhookURL)

	if err != nil {
		log.Printf("Order webhook error for %s: %v", orderUID, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Order webhook for %s returned status %d", orderUID, resp.StatusCode())
	}
}
