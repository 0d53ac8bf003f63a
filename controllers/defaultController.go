package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Bento Baitos API is running",
	})
}

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Bento Baitos API ❤️.

The following are the endpoints for this API:

CUSTOMER
- POST "/api/orders" - Create a new order
- POST "/api/orders/:uid/proof" - Upload payment proof
- GET "/api/orders/:uid" - Get order by UID
- GET "/api/orders/by-phone/:phone" - Get orders for a phone number
- GET "/api/menu" - List available menu items
- GET "/api/menu/:id" - Get an available menu item

ADMIN
- POST "/api/admin/login" - Obtain admin token
- GET "/api/admin/orders" - List orders
- PUT "/api/admin/orders/:id/status" - Update order status
- PUT "/api/admin/orders/:id/verify-payment" - Mark payment verified
- GET "/api/admin/stats" - Sales statistics
- GET "/api/admin/menu" - List all menu items
- POST "/api/admin/menu" - Create menu item
- PUT "/api/admin/menu/:id" - Update menu item
- DELETE "/api/admin/menu/:id" - Delete menu item
- PUT "/api/admin/menu/:id/stock" - Adjust stock
- PUT "/api/admin/menu/:id/toggle" - Toggle availability`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
