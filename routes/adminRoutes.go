package routes

import (
	"github.com/bentobaitos/bento-api/controllers"
	"github.com/bentobaitos/bento-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine) {
	server.POST("/api/admin/login", controllers.AdminLogin)

	admin := server.Group("/api/admin", middlewares.RequireAdmin())
	{
		admin.GET("/orders", controllers.GetAdminOrders)
		admin.PUT("/orders/:id/status", controllers.UpdateOrderStatus)
		admin.PUT("/orders/:id/verify-payment", controllers.VerifyPayment)
		admin.GET("/stats", controllers.GetAdminStats)
		admin.GET("/menu", controllers.GetAdminMenu)
		admin.POST("/menu", controllers.CreateMenuItem)
		admin.PUT("/menu/:id", controllers.UpdateMenuItem)
		admin.DELETE("/menu/:id", controllers.DeleteMenuItem)
		admin.PUT("/menu/:id/stock", controllers.AdjustStock)
		admin.PUT("/menu/:id/toggle", controllers.ToggleAvailability)
	}
}
