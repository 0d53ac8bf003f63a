package routes

import (
	"github.com/bentobaitos/bento-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/api/orders", controllers.CreateOrder)
	server.POST("/api/orders/:uid/proof", controllers.UploadPaymentProof)
	server.GET("/api/orders/by-phone/:phone", controllers.GetOrdersByPhone)
	server.GET("/api/orders/:uid", controllers.GetOrderByUID)
}
