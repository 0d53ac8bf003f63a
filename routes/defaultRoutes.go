package routes

import (
	"github.com/bentobaitos/bento-api/controllers"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
	server.GET("/api/health", controllers.GetHealth)
}
