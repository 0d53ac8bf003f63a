package routes

import (
	"github.com/bentobaitos/bento-api/controllers"
	"github.com/gin-gonic/gin"
)

func MenuRoutes(server *gin.Engine) {
	server.GET("/api/menu", controllers.GetMenu)
	server.GET("/api/menu/:id", controllers.GetMenuItem)
}
