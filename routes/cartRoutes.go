package routes

import (
	"github.com/freshmart/freshmart-api/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine) {
	server.GET("/cart", controllers.GetCart)
	server.POST("/cart/:productId", controllers.AddToCart)
	server.PUT("/cart/:productId", controllers.UpdateCartItem)
	server.DELETE("/cart/:productId", controllers.RemoveFromCart)
}
