package routes

import (
	"github.com/freshmart/freshmart-api/controllers"
	"github.com/freshmart/freshmart-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/", middlewares.RequireAuth())
	{
		orders.GET("/checkout", controllers.GetCheckout)
		orders.POST("/checkout", controllers.Checkout)
		orders.GET("/order", controllers.GetMyOrders)
		orders.GET("/order/:orderId", controllers.GetOrderById)
	}
}
