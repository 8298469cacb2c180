package routes

import (
	"github.com/freshmart/freshmart-api/controllers"
	"github.com/freshmart/freshmart-api/middlewares"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/orders", controllers.GetAllOrders)
		admin.PATCH("/orders/:orderId/deliver", controllers.CompleteOrder)
	}
}
