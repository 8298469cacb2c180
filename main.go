package main

import (
	"time"

	"github.com/freshmart/freshmart-api/controllers"
	"github.com/freshmart/freshmart-api/initializers"
	"github.com/freshmart/freshmart-api/routes"
	"github.com/freshmart/freshmart-api/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
	controllers.InitNotifier()
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.Use(session.Middleware(session.StoreFromEnv(initializers.DB)))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.ProductRoutes(server)
	routes.CartRoutes(server)
	routes.OrderRoutes(server)
	routes.AdminRoutes(server)

	server.Run()
}
