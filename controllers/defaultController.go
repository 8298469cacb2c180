package controllers

import (
	"log"
	"net/http"

	"github.com/freshmart/freshmart-api/initializers"
	"github.com/freshmart/freshmart-api/models"
	"github.com/freshmart/freshmart-api/session"
	"github.com/gin-gonic/gin"
)

// GetHome is the storefront landing view: the full catalog plus any
// pending flash messages queued by earlier requests.
func GetHome(ctx *gin.Context) {
	var products []models.Product
	if result := initializers.DB.Order("id").Find(&products); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	var messages []session.Flash
	if sess := session.FromContext(ctx); sess != nil {
		messages = sess.ConsumeFlashes()
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"products": products,
		"messages": messages,
	})
}
