package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/freshmart/freshmart-api/initializers"
	"github.com/freshmart/freshmart-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts lists the seeded catalog. The catalog is read-only; there
// is no create or update surface.
func GetProducts(ctx *gin.Context) {
	var products []models.Product
	if result := initializers.DB.Order("id").Find(&products); result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}

func GetProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse product id")
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch product")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"product": product})
}
