package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/freshmart/freshmart-api/initializers"
	"github.com/freshmart/freshmart-api/services"
	"github.com/freshmart/freshmart-api/session"
	"github.com/gin-gonic/gin"
)

// GetAllOrders is the admin dashboard listing: every order, newest first.
func GetAllOrders(ctx *gin.Context) {
	orders, err := services.ListAllOrders(initializers.DB)
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// CompleteOrder marks an order delivered. Safe to call again on an
// already delivered order.
func CompleteOrder(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := services.MarkDelivered(initializers.DB, uint(orderId))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
			return
		}
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		return
	}

	message := fmt.Sprintf("Order #%d marked as delivered.", order.ID)
	if sess := session.FromContext(ctx); sess != nil {
		sess.AddFlash("success", message)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message, "order": order})
}
