package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/freshmart/freshmart-api/initializers"
	"github.com/freshmart/freshmart-api/models"
	"github.com/freshmart/freshmart-api/services"
	"github.com/freshmart/freshmart-api/session"
	"github.com/gin-gonic/gin"
)

const (
	msgInvalidQuantity = "Please enter a valid quantity."
	msgCartUpdated     = "Cart updated."
	msgItemRemoved     = "Item removed from cart."
)

type quantityBody struct {
	Quantity int `json:"quantity"`
}

func cartFromSession(sess *session.Session) models.Cart {
	value, _ := sess.Get("cart")
	return models.CartFromSession(value)
}

func saveCart(sess *session.Session, cart models.Cart) {
	sess.Set("cart", cart)
}

// AddToCart increments the quantity for a product. A missing body counts
// as one unit, matching the storefront's plus-one button.
func AddToCart(ctx *gin.Context) {
	sess := session.FromContext(ctx)

	body := quantityBody{Quantity: 1}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&body); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}
	}

	cart := cartFromSession(sess)
	if !cart.Add(ctx.Param("productId"), body.Quantity) {
		sess.AddFlash("warning", msgInvalidQuantity)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidQuantity)
		return
	}
	saveCart(sess, cart)

	message := fmt.Sprintf("Added %d to the cart.", body.Quantity)
	sess.AddFlash("success", message)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message, "cart": cart})
}

// UpdateCartItem overwrites the quantity; zero or less removes the entry.
func UpdateCartItem(ctx *gin.Context) {
	sess := session.FromContext(ctx)

	var body quantityBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	cart := cartFromSession(sess)
	cart.Set(ctx.Param("productId"), body.Quantity)
	saveCart(sess, cart)

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgCartUpdated, "cart": cart})
}

func RemoveFromCart(ctx *gin.Context) {
	sess := session.FromContext(ctx)

	cart := cartFromSession(sess)
	cart.Remove(ctx.Param("productId"))
	saveCart(sess, cart)

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgItemRemoved, "cart": cart})
}

// GetCart joins the cart against the live catalog. Entries pointing at
// products that have since been deleted simply do not show up.
func GetCart(ctx *gin.Context) {
	sess := session.FromContext(ctx)

	cart := cartFromSession(sess)
	lines, total, err := services.MaterializeCart(initializers.DB, cart)
	if err != nil {
		log.Println("Cart materialization error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to load cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"cartItems":  lines,
		"totalPrice": total,
	})
}
