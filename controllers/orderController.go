package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/freshmart/freshmart-api/initializers"
	"github.com/freshmart/freshmart-api/middlewares"
	"github.com/freshmart/freshmart-api/models"
	"github.com/freshmart/freshmart-api/services"
	"github.com/freshmart/freshmart-api/session"
	"github.com/freshmart/freshmart-api/utils"
	"github.com/gin-gonic/gin"
)

// orderNotifier is assembled once at startup from the environment.
// Delivery failures are logged and swallowed inside PlaceOrder, so a dead
// mail server never fails a checkout.
var orderNotifier services.Notifier = services.NopNotifier{}

// InitNotifier wires up the configured notification channels.
func InitNotifier() {
	var channels services.MultiNotifier
	if recipient := os.Getenv("ORDER_NOTIFY_EMAIL"); recipient != "" {
		channels = append(channels, utils.NewOrderMailer(recipient))
	}
	if url := os.Getenv("ORDER_NOTIFY_WEBHOOK"); url != "" {
		channels = append(channels, utils.NewOrderWebhook(url))
	}
	if len(channels) == 0 {
		log.Println("No order notification channel configured.")
		return
	}
	orderNotifier = channels
}

// GetCheckout returns the checkout view data: a fresh cart snapshot and
// the customer's name prefilled from their account.
func GetCheckout(ctx *gin.Context) {
	user, _ := middlewares.CurrentUser(ctx)
	sess := session.FromContext(ctx)

	cart := cartFromSession(sess)
	if cart.IsEmpty() {
		ctx.Redirect(http.StatusSeeOther, "/product")
		return
	}

	lines, total, err := services.MaterializeCart(initializers.DB, cart)
	if err != nil {
		log.Println("Cart materialization error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to load cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"form":       models.CheckoutData{Name: user.Name},
		"cartItems":  lines,
		"totalPrice": total,
	})
}

// Checkout converts the session cart into a durable order. The cart is
// cleared only after the order has committed; a crash in between leaves a
// stale cart, never a lost order.
func Checkout(ctx *gin.Context) {
	user, _ := middlewares.CurrentUser(ctx)
	sess := session.FromContext(ctx)

	cart := cartFromSession(sess)
	if cart.IsEmpty() {
		ctx.Redirect(http.StatusSeeOther, "/product")
		return
	}

	var info models.CheckoutData
	if err := ctx.ShouldBindJSON(&info); err != nil {
		// Redisplay with a freshly recomputed snapshot, nothing mutated.
		lines, total, mErr := services.MaterializeCart(initializers.DB, cart)
		if mErr != nil {
			log.Println("Cart materialization error:", mErr)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to load cart")
			return
		}
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
			"message":    "Name, address and phone are all required.",
			"cartItems":  lines,
			"totalPrice": total,
		})
		return
	}

	order, err := services.PlaceOrder(initializers.DB, orderNotifier, &user, cart, info)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			// Every cart entry pointed at a product that no longer exists.
			sess.Delete("cart")
			ctx.Redirect(http.StatusSeeOther, "/product")
			return
		}
		log.Println("Order placement error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to place order")
		return
	}

	sess.Delete("cart")
	sess.AddFlash("success", fmt.Sprintf("Order #%d placed successfully.", order.ID))

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  fmt.Sprintf("Order #%d placed successfully.", order.ID),
		"orderId":  order.ID,
		"order":    order,
		"redirect": fmt.Sprintf("/order/%d", order.ID),
	})
}

// GetMyOrders lists the caller's own orders, newest first.
func GetMyOrders(ctx *gin.Context) {
	user, _ := middlewares.CurrentUser(ctx)

	orders, err := services.ListOrdersForUser(initializers.DB, user.ID)
	if err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch orders.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetOrderById serves the order-confirmation view. Owners and admins
// only.
func GetOrderById(ctx *gin.Context) {
	user, _ := middlewares.CurrentUser(ctx)

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := services.GetOrder(initializers.DB, uint(orderId), &user)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		case errors.Is(err, services.ErrNotAllowed):
			sendJSONResponse(ctx, http.StatusForbidden, gin.H{
				"message":  "You are not allowed to view this order.",
				"redirect": "/",
			})
		default:
			log.Println(err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch order.")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}
