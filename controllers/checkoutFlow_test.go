package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/freshmart/freshmart-api/initializers"
	"github.com/freshmart/freshmart-api/middlewares"
	"github.com/freshmart/freshmart-api/models"
	"github.com/freshmart/freshmart-api/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}))
	initializers.DB = db

	server := gin.New()
	server.Use(session.Middleware(session.NewMemoryStore()))
	server.GET("/", GetHome)
	server.POST("/auth/signup", Signup)
	server.POST("/auth/login", Login)
	server.GET("/product", GetProducts)
	server.GET("/cart", GetCart)
	server.POST("/cart/:productId", AddToCart)
	server.PUT("/cart/:productId", UpdateCartItem)
	server.DELETE("/cart/:productId", RemoveFromCart)
	authed := server.Group("/", middlewares.RequireAuth())
	authed.GET("/checkout", GetCheckout)
	authed.POST("/checkout", Checkout)
	authed.GET("/order", GetMyOrders)
	authed.GET("/order/:orderId", GetOrderById)
	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	admin.GET("/orders", GetAllOrders)
	admin.PATCH("/orders/:orderId/deliver", CompleteOrder)
	return server
}

// client drives the server like a browser: one cookie jar, JSON bodies.
type client struct {
	t       *testing.T
	server  *gin.Engine
	cookies []*http.Cookie
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	c.server.ServeHTTP(w, req)
	if fresh := w.Result().Cookies(); len(fresh) > 0 {
		c.cookies = fresh
	}
	return w
}

func (c *client) decode(w *httptest.ResponseRecorder) map[string]any {
	c.t.Helper()
	var payload map[string]any
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func seedCatalog(t *testing.T) {
	t.Helper()
	products := []models.Product{
		{Name: "Tomatoes", Price: 8.50, ImageURL: "images/tomato.jpg"},
		{Name: "Cucumbers", Price: 12.00, ImageURL: "images/cucumber.jpg"},
	}
	require.NoError(t, initializers.DB.Create(&products).Error)
}

func signupAndLogin(t *testing.T, c *client, email string) {
	t.Helper()
	w := c.do(http.MethodPost, "/auth/signup", `{"name":"Jane Doe","email":"`+email+`","password":"supersecret"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	w = c.do(http.MethodPost, "/auth/login", `{"email":"`+email+`","password":"supersecret"}`)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutFlow(t *testing.T) {
	server := setupServer(t)
	seedCatalog(t)
	c := &client{t: t, server: server}

	signupAndLogin(t, c, "jane@example.com")

	w := c.do(http.MethodPost, "/cart/1", `{"quantity":3}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodPost, "/cart/2", `{"quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 37.50, c.decode(w)["totalPrice"])

	w = c.do(http.MethodPost, "/checkout", `{"name":"Jane Doe","address":"12 Main St","phone":"0700000000"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	payload := c.decode(w)
	orderID := payload["orderId"].(float64)
	assert.Equal(t, "/order/1", payload["redirect"])

	// Cart is empty once the order has committed.
	w = c.do(http.MethodGet, "/cart", "")
	assert.EqualValues(t, 0, c.decode(w)["totalPrice"])

	// The order persisted with the computed total.
	var order models.Order
	require.NoError(t, initializers.DB.Preload("OrderItems").First(&order, uint(orderID)).Error)
	assert.Equal(t, 37.50, order.Total)
	assert.Len(t, order.OrderItems, 2)
	assert.Equal(t, models.OrderStatusInProgress, order.Status)
}

func TestCheckoutValidationLeavesCartUntouched(t *testing.T) {
	server := setupServer(t)
	seedCatalog(t)
	c := &client{t: t, server: server}

	signupAndLogin(t, c, "jane@example.com")
	c.do(http.MethodPost, "/cart/1", `{"quantity":2}`)

	w := c.do(http.MethodPost, "/checkout", `{"name":"Jane Doe","address":"","phone":""}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	payload := c.decode(w)
	assert.EqualValues(t, 17.00, payload["totalPrice"])

	// Nothing mutated: no order rows, cart intact.
	var count int64
	initializers.DB.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
	w = c.do(http.MethodGet, "/cart", "")
	assert.EqualValues(t, 17.00, c.decode(w)["totalPrice"])
}

func TestCheckoutWithEmptyCartRedirects(t *testing.T) {
	server := setupServer(t)
	seedCatalog(t)
	c := &client{t: t, server: server}

	signupAndLogin(t, c, "jane@example.com")

	w := c.do(http.MethodPost, "/checkout", `{"name":"Jane Doe","address":"12 Main St","phone":"0700000000"}`)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/product", w.Header().Get("Location"))
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	server := setupServer(t)
	seedCatalog(t)
	c := &client{t: t, server: server}

	w := c.do(http.MethodPost, "/cart/1", `{"quantity":0}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodGet, "/cart", "")
	assert.EqualValues(t, 0, c.decode(w)["totalPrice"])

	// The warning shows up as a flash on the next home view.
	w = c.do(http.MethodGet, "/", "")
	payload := c.decode(w)
	messages := payload["messages"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, "warning", messages[0].(map[string]any)["level"])
}

func TestAdminRoutesDenyNonAdmins(t *testing.T) {
	server := setupServer(t)
	seedCatalog(t)
	c := &client{t: t, server: server}

	signupAndLogin(t, c, "jane@example.com")

	w := c.do(http.MethodGet, "/admin/orders", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Denied regardless of whether the target order exists.
	w = c.do(http.MethodPatch, "/admin/orders/999/deliver", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminCompletesOrder(t *testing.T) {
	server := setupServer(t)
	seedCatalog(t)
	c := &client{t: t, server: server}

	signupAndLogin(t, c, "jane@example.com")
	c.do(http.MethodPost, "/cart/1", `{"quantity":1}`)
	w := c.do(http.MethodPost, "/checkout", `{"name":"Jane Doe","address":"12 Main St","phone":"0700000000"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Promote the logged-in user; identity is re-read per request.
	require.NoError(t, initializers.DB.Model(&models.User{}).Where("email = ?", "jane@example.com").Update("is_admin", true).Error)

	w = c.do(http.MethodPatch, "/admin/orders/1/deliver", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodPatch, "/admin/orders/1/deliver", "")
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, initializers.DB.First(&order, 1).Error)
	assert.Equal(t, models.OrderStatusDelivered, order.Status)
}

func TestOrderOwnershipOverHTTP(t *testing.T) {
	server := setupServer(t)
	seedCatalog(t)

	owner := &client{t: t, server: server}
	signupAndLogin(t, owner, "owner@example.com")
	owner.do(http.MethodPost, "/cart/1", `{"quantity":1}`)
	w := owner.do(http.MethodPost, "/checkout", `{"name":"Jane Doe","address":"12 Main St","phone":"0700000000"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	stranger := &client{t: t, server: server}
	signupAndLogin(t, stranger, "stranger@example.com")

	w = stranger.do(http.MethodGet, "/order/1", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = stranger.do(http.MethodGet, "/order/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = owner.do(http.MethodGet, "/order/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
