package services

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/freshmart/freshmart-api/models"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
	ErrNotAllowed    = errors.New("not allowed to view this order")
)

// PlaceOrder turns the visitor's cart into a durable order inside a single
// transaction: header, line items and final total all commit together, so
// a crash can never leave a half-finished order behind. Each line captures
// the product's price at this moment; cart entries whose product has been
// deleted since they were added are skipped. The notification afterwards
// is best-effort and never affects the committed order. Clearing the cart
// is the caller's job, and only once this returns successfully.
func PlaceOrder(db *gorm.DB, notifier Notifier, user *models.User, cart models.Cart, info models.CheckoutData) (*models.Order, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	ids := make([]string, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	order := models.Order{
		UserID:       user.ID,
		Total:        0,
		CustomerName: info.Name,
		Address:      info.Address,
		Phone:        info.Phone,
		Status:       models.OrderStatusInProgress,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		var total float64
		for _, id := range ids {
			var product models.Product
			err := tx.First(&product, "id = ?", id).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("product lookup: %w", err)
			}

			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  cart[id],
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("create order item: %w", err)
			}
			order.OrderItems = append(order.OrderItems, item)
			total += product.Price * float64(cart[id])
		}

		if len(order.OrderItems) == 0 {
			// Every entry pointed at a deleted product.
			return ErrEmptyCart
		}

		if err := tx.Model(&order).Update("total", total).Error; err != nil {
			return fmt.Errorf("finalize total: %w", err)
		}
		order.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	if notifier != nil {
		if err := notifier.OrderPlaced(&order); err != nil {
			log.Printf("Failed to send notification for order %d: %v", order.ID, err)
		}
	}

	return &order, nil
}

// ListOrdersForUser returns the user's own orders, newest first.
func ListOrdersForUser(db *gorm.DB, userID uint) ([]models.Order, error) {
	var orders []models.Order
	result := db.Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders)
	if result.Error != nil {
		return nil, fmt.Errorf("list orders: %w", result.Error)
	}
	return orders, nil
}

// ListAllOrders returns every order, newest first. Callers gate this
// behind the admin check.
func ListAllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	result := db.Preload("OrderItems").Order("created_at desc").Find(&orders)
	if result.Error != nil {
		return nil, fmt.Errorf("list orders: %w", result.Error)
	}
	return orders, nil
}

// GetOrder loads one order for the requester. Non-owners are denied
// unless they are admin.
func GetOrder(db *gorm.DB, orderID uint, requester *models.User) (*models.Order, error) {
	var order models.Order
	err := db.Preload("OrderItems").First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("order lookup: %w", err)
	}
	if order.UserID != requester.ID && !requester.IsAdmin {
		return nil, ErrNotAllowed
	}
	return &order, nil
}

// MarkDelivered moves the order to its terminal status. Re-invoking on an
// already delivered order re-sets the same value, no error.
func MarkDelivered(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	err := db.First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("order lookup: %w", err)
	}
	if err := db.Model(&order).Update("status", models.OrderStatusDelivered).Error; err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	order.Status = models.OrderStatusDelivered
	return &order, nil
}
