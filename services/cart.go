package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/freshmart/freshmart-api/models"
	"gorm.io/gorm"
)

// CartLine is one cart entry joined against the live catalog.
type CartLine struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Total    float64        `json:"total"`
}

// MaterializeCart resolves every cart entry against the current catalog
// and returns the lines plus the running total. Entries whose product no
// longer exists are dropped silently; that is how deleted products vanish
// from an in-progress cart.
func MaterializeCart(db *gorm.DB, cart models.Cart) ([]CartLine, float64, error) {
	ids := make([]string, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := make([]CartLine, 0, len(ids))
	var total float64
	for _, id := range ids {
		var product models.Product
		err := db.First(&product, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, 0, fmt.Errorf("product lookup: %w", err)
		}
		quantity := cart[id]
		lineTotal := product.Price * float64(quantity)
		lines = append(lines, CartLine{Product: product, Quantity: quantity, Total: lineTotal})
		total += lineTotal
	}
	return lines, total, nil
}
