package services

import "github.com/freshmart/freshmart-api/models"

// Notifier delivers a notification about a freshly placed order.
// Deliveries are best-effort: PlaceOrder logs and discards any failure so
// an unreachable mail server can never fail a checkout.
type Notifier interface {
	OrderPlaced(order *models.Order) error
}

// NopNotifier drops every notification. Used when no notification channel
// is configured, and in tests.
type NopNotifier struct{}

func (NopNotifier) OrderPlaced(*models.Order) error { return nil }

// MultiNotifier fans one order out to several channels and reports the
// first failure after attempting all of them.
type MultiNotifier []Notifier

func (m MultiNotifier) OrderPlaced(order *models.Order) error {
	var firstErr error
	for _, n := range m {
		if err := n.OrderPlaced(order); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
