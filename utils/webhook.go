package utils

import (
	"fmt"
	"time"

	"github.com/freshmart/freshmart-api/models"
	"github.com/go-resty/resty/v2"
)

// OrderWebhook POSTs a summary of each new order to a configured URL, for
// shops that pipe notifications into chat or an ops dashboard instead of
// (or alongside) email.
type OrderWebhook struct {
	URL    string
	client *resty.Client
}

func NewOrderWebhook(url string) *OrderWebhook {
	return &OrderWebhook{
		URL:    url,
		client: resty.New().SetTimeout(10 * time.Second),
	}
}

func (w *OrderWebhook) OrderPlaced(order *models.Order) error {
	payload := map[string]any{
		"orderId":      order.ID,
		"total":        order.Total,
		"customerName": order.CustomerName,
		"phone":        order.Phone,
		"itemCount":    len(order.OrderItems),
		"placedAt":     order.CreatedAt,
	}

	resp, err := w.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(w.URL)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("webhook responded with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}
	return nil
}
