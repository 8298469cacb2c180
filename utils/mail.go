package utils

import (
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"

	"github.com/freshmart/freshmart-api/models"
)

// SendEmail renders the template and delivers it over SMTP using the
// credentials from the environment.
func SendEmail(emailTo string, emailSubject string, data any, templatePath string) error {
	body, err := RenderTemplate(templatePath, data)
	if err != nil {
		return err
	}

	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		os.Getenv("FROM_EMAIL"),
		emailSubject,
		body,
	)

	auth := smtp.PlainAuth(
		"",
		os.Getenv("FROM_EMAIL"),
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	err = smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, os.Getenv("FROM_EMAIL"), []string{emailTo}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// OrderMailer emails each new order to the fixed operator recipient.
type OrderMailer struct {
	Recipient    string
	TemplatePath string
}

func NewOrderMailer(recipient string) *OrderMailer {
	return &OrderMailer{
		Recipient:    recipient,
		TemplatePath: filepath.Join("templates", "order_email.html"),
	}
}

func (m *OrderMailer) OrderPlaced(order *models.Order) error {
	subject := fmt.Sprintf("New order #%d from FreshMart", order.ID)
	return SendEmail(m.Recipient, subject, order, m.TemplatePath)
}
