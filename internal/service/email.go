package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendContractConfirmation(ctx context.Context, email, customerName, bikeName, contractNumber string, start, end time.Time) error {
	subject := fmt.Sprintf("Rental contract %s confirmed", contractNumber)
	body := fmt.Sprintf("Hello %s,\n\nYour rental of %s is confirmed from %s to %s.\n\nSee you at the shop!",
		customerName, bikeName, start.Format("2006-01-02 15:04"), end.Format("2006-01-02 15:04"))
	return s.send(email, customerName, subject, body)
}

func (s *emailService) SendReturnReceipt(ctx context.Context, email, customerName, bikeName, contractNumber string, totalPrice float64) error {
	subject := fmt.Sprintf("Rental contract %s returned", contractNumber)
	body := fmt.Sprintf("Hello %s,\n\nThanks for returning %s. The rental total comes to %.2f; your invoice is on its way.",
		customerName, bikeName, totalPrice)
	return s.send(email, customerName, subject, body)
}

func (s *emailService) SendReturnReminder(ctx context.Context, email, customerName, bikeName, contractNumber string, endDate time.Time) error {
	subject := fmt.Sprintf("Rental contract %s ends soon", contractNumber)
	body := fmt.Sprintf("Hello %s,\n\nA reminder that your rental of %s ends on %s. Please bring it back to the shop by then.",
		customerName, bikeName, endDate.Format("2006-01-02 15:04"))
	return s.send(email, customerName, subject, body)
}
