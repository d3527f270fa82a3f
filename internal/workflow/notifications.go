package workflow

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"velvessa/m/domain"
)

// SendStatusNotification texts the order's customer a delivery status
// update. A customer without a phone number is silently skipped. The
// attempt is recorded in the SMS log and audited either way.
func (s *Service) SendStatusNotification(ctx context.Context, orderID string) error {
	order, ok := s.findOrder(orderID)
	if !ok {
		return ErrOrderNotFound
	}
	customer, ok := s.findCustomer(order.CustomerID)
	if !ok || customer.Phone == "" {
		return nil
	}

	message := fmt.Sprintf(
		"Velvessa Closet: Order #%s update! Your status is now: %s. Total: %s. Thank you for shopping!",
		order.ID, order.DeliveryStatus, order.TotalAmount)
	s.dispatchSMS(ctx, customer.Phone, message)
	s.AddLog("SMS Notification", fmt.Sprintf("Sent delivery update SMS for Order #%s", order.ID))
	return nil
}

// SendPaymentReminder texts the customer about an outstanding balance.
func (s *Service) SendPaymentReminder(ctx context.Context, orderID string) error {
	order, ok := s.findOrder(orderID)
	if !ok {
		return ErrOrderNotFound
	}
	customer, ok := s.findCustomer(order.CustomerID)
	if !ok || customer.Phone == "" {
		return nil
	}

	message := fmt.Sprintf(
		"Velvessa Closet Reminder: You have an outstanding balance of %s for Order #%s. Please complete your payment at your earliest convenience. Thank you!",
		order.BalanceDue, order.ID)
	s.dispatchSMS(ctx, customer.Phone, message)
	s.AddLog("Payment Reminder", fmt.Sprintf("Sent balance reminder SMS to %s", customer.Name))
	return nil
}

// SendAllReminders texts every customer with an order that is not
// fully paid. Dispatches run strictly one after another; there is no
// fan-out and the first failure stops the run.
func (s *Service) SendAllReminders(ctx context.Context) error {
	for _, order := range s.store.Orders() {
		if order.PaymentStatus == domain.PaymentPaid {
			continue
		}
		if err := s.SendPaymentReminder(ctx, order.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) dispatchSMS(ctx context.Context, recipient, message string) {
	status := domain.SMSSent
	if err := s.notifier.Send(ctx, recipient, message); err != nil {
		log.Printf("sms dispatch to %s failed: %v", recipient, err)
		status = domain.SMSFailed
	}
	entry := domain.SMSLog{
		ID:        "sms-" + uuid.NewString(),
		Recipient: recipient,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    status,
	}
	s.store.ReplaceSMSLogs(func(logs []domain.SMSLog) []domain.SMSLog {
		return append([]domain.SMSLog{entry}, logs...)
	})
}
