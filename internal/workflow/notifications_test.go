package workflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velvessa/m/domain"
)

func TestSendStatusNotification(t *testing.T) {
	svc, st := newTestService(t)
	loginAdmin(t, svc)

	require.NoError(t, svc.SendStatusNotification(context.Background(), "ord-1001"))

	logs := st.SMSLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, "555-0102", logs[0].Recipient)
	assert.Equal(t, domain.SMSSent, logs[0].Status)
	assert.Contains(t, logs[0].Message, "Order #ord-1001")
	assert.Contains(t, logs[0].Message, "Delivered")
	assert.Contains(t, logs[0].Message, "৳393")

	assert.Equal(t, 1, auditCount(st, "SMS Notification"))
}

func TestSendStatusNotification_UnknownOrder(t *testing.T) {
	svc, _ := newTestService(t)
	loginAdmin(t, svc)

	err := svc.SendStatusNotification(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestSendStatusNotification_MissingPhoneIsNoop(t *testing.T) {
	svc, st := newTestService(t)
	loginAdmin(t, svc)

	customer := svc.AddCustomer(domain.Customer{Name: "No Phone Nadia"})
	order, err := svc.CreateOrder(OrderInput{
		Items:      []CartLine{{StockItemID: "s2", Quantity: 1, UnitPrice: domain.FromTaka(120)}},
		CustomerID: customer.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.SendStatusNotification(context.Background(), order.ID))
	assert.Empty(t, st.SMSLogs())
	assert.Equal(t, 0, auditCount(st, "SMS Notification"))
}

func TestSendPaymentReminder(t *testing.T) {
	svc, st := newTestService(t)
	loginAdmin(t, svc)

	require.NoError(t, svc.SendPaymentReminder(context.Background(), "ord-1001"))

	logs := st.SMSLogs()
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0].Message, "outstanding balance of ৳293")
	assert.Equal(t, 1, auditCount(st, "Payment Reminder"))
}

func TestSendAllReminders_SkipsPaidOrders(t *testing.T) {
	svc, st := newTestService(t)
	loginAdmin(t, svc)

	// A fully paid order must not trigger a reminder; the seeded
	// partial order must.
	_, err := svc.CreateOrder(OrderInput{
		Items:       []CartLine{{StockItemID: "s2", Quantity: 1, UnitPrice: domain.FromTaka(120)}},
		CustomerID:  "c2",
		AdvancePaid: domain.Money(12960),
	})
	require.NoError(t, err)

	require.NoError(t, svc.SendAllReminders(context.Background()))

	logs := st.SMSLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, "555-0102", logs[0].Recipient)
}
