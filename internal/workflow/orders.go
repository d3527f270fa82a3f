package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"velvessa/m/domain"
)

// CartLine is one entry of the order cart. UnitPrice is captured when
// the line is added, so later catalog edits cannot change the sale.
type CartLine struct {
	StockItemID string       `json:"stock_item_id"`
	Quantity    int64        `json:"quantity"`
	UnitPrice   domain.Money `json:"unit_price"`
}

// OrderInput describes a checkout. Either CustomerID points at an
// existing customer or the Customer* fields describe a new one to be
// registered on the spot.
type OrderInput struct {
	Items           []CartLine   `json:"items"`
	CustomerID      string       `json:"customer_id"`
	CustomerName    string       `json:"customer_name"`
	CustomerPhone   string       `json:"customer_phone"`
	CustomerAddress string       `json:"customer_address"`
	DeliveryCharge  domain.Money `json:"delivery_charge"`
	AdvancePaid     domain.Money `json:"advance_paid"`
}

// CreateOrder runs the checkout as one logical unit: resolve (or
// register) the customer, freeze the invoice totals, decrement sold
// stock, prepend the order and audit the whole thing.
//
// Stock is not guarded against going negative here; the cart view is
// expected to cap quantities before confirmation, and a stale cart
// confirming after stock moved simply drives the count below zero.
func (s *Service) CreateOrder(in OrderInput) (domain.Order, error) {
	if len(in.Items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	customerID := in.CustomerID
	customerName := in.CustomerName
	if customerID == "" {
		if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.CustomerPhone) == "" {
			return domain.Order{}, ErrCustomerRequired
		}
		customer := domain.Customer{
			ID:      "c-" + uuid.NewString(),
			Name:    in.CustomerName,
			Phone:   in.CustomerPhone,
			Address: in.CustomerAddress,
		}
		s.store.ReplaceCustomers(func(customers []domain.Customer) []domain.Customer {
			return append(customers, customer)
		})
		customerID = customer.ID
		s.AddLog("Customer Auto-Register", fmt.Sprintf("Registered %s during order flow", customer.Name))
	} else if customerName == "" {
		customerName = s.CustomerName(customerID)
	}

	items := make([]domain.OrderItem, 0, len(in.Items))
	var subtotal domain.Money
	for _, line := range in.Items {
		subtotal += line.UnitPrice.Mul(line.Quantity)
		items = append(items, domain.OrderItem{
			StockItemID: line.StockItemID,
			Quantity:    line.Quantity,
			Price:       line.UnitPrice,
		})
	}
	tax := subtotal.Tax()
	total := subtotal + tax + in.DeliveryCharge
	balance := total - in.AdvancePaid

	order := domain.Order{
		ID:             newOrderID(),
		CustomerID:     customerID,
		Date:           time.Now().Format("2006-01-02"),
		Items:          items,
		DeliveryCharge: in.DeliveryCharge,
		Subtotal:       subtotal,
		Tax:            tax,
		TotalAmount:    total,
		AdvancePaid:    in.AdvancePaid,
		BalanceDue:     balance,
		PaymentStatus:  paymentStatusFor(balance, in.AdvancePaid),
		DeliveryStatus: domain.DeliveryPending,
	}

	s.store.ReplaceStock(func(stock []domain.StockItem) []domain.StockItem {
		for i := range stock {
			for _, line := range in.Items {
				if stock[i].ID == line.StockItemID {
					stock[i].Quantity -= line.Quantity
				}
			}
		}
		return stock
	})
	s.store.ReplaceOrders(func(orders []domain.Order) []domain.Order {
		return append([]domain.Order{order}, orders...)
	})
	s.AddLog("Order Creation", fmt.Sprintf("Created Order #%s for %s", order.ID, customerName))
	return order, nil
}

// UpdateDeliveryStatus progresses an order's delivery state. Staff set
// it manually; no transition ordering is enforced.
func (s *Service) UpdateDeliveryStatus(orderID string, status domain.DeliveryStatus) error {
	found := false
	s.store.ReplaceOrders(func(orders []domain.Order) []domain.Order {
		for i := range orders {
			if orders[i].ID == orderID {
				orders[i].DeliveryStatus = status
				found = true
			}
		}
		return orders
	})
	if !found {
		return ErrOrderNotFound
	}
	s.AddLog("Delivery Update", fmt.Sprintf("Order #%s marked %s", orderID, status))
	return nil
}

// OrdersForCustomer returns the purchase history for one customer,
// most recent first.
func (s *Service) OrdersForCustomer(customerID string) []domain.Order {
	var history []domain.Order
	for _, o := range s.store.Orders() {
		if o.CustomerID == customerID {
			history = append(history, o)
		}
	}
	return history
}

func paymentStatusFor(balance, advance domain.Money) domain.PaymentStatus {
	switch {
	case balance <= 0:
		return domain.PaymentPaid
	case advance > 0:
		return domain.PaymentPartial
	default:
		return domain.PaymentDue
	}
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
