// Package workflow implements the console operations: session and
// access control, order transactions, catalog and customer upkeep,
// audit logging and notification dispatch. All state flows through
// the store container; nothing here holds collections of its own.
package workflow

import (
	"velvessa/m/domain"
	"velvessa/m/internal/notify"
	"velvessa/m/internal/store"
)

// Service bundles the state container and the notification transport
// behind the console's operations.
type Service struct {
	store    *store.Store
	notifier notify.Notifier
}

func New(st *store.Store, n notify.Notifier) *Service {
	return &Service{store: st, notifier: n}
}

// Store exposes the container for read-only listings.
func (s *Service) Store() *store.Store {
	return s.store
}

func (s *Service) findOrder(orderID string) (domain.Order, bool) {
	for _, o := range s.store.Orders() {
		if o.ID == orderID {
			return o, true
		}
	}
	return domain.Order{}, false
}

func (s *Service) findCustomer(customerID string) (domain.Customer, bool) {
	for _, c := range s.store.Customers() {
		if c.ID == customerID {
			return c, true
		}
	}
	return domain.Customer{}, false
}

// CustomerName resolves a customer id for display. Orders can outlive
// their customer record, so a missing id reads as "Unknown".
func (s *Service) CustomerName(customerID string) string {
	if c, ok := s.findCustomer(customerID); ok {
		return c.Name
	}
	return "Unknown"
}
