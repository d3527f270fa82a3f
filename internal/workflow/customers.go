package workflow

import (
	"github.com/google/uuid"

	"velvessa/m/domain"
)

// AddCustomer registers a customer entered by staff (as opposed to the
// implicit registration the order flow performs).
func (s *Service) AddCustomer(customer domain.Customer) domain.Customer {
	customer.ID = "c-" + uuid.NewString()
	s.store.ReplaceCustomers(func(customers []domain.Customer) []domain.Customer {
		return append(customers, customer)
	})
	s.AddLog("Add Customer", "Registered new customer: "+customer.Name)
	return customer
}

// UpdateCustomer overwrites the record matching customer.ID.
func (s *Service) UpdateCustomer(customer domain.Customer) error {
	found := false
	s.store.ReplaceCustomers(func(customers []domain.Customer) []domain.Customer {
		for i := range customers {
			if customers[i].ID == customer.ID {
				customers[i] = customer
				found = true
			}
		}
		return customers
	})
	if !found {
		return ErrCustomerNotFound
	}
	s.AddLog("Update Customer", "Updated details for: "+customer.Name)
	return nil
}

// DeleteCustomer removes a customer record. Orders keep pointing at
// the dead id and display as "Unknown" from then on.
func (s *Service) DeleteCustomer(id string) error {
	var (
		name  string
		found bool
	)
	for _, c := range s.store.Customers() {
		if c.ID == id {
			name = c.Name
			found = true
		}
	}
	if !found {
		return ErrCustomerNotFound
	}
	s.store.ReplaceCustomers(func(customers []domain.Customer) []domain.Customer {
		kept := customers[:0]
		for _, c := range customers {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		return kept
	})
	s.AddLog("Delete Customer", "Deleted record for: "+name)
	return nil
}
