// Package seed provides the boutique's first-run fixtures: a default
// approved administrator plus a small sample catalog so the console is
// usable before any real data is entered.
package seed

import "velvessa/m/domain"

// Users returns the default team directory. The admin account logs in
// with admin/admin and is the only approved user out of the box.
func Users() []domain.User {
	return []domain.User{
		{
			ID:           "admin-001",
			Name:         "Velvessa Admin",
			Email:        "admin",
			Password:     "admin",
			Role:         domain.RoleAdmin,
			Status:       domain.StatusApproved,
			ProfileImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=100&auto=format&fit=crop",
		},
	}
}

func Stock() []domain.StockItem {
	return []domain.StockItem{
		{
			ID:                "s1",
			SKU:               "VC-DRS-001",
			Name:              "Silk Evening Gown",
			Category:          domain.CategoryDress,
			Size:              "M",
			Color:             "Midnight Blue",
			Quantity:          12,
			PurchasePrice:     domain.FromTaka(150),
			SellingPrice:      domain.FromTaka(350),
			Supplier:          "Elite Silks Co",
			DateAdded:         "2024-01-15",
			LowStockThreshold: 5,
		},
		{
			ID:                "s2",
			SKU:               "VC-TOP-023",
			Name:              "Cashmere Turtleneck",
			Category:          domain.CategoryTop,
			Size:              "S",
			Color:             "Cream",
			Quantity:          3,
			PurchasePrice:     domain.FromTaka(45),
			SellingPrice:      domain.FromTaka(120),
			Supplier:          "Nordic Knits",
			DateAdded:         "2024-02-01",
			LowStockThreshold: 5,
		},
	}
}

func Customers() []domain.Customer {
	return []domain.Customer{
		{
			ID:      "c1",
			Name:    "Sarah Jenkins",
			Phone:   "555-0102",
			Address: "123 Maple Ave, Springfield",
			Email:   "sarah.j@example.com",
		},
		{
			ID:      "c2",
			Name:    "Michael Rossi",
			Phone:   "555-0199",
			Address: "456 Oak Dr, Riverside",
			Email:   "mrossi@work.com",
		},
	}
}

// Orders returns one worked example: a partially paid, delivered gown
// order whose frozen totals match the pricing rules.
func Orders() []domain.Order {
	return []domain.Order{
		{
			ID:         "ord-1001",
			CustomerID: "c1",
			Date:       "2024-03-20",
			Items: []domain.OrderItem{
				{StockItemID: "s1", Quantity: 1, Price: domain.FromTaka(350)},
			},
			DeliveryCharge: domain.FromTaka(15),
			Subtotal:       domain.FromTaka(350),
			Tax:            domain.FromTaka(28),
			TotalAmount:    domain.FromTaka(393),
			AdvancePaid:    domain.FromTaka(100),
			BalanceDue:     domain.FromTaka(293),
			PaymentStatus:  domain.PaymentPartial,
			DeliveryStatus: domain.DeliveryDelivered,
		},
	}
}
