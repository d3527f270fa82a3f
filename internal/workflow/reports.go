package workflow

import "velvessa/m/domain"

// Summary aggregates the dashboard figures from frozen order totals
// and the current catalog.
type Summary struct {
	TotalRevenue    domain.Money `json:"total_revenue"`
	TotalDue        domain.Money `json:"total_due"`
	InventoryValue  domain.Money `json:"inventory_value"`
	PotentialProfit domain.Money `json:"potential_profit"`
	OrderCount      int          `json:"order_count"`
	CustomerCount   int          `json:"customer_count"`
	StockItemCount  int          `json:"stock_item_count"`
}

func (s *Service) ReportSummary() Summary {
	orders := s.store.Orders()
	stock := s.store.Stock()

	var sum Summary
	for _, o := range orders {
		sum.TotalRevenue += o.TotalAmount
		sum.TotalDue += o.BalanceDue
	}
	for _, item := range stock {
		sum.InventoryValue += item.PurchasePrice.Mul(item.Quantity)
		sum.PotentialProfit += (item.SellingPrice - item.PurchasePrice).Mul(item.Quantity)
	}
	sum.OrderCount = len(orders)
	sum.CustomerCount = len(s.store.Customers())
	sum.StockItemCount = len(stock)
	return sum
}

// DueOrders lists orders that still carry a balance, most recent
// first (collection order).
func (s *Service) DueOrders() []domain.Order {
	var due []domain.Order
	for _, o := range s.store.Orders() {
		if o.PaymentStatus != domain.PaymentPaid {
			due = append(due, o)
		}
	}
	return due
}

// OutstandingBalance sums the balances of all unpaid orders.
func (s *Service) OutstandingBalance() domain.Money {
	var total domain.Money
	for _, o := range s.DueOrders() {
		total += o.BalanceDue
	}
	return total
}
