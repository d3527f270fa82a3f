package domain

// PaymentStatus is derived once from the balance at order creation.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPartial PaymentStatus = "Partial"
	PaymentDue     PaymentStatus = "Due"
)

// DeliveryStatus is progressed manually by staff; no ordering between
// states is enforced.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "Pending"
	DeliveryShipped   DeliveryStatus = "Shipped"
	DeliveryDelivered DeliveryStatus = "Delivered"
)

// OrderItem freezes the unit price as it was when the line was added
// to the cart. Later catalog price changes never touch past orders.
type OrderItem struct {
	StockItemID string `json:"stock_item_id"`
	Quantity    int64  `json:"quantity"`
	Price       Money  `json:"price"`
}

// Order keeps the invoice totals computed at creation time. They are
// never recomputed from current catalog prices on read.
type Order struct {
	ID             string         `json:"id"`
	CustomerID     string         `json:"customer_id"`
	Date           string         `json:"date"`
	Items          []OrderItem    `json:"items"`
	DeliveryCharge Money          `json:"delivery_charge"`
	Subtotal       Money          `json:"subtotal"`
	Tax            Money          `json:"tax"`
	TotalAmount    Money          `json:"total_amount"`
	AdvancePaid    Money          `json:"advance_paid"`
	BalanceDue     Money          `json:"balance_due"`
	PaymentStatus  PaymentStatus  `json:"payment_status"`
	DeliveryStatus DeliveryStatus `json:"delivery_status"`
}

// PaymentRecord is part of the persisted model but no workflow
// populates it yet; the collection stays empty until a payment
// capture flow is specified.
type PaymentRecord struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Amount  Money  `json:"amount"`
	Date    string `json:"date"`
	Method  string `json:"method"`
}
