package domain

// Category buckets the boutique catalog.
type Category string

const (
	CategoryDress       Category = "Dress"
	CategoryTop         Category = "Top"
	CategoryBottom      Category = "Bottom"
	CategoryAccessories Category = "Accessories"
)

type StockItem struct {
	ID                string   `json:"id"`
	SKU               string   `json:"sku"`
	Name              string   `json:"name"`
	Category          Category `json:"category"`
	Size              string   `json:"size"`
	Color             string   `json:"color,omitempty"`
	Quantity          int64    `json:"quantity"`
	PurchasePrice     Money    `json:"purchase_price"`
	SellingPrice      Money    `json:"selling_price"`
	Supplier          string   `json:"supplier,omitempty"`
	DateAdded         string   `json:"date_added"`
	LowStockThreshold int64    `json:"low_stock_threshold"`
}

// LowStock reports whether the on-hand quantity has reached the
// reorder threshold. Advisory only; sales are never blocked by it.
func (s StockItem) LowStock() bool {
	return s.Quantity <= s.LowStockThreshold
}
