package workflow

import (
	"time"

	"github.com/google/uuid"

	"velvessa/m/domain"
)

// AddStockItem registers a new catalog entry and audits it.
func (s *Service) AddStockItem(item domain.StockItem) domain.StockItem {
	item.ID = "s-" + uuid.NewString()
	if item.DateAdded == "" {
		item.DateAdded = time.Now().Format("2006-01-02")
	}
	s.store.ReplaceStock(func(stock []domain.StockItem) []domain.StockItem {
		return append(stock, item)
	})
	s.AddLog("Add Stock", "Added new item: "+item.Name)
	return item
}

// UpdateStockItem overwrites the catalog entry matching item.ID.
func (s *Service) UpdateStockItem(item domain.StockItem) error {
	found := false
	s.store.ReplaceStock(func(stock []domain.StockItem) []domain.StockItem {
		for i := range stock {
			if stock[i].ID == item.ID {
				stock[i] = item
				found = true
			}
		}
		return stock
	})
	if !found {
		return ErrStockItemNotFound
	}
	s.AddLog("Update Stock", "Updated item: "+item.Name)
	return nil
}

// DeleteStockItem removes a catalog entry. Orders that referenced it
// keep their frozen lines; no referential check is made.
func (s *Service) DeleteStockItem(id string) error {
	var (
		name  string
		found bool
	)
	for _, item := range s.store.Stock() {
		if item.ID == id {
			name = item.Name
			found = true
		}
	}
	if !found {
		return ErrStockItemNotFound
	}
	s.store.ReplaceStock(func(stock []domain.StockItem) []domain.StockItem {
		kept := stock[:0]
		for _, item := range stock {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		return kept
	})
	s.AddLog("Delete Stock", "Deleted item: "+name)
	return nil
}

// LowStock lists items at or below their reorder threshold.
func (s *Service) LowStock() []domain.StockItem {
	var low []domain.StockItem
	for _, item := range s.store.Stock() {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low
}
