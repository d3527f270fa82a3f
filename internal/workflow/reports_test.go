package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velvessa/m/domain"
)

func TestReportSummary_SeededFigures(t *testing.T) {
	svc, _ := newTestService(t)

	sum := svc.ReportSummary()
	assert.Equal(t, domain.FromTaka(393), sum.TotalRevenue)
	assert.Equal(t, domain.FromTaka(293), sum.TotalDue)
	// 12 gowns at 150 purchase plus 3 turtlenecks at 45.
	assert.Equal(t, domain.FromTaka(1935), sum.InventoryValue)
	// Margin of 200 on each gown, 75 on each turtleneck.
	assert.Equal(t, domain.FromTaka(2625), sum.PotentialProfit)
	assert.Equal(t, 1, sum.OrderCount)
	assert.Equal(t, 2, sum.CustomerCount)
	assert.Equal(t, 2, sum.StockItemCount)
}

func TestLowStock(t *testing.T) {
	svc, _ := newTestService(t)

	low := svc.LowStock()
	require.Len(t, low, 1)
	assert.Equal(t, "s2", low[0].ID)
}

func TestDueOrdersAndOutstandingBalance(t *testing.T) {
	svc, _ := newTestService(t)
	loginAdmin(t, svc)

	due := svc.DueOrders()
	require.Len(t, due, 1)
	assert.Equal(t, "ord-1001", due[0].ID)
	assert.Equal(t, domain.FromTaka(293), svc.OutstandingBalance())

	// Paying off the only due order empties the due list.
	_, err := svc.CreateOrder(OrderInput{
		Items:       []CartLine{{StockItemID: "s2", Quantity: 1, UnitPrice: domain.FromTaka(120)}},
		CustomerID:  "c2",
		AdvancePaid: domain.Money(12960),
	})
	require.NoError(t, err)

	assert.Len(t, svc.DueOrders(), 1) // still only the seeded partial order
	assert.Equal(t, domain.FromTaka(293), svc.OutstandingBalance())
}
