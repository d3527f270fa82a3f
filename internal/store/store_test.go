package store

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"velvessa/m/domain"
	"velvessa/m/internal/migrations"
)

func newTestKV(t *testing.T) *KV {
	t.Helper()
	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	migrations.Run(db)
	return NewKV(db)
}

func TestKV_RoundTrip(t *testing.T) {
	kv := newTestKV(t)

	users := []domain.User{{
		ID: "u-1", Name: "Amira Chowdhury", Email: "amira@velvessa.test",
		Role: domain.RoleSales, Status: domain.StatusApproved,
		Password: "secret", Phone: "555-0111",
	}}
	stock := []domain.StockItem{{
		ID: "s-1", SKU: "VC-BTM-009", Name: "Pleated Midi Skirt",
		Category: domain.CategoryBottom, Size: "L", Color: "Charcoal",
		Quantity: 7, PurchasePrice: domain.FromTaka(60),
		SellingPrice: domain.FromTaka(140), Supplier: "Loom House",
		DateAdded: "2024-04-02", LowStockThreshold: 3,
	}}
	customers := []domain.Customer{{
		ID: "c-1", Name: "Nadia Karim", Phone: "555-0150",
		Address: "9 Lake Rd", Email: "nadia@example.com",
	}}
	orders := []domain.Order{{
		ID: "ORD-AB12CD34", CustomerID: "c-1", Date: "2024-05-01",
		Items:          []domain.OrderItem{{StockItemID: "s-1", Quantity: 2, Price: domain.FromTaka(140)}},
		DeliveryCharge: domain.FromTaka(10), Subtotal: domain.FromTaka(280),
		Tax: domain.Money(2240), TotalAmount: domain.Money(31240),
		AdvancePaid: domain.FromTaka(50), BalanceDue: domain.Money(26240),
		PaymentStatus: domain.PaymentPartial, DeliveryStatus: domain.DeliveryPending,
	}}
	payments := []domain.PaymentRecord{{
		ID: "p-1", OrderID: "ORD-AB12CD34", Amount: domain.FromTaka(50),
		Date: "2024-05-01", Method: "cash",
	}}
	audits := []domain.AuditLog{{
		ID: "a-1", UserID: "u-1", UserName: "Amira Chowdhury",
		Action: "Login", Details: "Logged into the system",
		Timestamp: "2024-05-01T10:00:00Z",
	}}
	sms := []domain.SMSLog{{
		ID: "sms-1", Recipient: "555-0150", Message: "hello",
		Timestamp: "2024-05-01T10:05:00Z", Status: domain.SMSSent,
	}}

	cases := []struct {
		key   string
		store func() (any, any)
	}{
		{"t_users", func() (any, any) { var got []domain.User; return users, &got }},
		{"t_stock", func() (any, any) { var got []domain.StockItem; return stock, &got }},
		{"t_customers", func() (any, any) { var got []domain.Customer; return customers, &got }},
		{"t_orders", func() (any, any) { var got []domain.Order; return orders, &got }},
		{"t_payments", func() (any, any) { var got []domain.PaymentRecord; return payments, &got }},
		{"t_audits", func() (any, any) { var got []domain.AuditLog; return audits, &got }},
		{"t_sms", func() (any, any) { var got []domain.SMSLog; return sms, &got }},
	}
	for _, tc := range cases {
		value, dest := tc.store()
		require.NoError(t, kv.Put(tc.key, value))
		ok, err := kv.Get(tc.key, dest)
		require.NoError(t, err)
		require.True(t, ok, "key %s should exist after Put", tc.key)
	}

	var gotUsers []domain.User
	_, err := kv.Get("t_users", &gotUsers)
	require.NoError(t, err)
	assert.Equal(t, users, gotUsers)

	var gotOrders []domain.Order
	_, err = kv.Get("t_orders", &gotOrders)
	require.NoError(t, err)
	assert.Equal(t, orders, gotOrders)
}

func TestKV_GetMissingKey(t *testing.T) {
	kv := newTestKV(t)

	var dest []domain.User
	ok, err := kv.Get("never_written", &dest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKV_PutOverwrites(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.Put("k", []string{"a"}))
	require.NoError(t, kv.Put("k", []string{"b", "c"}))

	var got []string
	ok, err := kv.Get("k", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "c"}, got)
}

func TestOpen_SeedsDefaults(t *testing.T) {
	kv := newTestKV(t)
	s := Open(kv)

	users := s.Users()
	require.Len(t, users, 1)
	assert.Equal(t, "admin-001", users[0].ID)
	assert.Equal(t, domain.StatusApproved, users[0].Status)

	assert.Len(t, s.Stock(), 2)
	assert.Len(t, s.Customers(), 2)
	assert.Len(t, s.Orders(), 1)
	assert.Empty(t, s.Payments())
	assert.Empty(t, s.AuditLogs())
	assert.Empty(t, s.SMSLogs())
	assert.Nil(t, s.CurrentUser())
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	kv := newTestKV(t)
	s := Open(kv)

	extra := domain.User{ID: "u-2", Name: "Rafi Islam", Email: "rafi@velvessa.test", Status: domain.StatusPending}
	s.ReplaceUsers(func(users []domain.User) []domain.User {
		return append(users, extra)
	})
	admin := s.Users()[0]
	s.SetCurrentUser(&admin)

	reopened := Open(kv)
	require.Len(t, reopened.Users(), 2)
	assert.Equal(t, "u-2", reopened.Users()[1].ID)
	require.NotNil(t, reopened.CurrentUser())
	assert.Equal(t, "admin-001", reopened.CurrentUser().ID)
}

func TestSetCurrentUser_NilClearsSession(t *testing.T) {
	kv := newTestKV(t)
	s := Open(kv)

	admin := s.Users()[0]
	s.SetCurrentUser(&admin)
	s.SetCurrentUser(nil)
	assert.Nil(t, s.CurrentUser())

	reopened := Open(kv)
	assert.Nil(t, reopened.CurrentUser())
}

func TestReplace_AppliesTransformation(t *testing.T) {
	kv := newTestKV(t)
	s := Open(kv)

	s.ReplaceStock(func(stock []domain.StockItem) []domain.StockItem {
		for i := range stock {
			if stock[i].ID == "s1" {
				stock[i].Quantity -= 5
			}
		}
		return stock
	})

	for _, item := range s.Stock() {
		if item.ID == "s1" {
			assert.Equal(t, int64(7), item.Quantity)
		}
		if item.ID == "s2" {
			assert.Equal(t, int64(3), item.Quantity)
		}
	}
}
