// Package store owns the console's authoritative in-memory state and
// mirrors every change into the durable key-value store. Persistence
// is best effort: a failed write is logged and in-memory state still
// advances.
package store

import (
	"log"
	"slices"
	"sync"

	"velvessa/m/domain"
	"velvessa/m/internal/seed"
)

// Snapshot keys, one full collection per key.
const (
	keyCurrentUser = "v_user"
	keyUsers       = "v_all_users"
	keyStock       = "v_stock"
	keyCustomers   = "v_customers"
	keyOrders      = "v_orders"
	keyPayments    = "v_payments"
	keyAuditLogs   = "v_logs"
	keySMSLogs     = "v_sms_logs"
)

// Store is the single owner of all collections and the current
// session user. Workflows mutate state only through its Replace
// operations; each one applies atomically and persists immediately.
type Store struct {
	mu sync.Mutex
	kv *KV

	currentUser *domain.User
	users       []domain.User
	stock       []domain.StockItem
	customers   []domain.Customer
	orders      []domain.Order
	payments    []domain.PaymentRecord
	auditLogs   []domain.AuditLog
	smsLogs     []domain.SMSLog
}

// Open loads every collection from the durable store, seeding the
// boutique defaults for any key that has never been written.
func Open(kv *KV) *Store {
	s := &Store{kv: kv}
	s.users = loadOr(kv, keyUsers, seed.Users())
	s.stock = loadOr(kv, keyStock, seed.Stock())
	s.customers = loadOr(kv, keyCustomers, seed.Customers())
	s.orders = loadOr(kv, keyOrders, seed.Orders())
	s.payments = loadOr(kv, keyPayments, []domain.PaymentRecord{})
	s.auditLogs = loadOr(kv, keyAuditLogs, []domain.AuditLog{})
	s.smsLogs = loadOr(kv, keySMSLogs, []domain.SMSLog{})
	s.currentUser = loadOr[*domain.User](kv, keyCurrentUser, nil)
	return s
}

func loadOr[T any](kv *KV, key string, fallback T) T {
	var v T
	ok, err := kv.Get(key, &v)
	if err != nil {
		log.Printf("unable to load snapshot %s: %v", key, err)
		return fallback
	}
	if !ok {
		return fallback
	}
	return v
}

func (s *Store) persist(key string, value any) {
	if err := s.kv.Put(key, value); err != nil {
		log.Printf("unable to persist snapshot %s: %v", key, err)
	}
}

// CurrentUser returns a copy of the session user, or nil when nobody
// is logged in.
func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// SetCurrentUser replaces the session user. Pass nil to log out.
func (s *Store) SetCurrentUser(u *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u != nil {
		copied := *u
		u = &copied
	}
	s.currentUser = u
	s.persist(keyCurrentUser, u)
}

func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.users)
}

func (s *Store) ReplaceUsers(fn func([]domain.User) []domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = fn(s.users)
	s.persist(keyUsers, s.users)
}

func (s *Store) Stock() []domain.StockItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.stock)
}

func (s *Store) ReplaceStock(fn func([]domain.StockItem) []domain.StockItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock = fn(s.stock)
	s.persist(keyStock, s.stock)
}

func (s *Store) Customers() []domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.customers)
}

func (s *Store) ReplaceCustomers(fn func([]domain.Customer) []domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = fn(s.customers)
	s.persist(keyCustomers, s.customers)
}

func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.orders)
}

func (s *Store) ReplaceOrders(fn func([]domain.Order) []domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = fn(s.orders)
	s.persist(keyOrders, s.orders)
}

func (s *Store) Payments() []domain.PaymentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.payments)
}

func (s *Store) ReplacePayments(fn func([]domain.PaymentRecord) []domain.PaymentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = fn(s.payments)
	s.persist(keyPayments, s.payments)
}

func (s *Store) AuditLogs() []domain.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.auditLogs)
}

func (s *Store) ReplaceAuditLogs(fn func([]domain.AuditLog) []domain.AuditLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auditLogs = fn(s.auditLogs)
	s.persist(keyAuditLogs, s.auditLogs)
}

func (s *Store) SMSLogs() []domain.SMSLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.smsLogs)
}

func (s *Store) ReplaceSMSLogs(fn func([]domain.SMSLog) []domain.SMSLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.smsLogs = fn(s.smsLogs)
	s.persist(keySMSLogs, s.smsLogs)
}
