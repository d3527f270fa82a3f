package workflow

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"velvessa/m/domain"
	"velvessa/m/internal/migrations"
	"velvessa/m/internal/notify"
	"velvessa/m/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	db, err := sqlx.Connect("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	migrations.Run(db)

	st := store.Open(store.NewKV(db))
	return New(st, notify.Simulated{Delay: time.Millisecond}), st
}

func loginAdmin(t *testing.T, svc *Service) domain.User {
	t.Helper()
	user, err := svc.Login("admin", "admin")
	require.NoError(t, err)
	return user
}

func auditCount(st *store.Store, action string) int {
	count := 0
	for _, entry := range st.AuditLogs() {
		if entry.Action == action {
			count++
		}
	}
	return count
}

func stockQuantity(t *testing.T, st *store.Store, id string) int64 {
	t.Helper()
	for _, item := range st.Stock() {
		if item.ID == id {
			return item.Quantity
		}
	}
	t.Fatalf("stock item %s not found", id)
	return 0
}
