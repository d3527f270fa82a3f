package workflow

import (
	"time"

	"github.com/google/uuid"

	"velvessa/m/domain"
)

// AddLog appends an audit entry attributed to the current session
// user. Without an active session nothing is recorded. Entries are
// prepended so the most recent action reads first.
func (s *Service) AddLog(action, details string) {
	user := s.store.CurrentUser()
	if user == nil {
		return
	}
	entry := domain.AuditLog{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserName:  user.Name,
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	s.store.ReplaceAuditLogs(func(logs []domain.AuditLog) []domain.AuditLog {
		return append([]domain.AuditLog{entry}, logs...)
	})
}
