package domain

// AuditLog records a state-changing action attributed to the session
// user. The user name is a snapshot; renaming the user later does not
// rewrite history. Entries are append-only.
type AuditLog struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
}

// SMSStatus is the recorded outcome of a dispatch attempt.
type SMSStatus string

const (
	SMSSent   SMSStatus = "sent"
	SMSFailed SMSStatus = "failed"
)

type SMSLog struct {
	ID        string    `json:"id"`
	Recipient string    `json:"recipient"`
	Message   string    `json:"message"`
	Timestamp string    `json:"timestamp"`
	Status    SMSStatus `json:"status"`
}
