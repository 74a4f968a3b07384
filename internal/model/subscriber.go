package model

// Subscriber is the outbound payload for the email-marketing API.
type Subscriber struct {
	Email  string            `json:"email"`
	Fields map[string]string `json:"fields,omitempty"`
	Groups []string          `json:"groups,omitempty"`
	Status string            `json:"status,omitempty"`
}

// SyncResult reports the outcome of a subscriber submission. Failure is a
// value, not an error: the caller logs it and moves on, it never gates the
// transition to results.
type SyncResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
