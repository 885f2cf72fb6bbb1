package domain

import "time"

// CallRecord is one journaled portal call. It never carries credentials,
// request payloads, or the signed-in identity.
type CallRecord struct {
	Timestamp   time.Time   `json:"timestamp"`
	Operation   string      `json:"operation"`
	Method      string      `json:"method"`
	Path        string      `json:"path"`
	Success     bool        `json:"success"`
	FailureKind FailureKind `json:"failure_kind,omitempty"`
	StatusCode  int         `json:"status_code"`
	Message     string      `json:"message,omitempty"`
	DurationMS  int64       `json:"duration_ms"`
	RequestID   string      `json:"request_id"`
}
