package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// API defaults
const (
	// DefaultAPIBaseURL is where the portal backend listens in development
	DefaultAPIBaseURL = "http://localhost:5000"
	// DefaultRequestTimeout bounds every portal call; expiry counts as offline
	DefaultRequestTimeout = 5 * time.Second
	// DefaultLogLevel keeps the CLI quiet unless asked
	DefaultLogLevel = "warn"
)

// History constants
const (
	// DefaultHistoryLimit is the default number of journal records to display
	DefaultHistoryLimit = 20
	// DefaultHistoryRetainDays is the default number of days to retain the journal
	DefaultHistoryRetainDays = 30
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)

// User-facing notices
const (
	MsgOffline         = "offline"
	MsgRequestFailed   = "request failed"
	MsgRegistered      = "Registration successful! Please login."
	MsgVitalsSaved     = "Vitals saved"
	MsgSymptomsShared  = "Symptoms shared"
	MsgPrescriptionSet = "Prescription issued"
)
