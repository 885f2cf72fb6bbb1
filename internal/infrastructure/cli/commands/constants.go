package commands

// Error messages
const (
	ErrConfigLoaderUnavailable = "config loader unavailable"
	ErrDiagnosticsUnavailable  = "diagnostics service unavailable"
	ErrHistoryStoreUnavailable = "history store unavailable (history.enabled is false)"
	ErrInvalidRetainDays       = "--days must be > 0"
	ErrInvalidLimit            = "--limit must be >= 0"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoHistoryRecorded        = "No history recorded yet."
	MsgHistoryCleared           = "History cleared."
	MsgAborted                  = "Aborted."
)

// Spinner labels
const (
	LabelProbing   = "Checking backend"
	LabelSigningIn = "Signing in"
	LabelSending   = "Sending"
)
