package domain

// BackendHealth is derived once from the startup probe. It never gates functionality.
type BackendHealth int

const (
	HealthUnknown BackendHealth = iota
	HealthHealthy
	HealthUnhealthy
)

func (h BackendHealth) String() string {
	switch h {
	case HealthHealthy:
		return "healthy"
	case HealthUnhealthy:
		return "offline"
	default:
		return "checking"
	}
}

// HealthStatus is the /api/health response body.
type HealthStatus struct {
	Status string `json:"status"`
	Region string `json:"region,omitempty"`
}

// CheckStatus indicates diagnose check outcomes.
type CheckStatus string

const (
	CheckOK    CheckStatus = "ok"
	CheckWarn  CheckStatus = "warn"
	CheckError CheckStatus = "error"
)

// DiagnosticCheck captures a single diagnostic result.
type DiagnosticCheck struct {
	Name    string
	Status  CheckStatus
	Details string
}

// DiagnosticReport aggregates checks.
type DiagnosticReport struct {
	Checks []DiagnosticCheck
}

// Failed reports whether any check errored.
func (r DiagnosticReport) Failed() bool {
	for _, c := range r.Checks {
		if c.Status == CheckError {
			return true
		}
	}
	return false
}
