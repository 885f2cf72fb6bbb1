// Package domain defines the core entities and value objects of the TAMS client.
//
// The domain layer holds no I/O. Identity and Role describe who is signed in, AuthDraft
// and Mode describe the pending sign-in attempt, and Outcome is the normalized result
// of every call made to the portal API.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the portal role confirmed by the server.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// ErrUnknownRole is returned when a role value is neither patient nor doctor.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a raw role value. Unknown values are rejected, never defaulted.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RolePatient:
		return RolePatient, nil
	case RoleDoctor:
		return RoleDoctor, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, raw)
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor
}

// Identity is the authenticated user as returned by the login endpoint.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// DisplayName is the greeting name used by the dashboards.
func (i Identity) DisplayName() string {
	if i.Role == RoleDoctor {
		return "Dr. " + i.Username
	}
	return i.Username
}
