package models

import "github.com/google/uuid"

type AccessState string

const (
	AccessChecking AccessState = "checking"
	AccessDenied   AccessState = "denied"
	AccessGranted  AccessState = "granted"
)

const (
	LoginRoute = "/auth"
	HomeRoute  = "/"

	AccessDeniedNotice = "Access Denied: You don't have admin privileges."
)

// AccessDecision is the outcome of an admin-panel access check.
type AccessDecision struct {
	State    AccessState `json:"state"`
	UserID   *uuid.UUID  `json:"user_id,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
	Notice   string      `json:"notice,omitempty"`
}

func (d AccessDecision) Granted() bool {
	return d.State == AccessGranted
}
