package models

// Severity of a user-facing notification
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

// Notification is a message surfaced to the storefront user
type Notification struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}
