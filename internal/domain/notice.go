package domain

// Severity of a toast.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Toast is a short-lived status message.
type Toast struct {
	ID       int64    `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"type"`
}

// Notification is a short-lived titled notice.
type Notification struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon,omitempty"`
}
