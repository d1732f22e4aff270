package domain

// NotificationOutcome is the transient result of a confirmation email
// dispatch. It is surfaced in the intake response but never persisted, and
// a failed outcome never fails the request that produced it.
type NotificationOutcome struct {
	Sent      bool
	MessageID string
	Err       string
}
