package events

// EventType names a published event.
type EventType string

const (
	UserRegistered EventType = "user.registered"
	UserLoggedIn   EventType = "user.logged_in"
)

// Event is the unit of publication.
type Event struct {
	Type    EventType
	Payload any
}

// AuthEventPayload accompanies auth lifecycle events. It carries no
// credential material.
type AuthEventPayload struct {
	UserID string
	Email  string
}
