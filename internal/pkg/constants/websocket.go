package constants

// WebSocket event types
const (
	EventError        = "error"
	EventPing         = "ping"
	EventPong         = "pong"
	EventNotification = "notification"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
)

// ErrorSeverity decides how much of an error is shown to the client
type ErrorSeverity int

const (
	ErrorSeverityClient ErrorSeverity = iota
	ErrorSeverityServer
	ErrorSeveritySecurity
)
