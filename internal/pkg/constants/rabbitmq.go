package constants

// RabbitMQ delivery topology for notification jobs
const (
	QueueNotificationEmail = "notifications.email"
	QueueNotificationSMS   = "notifications.sms"

	RouteNotificationPrefix = "notification."
	RouteNotificationEmail  = RouteNotificationPrefix + "email"
	RouteNotificationSMS    = RouteNotificationPrefix + "sms"
)
