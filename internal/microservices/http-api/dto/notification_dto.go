package dto

import (
	"encoding/json"

	"profilehub/internal/microservices/http-api/models"
)

// NotificationResponse is one element of the active notifications list.
type NotificationResponse struct {
	NotificationType string          `json:"notification_type"`
	NotificationJSON json.RawMessage `json:"notification_json"`
}

// FromModelToNotificationResponses converts stored notifications, keeping their order.
// The result is never nil so an empty list encodes as [].
func FromModelToNotificationResponses(notifications []models.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, NotificationResponse{
			NotificationType: n.Type,
			NotificationJSON: n.Payload,
		})
	}
	return out
}
