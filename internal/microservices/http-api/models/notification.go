package models

import (
	"encoding/json"
	"time"
)

type Notification struct {
	ID        int64           `json:"id"`
	RecordID  int64           `json:"rid"`               // owner: users.id
	Type      string          `json:"notification_type"` // set by the producer, opaque here
	Payload   json.RawMessage `json:"json"`
	Visited   bool            `json:"visited"`
	Timestamp time.Time       `json:"timestamp"`
}
