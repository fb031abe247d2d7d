package models

import (
	"time"
)

// User represents a chat user with a coin balance
type User struct {
	ID             string
	Balance        int64
	LastDailyClaim time.Time // zero value means never claimed
	Session        *BlackjackSession
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
