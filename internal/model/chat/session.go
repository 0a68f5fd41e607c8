package chat

import "time"

// Session captures a transient anonymous conversation bound to a coach profile.
type Session struct {
	ID          string    `json:"id"`
	ProfileID   string    `json:"profileId"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}
