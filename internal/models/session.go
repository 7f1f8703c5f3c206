package models

import "time"

// Session is a coaching video-call booking between a user and a trainer.
// RoomID is assigned by the video transport on approval and is only ever
// present for approved and completed sessions.
type Session struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	TrainerID     int64     `json:"trainer_id"`
	ScheduledDate string    `json:"scheduled_date"`
	ScheduledTime string    `json:"scheduled_time"`
	Status        string    `json:"status"`
	RoomID        *string   `json:"room_id"`
	UserMessage   *string   `json:"user_message"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

const (
	SessionStatusPending   = "pending"
	SessionStatusApproved  = "approved"
	SessionStatusRejected  = "rejected"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)
