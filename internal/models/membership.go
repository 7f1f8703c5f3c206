package models

import "time"

// Membership is the per-user plan binding. ValidTill is nil for the free
// plan. An expired ValidTill does not demote the plan automatically; there
// is no background sweep.
type Membership struct {
	UserID    int64      `json:"user_id"`
	Plan      string     `json:"plan"`
	Since     time.Time  `json:"since"`
	ValidTill *time.Time `json:"valid_till"`
	UpdatedAt time.Time  `json:"updated_at"`
}
