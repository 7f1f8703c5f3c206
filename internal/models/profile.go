package models

import "time"

type BMIRecord struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	HeightCM  float64   `json:"height_cm"`
	WeightKG  float64   `json:"weight_kg"`
	BMI       float64   `json:"bmi"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type HydrationLog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	AmountML  int       `json:"amount_ml"`
	CreatedAt time.Time `json:"created_at"`
}
