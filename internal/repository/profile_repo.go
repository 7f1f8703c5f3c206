package repository

import (
	"context"

	"github.com/himanshu123g/fitlife-plus/internal/models"
)

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

type CreateBMIRecordInput struct {
	UserID   int64
	HeightCM float64
	WeightKG float64
	BMI      float64
	Category string
}

func (r *ProfileRepository) CreateBMIRecord(ctx context.Context, input CreateBMIRecordInput) (*models.BMIRecord, error) {
	query := `
		INSERT INTO bmi_records (user_id, height_cm, weight_kg, bmi, category)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, height_cm, weight_kg, bmi, category, created_at
	`
	var record models.BMIRecord
	err := r.db.QueryRow(
		ctx,
		query,
		input.UserID,
		input.HeightCM,
		input.WeightKG,
		input.BMI,
		input.Category,
	).Scan(
		&record.ID,
		&record.UserID,
		&record.HeightCM,
		&record.WeightKG,
		&record.BMI,
		&record.Category,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *ProfileRepository) ListBMIRecords(ctx context.Context, userID int64) ([]models.BMIRecord, error) {
	query := `
		SELECT id, user_id, height_cm, weight_kg, bmi, category, created_at
		FROM bmi_records
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]models.BMIRecord, 0)
	for rows.Next() {
		var record models.BMIRecord
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.HeightCM,
			&record.WeightKG,
			&record.BMI,
			&record.Category,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *ProfileRepository) CreateHydrationLog(ctx context.Context, userID int64, amountML int) (*models.HydrationLog, error) {
	query := `
		INSERT INTO hydration_logs (user_id, amount_ml)
		VALUES ($1, $2)
		RETURNING id, user_id, amount_ml, created_at
	`
	var entry models.HydrationLog
	err := r.db.QueryRow(ctx, query, userID, amountML).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.AmountML,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ProfileRepository) ListHydrationToday(ctx context.Context, userID int64) ([]models.HydrationLog, error) {
	query := `
		SELECT id, user_id, amount_ml, created_at
		FROM hydration_logs
		WHERE user_id = $1 AND created_at >= date_trunc('day', NOW())
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.HydrationLog, 0)
	for rows.Next() {
		var entry models.HydrationLog
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.AmountML, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
