package repository

import (
	"context"
	"time"

	"github.com/himanshu123g/fitlife-plus/internal/models"
)

type MembershipRepository struct {
	db DBTX
}

func NewMembershipRepository(db DBTX) *MembershipRepository {
	return &MembershipRepository{db: db}
}

const membershipColumns = "user_id, plan, since, valid_till, updated_at"

// CreateFree inserts the initial free binding for a new account.
func (r *MembershipRepository) CreateFree(ctx context.Context, userID int64) (*models.Membership, error) {
	query := `
		INSERT INTO memberships (user_id, plan, since)
		VALUES ($1, 'free', NOW())
		RETURNING ` + membershipColumns

	var membership models.Membership
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&membership.UserID,
		&membership.Plan,
		&membership.Since,
		&membership.ValidTill,
		&membership.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *MembershipRepository) GetByUserID(ctx context.Context, userID int64) (*models.Membership, error) {
	query := `
		SELECT ` + membershipColumns + `
		FROM memberships
		WHERE user_id = $1
	`
	var membership models.Membership
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&membership.UserID,
		&membership.Plan,
		&membership.Since,
		&membership.ValidTill,
		&membership.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// SetPlan rewrites the binding. A nil validTill clears the paid period,
// which is how downgrades land back on the free plan.
func (r *MembershipRepository) SetPlan(
	ctx context.Context,
	userID int64,
	plan string,
	since time.Time,
	validTill *time.Time,
) (*models.Membership, error) {
	query := `
		UPDATE memberships
		SET plan = $2, since = $3, valid_till = $4, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + membershipColumns

	var membership models.Membership
	err := r.db.QueryRow(ctx, query, userID, plan, since, validTill).Scan(
		&membership.UserID,
		&membership.Plan,
		&membership.Since,
		&membership.ValidTill,
		&membership.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &membership, nil
}
