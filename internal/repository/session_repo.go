package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/himanshu123g/fitlife-plus/internal/models"
)

type CreateSessionInput struct {
	UserID        int64
	TrainerID     int64
	ScheduledDate string
	ScheduledTime string
	UserMessage   *string
}

type SessionListFilter struct {
	ActorID int64
	Role    string
	Status  string
}

type SessionRepository struct {
	db DBTX
}

func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = "id, user_id, trainer_id, scheduled_date, scheduled_time, status, room_id, user_message, created_at, updated_at"

func scanSession(row interface{ Scan(dest ...any) error }, session *models.Session) error {
	return row.Scan(
		&session.ID,
		&session.UserID,
		&session.TrainerID,
		&session.ScheduledDate,
		&session.ScheduledTime,
		&session.Status,
		&session.RoomID,
		&session.UserMessage,
		&session.CreatedAt,
		&session.UpdatedAt,
	)
}

func (r *SessionRepository) Create(
	ctx context.Context,
	input CreateSessionInput,
) (*models.Session, error) {
	query := fmt.Sprintf(`
		INSERT INTO sessions (user_id, trainer_id, scheduled_date, scheduled_time, status, user_message)
		VALUES ($1, $2, $3, $4, 'pending', $5)
		RETURNING %s
	`, sessionColumns)

	var session models.Session
	err := scanSession(r.db.QueryRow(
		ctx,
		query,
		input.UserID,
		input.TrainerID,
		input.ScheduledDate,
		input.ScheduledTime,
		input.UserMessage,
	), &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID int64) (*models.Session, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions
		WHERE id = $1
	`, sessionColumns)

	var session models.Session
	if err := scanSession(r.db.QueryRow(ctx, query, sessionID), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) List(
	ctx context.Context,
	filter SessionListFilter,
) ([]models.Session, error) {
	args := []any{}
	whereParts := []string{}

	switch filter.Role {
	case "trainer":
		args = append(args, filter.ActorID)
		whereParts = append(whereParts, fmt.Sprintf("trainer_id = $%d", len(args)))
	case "admin":
		// admins see every session
	default:
		args = append(args, filter.ActorID)
		whereParts = append(whereParts, fmt.Sprintf("user_id = $%d", len(args)))
	}

	if status := strings.TrimSpace(filter.Status); status != "" {
		args = append(args, status)
		whereParts = append(whereParts, fmt.Sprintf("status = $%d", len(args)))
	}

	where := "TRUE"
	if len(whereParts) > 0 {
		where = strings.Join(whereParts, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM sessions
		WHERE %s
		ORDER BY scheduled_date ASC, scheduled_time ASC, id ASC
	`, sessionColumns, where)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		var session models.Session
		if err := scanSession(rows, &session); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// UpdateStatusIfCurrent performs a compare-and-set status transition. A miss
// (row gone, or status no longer currentStatus) surfaces as pgx.ErrNoRows.
func (r *SessionRepository) UpdateStatusIfCurrent(
	ctx context.Context,
	sessionID int64,
	currentStatus string,
	nextStatus string,
) (*models.Session, error) {
	query := fmt.Sprintf(`
		UPDATE sessions
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING %s
	`, sessionColumns)

	var session models.Session
	if err := scanSession(r.db.QueryRow(ctx, query, sessionID, currentStatus, nextStatus), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ApproveWithRoom moves a pending session to approved and assigns the room
// in the same statement, so a room id can never exist on a non-approved row.
func (r *SessionRepository) ApproveWithRoom(
	ctx context.Context,
	sessionID int64,
	roomID string,
) (*models.Session, error) {
	query := fmt.Sprintf(`
		UPDATE sessions
		SET status = 'approved', room_id = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING %s
	`, sessionColumns)

	var session models.Session
	if err := scanSession(r.db.QueryRow(ctx, query, sessionID, roomID), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID int64) error {
	query := `
		DELETE FROM sessions
		WHERE id = $1
		RETURNING id
	`
	var deletedID int64
	return r.db.QueryRow(ctx, query, sessionID).Scan(&deletedID)
}
