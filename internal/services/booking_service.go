package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/himanshu123g/fitlife-plus/internal/models"
	"github.com/himanshu123g/fitlife-plus/internal/policy"
	"github.com/himanshu123g/fitlife-plus/internal/repository"
)

var (
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrInvalidInput           = errors.New("invalid input")
	ErrTrainerNotFound        = errors.New("trainer not found")
	ErrMembershipRequired     = errors.New("membership upgrade required")
)

type sessionStore interface {
	Create(ctx context.Context, input repository.CreateSessionInput) (*models.Session, error)
	GetByID(ctx context.Context, sessionID int64) (*models.Session, error)
	List(ctx context.Context, filter repository.SessionListFilter) ([]models.Session, error)
	UpdateStatusIfCurrent(ctx context.Context, sessionID int64, currentStatus, nextStatus string) (*models.Session, error)
	ApproveWithRoom(ctx context.Context, sessionID int64, roomID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID int64) error
}

type membershipReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Membership, error)
}

type userReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type roomProvider interface {
	CreateRoom(ctx context.Context) (string, error)
	JoinToken(roomID, identity, role string) (string, error)
}

type sessionNotifier interface {
	PublishSessionUpdate(userID, trainerID, sessionID int64, status string)
}

// BookingService is the session-booking state machine. Every transition is a
// compare-and-set against the stored status, so a second actor landing after
// a transition gets a state-conflict error instead of a duplicate effect.
type BookingService struct {
	sessions    sessionStore
	memberships membershipReader
	users       userReader
	rooms       roomProvider
	notifier    sessionNotifier
}

func NewBookingService(
	sessions sessionStore,
	memberships membershipReader,
	users userReader,
	rooms roomProvider,
	notifier sessionNotifier,
) *BookingService {
	return &BookingService{
		sessions:    sessions,
		memberships: memberships,
		users:       users,
		rooms:       rooms,
		notifier:    notifier,
	}
}

type RequestSessionInput struct {
	TrainerID     int64
	ScheduledDate string
	ScheduledTime string
	UserMessage   *string
}

func (s *BookingService) RequestSession(
	ctx context.Context,
	userID int64,
	input RequestSessionInput,
) (*models.Session, error) {
	if input.TrainerID <= 0 || input.TrainerID == userID {
		return nil, ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(input.ScheduledDate)); err != nil {
		return nil, ErrInvalidInput
	}
	if _, err := time.Parse("15:04", strings.TrimSpace(input.ScheduledTime)); err != nil {
		return nil, ErrInvalidInput
	}
	if input.UserMessage != nil && strings.TrimSpace(*input.UserMessage) == "" {
		return nil, ErrInvalidInput
	}

	plan := policy.PlanFree
	membership, err := s.memberships.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if membership != nil {
		plan = policy.ParsePlan(membership.Plan)
	}
	if !policy.IsFeatureEnabled(plan, policy.FeatureVideoCoaching) {
		return nil, ErrMembershipRequired
	}

	trainer, err := s.users.GetByID(ctx, input.TrainerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	if trainer.Role != "trainer" {
		return nil, ErrTrainerNotFound
	}

	session, err := s.sessions.Create(ctx, repository.CreateSessionInput{
		UserID:        userID,
		TrainerID:     input.TrainerID,
		ScheduledDate: strings.TrimSpace(input.ScheduledDate),
		ScheduledTime: strings.TrimSpace(input.ScheduledTime),
		UserMessage:   input.UserMessage,
	})
	if err != nil {
		return nil, err
	}

	s.notify(session)
	return session, nil
}

func (s *BookingService) ListSessions(
	ctx context.Context,
	actorID int64,
	role string,
	status string,
) ([]models.Session, error) {
	return s.sessions.List(ctx, repository.SessionListFilter{
		ActorID: actorID,
		Role:    role,
		Status:  strings.TrimSpace(status),
	})
}

func (s *BookingService) GetSession(
	ctx context.Context,
	actorID int64,
	role string,
	sessionID int64,
) (*models.Session, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !canAccessSession(role, actorID, session) {
		return nil, ErrForbidden
	}
	return session, nil
}

func (s *BookingService) UpdateStatus(
	ctx context.Context,
	actorID int64,
	role string,
	sessionID int64,
	requestedStatus string,
) (*models.Session, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	nextStatus, err := normalizeRequestedStatus(requestedStatus)
	if err != nil {
		return nil, err
	}
	if err := validateStatusTransition(role, actorID, session, nextStatus); err != nil {
		return nil, err
	}

	var updated *models.Session
	if nextStatus == models.SessionStatusApproved {
		roomID, err := s.rooms.CreateRoom(ctx)
		if err != nil {
			return nil, err
		}
		updated, err = s.sessions.ApproveWithRoom(ctx, sessionID, roomID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrInvalidStateTransition
			}
			return nil, err
		}
	} else {
		updated, err = s.sessions.UpdateStatusIfCurrent(ctx, sessionID, session.Status, nextStatus)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrInvalidStateTransition
			}
			return nil, err
		}
	}

	s.notify(updated)
	return updated, nil
}

type JoinInfo struct {
	RoomID string `json:"room_id"`
	Token  string `json:"token"`
}

// JoinSession hands a participant the room id and a signed join credential.
// It is a read action, not a transition; the session stays approved.
func (s *BookingService) JoinSession(
	ctx context.Context,
	actorID int64,
	role string,
	sessionID int64,
) (*JoinInfo, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	isParticipant := (role == "user" && session.UserID == actorID) ||
		(role == "trainer" && session.TrainerID == actorID)
	if !isParticipant {
		return nil, ErrForbidden
	}
	if session.Status != models.SessionStatusApproved || session.RoomID == nil {
		return nil, ErrInvalidStateTransition
	}

	token, err := s.rooms.JoinToken(*session.RoomID, strconv.FormatInt(actorID, 10), role)
	if err != nil {
		return nil, err
	}

	return &JoinInfo{RoomID: *session.RoomID, Token: token}, nil
}

// DeleteSession is the admin housekeeping hard delete. It sits outside the
// state machine on purpose: no status guard.
func (s *BookingService) DeleteSession(ctx context.Context, role string, sessionID int64) error {
	if role != "admin" {
		return ErrForbidden
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *BookingService) notify(session *models.Session) {
	if s.notifier == nil || session == nil {
		return
	}
	s.notifier.PublishSessionUpdate(session.UserID, session.TrainerID, session.ID, session.Status)
}

func canAccessSession(role string, actorID int64, session *models.Session) bool {
	switch role {
	case "admin":
		return true
	case "user":
		return session.UserID == actorID
	case "trainer":
		return session.TrainerID == actorID
	default:
		return false
	}
}

func normalizeRequestedStatus(status string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approve", "approved":
		return models.SessionStatusApproved, nil
	case "reject", "rejected":
		return models.SessionStatusRejected, nil
	case "complete", "completed":
		return models.SessionStatusCompleted, nil
	case "cancel", "cancelled", "canceled":
		return models.SessionStatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// validateStatusTransition enforces the actor/state matrix: admins move
// sessions out of pending (approve/reject) and close approved ones
// (complete); the owning user may cancel only while pending; trainers have
// no transitions at all, they only join.
func validateStatusTransition(
	role string,
	actorID int64,
	session *models.Session,
	nextStatus string,
) error {
	switch role {
	case "user":
		if session.UserID != actorID || nextStatus != models.SessionStatusCancelled {
			return ErrForbidden
		}
		if session.Status != models.SessionStatusPending {
			return ErrInvalidStateTransition
		}
		return nil
	case "admin":
		switch nextStatus {
		case models.SessionStatusApproved, models.SessionStatusRejected:
			if session.Status != models.SessionStatusPending {
				return ErrInvalidStateTransition
			}
		case models.SessionStatusCompleted:
			if session.Status != models.SessionStatusApproved {
				return ErrInvalidStateTransition
			}
		default:
			return ErrForbidden
		}
		return nil
	default:
		return ErrForbidden
	}
}
