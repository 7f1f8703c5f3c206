package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/himanshu123g/fitlife-plus/internal/models"
	"github.com/himanshu123g/fitlife-plus/internal/payments"
	"github.com/himanshu123g/fitlife-plus/internal/policy"
	"github.com/himanshu123g/fitlife-plus/internal/repository"
)

var (
	ErrPlanNotPurchasable  = errors.New("plan not purchasable")
	ErrSignatureMismatch   = errors.New("payment signature mismatch")
	ErrOrderAlreadyHandled = errors.New("order already handled")
	ErrNoPaidPlan          = errors.New("no paid plan to renew")
)

const membershipPeriod = 30 * 24 * time.Hour

type orderStore interface {
	Create(ctx context.Context, input repository.CreateOrderInput) (*models.PaymentOrder, error)
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*models.PaymentOrder, error)
	MarkPaidIfCreated(ctx context.Context, orderID int64) (*models.PaymentOrder, error)
}

type membershipStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Membership, error)
	SetPlan(ctx context.Context, userID int64, plan string, since time.Time, validTill *time.Time) (*models.Membership, error)
}

// MembershipService runs the upgrade handshake with the payment gateway and
// owns every mutation of the plan binding. Verification failure returns
// before any write: a failed payment can never half-upgrade a binding.
type MembershipService struct {
	orders      orderStore
	memberships membershipStore
	gateway     payments.Gateway
	logger      *zap.Logger
}

func NewMembershipService(
	orders orderStore,
	memberships membershipStore,
	gateway payments.Gateway,
	logger *zap.Logger,
) *MembershipService {
	return &MembershipService{
		orders:      orders,
		memberships: memberships,
		gateway:     gateway,
		logger:      logger,
	}
}

func (s *MembershipService) Get(ctx context.Context, userID int64) (*models.Membership, error) {
	return s.memberships.GetByUserID(ctx, userID)
}

type OrderDetails struct {
	OrderID     string `json:"order_id"`
	AmountPaise int64  `json:"amount_paise"`
	Currency    string `json:"currency"`
	Plan        string `json:"plan"`
	KeyID       string `json:"key_id"`
}

func (s *MembershipService) CreateOrder(
	ctx context.Context,
	userID int64,
	planName string,
) (*OrderDetails, error) {
	plan := policy.ParsePlan(planName)
	amount, ok := policy.AmountPaise(plan)
	if !ok {
		return nil, ErrPlanNotPurchasable
	}

	receipt := "fitlife-" + uuid.NewString()
	order, err := s.gateway.CreateOrder(ctx, amount, "INR", receipt)
	if err != nil {
		s.logger.Error("gateway order creation failed",
			zap.Int64("user_id", userID),
			zap.String("plan", plan.String()),
			zap.Error(err),
		)
		return nil, err
	}

	if _, err := s.orders.Create(ctx, repository.CreateOrderInput{
		UserID:         userID,
		Plan:           plan.String(),
		AmountPaise:    amount,
		Currency:       order.Currency,
		GatewayOrderID: order.ID,
		Receipt:        receipt,
	}); err != nil {
		return nil, err
	}

	return &OrderDetails{
		OrderID:     order.ID,
		AmountPaise: amount,
		Currency:    order.Currency,
		Plan:        plan.String(),
		KeyID:       s.gateway.KeyID(),
	}, nil
}

func (s *MembershipService) VerifyPayment(
	ctx context.Context,
	userID int64,
	gatewayOrderID string,
	paymentID string,
	signature string,
) (*models.Membership, error) {
	order, err := s.orders.GetByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrForbidden
	}
	if order.Status != models.OrderStatusCreated {
		return nil, ErrOrderAlreadyHandled
	}

	if !s.gateway.VerifySignature(gatewayOrderID, paymentID, signature) {
		s.logger.Warn("payment signature rejected",
			zap.Int64("user_id", userID),
			zap.String("gateway_order_id", gatewayOrderID),
		)
		return nil, ErrSignatureMismatch
	}

	if _, err := s.orders.MarkPaidIfCreated(ctx, order.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderAlreadyHandled
		}
		return nil, err
	}

	now := time.Now().UTC()
	validTill := now.Add(membershipPeriod)
	membership, err := s.memberships.SetPlan(ctx, userID, order.Plan, now, &validTill)
	if err != nil {
		return nil, err
	}

	s.logger.Info("membership upgraded",
		zap.Int64("user_id", userID),
		zap.String("plan", order.Plan),
		zap.Time("valid_till", validTill),
	)
	return membership, nil
}

// Downgrade is an explicit user action with no gateway involvement.
func (s *MembershipService) Downgrade(ctx context.Context, userID int64) (*models.Membership, error) {
	return s.memberships.SetPlan(ctx, userID, policy.PlanFree.String(), time.Now().UTC(), nil)
}

// Renew extends a paid binding by 30 days from whichever is later, now or
// the current expiry. Admin-only; payment verification is not re-run.
func (s *MembershipService) Renew(ctx context.Context, userID int64) (*models.Membership, error) {
	membership, err := s.memberships.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if policy.ParsePlan(membership.Plan) == policy.PlanFree || membership.ValidTill == nil {
		return nil, ErrNoPaidPlan
	}

	base := time.Now().UTC()
	if membership.ValidTill.After(base) {
		base = *membership.ValidTill
	}
	validTill := base.Add(membershipPeriod)

	return s.memberships.SetPlan(ctx, userID, membership.Plan, membership.Since, &validTill)
}
