// Package settlementservice turns an approved claim into adjusted offers and payouts and
// drives them through the payment gateway.
package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/service/settlement"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=settlementservice.go -destination=mock_settlementservice.go -package=settlementservice

type ClaimRepo interface {
	FindClaim(ctx context.Context, id int) (*domain.Claim, error)
	AcquireSettlement(ctx context.Context, claimID int, staleBefore time.Time) (bool, error)
	SetSettlementStatus(ctx context.Context, claimID int, status, errText string) error
	UpdateStatus(ctx context.Context, claimID int, from []string, to string) (bool, error)
}

type BidRepo interface {
	FindBidByIssue(ctx context.Context, userID, issueID int) (*domain.Bid, error)
}

type PaymentRepo interface {
	FindValidOffers(ctx context.Context, issueID, excludeUserID int) ([]domain.Offer, error)
	MarkRefundPending(ctx context.Context, offerID int) (bool, error)
	CreateOffer(ctx context.Context, offer *domain.Offer, fees []domain.Fee) (*domain.Offer, error)
	CreatePayout(ctx context.Context, payout *domain.Payout, fees []domain.Fee) (*domain.Payout, error)
	FindPayoutsByClaim(ctx context.Context, claimID int) ([]domain.Payout, error)
	FindOffer(ctx context.Context, id int) (*domain.Offer, error)
	SetRefundID(ctx context.Context, offerID int, refundID string) (bool, error)
	SetOfferCharge(ctx context.Context, offerID int, chargeID string) error
	MarkPayoutCharged(ctx context.Context, payoutID int, chargeID string) error
}

type AccountRepo interface {
	FindAccountByUserID(ctx context.Context, userID int) (*domain.StripeAccount, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Gateway interface {
	Refund(ctx context.Context, chargeID, key string) (string, error)
	Charge(ctx context.Context, req domain.ChargeRequest) (string, error)
}

type Notifier interface {
	Send(ctx context.Context, msg domain.Message) error
}

var ErrNotPayable = errors.New("claimant has no payable account")

// SettlementError reports a settlement that stopped part way. The claim is left INCOMPLETE
// and can be resumed with Execute.
type SettlementError struct {
	ClaimID int
	Err     error
}

func (e *SettlementError) Error() string {
	return fmt.Sprintf("settlement of claim %d incomplete: %v", e.ClaimID, e.Err)
}

func (e *SettlementError) Unwrap() []error {
	return []error{domain.ErrSettlementIncomplete, e.Err}
}

// DefaultStaleAfter is how long a RUNNING settlement may go without progress before another
// worker may take it over.
const DefaultStaleAfter = 10 * time.Minute

type Deps struct {
	Claims     ClaimRepo
	Bids       BidRepo
	Payments   PaymentRepo
	Accounts   AccountRepo
	Users      UserRepo
	Gateway    Gateway
	Notifier   Notifier
	OfferFees  settlement.FeeCalculator
	PayoutFees settlement.FeeCalculator
	From       string
	StaleAfter time.Duration
}

type Service struct {
	claims     ClaimRepo
	bids       BidRepo
	payments   PaymentRepo
	accounts   AccountRepo
	users      UserRepo
	gateway    Gateway
	notifier   Notifier
	offerFees  settlement.FeeCalculator
	payoutFees settlement.FeeCalculator
	from       string
	staleAfter time.Duration
	now        func() time.Time
}

func New(deps Deps) *Service {
	staleAfter := deps.StaleAfter
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	return &Service{
		claims:     deps.Claims,
		bids:       deps.Bids,
		payments:   deps.Payments,
		accounts:   deps.Accounts,
		users:      deps.Users,
		gateway:    deps.Gateway,
		notifier:   deps.Notifier,
		offerFees:  deps.OfferFees,
		payoutFees: deps.PayoutFees,
		from:       deps.From,
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

// StaleBefore is the settlement_updated cutoff below which a RUNNING settlement is abandoned.
func (s *Service) StaleBefore() time.Time {
	return s.now().Add(-s.staleAfter)
}

// Prepare snapshots the valid offers on the claim's issue and writes the settlement plan as
// adjusted offers and payouts. It must run in the transaction that approves the claim.
func (s *Service) Prepare(ctx context.Context, claim domain.Claim) (settlement.Plan, error) {
	ask := decimal.Zero
	bid, err := s.bids.FindBidByIssue(ctx, claim.UserID, claim.IssueID)
	if err != nil {
		return settlement.Plan{}, err
	}
	if bid != nil {
		ask = bid.Ask
	}

	offers, err := s.payments.FindValidOffers(ctx, claim.IssueID, claim.UserID)
	if err != nil {
		return settlement.Plan{}, err
	}
	plan := settlement.Compute(ask, offers)

	claimID := claim.ID
	for _, item := range plan.Items {
		orig := item.Offer
		if _, err := s.payments.MarkRefundPending(ctx, orig.ID); err != nil {
			return settlement.Plan{}, err
		}

		offerAtt := s.offerFees.Attach(item.Adjusted, item.Discount)
		adjusted, err := s.payments.CreateOffer(ctx, &domain.Offer{
			UserID:       orig.UserID,
			BidID:        orig.BidID,
			ClaimID:      &claimID,
			Amount:       item.Adjusted,
			Discount:     item.Discount,
			ChargeAmount: offerAtt.ChargeAmount,
		}, offerAtt.Fees)
		if err != nil {
			return settlement.Plan{}, err
		}

		payoutAtt := s.payoutFees.Attach(item.Adjusted, item.Discount)
		if _, err := s.payments.CreatePayout(ctx, &domain.Payout{
			UserID:        orig.UserID,
			ClaimID:       claim.ID,
			OfferID:       adjusted.ID,
			SourceOfferID: orig.ID,
			Amount:        item.Adjusted,
			Discount:      item.Discount,
			ChargeAmount:  payoutAtt.ChargeAmount,
		}, payoutAtt.Fees); err != nil {
			return settlement.Plan{}, err
		}
	}

	if err := s.claims.SetSettlementStatus(ctx, claim.ID, domain.SettlementPending, ""); err != nil {
		return settlement.Plan{}, err
	}
	zap.L().Info("settlement prepared",
		zap.Int("claim_id", claim.ID),
		zap.Int("offers", len(plan.Items)),
		zap.String("ask", ask.StringFixed(2)),
		zap.String("surplus", plan.Surplus.StringFixed(2)),
	)
	return plan, nil
}

// Execute runs the gateway side of a prepared settlement. Payouts already charged are
// skipped, so Execute may be called again after a failure. It returns nil without work when
// another worker owns the settlement or it is already complete.
func (s *Service) Execute(ctx context.Context, claimID int) error {
	won, err := s.claims.AcquireSettlement(ctx, claimID, s.StaleBefore())
	if err != nil {
		return err
	}
	if !won {
		zap.L().Info("settlement not runnable", zap.Int("claim_id", claimID))
		return nil
	}

	claim, err := s.claims.FindClaim(ctx, claimID)
	if err != nil {
		return s.fail(ctx, claimID, err)
	}
	if claim == nil {
		return s.fail(ctx, claimID, fmt.Errorf("claim %d not found", claimID))
	}
	if err := s.run(ctx, *claim); err != nil {
		return s.fail(ctx, claimID, err)
	}

	// Paid is recorded before COMPLETE. A failure in either leaves the settlement INCOMPLETE.
	paid, err := s.claims.UpdateStatus(ctx, claimID, []string{domain.ClaimApproved, domain.ClaimRequested}, domain.ClaimPaid)
	if err != nil {
		return s.fail(ctx, claimID, err)
	}
	if paid {
		s.notifyPaid(ctx, *claim)
	}
	if err := s.claims.SetSettlementStatus(ctx, claimID, domain.SettlementComplete, ""); err != nil {
		return s.fail(ctx, claimID, err)
	}
	zap.L().Info("settlement complete", zap.Int("claim_id", claimID))
	return nil
}

func (s *Service) run(ctx context.Context, claim domain.Claim) error {
	account, err := s.accounts.FindAccountByUserID(ctx, claim.UserID)
	if err != nil {
		return err
	}
	if account == nil || !account.IsPayable() {
		return ErrNotPayable
	}

	payouts, err := s.payments.FindPayoutsByClaim(ctx, claim.ID)
	if err != nil {
		return err
	}
	for _, p := range payouts {
		if p.APISuccess {
			continue
		}
		if err := s.settlePayout(ctx, p, account.AccountID); err != nil {
			return fmt.Errorf("payout %d: %w", p.ID, err)
		}
	}
	return nil
}

func (s *Service) settlePayout(ctx context.Context, p domain.Payout, destination string) error {
	source, err := s.payments.FindOffer(ctx, p.SourceOfferID)
	if err != nil {
		return err
	}
	if source == nil {
		return fmt.Errorf("source offer %d not found", p.SourceOfferID)
	}
	if source.RefundID == "" || source.RefundID == domain.RefundPending {
		refundID, err := s.gateway.Refund(ctx, source.ChargeID, domain.RefundKey(source.ID))
		if err != nil {
			return err
		}
		if _, err := s.payments.SetRefundID(ctx, source.ID, refundID); err != nil {
			return err
		}
	}

	adjusted, err := s.payments.FindOffer(ctx, p.OfferID)
	if err != nil {
		return err
	}
	if adjusted == nil {
		return fmt.Errorf("adjusted offer %d not found", p.OfferID)
	}
	payer, err := s.users.FindByID(ctx, p.UserID)
	if err != nil {
		return err
	}
	if payer == nil {
		return fmt.Errorf("payer %d not found", p.UserID)
	}

	chargeID, err := s.gateway.Charge(ctx, domain.ChargeRequest{
		Offer:          *adjusted,
		Payout:         p,
		CustomerID:     payer.StripeCustomerID,
		Destination:    destination,
		IdempotencyKey: domain.PayoutKey(p.ID),
	})
	if err != nil {
		return err
	}
	if err := s.payments.SetOfferCharge(ctx, adjusted.ID, chargeID); err != nil {
		return err
	}
	if err := s.payments.MarkPayoutCharged(ctx, p.ID, chargeID); err != nil {
		return err
	}
	zap.L().Info("payout charged", zap.Int("payout_id", p.ID), zap.String("charge_id", chargeID))
	return nil
}

func (s *Service) fail(ctx context.Context, claimID int, cause error) error {
	zap.L().Error("settlement incomplete", zap.Int("claim_id", claimID), zap.Error(cause))
	if err := s.claims.SetSettlementStatus(ctx, claimID, domain.SettlementIncomplete, cause.Error()); err != nil {
		zap.L().Error("can't record settlement failure", zap.Int("claim_id", claimID), zap.Error(err))
	}
	return &SettlementError{ClaimID: claimID, Err: cause}
}

func (s *Service) notifyPaid(ctx context.Context, claim domain.Claim) {
	user, err := s.users.FindByID(ctx, claim.UserID)
	if err != nil || user == nil || user.Email == "" {
		zap.L().Warn("can't notify claimant", zap.Int("claim_id", claim.ID), zap.Error(err))
		return
	}
	err = s.notifier.Send(ctx, domain.Message{
		Subject: fmt.Sprintf("[codesy] Your claim %d has been paid", claim.ID),
		Body:    "The offers on your claim have been charged and transferred to your account.",
		From:    s.from,
		To:      []string{user.Email},
	})
	if err != nil {
		zap.L().Error("can't send paid notification", zap.Int("claim_id", claim.ID), zap.Error(err))
	}
}
