package bidservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/event"
	"github.com/GlebRadaev/gobounty/internal/pg"
	"github.com/GlebRadaev/gobounty/internal/service/settlement"
	"github.com/GlebRadaev/gobounty/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=bidservice.go -destination=mock_bidservice.go -package=bidservice

type BidRepo interface {
	GetOrCreateIssue(ctx context.Context, url string) (*domain.Issue, error)
	LockIssue(ctx context.Context, issueID int) error
	UpdateIssueDetails(ctx context.Context, issueID int, info domain.IssueInfo) error
	FindBid(ctx context.Context, userID int, url string) (*domain.Bid, error)
	SaveBid(ctx context.Context, bid *domain.Bid) (*domain.Bid, error)
	FindUnmatchedAsks(ctx context.Context, url string) ([]domain.Bid, error)
	SumOtherOffers(ctx context.Context, url string, userID int) (decimal.Decimal, error)
	MarkAskMatchSent(ctx context.Context, bidID int, at time.Time) (bool, error)
	ClearAskMatchSent(ctx context.Context, bidID int, at time.Time) error
}

type ClaimRepo interface {
	FindClaimsByIssue(ctx context.Context, issueID int) ([]domain.Claim, error)
}

type OfferRepo interface {
	FindActiveOffer(ctx context.Context, bidID int) (*domain.Offer, error)
	CreateOffer(ctx context.Context, offer *domain.Offer, fees []domain.Fee) (*domain.Offer, error)
	MarkRefundPending(ctx context.Context, offerID int) (bool, error)
	SetRefundID(ctx context.Context, offerID int, refundID string) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Gateway interface {
	Authorize(ctx context.Context, customerID string, amount decimal.Decimal, key string) (string, error)
	Refund(ctx context.Context, chargeID, key string) (string, error)
}

type Notifier interface {
	Send(ctx context.Context, msg domain.Message) error
}

type TitleResolver interface {
	FetchTitle(ctx context.Context, url string) (domain.IssueInfo, error)
}

var (
	ErrInvalidURL      = domain.NewValidationError("url must be an absolute http(s) url")
	ErrInvalidAmount   = domain.NewValidationError("ask and offer must be amounts between 0 and 999999.99 with at most two decimal places")
	ErrNotBiddable     = domain.NewValidationError("issue has an open claim, bids and offers are closed")
	ErrNoPaymentMethod = domain.NewValidationError("a payment method is required to make an offer")

	ErrAuthorizationFailed = errors.New("offer could not be authorized")
	ErrConcurrentBidUpdate = errors.New("bid changed concurrently, retry the request")
)

type Deps struct {
	TX       pg.TXManager
	Bids     BidRepo
	Claims   ClaimRepo
	Offers   OfferRepo
	Users    UserRepo
	Gateway  Gateway
	Notifier Notifier
	Resolver TitleResolver
	Fees     settlement.FeeCalculator
	From     string
}

type Service struct {
	tx       pg.TXManager
	bids     BidRepo
	claims   ClaimRepo
	offers   OfferRepo
	users    UserRepo
	gateway  Gateway
	notifier Notifier
	resolver TitleResolver
	fees     settlement.FeeCalculator
	from     string
	bidSaved *event.Chain[event.BidSaved]
	now      func() time.Time
}

func New(deps Deps) *Service {
	s := &Service{
		tx:       deps.TX,
		bids:     deps.Bids,
		claims:   deps.Claims,
		offers:   deps.Offers,
		users:    deps.Users,
		gateway:  deps.Gateway,
		notifier: deps.Notifier,
		resolver: deps.Resolver,
		fees:     deps.Fees,
		from:     deps.From,
		now:      time.Now,
	}
	s.bidSaved = event.NewChain(event.NameBidSaved,
		s.resolveIssueTitle,
		func(ctx context.Context, e event.BidSaved) error { return s.OnBidChanged(ctx, e.Bid) },
	)
	return s
}

// RecordBidOrOffer creates the user's bid on url or updates its ask and offer. A changed offer
// replaces the previously authorized one: the new amount is authorized first, the old
// authorization is released after the ledger commits. If the stored offer moved between the
// first read and the issue lock, the call fails with ErrConcurrentBidUpdate.
func (s *Service) RecordBidOrOffer(ctx context.Context, userID int, url string, ask, offer decimal.Decimal) (*domain.Bid, error) {
	if !validate.IsURL(url) {
		return nil, ErrInvalidURL
	}
	if !domain.ValidAmount(ask) || !domain.ValidAmount(offer) {
		return nil, ErrInvalidAmount
	}

	issue, err := s.bids.GetOrCreateIssue(ctx, url)
	if err != nil {
		return nil, err
	}
	existing, err := s.bids.FindBid(ctx, userID, url)
	if err != nil {
		return nil, err
	}

	offerChanged := offer.IsPositive()
	if existing != nil {
		offerChanged = !existing.Offer.Equal(offer)
	}
	needsCheck := existing == nil || offerChanged
	if needsCheck {
		if err := s.checkBiddable(ctx, issue.ID, userID); err != nil {
			return nil, err
		}
	}

	var chargeID string
	if offerChanged && offer.IsPositive() {
		chargeID, err = s.authorize(ctx, userID, issue.ID, offer)
		if err != nil {
			return nil, err
		}
	}

	var (
		saved      *domain.Bid
		superseded *domain.Offer
	)
	err = s.tx.Begin(ctx, func(ctx context.Context) error {
		if err := s.bids.LockIssue(ctx, issue.ID); err != nil {
			return err
		}
		if needsCheck {
			if err := s.checkBiddable(ctx, issue.ID, userID); err != nil {
				return err
			}
		}
		locked, err := s.bids.FindBid(ctx, userID, url)
		if err != nil {
			return err
		}
		if !offerOf(locked).Equal(offerOf(existing)) {
			zap.L().Info("bid changed under the issue lock", zap.Int("issue_id", issue.ID), zap.Int("user_id", userID))
			return ErrConcurrentBidUpdate
		}

		saved, err = s.bids.SaveBid(ctx, &domain.Bid{UserID: userID, URL: url, IssueID: issue.ID, Ask: ask, Offer: offer})
		if err != nil {
			return err
		}
		if !offerChanged {
			return nil
		}

		prev, err := s.offers.FindActiveOffer(ctx, saved.ID)
		if err != nil {
			return err
		}
		if prev != nil {
			marked, err := s.offers.MarkRefundPending(ctx, prev.ID)
			if err != nil {
				return err
			}
			if marked {
				superseded = prev
			}
		}

		if offer.IsPositive() {
			att := s.fees.Attach(offer, decimal.Zero)
			_, err := s.offers.CreateOffer(ctx, &domain.Offer{
				UserID:       userID,
				BidID:        saved.ID,
				Amount:       offer,
				Discount:     decimal.Zero,
				ChargeAmount: att.ChargeAmount,
				ChargeID:     chargeID,
			}, att.Fees)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if chargeID != "" {
			s.releaseAuthorization(ctx, chargeID)
		}
		return nil, err
	}

	if superseded != nil {
		// The pending marker is swept by the retry job if this refund fails.
		_ = s.CompleteRefund(ctx, *superseded)
	}

	zap.L().Info("bid saved",
		zap.Int("bid_id", saved.ID),
		zap.Int("user_id", userID),
		zap.String("ask", ask.StringFixed(2)),
		zap.String("offer", offer.StringFixed(2)),
	)
	_ = s.bidSaved.Fire(ctx, event.BidSaved{Bid: *saved, Issue: *issue})
	return saved, nil
}

func offerOf(bid *domain.Bid) decimal.Decimal {
	if bid == nil {
		return decimal.Zero
	}
	return bid.Offer
}

func (s *Service) GetBid(ctx context.Context, userID int, url string) (*domain.Bid, error) {
	return s.bids.FindBid(ctx, userID, url)
}

// IsBiddableBy reports whether the user may bid or change an offer on the issue.
func (s *Service) IsBiddableBy(ctx context.Context, issueID, userID int) (bool, error) {
	claims, err := s.claims.FindClaimsByIssue(ctx, issueID)
	if err != nil {
		return false, err
	}
	return domain.BiddableBy(claims, userID), nil
}

func (s *Service) checkBiddable(ctx context.Context, issueID, userID int) error {
	ok, err := s.IsBiddableBy(ctx, issueID, userID)
	if err != nil {
		return err
	}
	if !ok {
		zap.L().Info("issue not biddable", zap.Int("issue_id", issueID), zap.Int("user_id", userID))
		return ErrNotBiddable
	}
	return nil
}

func (s *Service) authorize(ctx context.Context, userID, issueID int, amount decimal.Decimal) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil || user.StripeCustomerID == "" {
		return "", ErrNoPaymentMethod
	}
	key := fmt.Sprintf("authorize-%d-%d-%d", userID, issueID, s.now().UnixNano())
	chargeID, err := s.gateway.Authorize(ctx, user.StripeCustomerID, amount, key)
	if err != nil {
		zap.L().Error("can't authorize offer", zap.Int("user_id", userID), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrAuthorizationFailed, err)
	}
	return chargeID, nil
}

func (s *Service) releaseAuthorization(ctx context.Context, chargeID string) {
	if _, err := s.gateway.Refund(ctx, chargeID, "refund-auth-"+chargeID); err != nil {
		zap.L().Error("can't release authorization", zap.String("charge_id", chargeID), zap.Error(err))
	}
}

// CompleteRefund refunds an offer marked pending and records the provider's refund id.
func (s *Service) CompleteRefund(ctx context.Context, offer domain.Offer) error {
	refundID, err := s.gateway.Refund(ctx, offer.ChargeID, domain.RefundKey(offer.ID))
	if err != nil {
		zap.L().Error("can't refund offer", zap.Int("offer_id", offer.ID), zap.Error(err))
		return err
	}
	if _, err := s.offers.SetRefundID(ctx, offer.ID, refundID); err != nil {
		return err
	}
	zap.L().Info("offer refunded", zap.Int("offer_id", offer.ID), zap.String("refund_id", refundID))
	return nil
}

func (s *Service) resolveIssueTitle(ctx context.Context, e event.BidSaved) error {
	if e.Issue.Title != "" || s.resolver == nil {
		return nil
	}
	info, err := s.resolver.FetchTitle(ctx, e.Issue.URL)
	if err != nil {
		zap.L().Warn("can't resolve issue title", zap.String("url", e.Issue.URL), zap.Error(err))
		return nil
	}
	return s.bids.UpdateIssueDetails(ctx, e.Issue.ID, info)
}
