package claimservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/event"
	"github.com/GlebRadaev/gobounty/internal/pg"
	"github.com/GlebRadaev/gobounty/internal/service/settlement"
	"github.com/GlebRadaev/gobounty/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=claimservice.go -destination=mock_claimservice.go -package=claimservice

type BidRepo interface {
	FindIssueByURL(ctx context.Context, url string) (*domain.Issue, error)
	FindIssue(ctx context.Context, id int) (*domain.Issue, error)
	LockIssue(ctx context.Context, issueID int) error
	FindBidByIssue(ctx context.Context, userID, issueID int) (*domain.Bid, error)
	FindOfferers(ctx context.Context, issueID, excludeUserID int) ([]domain.Bid, error)
	CountOffersNeeded(ctx context.Context, issueID, claimantID int) (int, error)
}

type ClaimRepo interface {
	CreateClaim(ctx context.Context, claim *domain.Claim) (*domain.Claim, error)
	ReopenClaim(ctx context.Context, claim *domain.Claim) error
	FindClaim(ctx context.Context, id int) (*domain.Claim, error)
	LockClaim(ctx context.Context, id int) (*domain.Claim, error)
	FindClaimsByIssue(ctx context.Context, issueID int) ([]domain.Claim, error)
	UpdateStatus(ctx context.Context, claimID int, from []string, to string) (bool, error)
	CreateVote(ctx context.Context, vote *domain.Vote) (*domain.Vote, error)
	FindVote(ctx context.Context, claimID, userID int) (*domain.Vote, error)
	TallyVotes(ctx context.Context, claimID int) (domain.VoteTally, error)
}

type PaymentRepo interface {
	FindPayoutsByClaim(ctx context.Context, claimID int) ([]domain.Payout, error)
	FindFees(ctx context.Context, owner domain.FeeOwner, ownerID int) ([]domain.Fee, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Settlement interface {
	Prepare(ctx context.Context, claim domain.Claim) (settlement.Plan, error)
	Execute(ctx context.Context, claimID int) error
}

type Notifier interface {
	Send(ctx context.Context, msg domain.Message) error
}

var (
	ErrClaimNotFound = errors.New("claim not found")

	ErrInvalidEvidence = domain.NewValidationError("evidence must be an absolute http(s) url")
	ErrIssueNotFound   = domain.NewValidationError("no bids have been made on this issue")
	ErrNotClaimable    = domain.NewValidationError("issue already has an open claim")
	ErrClaimantVote    = domain.NewValidationError("claimant can't vote on their own claim")
	ErrClaimClosed     = domain.NewValidationError("claim is no longer open for votes")
	ErrNotOfferer      = domain.NewValidationError("only users with an offer on the issue can vote")
	ErrAlreadyVoted    = domain.NewValidationError("user already voted on this claim")
	ErrNotClaimant     = domain.NewValidationError("only the claimant can request a payout")
	ErrNotApproved     = domain.NewValidationError("claim is not approved")
)

// VoteResult is the outcome of RecordVote. Settlement holds the error of a settlement that
// was started by this vote and did not complete; the vote itself is recorded regardless.
type VoteResult struct {
	Vote       domain.Vote
	Status     string
	Settlement error
}

type PayoutDetails struct {
	Payout domain.Payout
	Fees   []domain.Fee
}

type ClaimDetails struct {
	Claim        domain.Claim
	Tally        domain.VoteTally
	OffersNeeded int
	Payouts      []PayoutDetails
}

type Deps struct {
	TX         pg.TXManager
	Bids       BidRepo
	Claims     ClaimRepo
	Payments   PaymentRepo
	Users      UserRepo
	Settlement Settlement
	Notifier   Notifier
	From       string
}

type Service struct {
	tx            pg.TXManager
	bids          BidRepo
	claims        ClaimRepo
	payments      PaymentRepo
	users         UserRepo
	settlement    Settlement
	notifier      Notifier
	from          string
	claimCreated  *event.Chain[event.ClaimCreated]
	statusChanged *event.Chain[event.ClaimStatusChanged]
	now           func() time.Time
}

func New(deps Deps) *Service {
	s := &Service{
		tx:         deps.TX,
		bids:       deps.Bids,
		claims:     deps.Claims,
		payments:   deps.Payments,
		users:      deps.Users,
		settlement: deps.Settlement,
		notifier:   deps.Notifier,
		from:       deps.From,
		now:        time.Now,
	}
	s.claimCreated = event.NewChain(event.NameClaimCreated, s.notifyOfferers)
	s.statusChanged = event.NewChain(event.NameClaimStatusChanged, s.executeSettlement, s.notifyClaimant)
	return s
}

// CreateClaim records that userID resolved the issue tracked for url. A user whose earlier
// claim on the issue was rejected resubmits that claim instead of creating a second one.
func (s *Service) CreateClaim(ctx context.Context, userID int, url, evidence string) (*domain.Claim, error) {
	if !validate.IsURL(evidence) {
		return nil, ErrInvalidEvidence
	}
	issue, err := s.bids.FindIssueByURL(ctx, url)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, ErrIssueNotFound
	}

	var claim *domain.Claim
	err = s.tx.Begin(ctx, func(ctx context.Context) error {
		if err := s.bids.LockIssue(ctx, issue.ID); err != nil {
			return err
		}
		existing, err := s.claims.FindClaimsByIssue(ctx, issue.ID)
		if err != nil {
			return err
		}
		if !domain.Claimable(existing) {
			return ErrNotClaimable
		}

		created := s.now().UTC()
		fresh := domain.Claim{
			IssueID:  issue.ID,
			UserID:   userID,
			Created:  created,
			Modified: created,
			Evidence: evidence,
			Status:   domain.ClaimSubmitted,
			Expires:  created.Add(domain.ClaimLifetime),
		}
		for _, c := range existing {
			if c.UserID == userID {
				fresh.ID = c.ID
				claim = &fresh
				return s.claims.ReopenClaim(ctx, claim)
			}
		}
		claim, err = s.claims.CreateClaim(ctx, &fresh)
		return err
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("claim submitted", zap.Int("claim_id", claim.ID), zap.Int("issue_id", issue.ID), zap.Int("user_id", userID))
	_ = s.claimCreated.Fire(ctx, event.ClaimCreated{Claim: *claim, Issue: *issue})
	return claim, nil
}

// RecordVote stores userID's vote and recomputes the claim status under the claim's row lock.
// The transition into Approved prepares the settlement in the same transaction, so it happens
// once however many votes race for it.
func (s *Service) RecordVote(ctx context.Context, userID, claimID int, approved bool) (*VoteResult, error) {
	var (
		result  VoteResult
		claim   *domain.Claim
		changed bool
		old     string
	)
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		var err error
		claim, err = s.claims.LockClaim(ctx, claimID)
		if err != nil {
			return err
		}
		if err := s.checkVoter(ctx, claim, userID); err != nil {
			return err
		}

		vote, err := s.claims.CreateVote(ctx, &domain.Vote{
			UserID:   userID,
			ClaimID:  claimID,
			Approved: approved,
			Created:  s.now().UTC(),
		})
		if err != nil {
			return err
		}
		result.Vote = *vote

		tally, err := s.claims.TallyVotes(ctx, claimID)
		if err != nil {
			return err
		}
		needed, err := s.bids.CountOffersNeeded(ctx, claim.IssueID, claim.UserID)
		if err != nil {
			return err
		}

		old = claim.Status
		next := NextStatus(old, tally, needed)
		result.Status = next
		if next == old {
			return nil
		}
		changed, err = s.claims.UpdateStatus(ctx, claimID, []string{old}, next)
		if err != nil {
			return err
		}
		claim.Status = next
		if changed && next == domain.ClaimApproved {
			if _, err := s.settlement.Prepare(ctx, *claim); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("vote recorded",
		zap.Int("claim_id", claimID),
		zap.Int("user_id", userID),
		zap.Bool("approved", approved),
		zap.String("status", result.Status),
	)
	if changed {
		result.Settlement = s.statusChanged.Fire(ctx, event.ClaimStatusChanged{Claim: *claim, OldStatus: old})
	}
	return &result, nil
}

func (s *Service) checkVoter(ctx context.Context, claim *domain.Claim, userID int) error {
	if claim == nil {
		return ErrClaimNotFound
	}
	if claim.UserID == userID {
		return ErrClaimantVote
	}
	if !claim.Open() {
		return ErrClaimClosed
	}
	bid, err := s.bids.FindBidByIssue(ctx, userID, claim.IssueID)
	if err != nil {
		return err
	}
	if bid == nil || !bid.Offer.IsPositive() {
		return ErrNotOfferer
	}
	prior, err := s.claims.FindVote(ctx, claim.ID, userID)
	if err != nil {
		return err
	}
	if prior != nil {
		return ErrAlreadyVoted
	}
	return nil
}

// NextStatus applies the vote rule to an open claim. Any vote makes the claim Pending,
// unanimous approval by the offerers approves it and rejection by at least half of them
// rejects it. Rejection is evaluated last and wins when both hold.
func NextStatus(current string, tally domain.VoteTally, offersNeeded int) string {
	if current != domain.ClaimSubmitted && current != domain.ClaimPending {
		return current
	}
	status := current
	if tally.Approvals+tally.Rejections > 0 {
		status = domain.ClaimPending
	}
	if offersNeeded > 0 && tally.Approvals >= offersNeeded {
		status = domain.ClaimApproved
	}
	if offersNeeded > 0 && 2*tally.Rejections >= offersNeeded {
		status = domain.ClaimRejected
	}
	return status
}

// NeedsVoteFromUser reports whether userID is an offerer on the claim's issue who has not voted yet.
func (s *Service) NeedsVoteFromUser(ctx context.Context, claim domain.Claim, userID int) (bool, error) {
	if claim.UserID == userID {
		return false, nil
	}
	vote, err := s.claims.FindVote(ctx, claim.ID, userID)
	if err != nil {
		return false, err
	}
	if vote != nil {
		return false, nil
	}
	bid, err := s.bids.FindBidByIssue(ctx, userID, claim.IssueID)
	if err != nil {
		return false, err
	}
	return bid != nil && bid.Offer.IsPositive(), nil
}

// RequestPayout lets the claimant ask for the payout of an approved claim. A settlement that
// has not completed yet is resumed.
func (s *Service) RequestPayout(ctx context.Context, userID, claimID int) (*domain.Claim, error) {
	claim, err := s.claims.FindClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, ErrClaimNotFound
	}
	if claim.UserID != userID {
		return nil, ErrNotClaimant
	}
	ok, err := s.claims.UpdateStatus(ctx, claimID, []string{domain.ClaimApproved}, domain.ClaimRequested)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotApproved
	}

	old := claim.Status
	claim.Status = domain.ClaimRequested
	zap.L().Info("payout requested", zap.Int("claim_id", claimID))
	// A failed settlement stays INCOMPLETE for the resume job.
	_ = s.statusChanged.Fire(ctx, event.ClaimStatusChanged{Claim: *claim, OldStatus: old})
	return claim, nil
}

func (s *Service) GetClaim(ctx context.Context, claimID int) (*ClaimDetails, error) {
	claim, err := s.claims.FindClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, ErrClaimNotFound
	}
	tally, err := s.claims.TallyVotes(ctx, claimID)
	if err != nil {
		return nil, err
	}
	needed, err := s.bids.CountOffersNeeded(ctx, claim.IssueID, claim.UserID)
	if err != nil {
		return nil, err
	}
	payouts, err := s.payments.FindPayoutsByClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}

	details := &ClaimDetails{
		Claim:        *claim,
		Tally:        tally,
		OffersNeeded: needed,
		Payouts:      make([]PayoutDetails, 0, len(payouts)),
	}
	for _, p := range payouts {
		fees, err := s.payments.FindFees(ctx, domain.OwnerPayout, p.ID)
		if err != nil {
			return nil, err
		}
		details.Payouts = append(details.Payouts, PayoutDetails{Payout: p, Fees: fees})
	}
	return details, nil
}
