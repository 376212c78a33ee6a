package paymentrepo

import (
	"context"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	offerColumns  = `id, user_id, bid_id, claim_id, amount, discount, charge_amount, charge_id, refund_id, created`
	payoutColumns = `id, user_id, claim_id, offer_id, source_offer_id, amount, discount, charge_amount, charge_id, api_success, created`

	createOfferQuery = `
		INSERT INTO offers (user_id, bid_id, claim_id, amount, discount, charge_amount, charge_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, refund_id, created
	`
	createFeeQuery = `
		INSERT INTO fees (owner_kind, owner_id, kind, fee_type, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created
	`
	findOfferQuery       = `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`
	findActiveOfferQuery = `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE bid_id = $1 AND charge_id <> '' AND refund_id = '' AND claim_id IS NULL
		ORDER BY id DESC
		LIMIT 1
		FOR UPDATE
	`
	findValidOffersQuery = `
		SELECT o.id, o.user_id, o.bid_id, o.claim_id, o.amount, o.discount, o.charge_amount, o.charge_id, o.refund_id, o.created
		FROM offers o
		JOIN bids b ON b.id = o.bid_id
		WHERE b.issue_id = $1 AND o.user_id <> $2
			AND o.charge_id <> '' AND o.refund_id = '' AND o.claim_id IS NULL
		ORDER BY o.id
		FOR UPDATE OF o
	`
	findPendingRefundsQuery = `
		SELECT ` + offerColumns + `
		FROM offers o
		WHERE o.refund_id = 'pending' AND o.claim_id IS NULL
			AND NOT EXISTS (SELECT 1 FROM payouts p WHERE p.source_offer_id = o.id)
		ORDER BY o.id
		LIMIT $1
	`
	markRefundPendingQuery = `UPDATE offers SET refund_id = 'pending' WHERE id = $1 AND refund_id = ''`
	setRefundIDQuery       = `UPDATE offers SET refund_id = $2 WHERE id = $1 AND refund_id IN ('', 'pending')`
	refundByChargeQuery    = `UPDATE offers SET refund_id = $2 WHERE charge_id = $1 AND refund_id IN ('', 'pending')`
	setOfferChargeQuery    = `UPDATE offers SET charge_id = $2 WHERE id = $1`

	createPayoutQuery = `
		INSERT INTO payouts (user_id, claim_id, offer_id, source_offer_id, amount, discount, charge_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created
	`
	findPayoutsByClaimQuery = `SELECT ` + payoutColumns + ` FROM payouts WHERE claim_id = $1 ORDER BY id`
	markPayoutChargedQuery  = `UPDATE payouts SET charge_id = $2, api_success = TRUE WHERE id = $1`
	findFeesQuery           = `
		SELECT id, owner_kind, owner_id, kind, fee_type, amount, created
		FROM fees
		WHERE owner_kind = $1 AND owner_id = $2
		ORDER BY id
	`
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanOffer(row pgx.Row) (*domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(&o.ID, &o.UserID, &o.BidID, &o.ClaimID, &o.Amount, &o.Discount, &o.ChargeAmount, &o.ChargeID, &o.RefundID, &o.Created)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanPayout(row pgx.Row) (*domain.Payout, error) {
	var p domain.Payout
	err := row.Scan(&p.ID, &p.UserID, &p.ClaimID, &p.OfferID, &p.SourceOfferID, &p.Amount, &p.Discount, &p.ChargeAmount,
		&p.ChargeID, &p.APISuccess, &p.Created)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateOffer stores the offer together with its fee and credit rows.
func (r *Repository) CreateOffer(ctx context.Context, offer *domain.Offer, fees []domain.Fee) (*domain.Offer, error) {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, createOfferQuery, offer.UserID, offer.BidID, offer.ClaimID, offer.Amount, offer.Discount,
			offer.ChargeAmount, offer.ChargeID).Scan(&offer.ID, &offer.RefundID, &offer.Created)
		if err != nil {
			zap.L().Error("can't save offer", zap.Int("bid_id", offer.BidID), zap.Error(err))
			return err
		}
		return r.createFees(ctx, domain.OwnerOffer, offer.ID, fees)
	})
	if err != nil {
		return nil, err
	}
	return offer, nil
}

// CreatePayout stores the payout together with its fee and credit rows.
func (r *Repository) CreatePayout(ctx context.Context, payout *domain.Payout, fees []domain.Fee) (*domain.Payout, error) {
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, createPayoutQuery, payout.UserID, payout.ClaimID, payout.OfferID, payout.SourceOfferID,
			payout.Amount, payout.Discount, payout.ChargeAmount).Scan(&payout.ID, &payout.Created)
		if err != nil {
			zap.L().Error("can't save payout", zap.Int("claim_id", payout.ClaimID), zap.Error(err))
			return err
		}
		return r.createFees(ctx, domain.OwnerPayout, payout.ID, fees)
	})
	if err != nil {
		return nil, err
	}
	return payout, nil
}

func (r *Repository) createFees(ctx context.Context, owner domain.FeeOwner, ownerID int, fees []domain.Fee) error {
	for i := range fees {
		fee := &fees[i]
		fee.Owner = owner
		fee.OwnerID = ownerID
		err := r.db.QueryRow(ctx, createFeeQuery, string(fee.Owner), fee.OwnerID, string(fee.Kind), fee.FeeType, fee.Amount).
			Scan(&fee.ID, &fee.Created)
		if err != nil {
			zap.L().Error("can't save fee", zap.String("owner", string(owner)), zap.Int("owner_id", ownerID), zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) FindOffer(ctx context.Context, id int) (*domain.Offer, error) {
	offer, err := scanOffer(r.db.QueryRow(ctx, findOfferQuery, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find offer", zap.Int("offer_id", id), zap.Error(err))
		return nil, err
	}
	return offer, nil
}

// FindActiveOffer returns the bid's offer that still holds funds, locking it.
func (r *Repository) FindActiveOffer(ctx context.Context, bidID int) (*domain.Offer, error) {
	offer, err := scanOffer(r.db.QueryRow(ctx, findActiveOfferQuery, bidID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find active offer", zap.Int("bid_id", bidID), zap.Error(err))
		return nil, err
	}
	return offer, nil
}

// FindValidOffers locks and returns the issue's charged, unrefunded, unsettled offers,
// excluding those made by excludeUserID.
func (r *Repository) FindValidOffers(ctx context.Context, issueID, excludeUserID int) ([]domain.Offer, error) {
	return r.listOffers(ctx, findValidOffersQuery, issueID, excludeUserID)
}

// FindPendingRefunds lists offers whose refund was decided outside a settlement but never confirmed.
func (r *Repository) FindPendingRefunds(ctx context.Context, limit int) ([]domain.Offer, error) {
	return r.listOffers(ctx, findPendingRefundsQuery, limit)
}

func (r *Repository) listOffers(ctx context.Context, query string, args ...any) ([]domain.Offer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch offers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			zap.L().Error("failed to scan offer row", zap.Error(err))
			return nil, err
		}
		offers = append(offers, *offer)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate offers", zap.Error(err))
		return nil, err
	}
	return offers, nil
}

// MarkRefundPending flags an unrefunded offer for refund and reports whether this call flagged it.
func (r *Repository) MarkRefundPending(ctx context.Context, offerID int) (bool, error) {
	return r.exec(ctx, "can't mark refund pending", markRefundPendingQuery, offerID)
}

// SetRefundID records the provider refund reference unless another one is already recorded.
func (r *Repository) SetRefundID(ctx context.Context, offerID int, refundID string) (bool, error) {
	return r.exec(ctx, "can't record refund", setRefundIDQuery, offerID, refundID)
}

// RecordRefundByCharge records a provider-reported refund against the offer holding chargeID.
func (r *Repository) RecordRefundByCharge(ctx context.Context, chargeID, refundID string) (int64, error) {
	tag, err := r.db.Exec(ctx, refundByChargeQuery, chargeID, refundID)
	if err != nil {
		zap.L().Error("can't record refund", zap.String("charge_id", chargeID), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) SetOfferCharge(ctx context.Context, offerID int, chargeID string) error {
	_, err := r.exec(ctx, "can't record offer charge", setOfferChargeQuery, offerID, chargeID)
	return err
}

func (r *Repository) MarkPayoutCharged(ctx context.Context, payoutID int, chargeID string) error {
	_, err := r.exec(ctx, "can't record payout charge", markPayoutChargedQuery, payoutID, chargeID)
	return err
}

func (r *Repository) exec(ctx context.Context, msg, query string, args ...any) (bool, error) {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		zap.L().Error(msg, zap.Any("args", args), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindPayoutsByClaim(ctx context.Context, claimID int) ([]domain.Payout, error) {
	rows, err := r.db.Query(ctx, findPayoutsByClaimQuery, claimID)
	if err != nil {
		zap.L().Error("failed to fetch payouts", zap.Int("claim_id", claimID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		payout, err := scanPayout(rows)
		if err != nil {
			zap.L().Error("failed to scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, *payout)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}

func (r *Repository) FindFees(ctx context.Context, owner domain.FeeOwner, ownerID int) ([]domain.Fee, error) {
	rows, err := r.db.Query(ctx, findFeesQuery, string(owner), ownerID)
	if err != nil {
		zap.L().Error("failed to fetch fees", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var fees []domain.Fee
	for rows.Next() {
		var (
			fee         domain.Fee
			owner, kind string
		)
		if err := rows.Scan(&fee.ID, &owner, &fee.OwnerID, &kind, &fee.FeeType, &fee.Amount, &fee.Created); err != nil {
			zap.L().Error("failed to scan fee row", zap.Error(err))
			return nil, err
		}
		fee.Owner = domain.FeeOwner(owner)
		fee.Kind = domain.FeeKind(kind)
		fees = append(fees, fee)
	}
	return fees, rows.Err()
}
