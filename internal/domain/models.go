package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID               int       `db:"id"`
	Login            string    `db:"login"`
	PasswordHash     string    `db:"password_hash"`
	Email            string    `db:"email"`
	StripeCustomerID string    `db:"stripe_customer_id"`
	CreatedAt        time.Time `db:"created_at"`
}

type Issue struct {
	ID          int       `db:"id"`
	URL         string    `db:"url"`
	Title       string    `db:"title"`
	State       string    `db:"state"`
	LastFetched time.Time `db:"last_fetched"`
}

type Bid struct {
	ID           int             `db:"id"`
	UserID       int             `db:"user_id"`
	URL          string          `db:"url"`
	IssueID      int             `db:"issue_id"`
	Ask          decimal.Decimal `db:"ask"`
	Offer        decimal.Decimal `db:"offer"`
	AskMatchSent *time.Time      `db:"ask_match_sent"`
}

// Offer is one authorized-or-charged payment intent tied to a Bid.
// ClaimID is set only on offers created by a settlement.
type Offer struct {
	ID           int             `db:"id"`
	UserID       int             `db:"user_id"`
	BidID        int             `db:"bid_id"`
	ClaimID      *int            `db:"claim_id"`
	Amount       decimal.Decimal `db:"amount"`
	Discount     decimal.Decimal `db:"discount"`
	ChargeAmount decimal.Decimal `db:"charge_amount"`
	ChargeID     string          `db:"charge_id"`
	RefundID     string          `db:"refund_id"`
	Created      time.Time       `db:"created"`
}

// RefundPending marks an offer whose refund is decided but not yet confirmed by the gateway.
const RefundPending = "pending"

// Active reports whether the offer still holds the payer's funds.
func (o Offer) Active() bool {
	return o.ChargeID != "" && o.RefundID == ""
}

type Claim struct {
	ID                int        `db:"id"`
	IssueID           int        `db:"issue_id"`
	UserID            int        `db:"user_id"`
	Created           time.Time  `db:"created"`
	Modified          time.Time  `db:"modified"`
	Evidence          string     `db:"evidence"`
	Status            string     `db:"status"`
	Expires           time.Time  `db:"expires"`
	SettlementStatus  string     `db:"settlement_status"`
	SettlementError   string     `db:"settlement_error"`
	SettlementUpdated *time.Time `db:"settlement_updated"`
}

type Vote struct {
	ID       int       `db:"id"`
	UserID   int       `db:"user_id"`
	ClaimID  int       `db:"claim_id"`
	Approved bool      `db:"approved"`
	Created  time.Time `db:"created"`
}

// VoteTally is the approval/rejection count of a claim.
type VoteTally struct {
	Approvals  int
	Rejections int
}

// Payout carries one offerer's adjusted contribution to a settled claim.
type Payout struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	ClaimID       int             `db:"claim_id"`
	OfferID       int             `db:"offer_id"`
	SourceOfferID int             `db:"source_offer_id"`
	Amount        decimal.Decimal `db:"amount"`
	Discount      decimal.Decimal `db:"discount"`
	ChargeAmount  decimal.Decimal `db:"charge_amount"`
	ChargeID      string          `db:"charge_id"`
	APISuccess    bool            `db:"api_success"`
	Created       time.Time       `db:"created"`
}

type FeeOwner string

const (
	OwnerOffer  FeeOwner = "offer"
	OwnerPayout FeeOwner = "payout"
)

type FeeKind string

const (
	KindFee    FeeKind = "fee"
	KindCredit FeeKind = "credit"
)

const (
	FeeTypePayPal  = "PayPal"
	FeeTypeStripe  = "Stripe"
	FeeTypeCodesy  = "codesy"
	FeeTypeRefund  = "refund"
	FeeTypeSurplus = "surplus"
)

// Fee is an immutable audit row: OfferFee, OfferCredit, PayoutFee or PayoutCredit
// depending on Owner and Kind.
type Fee struct {
	ID      int             `db:"id"`
	Owner   FeeOwner        `db:"owner_kind"`
	OwnerID int             `db:"owner_id"`
	Kind    FeeKind         `db:"kind"`
	FeeType string          `db:"fee_type"`
	Amount  decimal.Decimal `db:"amount"`
	Created time.Time       `db:"created"`
}

type StripeAccount struct {
	ID               int             `db:"id"`
	UserID           int             `db:"user_id"`
	AccountID        string          `db:"account_id"`
	AvailableBalance decimal.Decimal `db:"available_balance"`
	Verification     string          `db:"verification"`
}

// PaymentEvent is an inbound provider event, keyed by the provider's event id.
type PaymentEvent struct {
	EventID     string    `db:"event_id"`
	UserID      string    `db:"user_id"`
	Type        string    `db:"type"`
	MessageText string    `db:"message_text"`
	Verified    bool      `db:"verified"`
	Processed   bool      `db:"processed"`
	Created     time.Time `db:"created"`
}

// VerifiedEvent is an event as re-fetched from the provider. Object holds the JSON of the
// event's data object, Raw the whole event.
type VerifiedEvent struct {
	ID      string
	Type    string
	Account string
	Object  []byte
	Raw     []byte
}
