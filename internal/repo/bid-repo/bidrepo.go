package bidrepo

import (
	"context"
	"time"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	issueColumns = `id, url, title, state, last_fetched`
	bidColumns   = `id, user_id, url, issue_id, ask, offer, ask_match_sent`

	getOrCreateIssueQuery = `
		INSERT INTO issues (url)
		VALUES ($1)
		ON CONFLICT (url) DO UPDATE SET url = EXCLUDED.url
		RETURNING ` + issueColumns
	findIssueByURLQuery = `SELECT ` + issueColumns + ` FROM issues WHERE url = $1`
	findIssueQuery      = `SELECT ` + issueColumns + ` FROM issues WHERE id = $1`
	lockIssueQuery      = `SELECT id FROM issues WHERE id = $1 FOR UPDATE`
	updateIssueQuery    = `UPDATE issues SET title = $2, state = $3, last_fetched = now() WHERE id = $1`

	findBidQuery        = `SELECT ` + bidColumns + ` FROM bids WHERE user_id = $1 AND url = $2`
	findBidByIssueQuery = `SELECT ` + bidColumns + ` FROM bids WHERE user_id = $1 AND issue_id = $2`
	saveBidQuery        = `
		INSERT INTO bids (user_id, url, issue_id, ask, offer)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, url) DO UPDATE SET ask = EXCLUDED.ask, offer = EXCLUDED.offer
		RETURNING id, ask_match_sent
	`
	unmatchedAsksQuery = `
		SELECT ` + bidColumns + `
		FROM bids
		WHERE url = $1 AND ask > 0 AND ask_match_sent IS NULL
		ORDER BY id
	`
	sumOtherOffersQuery   = `SELECT COALESCE(SUM(offer), 0) FROM bids WHERE url = $1 AND user_id <> $2`
	markAskMatchSentQuery = `UPDATE bids SET ask_match_sent = $2 WHERE id = $1 AND ask_match_sent IS NULL`
	clearAskMatchQuery    = `UPDATE bids SET ask_match_sent = NULL WHERE id = $1 AND ask_match_sent = $2`
	offersNeededQuery     = `SELECT COUNT(*) FROM bids WHERE issue_id = $1 AND user_id <> $2 AND offer > 0`
	offerersQuery         = `
		SELECT ` + bidColumns + `
		FROM bids
		WHERE issue_id = $1 AND user_id <> $2 AND offer > 0
		ORDER BY id
	`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanIssue(row pgx.Row) (*domain.Issue, error) {
	var issue domain.Issue
	if err := row.Scan(&issue.ID, &issue.URL, &issue.Title, &issue.State, &issue.LastFetched); err != nil {
		return nil, err
	}
	return &issue, nil
}

func scanBid(row pgx.Row) (*domain.Bid, error) {
	var bid domain.Bid
	if err := row.Scan(&bid.ID, &bid.UserID, &bid.URL, &bid.IssueID, &bid.Ask, &bid.Offer, &bid.AskMatchSent); err != nil {
		return nil, err
	}
	return &bid, nil
}

// GetOrCreateIssue returns the issue tracked for url, registering it first if needed.
func (r *Repository) GetOrCreateIssue(ctx context.Context, url string) (*domain.Issue, error) {
	issue, err := scanIssue(r.db.QueryRow(ctx, getOrCreateIssueQuery, url))
	if err != nil {
		zap.L().Error("can't save issue", zap.String("url", url), zap.Error(err))
		return nil, err
	}
	return issue, nil
}

func (r *Repository) FindIssueByURL(ctx context.Context, url string) (*domain.Issue, error) {
	return r.findIssue(ctx, findIssueByURLQuery, url)
}

func (r *Repository) FindIssue(ctx context.Context, id int) (*domain.Issue, error) {
	return r.findIssue(ctx, findIssueQuery, id)
}

func (r *Repository) findIssue(ctx context.Context, query string, arg any) (*domain.Issue, error) {
	issue, err := scanIssue(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find issue", zap.Error(err))
		return nil, err
	}
	return issue, nil
}

// LockIssue takes the issue row lock for the rest of the transaction in ctx.
func (r *Repository) LockIssue(ctx context.Context, issueID int) error {
	var id int
	if err := r.db.QueryRow(ctx, lockIssueQuery, issueID).Scan(&id); err != nil {
		zap.L().Error("can't lock issue", zap.Int("issue_id", issueID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateIssueDetails(ctx context.Context, issueID int, info domain.IssueInfo) error {
	if _, err := r.db.Exec(ctx, updateIssueQuery, issueID, info.Title, info.State); err != nil {
		zap.L().Error("can't update issue", zap.Int("issue_id", issueID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindBid(ctx context.Context, userID int, url string) (*domain.Bid, error) {
	return r.findBid(ctx, findBidQuery, userID, url)
}

func (r *Repository) FindBidByIssue(ctx context.Context, userID, issueID int) (*domain.Bid, error) {
	return r.findBid(ctx, findBidByIssueQuery, userID, issueID)
}

func (r *Repository) findBid(ctx context.Context, query string, args ...any) (*domain.Bid, error) {
	bid, err := scanBid(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find bid", zap.Error(err))
		return nil, err
	}
	return bid, nil
}

// SaveBid inserts the bid or overwrites ask and offer of the user's existing bid on the same url.
func (r *Repository) SaveBid(ctx context.Context, bid *domain.Bid) (*domain.Bid, error) {
	err := r.db.QueryRow(ctx, saveBidQuery, bid.UserID, bid.URL, bid.IssueID, bid.Ask, bid.Offer).
		Scan(&bid.ID, &bid.AskMatchSent)
	if err != nil {
		zap.L().Error("can't save bid", zap.Int("user_id", bid.UserID), zap.String("url", bid.URL), zap.Error(err))
		return nil, err
	}
	return bid, nil
}

func (r *Repository) FindUnmatchedAsks(ctx context.Context, url string) ([]domain.Bid, error) {
	return r.listBids(ctx, unmatchedAsksQuery, url)
}

// FindOfferers lists bids with a positive offer on the issue, excluding one user.
func (r *Repository) FindOfferers(ctx context.Context, issueID, excludeUserID int) ([]domain.Bid, error) {
	return r.listBids(ctx, offerersQuery, issueID, excludeUserID)
}

func (r *Repository) listBids(ctx context.Context, query string, args ...any) ([]domain.Bid, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch bids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			zap.L().Error("failed to scan bid row", zap.Error(err))
			return nil, err
		}
		bids = append(bids, *bid)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate bids", zap.Error(err))
		return nil, err
	}
	return bids, nil
}

// SumOtherOffers totals the offers on url made by everyone except userID.
func (r *Repository) SumOtherOffers(ctx context.Context, url string, userID int) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := r.db.QueryRow(ctx, sumOtherOffersQuery, url, userID).Scan(&sum); err != nil {
		zap.L().Error("can't sum offers", zap.String("url", url), zap.Error(err))
		return decimal.Zero, err
	}
	return sum, nil
}

// MarkAskMatchSent stamps the bid only if no stamp is present and reports whether this call set it.
func (r *Repository) MarkAskMatchSent(ctx context.Context, bidID int, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, markAskMatchSentQuery, bidID, at)
	if err != nil {
		zap.L().Error("can't mark ask match", zap.Int("bid_id", bidID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ClearAskMatchSent removes the stamp set at `at` so a later trigger can retry.
func (r *Repository) ClearAskMatchSent(ctx context.Context, bidID int, at time.Time) error {
	if _, err := r.db.Exec(ctx, clearAskMatchQuery, bidID, at); err != nil {
		zap.L().Error("can't clear ask match", zap.Int("bid_id", bidID), zap.Error(err))
		return err
	}
	return nil
}

// CountOffersNeeded counts bids with a positive offer on the issue, excluding the claimant.
func (r *Repository) CountOffersNeeded(ctx context.Context, issueID, claimantID int) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, offersNeededQuery, issueID, claimantID).Scan(&n); err != nil {
		zap.L().Error("can't count offers", zap.Int("issue_id", issueID), zap.Error(err))
		return 0, err
	}
	return n, nil
}
