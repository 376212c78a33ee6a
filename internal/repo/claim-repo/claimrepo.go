package claimrepo

import (
	"context"
	"time"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	claimColumns = `id, issue_id, user_id, created, modified, evidence, status, expires, settlement_status, settlement_error, settlement_updated`
	voteColumns  = `id, user_id, claim_id, approved, created`

	createClaimQuery = `
		INSERT INTO claims (issue_id, user_id, created, modified, evidence, status, expires)
		VALUES ($1, $2, $3, $3, $4, $5, $6)
		RETURNING id
	`
	reopenClaimQuery = `
		UPDATE claims
		SET evidence = $2, status = $3, created = $4, modified = $4, expires = $5,
			settlement_status = '', settlement_error = '', settlement_updated = NULL
		WHERE id = $1
	`
	deleteVotesQuery       = `DELETE FROM votes WHERE claim_id = $1`
	findClaimQuery         = `SELECT ` + claimColumns + ` FROM claims WHERE id = $1`
	lockClaimQuery         = `SELECT ` + claimColumns + ` FROM claims WHERE id = $1 FOR UPDATE`
	findClaimsByIssueQuery = `SELECT ` + claimColumns + ` FROM claims WHERE issue_id = $1 ORDER BY id`
	updateStatusQuery      = `UPDATE claims SET status = $3, modified = now() WHERE id = $1 AND status = ANY($2)`

	createVoteQuery = `
		INSERT INTO votes (user_id, claim_id, approved, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	findVoteQuery   = `SELECT ` + voteColumns + ` FROM votes WHERE claim_id = $1 AND user_id = $2`
	tallyVotesQuery = `
		SELECT COUNT(*) FILTER (WHERE approved), COUNT(*) FILTER (WHERE NOT approved)
		FROM votes
		WHERE claim_id = $1
	`

	setSettlementQuery = `
		UPDATE claims
		SET settlement_status = $2, settlement_error = $3, settlement_updated = now()
		WHERE id = $1
	`
	acquireSettlementQuery = `
		UPDATE claims
		SET settlement_status = 'RUNNING', settlement_updated = now()
		WHERE id = $1
			AND (settlement_status IN ('PENDING', 'INCOMPLETE')
				OR (settlement_status = 'RUNNING' AND settlement_updated < $2))
	`
	findUnsettledQuery = `
		SELECT ` + claimColumns + `
		FROM claims
		WHERE settlement_status = 'INCOMPLETE'
			OR (settlement_status IN ('PENDING', 'RUNNING') AND settlement_updated < $1)
		ORDER BY settlement_updated
		LIMIT $2
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

func scanClaim(row pgx.Row) (*domain.Claim, error) {
	var c domain.Claim
	err := row.Scan(&c.ID, &c.IssueID, &c.UserID, &c.Created, &c.Modified, &c.Evidence, &c.Status, &c.Expires,
		&c.SettlementStatus, &c.SettlementError, &c.SettlementUpdated)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CreateClaim(ctx context.Context, claim *domain.Claim) (*domain.Claim, error) {
	err := r.db.QueryRow(ctx, createClaimQuery, claim.IssueID, claim.UserID, claim.Created, claim.Evidence, claim.Status, claim.Expires).
		Scan(&claim.ID)
	if err != nil {
		zap.L().Error("can't save claim", zap.Int("issue_id", claim.IssueID), zap.Int("user_id", claim.UserID), zap.Error(err))
		return nil, err
	}
	claim.Modified = claim.Created
	return claim, nil
}

// ReopenClaim resubmits a claim in place and discards the votes cast on its previous round.
func (r *Repository) ReopenClaim(ctx context.Context, claim *domain.Claim) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, reopenClaimQuery, claim.ID, claim.Evidence, claim.Status, claim.Created, claim.Expires); err != nil {
			zap.L().Error("can't reopen claim", zap.Int("claim_id", claim.ID), zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, deleteVotesQuery, claim.ID); err != nil {
			zap.L().Error("can't clear votes", zap.Int("claim_id", claim.ID), zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) FindClaim(ctx context.Context, id int) (*domain.Claim, error) {
	return r.findClaim(ctx, findClaimQuery, id)
}

// LockClaim reads the claim holding its row lock until the surrounding transaction ends.
func (r *Repository) LockClaim(ctx context.Context, id int) (*domain.Claim, error) {
	return r.findClaim(ctx, lockClaimQuery, id)
}

func (r *Repository) findClaim(ctx context.Context, query string, id int) (*domain.Claim, error) {
	claim, err := scanClaim(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find claim", zap.Int("claim_id", id), zap.Error(err))
		return nil, err
	}
	return claim, nil
}

func (r *Repository) FindClaimsByIssue(ctx context.Context, issueID int) ([]domain.Claim, error) {
	return r.listClaims(ctx, findClaimsByIssueQuery, issueID)
}

// FindUnsettled lists claims whose settlement failed or has not progressed since staleBefore.
func (r *Repository) FindUnsettled(ctx context.Context, staleBefore time.Time, limit int) ([]domain.Claim, error) {
	return r.listClaims(ctx, findUnsettledQuery, staleBefore, limit)
}

func (r *Repository) listClaims(ctx context.Context, query string, args ...any) ([]domain.Claim, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch claims", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var claims []domain.Claim
	for rows.Next() {
		claim, err := scanClaim(rows)
		if err != nil {
			zap.L().Error("failed to scan claim row", zap.Error(err))
			return nil, err
		}
		claims = append(claims, *claim)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate claims", zap.Error(err))
		return nil, err
	}
	return claims, nil
}

// UpdateStatus moves the claim to status `to` if its current status is one of `from`.
func (r *Repository) UpdateStatus(ctx context.Context, claimID int, from []string, to string) (bool, error) {
	tag, err := r.db.Exec(ctx, updateStatusQuery, claimID, from, to)
	if err != nil {
		zap.L().Error("can't update claim status", zap.Int("claim_id", claimID), zap.String("status", to), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) CreateVote(ctx context.Context, vote *domain.Vote) (*domain.Vote, error) {
	err := r.db.QueryRow(ctx, createVoteQuery, vote.UserID, vote.ClaimID, vote.Approved, vote.Created).Scan(&vote.ID)
	if err != nil {
		zap.L().Error("can't save vote", zap.Int("claim_id", vote.ClaimID), zap.Int("user_id", vote.UserID), zap.Error(err))
		return nil, err
	}
	return vote, nil
}

func (r *Repository) FindVote(ctx context.Context, claimID, userID int) (*domain.Vote, error) {
	var v domain.Vote
	err := r.db.QueryRow(ctx, findVoteQuery, claimID, userID).Scan(&v.ID, &v.UserID, &v.ClaimID, &v.Approved, &v.Created)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find vote", zap.Int("claim_id", claimID), zap.Error(err))
		return nil, err
	}
	return &v, nil
}

func (r *Repository) TallyVotes(ctx context.Context, claimID int) (domain.VoteTally, error) {
	var tally domain.VoteTally
	if err := r.db.QueryRow(ctx, tallyVotesQuery, claimID).Scan(&tally.Approvals, &tally.Rejections); err != nil {
		zap.L().Error("can't tally votes", zap.Int("claim_id", claimID), zap.Error(err))
		return domain.VoteTally{}, err
	}
	return tally, nil
}

func (r *Repository) SetSettlementStatus(ctx context.Context, claimID int, status, errText string) error {
	if _, err := r.db.Exec(ctx, setSettlementQuery, claimID, status, errText); err != nil {
		zap.L().Error("can't update settlement status", zap.Int("claim_id", claimID), zap.String("status", status), zap.Error(err))
		return err
	}
	return nil
}

// AcquireSettlement moves a runnable settlement to RUNNING and reports whether the caller owns it.
// A RUNNING settlement last touched before staleBefore is considered abandoned.
func (r *Repository) AcquireSettlement(ctx context.Context, claimID int, staleBefore time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, acquireSettlementQuery, claimID, staleBefore)
	if err != nil {
		zap.L().Error("can't acquire settlement", zap.Int("claim_id", claimID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
