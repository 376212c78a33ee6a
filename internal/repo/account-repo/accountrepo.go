package accountrepo

import (
	"context"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	accountColumns = `id, user_id, account_id, available_balance, verification`

	createAccountQuery = `
		INSERT INTO stripe_accounts (user_id)
		VALUES ($1)
		RETURNING ` + accountColumns
	findByUserQuery       = `SELECT ` + accountColumns + ` FROM stripe_accounts WHERE user_id = $1`
	setAccountIDQuery     = `UPDATE stripe_accounts SET account_id = $2 WHERE user_id = $1`
	verificationQuery     = `UPDATE stripe_accounts SET verification = $2 WHERE account_id = $1`
	availableBalanceQuery = `UPDATE stripe_accounts SET available_balance = $2 WHERE account_id = $1`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAccount(row pgx.Row) (*domain.StripeAccount, error) {
	var a domain.StripeAccount
	if err := row.Scan(&a.ID, &a.UserID, &a.AccountID, &a.AvailableBalance, &a.Verification); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAccount registers an empty payee account for the user.
func (r *Repository) CreateAccount(ctx context.Context, userID int) (*domain.StripeAccount, error) {
	account, err := scanAccount(r.db.QueryRow(ctx, createAccountQuery, userID))
	if err != nil {
		zap.L().Error("failed to create payee account", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindAccountByUserID(ctx context.Context, userID int) (*domain.StripeAccount, error) {
	account, err := scanAccount(r.db.QueryRow(ctx, findByUserQuery, userID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get payee account", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) SetAccountID(ctx context.Context, userID int, accountID string) (bool, error) {
	return r.update(ctx, setAccountIDQuery, userID, accountID)
}

// UpdateVerification overwrites the verification document of the account; false if no such account.
func (r *Repository) UpdateVerification(ctx context.Context, accountID, verification string) (bool, error) {
	return r.update(ctx, verificationQuery, accountID, verification)
}

func (r *Repository) UpdateAvailableBalance(ctx context.Context, accountID string, amount decimal.Decimal) (bool, error) {
	return r.update(ctx, availableBalanceQuery, accountID, amount)
}

func (r *Repository) update(ctx context.Context, query string, key, value any) (bool, error) {
	tag, err := r.db.Exec(ctx, query, key, value)
	if err != nil {
		zap.L().Error("failed to update payee account", zap.Any("key", key), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
