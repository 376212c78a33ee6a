package userrepo

import (
	"context"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	findByLoginQuery = `SELECT id, login, password_hash, email, stripe_customer_id FROM users WHERE login = $1`
	findByIDQuery    = `SELECT id, login, password_hash, email, stripe_customer_id FROM users WHERE id = $1`
	createQuery      = `
		INSERT INTO users (login, password_hash, email, stripe_customer_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	setCustomerQuery = `UPDATE users SET stripe_customer_id = $2 WHERE id = $1`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	return repo.findOne(ctx, findByLoginQuery, login)
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return repo.findOne(ctx, findByIDQuery, id)
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Email, &user.StripeCustomerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := repo.db.QueryRow(ctx, createQuery, user.Login, user.PasswordHash, user.Email, user.StripeCustomerID).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// SetCustomerID stores the payment provider's customer reference for the user.
func (repo *Repository) SetCustomerID(ctx context.Context, userID int, customerID string) error {
	if _, err := repo.db.Exec(ctx, setCustomerQuery, userID, customerID); err != nil {
		zap.L().Error("can't update customer id", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}
