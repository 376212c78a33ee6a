package authservice

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/pg"
	"github.com/GlebRadaev/gobounty/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type AccountService interface {
	CreateAccount(ctx context.Context, userID int) (*domain.StripeAccount, error)
}

var (
	ErrUserExists         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = domain.NewValidationError("a valid email address is required")
	ErrEmptyCredentials   = domain.NewValidationError("login and password are required")
)

const TokenTTL = time.Hour

type Deps struct {
	TX       pg.TXManager
	Users    Repo
	Accounts AccountService
	Hash     auth.HashServiceInterface
	JWT      auth.JWTServiceInterface
}

type Service struct {
	tx       pg.TXManager
	users    Repo
	accounts AccountService
	hash     auth.HashServiceInterface
	jwt      auth.JWTServiceInterface
	tokenTTL time.Duration
	now      func() time.Time
}

func New(deps Deps) *Service {
	return &Service{
		tx:       deps.TX,
		users:    deps.Users,
		accounts: deps.Accounts,
		hash:     deps.Hash,
		jwt:      deps.JWT,
		tokenTTL: TokenTTL,
		now:      time.Now,
	}
}

// Register creates the user together with its empty payee account.
// Surrounding whitespace is not part of a login.
func (s *Service) Register(ctx context.Context, login, password, email string) (*domain.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, ErrEmptyCredentials
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return nil, ErrInvalidEmail
	}
	passwordHash, err := s.hash.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	var user *domain.User
	err = s.tx.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.users.FindByLogin(ctx, login)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrUserExists
		}
		user, err = s.users.Create(ctx, &domain.User{
			Login:        login,
			PasswordHash: passwordHash,
			Email:        addr.Address,
		})
		if err != nil {
			return err
		}
		_, err = s.accounts.CreateAccount(ctx, user.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			zap.L().Info("user already exists", zap.String("login", login))
		} else {
			zap.L().Error("can't register user", zap.String("login", login), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("user registered", zap.Int("user_id", user.ID), zap.String("login", login))
	return user, nil
}

// Authenticate returns ErrInvalidCredentials for an unknown login or a wrong password.
func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	login = strings.TrimSpace(login)
	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't load user", zap.String("login", login), zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hash.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	token, err := s.jwt.GenerateJWT(userID, s.now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Int("user_id", userID), zap.Error(err))
		return "", err
	}
	return token, nil
}
