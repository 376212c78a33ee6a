package accountservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=accountservice.go -destination=mock_accountservice.go -package=accountservice

type AccountRepo interface {
	CreateAccount(ctx context.Context, userID int) (*domain.StripeAccount, error)
	FindAccountByUserID(ctx context.Context, userID int) (*domain.StripeAccount, error)
	SetAccountID(ctx context.Context, userID int, accountID string) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	SetCustomerID(ctx context.Context, userID int, customerID string) error
}

type Gateway interface {
	CreateCustomer(ctx context.Context, email, cardToken string) (string, error)
}

var (
	ErrAccountNotFound = errors.New("payment account not found")
	ErrCardRejected    = errors.New("card could not be saved")

	ErrNothingToUpdate  = domain.NewValidationError("card token or account id is required")
	ErrInvalidAccountID = domain.NewValidationError("account id must be a connected account id (acct_...)")
)

// Status is what a user needs to know about their payment setup.
type Status struct {
	Account          domain.StripeAccount
	HasPaymentMethod bool
	Payable          bool
	FieldsNeeded     []string
}

type Service struct {
	accountRepo AccountRepo
	userRepo    UserRepo
	gateway     Gateway
}

func New(accountRepo AccountRepo, userRepo UserRepo, gateway Gateway) *Service {
	return &Service{
		accountRepo: accountRepo,
		userRepo:    userRepo,
		gateway:     gateway,
	}
}

func (s *Service) CreateAccount(ctx context.Context, userID int) (*domain.StripeAccount, error) {
	account, err := s.accountRepo.CreateAccount(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create payment account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (s *Service) GetStatus(ctx context.Context, userID int) (*Status, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get payment account", zap.Error(err))
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	return &Status{
		Account:          *account,
		HasPaymentMethod: user != nil && user.StripeCustomerID != "",
		Payable:          account.IsPayable(),
		FieldsNeeded:     account.FieldsNeeded(),
	}, nil
}

// SetupPayment registers a card as the user's payment method for offers and/or links the
// connected account that receives payouts.
func (s *Service) SetupPayment(ctx context.Context, userID int, cardToken, accountID string) (*Status, error) {
	if cardToken == "" && accountID == "" {
		return nil, ErrNothingToUpdate
	}
	if accountID != "" && !strings.HasPrefix(accountID, "acct_") {
		return nil, ErrInvalidAccountID
	}

	if cardToken != "" {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			zap.L().Error("failed to get user", zap.Error(err))
			return nil, err
		}
		if user == nil {
			return nil, ErrAccountNotFound
		}
		customerID, err := s.gateway.CreateCustomer(ctx, user.Email, cardToken)
		if err != nil {
			zap.L().Error("failed to create payment customer", zap.Int("user_id", userID), zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrCardRejected, err)
		}
		if err := s.userRepo.SetCustomerID(ctx, userID, customerID); err != nil {
			return nil, err
		}
		zap.L().Info("payment method saved", zap.Int("user_id", userID))
	}

	if accountID != "" {
		ok, err := s.accountRepo.SetAccountID(ctx, userID, accountID)
		if err != nil {
			zap.L().Error("failed to link payout account", zap.Error(err))
			return nil, err
		}
		if !ok {
			return nil, ErrAccountNotFound
		}
		zap.L().Info("payout account linked", zap.Int("user_id", userID))
	}

	return s.GetStatus(ctx, userID)
}
