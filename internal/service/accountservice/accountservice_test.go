package accountservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *MockUserRepo, *MockGateway) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	gateway := NewMockGateway(ctrl)
	service := New(accountRepo, userRepo, gateway)
	defer ctrl.Finish()
	return service, accountRepo, userRepo, gateway
}

func TestCreateAccount(t *testing.T) {
	service, accountRepo, _, _ := NewMock(t)
	tests := []struct {
		name            string
		prepareMock     func()
		expectedAccount *domain.StripeAccount
		expectedError   error
	}{
		{
			name: "Account created",
			prepareMock: func() {
				accountRepo.EXPECT().CreateAccount(gomock.Any(), 1).Return(&domain.StripeAccount{ID: 5, UserID: 1}, nil)
			},
			expectedAccount: &domain.StripeAccount{ID: 5, UserID: 1},
		},
		{
			name: "Error creating account",
			prepareMock: func() {
				accountRepo.EXPECT().CreateAccount(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			account, err := service.CreateAccount(context.Background(), 1)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedAccount, account)
		})
	}
}

func TestGetStatus(t *testing.T) {
	service, accountRepo, userRepo, _ := NewMock(t)
	tests := []struct {
		name           string
		prepareMock    func()
		expectedStatus *Status
		expectedError  error
	}{
		{
			name: "Verification pending",
			prepareMock: func() {
				accountRepo.EXPECT().FindAccountByUserID(gomock.Any(), 1).Return(&domain.StripeAccount{
					UserID:       1,
					AccountID:    "acct_1",
					Verification: `{"due_by":1700000000,"fields_needed":["legal_entity.dob"]}`,
				}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, StripeCustomerID: "cus_1"}, nil)
			},
			expectedStatus: &Status{
				Account: domain.StripeAccount{
					UserID:       1,
					AccountID:    "acct_1",
					Verification: `{"due_by":1700000000,"fields_needed":["legal_entity.dob"]}`,
				},
				HasPaymentMethod: true,
				Payable:          false,
				FieldsNeeded:     []string{"legal_entity.dob"},
			},
		},
		{
			name: "No account row",
			prepareMock: func() {
				accountRepo.EXPECT().FindAccountByUserID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			status, err := service.GetStatus(context.Background(), 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, status)
		})
	}
}

func TestSetupPayment(t *testing.T) {
	service, accountRepo, userRepo, gateway := NewMock(t)
	tests := []struct {
		name          string
		cardToken     string
		accountID     string
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Card and payout account",
			cardToken: "tok_visa",
			accountID: "acct_1",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Email: "alice@example.com"}, nil)
				gateway.EXPECT().CreateCustomer(gomock.Any(), "alice@example.com", "tok_visa").Return("cus_1", nil)
				userRepo.EXPECT().SetCustomerID(gomock.Any(), 1, "cus_1").Return(nil)
				accountRepo.EXPECT().SetAccountID(gomock.Any(), 1, "acct_1").Return(true, nil)
				accountRepo.EXPECT().FindAccountByUserID(gomock.Any(), 1).Return(&domain.StripeAccount{UserID: 1, AccountID: "acct_1"}, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, StripeCustomerID: "cus_1"}, nil)
			},
		},
		{
			name:          "Nothing to update",
			prepareMock:   func() {},
			expectedError: ErrNothingToUpdate,
		},
		{
			name:          "Malformed account id",
			accountID:     "1234",
			prepareMock:   func() {},
			expectedError: ErrInvalidAccountID,
		},
		{
			name:      "Card declined",
			cardToken: "tok_chargeDeclined",
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Email: "alice@example.com"}, nil)
				gateway.EXPECT().CreateCustomer(gomock.Any(), "alice@example.com", "tok_chargeDeclined").Return("", errors.New("card declined"))
			},
			expectedError: errors.New("card could not be saved: card declined"),
		},
		{
			name:      "Missing account row",
			accountID: "acct_1",
			prepareMock: func() {
				accountRepo.EXPECT().SetAccountID(gomock.Any(), 1, "acct_1").Return(false, nil)
			},
			expectedError: ErrAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			status, err := service.SetupPayment(context.Background(), 1, tt.cardToken, tt.accountID)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, status)
				return
			}
			assert.NoError(t, err)
			assert.True(t, status.HasPaymentMethod)
			assert.True(t, status.Payable)
		})
	}
}
