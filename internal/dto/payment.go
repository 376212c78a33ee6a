package dto

import "github.com/shopspring/decimal"

type PaymentSetupRequestDTO struct {
	CardToken string `json:"card_token,omitempty" example:"tok_visa"`
	AccountID string `json:"account_id,omitempty" example:"acct_1Abc"`
}

type PaymentStatusResponseDTO struct {
	AccountID        string          `json:"account_id,omitempty" example:"acct_1Abc"`
	AvailableBalance decimal.Decimal `json:"available_balance" swaggertype:"string" example:"12.00"`
	HasPaymentMethod bool            `json:"has_payment_method" example:"true"`
	Payable          bool            `json:"payable" example:"false"`
	FieldsNeeded     []string        `json:"fields_needed,omitempty"`
}

type WebhookRequestDTO struct {
	ID     string `json:"id" example:"evt_1Abc"`
	UserID string `json:"user_id,omitempty" example:"acct_1Abc"`
}

type WebhookResponseDTO struct {
	EventID   string `json:"event_id" example:"evt_1Abc"`
	Type      string `json:"type,omitempty" example:"account.updated"`
	Duplicate bool   `json:"duplicate" example:"false"`
	Processed bool   `json:"processed" example:"true"`
}
