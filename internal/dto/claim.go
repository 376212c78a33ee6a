package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ClaimRequestDTO struct {
	URL      string `json:"url" example:"https://github.com/codesy/codesy/issues/42"`
	Evidence string `json:"evidence" example:"https://github.com/codesy/codesy/pull/43"`
}

type ClaimResponseDTO struct {
	ID               int       `json:"id" example:"5"`
	IssueID          int       `json:"issue_id" example:"3"`
	UserID           int       `json:"user_id" example:"1"`
	Evidence         string    `json:"evidence" example:"https://github.com/codesy/codesy/pull/43"`
	Status           string    `json:"status" example:"Submitted"`
	Created          time.Time `json:"created" example:"2020-12-09T16:09:57+03:00"`
	Expires          time.Time `json:"expires" example:"2020-12-23T16:09:57+03:00"`
	SettlementStatus string    `json:"settlement_status,omitempty" example:"COMPLETE"`
	SettlementError  string    `json:"settlement_error,omitempty"`
}

type FeeDTO struct {
	Kind    string          `json:"kind" example:"fee"`
	FeeType string          `json:"fee_type" example:"Stripe"`
	Amount  decimal.Decimal `json:"amount" swaggertype:"string" example:"1.75"`
}

type PayoutDTO struct {
	ID           int             `json:"id" example:"11"`
	UserID       int             `json:"user_id" example:"2"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"48.57"`
	Discount     decimal.Decimal `json:"discount" swaggertype:"string" example:"11.43"`
	ChargeAmount decimal.Decimal `json:"charge_amount" swaggertype:"string" example:"45.96"`
	APISuccess   bool            `json:"api_success" example:"true"`
	Fees         []FeeDTO        `json:"fees"`
}

type ClaimDetailsResponseDTO struct {
	ClaimResponseDTO
	Approvals    int         `json:"approvals" example:"1"`
	Rejections   int         `json:"rejections" example:"0"`
	OffersNeeded int         `json:"offers_needed" example:"2"`
	NeedsVote    bool        `json:"needs_vote" example:"false"`
	Payouts      []PayoutDTO `json:"payouts"`
}

type VoteRequestDTO struct {
	Approved bool `json:"approved" example:"true"`
}

type VoteResponseDTO struct {
	ID              int    `json:"id" example:"9"`
	ClaimID         int    `json:"claim_id" example:"5"`
	Approved        bool   `json:"approved" example:"true"`
	ClaimStatus     string `json:"claim_status" example:"Approved"`
	SettlementError string `json:"settlement_error,omitempty"`
}
