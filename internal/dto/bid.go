package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BidRequestDTO struct {
	URL   string          `json:"url" example:"https://github.com/codesy/codesy/issues/42"`
	Ask   decimal.Decimal `json:"ask" swaggertype:"string" example:"50.00"`
	Offer decimal.Decimal `json:"offer" swaggertype:"string" example:"25.00"`
}

type BidResponseDTO struct {
	ID           int             `json:"id" example:"7"`
	URL          string          `json:"url" example:"https://github.com/codesy/codesy/issues/42"`
	IssueID      int             `json:"issue_id" example:"3"`
	Ask          decimal.Decimal `json:"ask" swaggertype:"string" example:"50"`
	Offer        decimal.Decimal `json:"offer" swaggertype:"string" example:"25"`
	AskMatchSent *time.Time      `json:"ask_match_sent,omitempty" example:"2020-12-09T16:09:57+03:00"`
}
