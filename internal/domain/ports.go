package domain

import "fmt"

// Message is an outbound notification.
type Message struct {
	Subject string
	Body    string
	From    string
	To      []string
}

// IssueInfo is what the issue tracker reports about an issue.
type IssueInfo struct {
	Title string
	State string
}

// ChargeRequest moves an offerer's adjusted contribution to the claimant.
type ChargeRequest struct {
	Offer          Offer
	Payout         Payout
	CustomerID     string
	Destination    string
	IdempotencyKey string
}

func RefundKey(offerID int) string {
	return fmt.Sprintf("refund-offer-%d", offerID)
}

func PayoutKey(payoutID int) string {
	return fmt.Sprintf("payout-%d", payoutID)
}
