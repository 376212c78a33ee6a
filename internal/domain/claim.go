package domain

import "time"

const (
	ClaimSubmitted = "Submitted"
	ClaimPending   = "Pending"
	ClaimApproved  = "Approved"
	ClaimRejected  = "Rejected"
	ClaimRequested = "Requested"
	ClaimPaid      = "Paid"
)

// ClaimLifetime is how long a claim stays open for votes.
const ClaimLifetime = 14 * 24 * time.Hour

const (
	SettlementNone       = ""
	SettlementPending    = "PENDING"
	SettlementRunning    = "RUNNING"
	SettlementIncomplete = "INCOMPLETE"
	SettlementComplete   = "COMPLETE"
)

// Open reports whether the claim still accepts votes.
func (c Claim) Open() bool {
	return c.Status == ClaimSubmitted || c.Status == ClaimPending
}

// blocking statuses hold the issue for their claimant.
func blocking(status string) bool {
	switch status {
	case ClaimSubmitted, ClaimPending, ClaimApproved, ClaimRequested, ClaimPaid:
		return true
	}
	return false
}

// HoldsIssue reports whether the claim keeps other users from bidding or claiming.
func (c Claim) HoldsIssue() bool {
	return blocking(c.Status)
}

// Claimable reports whether a new claim may be submitted on an issue with the given claims:
// none of them, the claimant's own included, may hold the issue.
func Claimable(claims []Claim) bool {
	for _, c := range claims {
		if blocking(c.Status) {
			return false
		}
	}
	return true
}

// BiddableBy reports whether userID may create a bid or change an offer on an
// issue with the given claims. A user whose own claim was rejected may always re-bid.
func BiddableBy(claims []Claim, userID int) bool {
	for _, c := range claims {
		if c.UserID == userID && c.Status == ClaimRejected {
			return true
		}
	}
	for _, c := range claims {
		if blocking(c.Status) {
			return false
		}
	}
	return true
}
