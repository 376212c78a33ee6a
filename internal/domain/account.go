package domain

import "encoding/json"

// IsPayable reports whether the account can receive transfers: an account id has
// been assigned and the provider no longer lists a verification deadline.
func (a StripeAccount) IsPayable() bool {
	if a.AccountID == "" {
		return false
	}
	if a.Verification == "" {
		return true
	}
	var v struct {
		DueBy *int64 `json:"due_by"`
	}
	if err := json.Unmarshal([]byte(a.Verification), &v); err != nil {
		return false
	}
	return v.DueBy == nil
}

// FieldsNeeded lists the verification fields the provider still requires.
func (a StripeAccount) FieldsNeeded() []string {
	var v struct {
		FieldsNeeded []string `json:"fields_needed"`
	}
	if err := json.Unmarshal([]byte(a.Verification), &v); err != nil {
		return nil
	}
	return v.FieldsNeeded
}
