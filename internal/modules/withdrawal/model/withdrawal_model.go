package model

import "time"

// WithdrawalRecord is one accepted withdrawal request. Records live in process
// memory only; a restart clears them.
type WithdrawalRecord struct {
	ID                   string    `json:"id"`
	Status               Status    `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
	Chain                string    `json:"chain"`
	Address              string    `json:"address"`
	Amount               string    `json:"amount"` // as submitted, never parsed at intake
	PublicCode           string    `json:"publicCode"`
	RequirementConfirmed bool      `json:"requirementConfirmed"`
	SourceIP             string    `json:"sourceIp,omitempty"`
}
