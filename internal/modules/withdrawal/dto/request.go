package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"wdr/internal/modules/withdrawal/model"
)

// WithdrawRequestInput is the raw POST /api/withdraw-request body. Every field
// is optional; defaults are applied by the intake validator.
type WithdrawRequestInput struct {
	Chain                *FlexString `json:"chain"`
	Address              *FlexString `json:"address"`
	Amount               *FlexString `json:"amount"`
	PublicCode           *FlexString `json:"publicCode"`
	RequirementConfirmed *Flag       `json:"requirementConfirmed"`
}

// IntakeInput is the normalized submission. Field order is the check order.
type IntakeInput struct {
	Chain                string `json:"chain"                validate:"required"`
	Address              string `json:"address"              validate:"required"`
	Amount               string `json:"amount"               validate:"required"`
	PublicCode           string `json:"publicCode"           validate:"required"`
	RequirementConfirmed bool   `json:"requirementConfirmed" validate:"required"`
}

type SubmitOutput struct {
	ReceiptID string                 `json:"receiptId"`
	URL       string                 `json:"url"`
	Record    model.WithdrawalRecord `json:"record"`
}

type StatusUpdateInput struct {
	Status string `json:"status" validate:"required"`
}

type LogInput struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data"`
}

// FlexString accepts a JSON string or number; numbers keep their literal text
// so "amount": 2.50 is stored as "2.50".
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}
	switch b[0] {
	case '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	case 'n':
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", b)
		}
		*s = FlexString(n.String())
		return nil
	}
}

// Ptr returns nil for a nil receiver so absent fields can be defaulted.
func (s *FlexString) Ptr() *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

// Flag is true only for the JSON literal true. Any other value, including
// "true" as a string, decodes to false.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	*f = Flag(bytes.Equal(bytes.TrimSpace(b), []byte("true")))
	return nil
}

func (f *Flag) Ptr() *bool {
	if f == nil {
		return nil
	}
	v := bool(*f)
	return &v
}
