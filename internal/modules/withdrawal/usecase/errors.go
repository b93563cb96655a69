package usecase

import "errors"

// IntakeError is the reason a submission was refused. Error() is the message
// returned to the submitter verbatim.
type IntakeError uint8

const (
	MissingChain IntakeError = iota + 1
	MissingAddress
	MissingAmount
	MissingPublicCode
	RequirementNotConfirmed
)

func (e IntakeError) Error() string {
	switch e {
	case MissingChain:
		return "Missing chain"
	case MissingAddress:
		return "Missing address"
	case MissingAmount:
		return "Missing amount"
	case MissingPublicCode:
		return "Missing publicCode"
	case RequirementNotConfirmed:
		return "Requirement not confirmed"
	default:
		return "Invalid request"
	}
}

var (
	ErrNotFound      = errors.New("Not found")
	ErrInvalidStatus = errors.New("status must be Completed or Rejected")
	ErrStatusFinal   = errors.New("status is already final")
)
