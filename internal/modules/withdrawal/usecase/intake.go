package usecase

import (
	"wdr/internal/modules/withdrawal/dto"
	"wdr/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const DefaultChain = "unknown"

var validate = validator.New()

// fieldErrors maps IntakeInput fields to their refusal. Checks run in field
// declaration order and the first failure wins.
var fieldErrors = map[string]IntakeError{
	"Chain":                MissingChain,
	"Address":              MissingAddress,
	"Amount":               MissingAmount,
	"PublicCode":           MissingPublicCode,
	"RequirementConfirmed": RequirementNotConfirmed,
}

// Validate applies defaults to a raw submission and checks it. It has no side effects.
func Validate(in dto.WithdrawRequestInput) (dto.IntakeInput, error) {
	out := dto.IntakeInput{
		Chain:                validation.StringOr(in.Chain.Ptr(), DefaultChain),
		Address:              validation.StringOr(in.Address.Ptr(), ""),
		Amount:               validation.StringOr(in.Amount.Ptr(), ""),
		PublicCode:           validation.StringOr(in.PublicCode.Ptr(), ""),
		RequirementConfirmed: validation.BoolOr(in.RequirementConfirmed.Ptr(), false),
	}

	if err := validate.Struct(&out); err != nil {
		field, ok := validation.FirstFailedField(err)
		if !ok {
			return dto.IntakeInput{}, err
		}
		if ie, known := fieldErrors[field]; known {
			return dto.IntakeInput{}, ie
		}
		return dto.IntakeInput{}, err
	}
	return out, nil
}
