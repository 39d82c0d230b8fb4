// Package validation holds custom validator tags shared by request binding and gateway response checks.
package validation

import (
	"strings"

	"github.com/SscSPs/voice_journal_app/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// SentimentLabelTag validates that a string field is one of the known sentiment labels.
const SentimentLabelTag = "sentimentlabel"

// RegisterCustomValidations adds the custom tags to v.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation(SentimentLabelTag, func(fl validator.FieldLevel) bool {
		return domain.SentimentLabel(strings.ToLower(fl.Field().String())).IsValid()
	})
}

// New returns a validator with the custom tags registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterCustomValidations(v); err != nil {
		// Only fails on an empty tag or nil func.
		panic(err)
	}
	return v
}
