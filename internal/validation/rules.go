// Package validation holds the field rules shared by client and item request bodies.
package validation

import (
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/itemsapi/internal/errors"
)

// MaxTextLength bounds every stored text column (client name, item title and description).
const MaxTextLength = 255

// WrapValidationError marks err as ErrInvalidInput so it maps to a 422.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank rejects strings made only of whitespace. Nil pointers pass.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Printable rejects control characters other than tab and newline.
var Printable = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.IndexFunc(s, func(r rune) bool {
			return unicode.IsControl(r) && r != '\t' && r != '\n'
		}) < 0
	},
	validation.NewError("validation_printable", "must not contain control characters"),
)

// RequiredText is the rule set of a mandatory short text field such as a client name or item title.
func RequiredText() []validation.Rule {
	return []validation.Rule{
		validation.Required,
		NotBlank,
		Printable,
		validation.RuneLength(1, MaxTextLength),
	}
}

// PatchText is RequiredText for an optional *string: absent is fine, present must be valid.
func PatchText() []validation.Rule {
	return []validation.Rule{
		validation.NilOrNotEmpty,
		NotBlank,
		Printable,
		validation.RuneLength(1, MaxTextLength),
	}
}

// FreeText allows empty values, e.g. an item description.
func FreeText() []validation.Rule {
	return []validation.Rule{
		Printable,
		validation.RuneLength(0, MaxTextLength),
	}
}
