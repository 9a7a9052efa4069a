package service

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"vidplan/internal/httputil"
)

// notBlank rejects values that are empty after trimming whitespace. It runs
// alongside validation.Required, which lets whitespace-only strings through.
func notBlank(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be empty or only whitespace")
	}
	return nil
}

// validateRequiredText checks a patch field that must carry a usable value
// when supplied: not JSON null, not blank after trimming, within maxLen.
func validateRequiredText(field string, value *string, maxLen int) error {
	if value == nil {
		return fmt.Errorf("%s cannot be null", field)
	}
	if err := validation.Validate(*value,
		validation.Required,
		validation.Length(1, maxLen),
		validation.By(notBlank),
	); err != nil {
		return fmt.Errorf("%s: %v", field, err)
	}
	return nil
}

// validateOptionalText checks a nullable patch field: null is fine (clears
// the value), anything else must fit maxLen after trimming.
func validateOptionalText(field string, value *string, maxLen int) error {
	if value == nil {
		return nil
	}
	if err := validation.Validate(strings.TrimSpace(*value),
		validation.Length(0, maxLen),
	); err != nil {
		return fmt.Errorf("%s: %v", field, err)
	}
	return nil
}

// normalizeOptional trims a supplied optional value and collapses empty
// strings to nil. Empty string is never stored as distinct from null.
func normalizeOptional(o httputil.OptionalString) *string {
	if o.Value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*o.Value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
