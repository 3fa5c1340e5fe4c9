// Package validation holds the field validators for the admin console forms.
// Each field runs one ordered pipeline: required checks come first, format
// checks after, and validation stops at the first error per field.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Validator is a function that validates a string value and returns an error message if invalid.
type Validator func(v string) string

// emailRe requires a dotted domain, so "a@b" fails but "a@b.com" passes.
//
//nolint:gochecknoglobals // compiled once
var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// timeRangeRe matches "HH:mm - HH:mm" with zero-padded 24-hour times.
//
//nolint:gochecknoglobals // compiled once
var timeRangeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d - ([01]\d|2[0-3]):[0-5]\d$`)

// isoDateRe matches HTML date-picker output, yyyy-MM-dd.
//
//nolint:gochecknoglobals // compiled once
var isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dateLayout is the wire format the booking platform expects: MM-dd-yyyy.
const dateLayout = "01-02-2006"

// Required validates that a field is not empty after trimming.
func Required(fieldName string) Validator {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return fieldName + " is required."
		}
		return ""
	}
}

// MinRunes validates that a field has at least minLen characters.
// Uses rune count for proper Unicode support.
func MinRunes(fieldName string, minLen int) Validator {
	return func(v string) string {
		if utf8.RuneCountInString(strings.TrimSpace(v)) < minLen {
			return fmt.Sprintf("%s must be at least %d characters.", fieldName, minLen)
		}
		return ""
	}
}

// Email validates standard email grammar with a dotted domain.
func Email(fieldName string) Validator {
	return func(v string) string {
		if !emailRe.MatchString(strings.TrimSpace(v)) {
			return fieldName + " must be a valid email address."
		}
		return ""
	}
}

// AbsoluteURL validates that a field is a syntactically valid absolute
// http(s) URL. This is the single image rule for every form in the console.
func AbsoluteURL(fieldName string) Validator {
	return func(v string) string {
		p, err := url.Parse(strings.TrimSpace(v))
		if err != nil || (p.Scheme != "http" && p.Scheme != "https") || p.Host == "" {
			return fieldName + " must be a valid http(s) URL."
		}
		return ""
	}
}

// IntMin validates that a field is an integer no smaller than minVal.
func IntMin(fieldName string, minVal int) Validator {
	return func(v string) string {
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fieldName + " must be a number."
		}
		if i < minVal {
			return fmt.Sprintf("%s must be at least %d.", fieldName, minVal)
		}
		return ""
	}
}

// TimeRange validates the "HH:mm - HH:mm" slot format.
func TimeRange(fieldName string) Validator {
	return func(v string) string {
		if !timeRangeRe.MatchString(strings.TrimSpace(v)) {
			return fieldName + " must look like 08:00 - 09:00."
		}
		return ""
	}
}

// Date validates a calendar date in the MM-dd-yyyy wire format.
func Date(fieldName string) Validator {
	return func(v string) string {
		if _, err := time.Parse(dateLayout, strings.TrimSpace(v)); err != nil {
			return fieldName + " must be a valid MM-dd-yyyy date."
		}
		return ""
	}
}

// OneOf validates that a field matches one of the provided values exactly.
func OneOf(fieldName string, values []string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		for _, val := range values {
			if v == val {
				return ""
			}
		}
		return fieldName + " must be one of the available choices."
	}
}

// NormalizeDateInput converts HTML date-picker output (yyyy-MM-dd) to the
// MM-dd-yyyy wire format. Values already in wire format, or unparseable ones,
// pass through unchanged so the Date validator reports them.
func NormalizeDateInput(v string) string {
	v = strings.TrimSpace(v)
	if !isoDateRe.MatchString(v) {
		return v
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return v
	}
	return t.Format(dateLayout)
}

// FieldValidator provides a fluent API for validating multiple fields.
type FieldValidator struct {
	errors map[string]string
}

// New creates a new FieldValidator instance.
func New() *FieldValidator {
	return &FieldValidator{errors: make(map[string]string)}
}

// Validate validates a field with one or more validators.
// It stops at the first error for each field.
func (fv *FieldValidator) Validate(field, value string, validators ...Validator) *FieldValidator {
	for _, v := range validators {
		if err := v(value); err != "" {
			fv.errors[field] = err
			break // Stop at first error per field
		}
	}
	return fv
}

// Errors returns the accumulated validation errors.
func (fv *FieldValidator) Errors() map[string]string {
	return fv.errors
}
