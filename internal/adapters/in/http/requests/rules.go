// Package requests holds the shared validation rule sets applied to wizard
// draft payloads and to final submission bodies. Draft saves and the public
// endpoints validate the same raw field maps with the same rules, so a step
// that passed as a draft also passes at submission time.
package requests

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ValidationErrors maps a field name to its failure messages.
type ValidationErrors map[string][]string

// IsValid reports whether no rule failed.
func (e ValidationErrors) IsValid() bool {
	return len(e) == 0
}

// add records one failure message for a field.
func (e ValidationErrors) add(field, message string) {
	e[field] = append(e[field], message)
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes markup from user-entered text before validation.
func StripHTML(input string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(input, ""))
}

// fieldLabel renders a field name the way failure messages spell it.
func fieldLabel(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

// validator accumulates rule failures against one raw field map.
type validator struct {
	data   map[string]any
	errors ValidationErrors
}

func newValidator(data map[string]any) *validator {
	return &validator{
		data:   data,
		errors: ValidationErrors{},
	}
}

// stringValue fetches a field as a trimmed, HTML-stripped string.
func (v *validator) stringValue(field string) (string, bool) {
	raw, ok := v.data[field]
	if !ok || raw == nil {
		return "", false
	}

	value, ok := raw.(string)
	if !ok {
		return "", false
	}

	value = StripHTML(value)
	return value, value != ""
}

// intValue fetches a field as an integer, accepting JSON numbers and
// numeric strings.
func (v *validator) intValue(field string) (int64, bool) {
	raw, ok := v.data[field]
	if !ok || raw == nil {
		return 0, false
	}

	switch value := raw.(type) {
	case float64:
		if value != float64(int64(value)) {
			return 0, false
		}
		return int64(value), true
	case int:
		return int64(value), true
	case int64:
		return value, true
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func (v *validator) requireString(field string, maxLength int) {
	value, ok := v.stringValue(field)
	if !ok {
		v.errors.add(field, fmt.Sprintf("The %s field is required.", fieldLabel(field)))
		return
	}

	if maxLength > 0 && len(value) > maxLength {
		v.errors.add(field, fmt.Sprintf(
			"The %s field must not be greater than %d characters.", fieldLabel(field), maxLength))
	}
}

func (v *validator) requireUUID(field string) {
	value, ok := v.stringValue(field)
	if !ok {
		v.errors.add(field, fmt.Sprintf("The %s field is required.", fieldLabel(field)))
		return
	}

	if _, err := uuid.Parse(value); err != nil {
		v.errors.add(field, fmt.Sprintf("The %s field must be a valid UUID.", fieldLabel(field)))
	}
}

// dateLayouts are the formats the wizard submits dates in.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func (v *validator) requireDate(field string) (time.Time, bool) {
	value, ok := v.stringValue(field)
	if !ok {
		v.errors.add(field, fmt.Sprintf("The %s field is required.", fieldLabel(field)))
		return time.Time{}, false
	}

	parsed, ok := parseDate(value)
	if !ok {
		v.errors.add(field, fmt.Sprintf("The %s field must be a valid date.", fieldLabel(field)))
		return time.Time{}, false
	}

	return parsed, true
}

func (v *validator) requirePositiveInt(field string) {
	value, ok := v.intValue(field)
	if !ok {
		v.errors.add(field, fmt.Sprintf("The %s field is required.", fieldLabel(field)))
		return
	}

	if value < 1 {
		v.errors.add(field, fmt.Sprintf("The %s field must be at least 1.", fieldLabel(field)))
	}
}

func (v *validator) optionalIn(field string, allowed ...string) {
	raw, ok := v.data[field]
	if !ok || raw == nil {
		return
	}

	value, _ := raw.(string)
	for _, candidate := range allowed {
		if strings.EqualFold(value, candidate) {
			return
		}
	}

	v.errors.add(field, fmt.Sprintf("The selected %s is invalid.", fieldLabel(field)))
}

func (v *validator) requireIn(field string, allowed ...string) {
	if _, ok := v.stringValue(field); !ok {
		v.errors.add(field, fmt.Sprintf("The %s field is required.", fieldLabel(field)))
		return
	}

	v.optionalIn(field, allowed...)
}

func (v *validator) requirePhone(field string) {
	value, ok := v.stringValue(field)
	if !ok {
		v.errors.add(field, fmt.Sprintf("The %s field is required.", fieldLabel(field)))
		return
	}

	if _, err := kernel.NewPhoneNumber(value); err != nil {
		v.errors.add(field, "Invalid phone number entered")
	}
}
