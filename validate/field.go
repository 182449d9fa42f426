package validate

import (
	"strings"
	"time"
)

// FieldType names the validator a field dispatches to, mirroring the CSS
// classes the original form markup used.
type FieldType string

const (
	FieldDate    FieldType = "date"
	FieldTime    FieldType = "time"
	FieldEmail   FieldType = "email"
	FieldPhone   FieldType = "phone"
	FieldPostal  FieldType = "postal"
	FieldCard    FieldType = "card"
	FieldDecimal FieldType = "decimal"
	FieldInteger FieldType = "integer"
	FieldText    FieldType = "text"
)

// Field is one submitted form value plus its validation constraints.
type Field struct {
	Name       string    `json:"name"`
	Type       FieldType `json:"type"`
	Value      string    `json:"value"`
	Required   bool      `json:"required"`
	Layout     string    `json:"layout,omitempty"`
	MinDate    string    `json:"minDate,omitempty"`
	MaxDate    string    `json:"maxDate,omitempty"`
	NoWeekends bool      `json:"noWeekends,omitempty"`
}

// FieldResult carries the normalized value or the message to show next to
// the field. An empty Message means the field passed.
type FieldResult struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Message string `json:"message,omitempty"`
}

// CheckField validates a single field the way the original form glue did:
// required-ness first, then the type-specific validator. Empty optional
// fields pass untouched.
func CheckField(field Field, now time.Time) FieldResult {
	result := FieldResult{Name: field.Name, Value: field.Value}

	value := field.Value
	if strings.TrimSpace(value) == "" {
		if field.Required {
			result.Message = "This field is required."
		}
		return result
	}

	switch field.Type {
	case FieldDate:
		rule := DateRule{
			Layout:     field.Layout,
			MinDate:    field.MinDate,
			MaxDate:    field.MaxDate,
			NoWeekends: field.NoWeekends,
		}
		formatted, message := rule.Check(value, now)
		result.Value, result.Message = formatted, message
	case FieldTime:
		formatted, message := TimeRule{Layout: field.Layout}.Check(value, now)
		result.Value, result.Message = formatted, message
	case FieldEmail:
		result.Value = strings.TrimSpace(value)
		if !Email(value) {
			result.Message = "Invalid email address."
		}
	case FieldPhone:
		normalized, ok := NormalizePhone(value)
		result.Value = normalized
		if !ok {
			result.Message = "Invalid phone number."
		}
	case FieldPostal:
		normalized, ok := NormalizePostal(value)
		result.Value = normalized
		if !ok {
			result.Message = "Invalid postal code."
		}
	case FieldCard:
		normalized, ok := NormalizeCard(value)
		result.Value = normalized
		if !ok {
			result.Message = "Invalid library card number."
		}
	case FieldDecimal:
		if !Decimal(value) {
			result.Message = "Invalid decimal number."
		}
	case FieldInteger:
		if !Integer(value) {
			result.Message = "Invalid integer."
		}
	case FieldText, "":
		// Only the required check applies.
	}

	return result
}

// CheckFields validates every field and reports whether all of them passed.
func CheckFields(fields []Field, now time.Time) ([]FieldResult, bool) {
	results := make([]FieldResult, 0, len(fields))
	valid := true
	for _, field := range fields {
		result := CheckField(field, now)
		if result.Message != "" {
			valid = false
		}
		results = append(results, result)
	}
	return results, valid
}
