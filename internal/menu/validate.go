package menu

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/MosaabBleik/menu-service/internal/models"
)

// DecodeInput reads a create or update body. Malformed JSON and values of
// the wrong type are reported as *ValidationError.
func DecodeInput(r io.Reader) (models.MenuInput, error) {
	var in models.MenuInput
	dec := json.NewDecoder(r)
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return in, &ValidationError{Reason: "request body is empty"}
		}
		return in, &ValidationError{Reason: err.Error()}
	}
	// The body holds exactly one JSON value.
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return models.MenuInput{}, &ValidationError{Reason: "unexpected data after JSON object"}
	}
	return in, nil
}

// Validate requires name and description to be present and not blank, and
// price and available to be present and not null. Zero prices, negative
// prices and available=false are accepted.
func Validate(in models.MenuInput) error {
	var missing []string
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		missing = append(missing, "name")
	}
	if in.Description == nil || strings.TrimSpace(*in.Description) == "" {
		missing = append(missing, "description")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	if in.Available == nil {
		missing = append(missing, "available")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
