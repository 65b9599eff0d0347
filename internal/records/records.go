// Package records loads lists of records from YAML or JSON documents and extracts field values from them.
package records

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingField is returned when a record does not contain a requested field.
	ErrMissingField = errors.New("missing field")

	// ErrNotNumeric is returned when a field value cannot be interpreted as a number.
	ErrNotNumeric = errors.New("not numeric")
)

// Record is a single record, mapping field names to values.
type Record map[string]any

// Load reads the file at path and decodes it. See Decode.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}

	return Decode(data)
}

// Decode decodes a YAML or JSON document containing a list of records.
// An empty document decodes to an empty, non-nil list.
func Decode(data []byte) ([]Record, error) {
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}

	if records == nil {
		records = []Record{}
	}

	return records, nil
}

// String returns the value of field formatted as a string.
func (r Record) String(field string) (string, error) {
	value, ok := r[field]
	if !ok || value == nil {
		return "", fmt.Errorf("%w: %s", ErrMissingField, field)
	}

	return fmt.Sprint(value), nil
}

// Number returns the value of field as a number.
// Strings are parsed as floating-point numbers.
func (r Record) Number(field string) (float64, error) {
	value, ok := r[field]
	if !ok || value == nil {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, field)
	}

	switch v := value.(type) {
	case int:
		return float64(v), nil

	case int64:
		return float64(v), nil

	case uint64:
		return float64(v), nil

	case float64:
		return v, nil

	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %q", ErrNotNumeric, field, v)
		}

		return f, nil

	default:
		return 0, fmt.Errorf("%w: %s: %v", ErrNotNumeric, field, v)
	}
}
