// internal/domain/entity/flight.go
package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Flight is a single entry of a flight list. Records carry no identity;
// two flights with equal fields are only told apart by their position.
type Flight struct {
	Destination   string `json:"destination" yaml:"destination" bson:"destination"`
	DepartureDate string `json:"departure_date" yaml:"departure_date" bson:"departure_date"`
	AircraftType  string `json:"aircraft_type" yaml:"aircraft_type" bson:"aircraft_type"`
}

// NewFlight builds a flight from raw text. Values are kept exactly as given.
func NewFlight(destination, departureDate, aircraftType string) Flight {
	return Flight{
		Destination:   destination,
		DepartureDate: departureDate,
		AircraftType:  aircraftType,
	}
}

// UnmarshalJSON accepts records written by other tools: absent keys and
// nulls become "", numbers and booleans keep their literal text.
func (f *Flight) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("flight record must be a JSON object, got %s", data)
	}

	fields := []struct {
		key string
		dst *string
	}{
		{"destination", &f.Destination},
		{"departure_date", &f.DepartureDate},
		{"aircraft_type", &f.AircraftType},
	}

	*f = Flight{}
	for _, field := range fields {
		value, ok := raw[field.key]
		if !ok {
			continue
		}
		text, err := scalarText(value)
		if err != nil {
			return fmt.Errorf("field %q: %w", field.key, err)
		}
		*field.dst = text
	}
	return nil
}

func scalarText(value json.RawMessage) (string, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		return "", nil
	}

	switch value[0] {
	case '"':
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("expected a scalar value, got %s", value)
	default:
		// numbers and booleans
		return string(value), nil
	}
}
