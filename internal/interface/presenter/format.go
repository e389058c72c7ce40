package presenter

import (
	"fmt"
	"io"
	"strings"

	"flights/internal/domain/entity"
	"flights/pkg/utils"

	"gopkg.in/yaml.v3"
)

// Format selects how a flight list is written
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an output format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", name)
	}
}

// Render produces the text for flights in the given format
func Render(flights []entity.Flight, format Format) (string, error) {
	if flights == nil {
		flights = []entity.Flight{}
	}

	switch format {
	case FormatTable, "":
		return RenderTable(flights), nil
	case FormatJSON:
		data, err := utils.MarshalPretty(flights)
		if err != nil {
			return "", fmt.Errorf("encode json: %w", err)
		}
		return string(data) + "\n", nil
	case FormatYAML:
		data, err := yaml.Marshal(flights)
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// Write renders flights and writes them to w
func Write(w io.Writer, flights []entity.Flight, format Format) error {
	out, err := Render(flights, format)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
