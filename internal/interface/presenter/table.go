package presenter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"flights/internal/domain/entity"
)

// EmptyListMessage is printed instead of a table when there is nothing to show
const EmptyListMessage = "List of flights is empty."

// Fixed column widths. Values longer than a column are not truncated.
const (
	indexWidth        = 4
	destinationWidth  = 30
	departureWidth    = 20
	aircraftTypeWidth = 8
)

var tableBorder = fmt.Sprintf("+-%s-+-%s-+-%s-+-%s-+",
	strings.Repeat("-", indexWidth),
	strings.Repeat("-", destinationWidth),
	strings.Repeat("-", departureWidth),
	strings.Repeat("-", aircraftTypeWidth),
)

// RenderTable renders flights as a bordered table numbered from 1, or the
// empty list message. Every line ends with a newline.
func RenderTable(flights []entity.Flight) string {
	var b strings.Builder
	if len(flights) == 0 {
		b.WriteString(EmptyListMessage)
		b.WriteByte('\n')
		return b.String()
	}

	b.WriteString(tableBorder + "\n")
	fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
		center("No", indexWidth),
		center("Destination", destinationWidth),
		center("Departure Date", departureWidth),
		center("Aircraft Type", aircraftTypeWidth),
	)
	b.WriteString(tableBorder + "\n")

	for i, f := range flights {
		fmt.Fprintf(&b, "| %*d | %-*s | %-*s | %*s |\n",
			indexWidth, i+1,
			destinationWidth, f.Destination,
			departureWidth, f.DepartureDate,
			aircraftTypeWidth, f.AircraftType,
		)
		b.WriteString(tableBorder + "\n")
	}
	return b.String()
}

// center pads s to width runes, putting the odd space on the right
func center(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
