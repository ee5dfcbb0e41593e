package report

import (
	"fmt"
	"strings"
	"time"
)

// DateOrder selects how ambiguous numeric dates such as 03/04/2024 are read.
type DateOrder int

const (
	DayFirst DateOrder = iota
	MonthFirst
)

// ParseDateOrder maps the configuration value to a DateOrder. Unknown values
// fall back to day-first, which is what the source spreadsheets use.
func ParseDateOrder(value string) DateOrder {
	if strings.EqualFold(strings.TrimSpace(value), "month-first") {
		return MonthFirst
	}
	return DayFirst
}

var dayFirstLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
	"02/01/06",
}

var monthFirstLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"01.02.2006",
	"01/02/06",
}

func parseActivityDate(raw string, order DateOrder) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	layouts := append([]string{"2006-01-02"}, dayFirstLayouts...)
	if order == MonthFirst {
		layouts = append([]string{"2006-01-02"}, monthFirstLayouts...)
	}

	for _, layout := range layouts {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		// time.Parse normalizes overflow dates (31/02 -> 02/03); only a
		// value that round-trips to the same text is a real calendar day.
		if parsed.Format(layout) != raw {
			continue
		}
		return parsed, nil
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %q", raw)
}

var clockLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04PM",
	"15h04",
	"15h",
	"15.04",
}

// NormalizeClock coerces a raw time cell to canonical "HH:MM". Values that
// do not parse in any accepted layout become "" rather than failing the row.
func NormalizeClock(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	cleaned := strings.ToUpper(raw)
	cleaned = strings.ReplaceAll(cleaned, "H", "h")
	for _, layout := range clockLayouts {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			return parsed.Format("15:04")
		}
	}
	return ""
}

// shiftHours is the fixed length of a reported shift; end time is derived,
// never measured.
const shiftHours = 4

// EndTime returns start + 4h on a 24h clock ("22:30" -> "02:30"). An empty
// or unparseable start yields "".
func EndTime(start string) string {
	parsed, err := time.Parse("15:04", strings.TrimSpace(start))
	if err != nil {
		return ""
	}
	return parsed.Add(shiftHours * time.Hour).Format("15:04")
}
