package report

import (
	"strings"
	"time"
)

// Record is one normalized activity entry derived from one spreadsheet row.
// Date is always valid; rows whose date column does not parse are dropped
// during normalization. StartTime is a canonical "HH:MM" string or "".
type Record struct {
	Name        string
	Role        string
	Supervisor  string
	Date        time.Time
	StartTime   string
	Activity    string
	Objective   string
	Rationale   string
	Reflections string

	// Extra holds values from columns the normalizer does not recognize,
	// keyed by normalized header name.
	Extra map[string]string
}

// DefaultRole labels records whose role column is empty or missing.
const DefaultRole = "monitor"

type rowValues map[string]string

func (v rowValues) get(keys ...string) string {
	for _, key := range keys {
		if value, ok := v[normalizeHeader(key)]; ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

// normalizeHeader reduces a header cell to lower-case letters and digits so
// that "ATIVIDADE(S) REALIZADA(S)", "Atividades Realizadas" and
// "atividades_realizadas" all key the same column.
func normalizeHeader(input string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r > 127:
			b.WriteRune(r)
		}
	}
	return b.String()
}
