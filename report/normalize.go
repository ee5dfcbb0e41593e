package report

import "strings"

// Options carries the explicit formatting configuration for one
// normalization pass. There is no ambient locale state.
type Options struct {
	DateOrder   DateOrder
	DefaultRole string
}

var knownColumns = map[string][]string{
	"name":        {"nome", "nomedomonitor", "monitor", "nomecompleto"},
	"role":        {"função", "funcao", "categoria", "cargo"},
	"supervisor":  {"preceptor", "supervisor", "nomedopreceptor"},
	"date":        {"datadaatividade", "data", "dia"},
	"start":       {"horáriodeinício", "horariodeinicio", "horadeinício", "horadeinicio", "início", "inicio"},
	"activity":    {"atividadesrealizadas", "atividaderealizada", "atividades", "atividade"},
	"objective":   {"objetivo", "objetivodaatividade"},
	"rationale":   {"justificativa"},
	"reflections": {"reflexões", "reflexoes", "considerações", "consideracoes"},
}

// Normalize converts raw spreadsheet rows (row 0 = header) into Records.
// Rows without a parseable activity date are dropped silently; survivor
// order is preserved. A header-only or empty input yields no Records.
func Normalize(rows [][]string, opts Options) []Record {
	if len(rows) < 2 {
		return []Record{}
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = normalizeHeader(cell)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		values := make(rowValues, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(row) {
				values[key] = row[i]
			}
		}

		date, err := parseActivityDate(values.get(knownColumns["date"]...), opts.DateOrder)
		if err != nil {
			continue
		}

		record := Record{
			Name:        values.get(knownColumns["name"]...),
			Role:        values.get(knownColumns["role"]...),
			Supervisor:  values.get(knownColumns["supervisor"]...),
			Date:        date,
			StartTime:   NormalizeClock(values.get(knownColumns["start"]...)),
			Activity:    values.get(knownColumns["activity"]...),
			Objective:   values.get(knownColumns["objective"]...),
			Rationale:   values.get(knownColumns["rationale"]...),
			Reflections: values.get(knownColumns["reflections"]...),
			Extra:       extraColumns(values),
		}
		if record.Role == "" {
			record.Role = fallbackRole(opts)
		}
		records = append(records, record)
	}

	return records
}

func fallbackRole(opts Options) string {
	if strings.TrimSpace(opts.DefaultRole) != "" {
		return strings.TrimSpace(opts.DefaultRole)
	}
	return DefaultRole
}

func extraColumns(values rowValues) map[string]string {
	known := make(map[string]bool)
	for _, aliases := range knownColumns {
		for _, alias := range aliases {
			known[normalizeHeader(alias)] = true
		}
	}

	extra := make(map[string]string)
	for key, value := range values {
		if known[key] || strings.TrimSpace(value) == "" {
			continue
		}
		extra[key] = strings.TrimSpace(value)
	}
	if len(extra) == 0 {
		return nil
	}
	return extra
}
