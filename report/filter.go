package report

import (
	"sort"
	"strings"
	"time"

	"github.com/victor-kauan-coder/dashboard-relatorios/internal/timeutil"
)

// Selection describes one rendering pass: which people, which inclusive
// date range, and the reference month/year used for the report title.
type Selection struct {
	Names []string
	Role  string
	From  time.Time
	To    time.Time
	Month int
	Year  int
}

// Filter returns the records matching the selection, order preserved.
// Empty Names matches every person, empty Role every role, and a zero
// From/To leaves that end of the range open.
func Filter(records []Record, sel Selection) []Record {
	wanted := make(map[string]bool, len(sel.Names))
	for _, name := range sel.Names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			wanted[strings.ToLower(trimmed)] = true
		}
	}

	out := make([]Record, 0, len(records))
	for _, record := range records {
		if len(wanted) > 0 && !wanted[strings.ToLower(record.Name)] {
			continue
		}
		if sel.Role != "" && !strings.EqualFold(record.Role, sel.Role) {
			continue
		}
		day := timeutil.StartOfDay(record.Date)
		if !sel.From.IsZero() && day.Before(timeutil.StartOfDay(sel.From)) {
			continue
		}
		if !sel.To.IsZero() && day.After(timeutil.StartOfDay(sel.To)) {
			continue
		}
		out = append(out, record)
	}
	return out
}

// SortByDate returns a copy sorted ascending by activity date. The sort is
// stable: same-day records keep their original relative order.
func SortByDate(records []Record) []Record {
	sorted := append([]Record(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// Names lists the distinct person names present, sorted, for the filter UI.
func Names(records []Record) []string {
	seen := make(map[string]bool, len(records))
	out := make([]string, 0, len(records))
	for _, record := range records {
		name := strings.TrimSpace(record.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Group is one person's records for a rendering batch.
type Group struct {
	Name    string
	Records []Record
}

// GroupByName splits records per person. When names is non-empty the groups
// follow that order (people without records still get an empty group);
// otherwise groups follow first appearance in the data.
func GroupByName(records []Record, names []string) []Group {
	byName := make(map[string][]Record)
	order := make([]string, 0, len(names))
	seen := make(map[string]bool)

	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" || seen[strings.ToLower(trimmed)] {
			continue
		}
		seen[strings.ToLower(trimmed)] = true
		order = append(order, trimmed)
	}

	for _, record := range records {
		key := strings.ToLower(strings.TrimSpace(record.Name))
		byName[key] = append(byName[key], record)
		if len(names) == 0 && !seen[key] {
			seen[key] = true
			order = append(order, strings.TrimSpace(record.Name))
		}
	}

	groups := make([]Group, 0, len(order))
	for _, name := range order {
		groups = append(groups, Group{
			Name:    name,
			Records: byName[strings.ToLower(name)],
		})
	}
	return groups
}
