package web

import (
	"github.com/victor-kauan-coder/dashboard-relatorios/report"
)

type TableRow struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Activity string `json:"activity"`
}

type indexView struct {
	Title    string
	Warning  string
	People   []string
	Selected selectionView
	Rows     []TableRow
	Total    int
}

type selectionView struct {
	Names map[string]bool
	Role  string
	From  string
	To    string
}

func buildIndexView(all, filtered []report.Record, selection report.Selection, fetchFailed bool) indexView {
	view := indexView{
		Title:  "Relatórios de Atividade",
		People: report.Names(all),
		Rows:   buildTableRows(filtered),
	}
	view.Total = len(view.Rows)

	if fetchFailed {
		view.Warning = "Não foi possível carregar os dados da planilha. Tente novamente em instantes."
	}

	selected := selectionView{
		Names: make(map[string]bool, len(selection.Names)),
		Role:  selection.Role,
	}
	for _, name := range selection.Names {
		selected.Names[name] = true
	}
	if !selection.From.IsZero() {
		selected.From = selection.From.Format("2006-01-02")
	}
	if !selection.To.IsZero() {
		selected.To = selection.To.Format("2006-01-02")
	}
	view.Selected = selected

	return view
}

func buildTableRows(records []report.Record) []TableRow {
	sorted := report.SortByDate(records)
	rows := make([]TableRow, 0, len(sorted))
	for _, record := range sorted {
		rows = append(rows, TableRow{
			Date:     record.Date.Format("02/01/2006"),
			Name:     record.Name,
			Role:     record.Role,
			Start:    record.StartTime,
			End:      report.EndTime(record.StartTime),
			Activity: record.Activity,
		})
	}
	return rows
}
