// Package web serves the report dashboard: a filterable table of normalized
// activity records plus PDF and Excel downloads. Localhost single-user UI,
// no auth in this mode.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/victor-kauan-coder/dashboard-relatorios/config"
	"github.com/victor-kauan-coder/dashboard-relatorios/internal/timeutil"
	"github.com/victor-kauan-coder/dashboard-relatorios/output"
	"github.com/victor-kauan-coder/dashboard-relatorios/pdf"
	"github.com/victor-kauan-coder/dashboard-relatorios/report"
)

//go:embed templates/*.html
var templateFS embed.FS

// RecordProvider yields the current normalized snapshot of the sheet.
type RecordProvider interface {
	Records(ctx context.Context) ([]report.Record, error)
}

type Server struct {
	provider RecordProvider
	cfg      config.Config
	log      *zap.Logger
	mux      *http.ServeMux
}

func NewServer(provider RecordProvider, cfg config.Config, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	server := &Server{
		provider: provider,
		cfg:      cfg,
		log:      log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleIndex)
	mux.HandleFunc("GET /api/records", server.handleAPIRecords)
	mux.HandleFunc("GET /report.pdf", server.handleReportPDF)
	mux.HandleFunc("GET /export.xlsx", server.handleExportExcel)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	selection, err := parseSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	all, fetchErr := s.provider.Records(r.Context())
	if fetchErr != nil {
		s.log.Warn("load records failed", zap.Error(fetchErr))
	}
	filtered := report.Filter(all, selection)

	view := buildIndexView(all, filtered, selection, fetchErr != nil)
	if err := renderTemplate(w, "index.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleAPIRecords(w http.ResponseWriter, r *http.Request) {
	selection, err := parseSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	all, fetchErr := s.provider.Records(r.Context())
	if fetchErr != nil {
		http.Error(w, fmt.Sprintf("load records: %v", fetchErr), http.StatusBadGateway)
		return
	}

	rows := buildTableRows(report.Filter(all, selection))
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	selection, err := parseSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	all, fetchErr := s.provider.Records(r.Context())
	if fetchErr != nil {
		http.Error(w, fmt.Sprintf("load records: %v", fetchErr), http.StatusBadGateway)
		return
	}

	filtered := report.Filter(all, selection)
	people := s.buildPeople(filtered, selection)
	document, err := pdf.Render(people, pdf.Sheet{
		InstitutionLines: s.cfg.Report.InstitutionLines,
		Title:            s.cfg.Report.Title,
		Month:            selection.Month,
		Year:             selection.Year,
	})
	if err != nil {
		s.log.Error("render pdf failed", zap.Error(err))
		http.Error(w, fmt.Sprintf("generate report: %v", err), http.StatusInternalServerError)
		return
	}

	from, to := rangeBounds(selection)
	names := make([]string, 0, len(people))
	for _, person := range people {
		names = append(names, person.Name)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", pdf.Filename(names, from, to)))
	_, _ = w.Write(document)
}

func (s *Server) handleExportExcel(w http.ResponseWriter, r *http.Request) {
	selection, err := parseSelection(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	all, fetchErr := s.provider.Records(r.Context())
	if fetchErr != nil {
		http.Error(w, fmt.Sprintf("load records: %v", fetchErr), http.StatusBadGateway)
		return
	}

	filtered := report.Filter(all, selection)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="relatorios.xlsx"`)
	if err := output.WriteRecordsExcelTo(w, filtered); err != nil {
		s.log.Error("export excel failed", zap.Error(err))
	}
}

// buildPeople turns the filtered records into one renderer subject per
// person. Explicitly selected names with no records still get an entry so
// their page carries the empty-table marker instead of being skipped.
func (s *Server) buildPeople(records []report.Record, selection report.Selection) []pdf.Person {
	groups := report.GroupByName(records, selection.Names)
	return pdf.PeopleFromGroups(groups, s.cfg.Report.DefaultRole, s.cfg.Report.DefaultSupervisor)
}

func parseSelection(r *http.Request) (report.Selection, error) {
	query := r.URL.Query()

	var selection report.Selection
	for _, name := range query["name"] {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			selection.Names = append(selection.Names, trimmed)
		}
	}
	selection.Role = strings.TrimSpace(query.Get("role"))

	var err error
	if raw := strings.TrimSpace(query.Get("from")); raw != "" {
		if selection.From, err = parseISODate(raw); err != nil {
			return selection, fmt.Errorf("invalid from date (expected YYYY-MM-DD)")
		}
	}
	if raw := strings.TrimSpace(query.Get("to")); raw != "" {
		if selection.To, err = parseISODate(raw); err != nil {
			return selection, fmt.Errorf("invalid to date (expected YYYY-MM-DD)")
		}
	}
	if !selection.From.IsZero() && !selection.To.IsZero() && selection.From.After(selection.To) {
		return selection, fmt.Errorf("invalid range: from must be <= to")
	}

	selection.Month, selection.Year = referencePeriod(query, selection.From)
	return selection, nil
}

// referencePeriod resolves the month/year that titles the report: explicit
// query values win, then the range start, then the current month.
func referencePeriod(query map[string][]string, from time.Time) (int, int) {
	month, year := 0, 0
	if values, ok := query["month"]; ok && len(values) > 0 {
		month, _ = strconv.Atoi(strings.TrimSpace(values[0]))
	}
	if values, ok := query["year"]; ok && len(values) > 0 {
		year, _ = strconv.Atoi(strings.TrimSpace(values[0]))
	}

	fallback := time.Now()
	if !from.IsZero() {
		fallback = from
	}
	if month < 1 || month > 12 {
		month = int(fallback.Month())
	}
	if year == 0 {
		year = fallback.Year()
	}
	return month, year
}

// rangeBounds picks the dates for the download filename: the selection's
// range when set, otherwise the reference month's first and last day.
func rangeBounds(selection report.Selection) (time.Time, time.Time) {
	from, to := selection.From, selection.To
	if from.IsZero() {
		from = time.Date(selection.Year, time.Month(selection.Month), 1, 0, 0, 0, 0, time.Local)
	}
	if to.IsZero() {
		to = timeutil.EndOfMonth(from)
	}
	return from, to
}

func parseISODate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return timeutil.StartOfDay(parsed), nil
}

func renderTemplate(w http.ResponseWriter, pageTemplate string, data any) error {
	tmpl, err := template.New("base.html").ParseFS(templateFS, "templates/base.html", "templates/"+pageTemplate)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", pageTemplate, err)
	}
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("render template %s: %w", pageTemplate, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
