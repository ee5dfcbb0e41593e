package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/victor-kauan-coder/dashboard-relatorios/config"
	"github.com/victor-kauan-coder/dashboard-relatorios/internal/timeutil"
	"github.com/victor-kauan-coder/dashboard-relatorios/output"
	"github.com/victor-kauan-coder/dashboard-relatorios/pdf"
	"github.com/victor-kauan-coder/dashboard-relatorios/report"
	"github.com/victor-kauan-coder/dashboard-relatorios/sheet"
)

var (
	exportNames  []string
	exportRole   string
	exportFrom   string
	exportTo     string
	exportMonth  int
	exportYear   int
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Fetch, filter, and render reports from the CLI",
	Long: `Fetch the sheet once, apply the same person/role/date filters as the
dashboard, and write either the attendance PDF or an Excel export.

Output format can be selected explicitly via --format or inferred from --output extension.`,
	Example: `
  # Attendance PDF for one person
  relatorios export --name "Ana" --from 2024-03-01 --to 2024-03-31 --output ./frequencia.pdf

  # Batch PDF for everyone with records in the range
  relatorios export --from 2024-03-01 --to 2024-03-31 --output ./frequencias.pdf

  # Excel export of the filtered rows
  relatorios export --from 2024-03-01 --to 2024-03-31 --output ./relatorios.xlsx
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		selection, err := buildExportSelection()
		if err != nil {
			return err
		}

		source, err := sheet.NewGoogleSource(cmd.Context(), sheet.SourceConfig{
			URL:             cfg.Sheet.URL,
			ReadRange:       cfg.Sheet.ReadRange,
			CredentialsFile: cfg.Sheet.CredentialsFile,
			ClientEmail:     cfg.Sheet.ClientEmail,
			PrivateKey:      cfg.Sheet.PrivateKey,
		})
		if err != nil {
			return err
		}

		rows, err := source.FetchRows(cmd.Context())
		if err != nil {
			return err
		}
		records := report.Filter(report.Normalize(rows, cfg.NormalizeOptions()), selection)

		switch format {
		case "pdf":
			groups := report.GroupByName(records, selection.Names)
			people := pdf.PeopleFromGroups(groups, cfg.Report.DefaultRole, cfg.Report.DefaultSupervisor)
			document, renderErr := pdf.Render(people, pdf.Sheet{
				InstitutionLines: cfg.Report.InstitutionLines,
				Title:            cfg.Report.Title,
				Month:            selection.Month,
				Year:             selection.Year,
			})
			if renderErr != nil {
				return renderErr
			}
			if err := os.WriteFile(exportOutput, document, 0o644); err != nil {
				return fmt.Errorf("write pdf output %s: %w", exportOutput, err)
			}
			fmt.Printf("Export completed. People: %d, Records: %d, Format: pdf, File: %s\n", len(people), len(records), exportOutput)
		case "excel":
			if err := output.WriteRecordsExcel(exportOutput, records); err != nil {
				return err
			}
			fmt.Printf("Export completed. Records: %d, Format: excel, File: %s\n", len(records), exportOutput)
		default:
			return fmt.Errorf("unsupported export format: %s (supported: pdf, excel)", format)
		}
		return nil
	},
}

func buildExportSelection() (report.Selection, error) {
	selection := report.Selection{
		Names: exportNames,
		Role:  strings.TrimSpace(exportRole),
	}

	var err error
	if strings.TrimSpace(exportFrom) != "" {
		if selection.From, err = parseCLIDate(exportFrom); err != nil {
			return selection, fmt.Errorf("invalid --from value: %w", err)
		}
	}
	if strings.TrimSpace(exportTo) != "" {
		if selection.To, err = parseCLIDate(exportTo); err != nil {
			return selection, fmt.Errorf("invalid --to value: %w", err)
		}
	}
	if !selection.From.IsZero() && !selection.To.IsZero() && selection.From.After(selection.To) {
		return selection, fmt.Errorf("invalid range: --from must be <= --to")
	}

	reference := time.Now()
	if !selection.From.IsZero() {
		reference = selection.From
	}
	selection.Month = exportMonth
	if selection.Month < 1 || selection.Month > 12 {
		selection.Month = int(reference.Month())
	}
	selection.Year = exportYear
	if selection.Year == 0 {
		selection.Year = reference.Year()
	}

	return selection, nil
}

func parseCLIDate(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(raw), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD, got %q", raw)
	}
	return timeutil.StartOfDay(parsed), nil
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "pdf"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringArrayVar(&exportNames, "name", nil, "Person name to include (repeatable; omit for everyone)")
	exportCmd.Flags().StringVar(&exportRole, "role", "", "Filter by role/category")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "Range start, format YYYY-MM-DD (inclusive)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "Range end, format YYYY-MM-DD (inclusive)")
	exportCmd.Flags().IntVar(&exportMonth, "month", 0, "Reference month for the report title (1-12, default: from range start)")
	exportCmd.Flags().IntVar(&exportYear, "year", 0, "Reference year for the report title (default: from range start)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: pdf|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")

	_ = exportCmd.MarkFlagRequired("output")
}
