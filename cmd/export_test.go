package cmd

import "testing"

func TestDetectExportFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"./frequencia.pdf":  "pdf",
		"./relatorios.xlsx": "excel",
		"./relatorios.XLSX": "excel",
		"./relatorios.xlsm": "excel",
		"./saida":           "pdf",
	}
	for path, want := range cases {
		if got := detectExportFormat(path); got != want {
			t.Fatalf("detectExportFormat(%q): want %q, got %q", path, want, got)
		}
	}
}

func TestBuildExportSelection_RangeValidation(t *testing.T) {
	exportFrom = "2024-03-31"
	exportTo = "2024-03-01"
	defer func() { exportFrom, exportTo = "", "" }()

	if _, err := buildExportSelection(); err == nil {
		t.Fatalf("expected error for inverted range")
	}
}

func TestBuildExportSelection_ReferencePeriodFromRange(t *testing.T) {
	exportFrom = "2024-03-01"
	exportTo = "2024-03-31"
	defer func() { exportFrom, exportTo = "", "" }()

	selection, err := buildExportSelection()
	if err != nil {
		t.Fatalf("build selection: %v", err)
	}
	if selection.Month != 3 || selection.Year != 2024 {
		t.Fatalf("unexpected reference period: %d/%d", selection.Month, selection.Year)
	}
}
