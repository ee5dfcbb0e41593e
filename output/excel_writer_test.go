package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/victor-kauan-coder/dashboard-relatorios/report"
)

func TestWriteRecordsExcelTo_RoundTrip(t *testing.T) {
	t.Parallel()

	records := []report.Record{
		{
			Name:       "Ana",
			Role:       "monitor",
			Supervisor: "Dr. Souza",
			Date:       time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			StartTime:  "14:00",
			Activity:   "Visita domiciliar",
		},
	}

	var buf bytes.Buffer
	if err := WriteRecordsExcelTo(&buf, records); err != nil {
		t.Fatalf("write excel: %v", err)
	}

	file, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	rows, err := file.GetRows(sheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d", len(rows))
	}
	if rows[1][0] != "15/03/2024" || rows[1][1] != "Ana" {
		t.Fatalf("unexpected data row: %v", rows[1])
	}
	if rows[1][5] != "18:00" {
		t.Fatalf("expected derived end time 18:00, got %q", rows[1][5])
	}
}

func TestWriteRecordsExcelTo_EmptyInputStillWritesHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteRecordsExcelTo(&buf, nil); err != nil {
		t.Fatalf("write empty excel: %v", err)
	}

	file, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
