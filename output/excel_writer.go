package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/victor-kauan-coder/dashboard-relatorios/report"
)

var recordHeaders = []string{
	"Data", "Nome", "Função", "Preceptor",
	"Início", "Término", "Atividade", "Objetivo", "Justificativa", "Reflexões",
}

// WriteRecordsExcel saves the filtered records as an .xlsx workbook.
func WriteRecordsExcel(path string, records []report.Record) error {
	file, err := buildRecordsWorkbook(records)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}
	return nil
}

// WriteRecordsExcelTo streams the workbook, for HTTP downloads.
func WriteRecordsExcelTo(w io.Writer, records []report.Record) error {
	file, err := buildRecordsWorkbook(records)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write excel output: %w", err)
	}
	return nil
}

func buildRecordsWorkbook(records []report.Record) (*excelize.File, error) {
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	for col, header := range recordHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, record := range records {
		row := i + 2
		values := []string{
			record.Date.Format("02/01/2006"),
			record.Name,
			record.Role,
			record.Supervisor,
			record.StartTime,
			report.EndTime(record.StartTime),
			record.Activity,
			record.Objective,
			record.Rationale,
			record.Reflections,
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				_ = file.Close()
				return nil, fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	return file, nil
}
