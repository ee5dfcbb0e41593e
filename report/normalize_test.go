package report

import (
	"reflect"
	"testing"
	"time"
)

var sampleHeader = []string{"Data da atividade", "Nome", "Horário de Início", "ATIVIDADE(S) REALIZADA(S)"}

func TestNormalize_SingleRowScenario(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		sampleHeader,
		{"15/03/2024", "Ana", "14:00", "Visita domiciliar"},
	}

	records := Normalize(rows, Options{})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	record := records[0]
	if !record.Date.Equal(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %s", record.Date)
	}
	if record.Name != "Ana" {
		t.Fatalf("unexpected name: %q", record.Name)
	}
	if record.StartTime != "14:00" {
		t.Fatalf("unexpected start time: %q", record.StartTime)
	}
	if record.Activity != "Visita domiciliar" {
		t.Fatalf("unexpected activity: %q", record.Activity)
	}
	if got := EndTime(record.StartTime); got != "18:00" {
		t.Fatalf("unexpected rendered end time: want 18:00, got %q", got)
	}
}

func TestNormalize_DropsRowsWithoutParseableDate(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		sampleHeader,
		{"15/03/2024", "Ana", "14:00", "Visita"},
		{"31/02/2024", "Bia", "09:00", "Oficina"},
		{"", "Carlos", "10:00", "Roda de conversa"},
		{"16/03/2024", "Duda", "08:00", "Plantão"},
	}

	records := Normalize(rows, Options{})
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Name != "Ana" || records[1].Name != "Duda" {
		t.Fatalf("survivor order not preserved: %q, %q", records[0].Name, records[1].Name)
	}
}

func TestNormalize_HeaderOnlyYieldsNoRecords(t *testing.T) {
	t.Parallel()

	if got := Normalize([][]string{sampleHeader}, Options{}); len(got) != 0 {
		t.Fatalf("expected 0 records, got %d", len(got))
	}
	if got := Normalize(nil, Options{}); len(got) != 0 {
		t.Fatalf("expected 0 records for nil input, got %d", len(got))
	}
}

func TestNormalize_ShortRowGetsMissingTrailingFields(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		sampleHeader,
		{"15/03/2024", "Ana"},
	}

	records := Normalize(rows, Options{})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].StartTime != "" || records[0].Activity != "" {
		t.Fatalf("expected missing trailing fields, got start %q activity %q",
			records[0].StartTime, records[0].Activity)
	}
}

func TestNormalize_BadStartTimeBecomesEmptyNotDropped(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		sampleHeader,
		{"15/03/2024", "Ana", "pela manhã", "Visita"},
	}

	records := Normalize(rows, Options{})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].StartTime != "" {
		t.Fatalf("expected empty start time, got %q", records[0].StartTime)
	}
}

func TestNormalize_DefaultRoleApplied(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		sampleHeader,
		{"15/03/2024", "Ana", "14:00", "Visita"},
	}

	records := Normalize(rows, Options{})
	if records[0].Role != DefaultRole {
		t.Fatalf("expected default role %q, got %q", DefaultRole, records[0].Role)
	}

	records = Normalize(rows, Options{DefaultRole: "estagiário"})
	if records[0].Role != "estagiário" {
		t.Fatalf("expected configured role, got %q", records[0].Role)
	}
}

func TestNormalize_UnknownColumnsLandInExtra(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Data da atividade", "Nome", "Campus"},
		{"15/03/2024", "Ana", "Sobral"},
	}

	records := Normalize(rows, Options{})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0].Extra["campus"]; got != "Sobral" {
		t.Fatalf("expected extra column, got %v", records[0].Extra)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		sampleHeader,
		{"15/03/2024", "Ana", "14:00", "Visita"},
		{"16/03/2024", "Bia", "", "Oficina"},
	}

	first := Normalize(rows, Options{})
	second := Normalize(rows, Options{})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalization is not idempotent:\n%v\n%v", first, second)
	}
}

func TestNormalize_MonthFirstOrder(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		sampleHeader,
		{"03/15/2024", "Ana", "14:00", "Visita"},
	}

	records := Normalize(rows, Options{DateOrder: MonthFirst})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Date.Month() != time.March || records[0].Date.Day() != 15 {
		t.Fatalf("unexpected month-first date: %s", records[0].Date)
	}
}
