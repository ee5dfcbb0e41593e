// Package pdf renders printable monthly attendance sheets. The layout is a
// fixed header block plus a table in which exactly one column wraps: each
// row's height is measured from the wrapped activities text first, then all
// four cells are drawn at that height.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/victor-kauan-coder/dashboard-relatorios/report"
)

// Person is one attendance sheet's subject within a batch.
type Person struct {
	Name       string
	Role       string
	Supervisor string
	Records    []report.Record
}

// Sheet carries the fixed header content and the reference period for a
// rendering batch.
type Sheet struct {
	InstitutionLines []string
	Title            string
	Month            int // 1-based
	Year             int
	IssuedAt         time.Time
}

// RenderedRow is one formatted table row.
type RenderedRow struct {
	Date     string
	Start    string
	End      string
	Activity string
}

// RowFor formats a record for the table: date as DD/MM/YYYY, end time
// derived as start + 4h, activities upper-cased with non-Latin-1 runes
// substituted. The activity stays UTF-8 here; the byte-level Latin-1
// encoding happens per wrapped line at draw time, after measurement.
func RowFor(record report.Record) RenderedRow {
	return RenderedRow{
		Date:     record.Date.Format("02/01/2006"),
		Start:    record.StartTime,
		End:      report.EndTime(record.StartTime),
		Activity: Substitute(strings.ToUpper(record.Activity)),
	}
}

// PeopleFromGroups maps grouped records to renderer subjects. Role and
// supervisor come from each group's first record, falling back to the
// configured defaults; groups without records keep the defaults and still
// get a page.
func PeopleFromGroups(groups []report.Group, defaultRole, defaultSupervisor string) []Person {
	people := make([]Person, 0, len(groups))
	for _, group := range groups {
		person := Person{
			Name:       group.Name,
			Role:       defaultRole,
			Supervisor: defaultSupervisor,
			Records:    group.Records,
		}
		if len(group.Records) > 0 {
			if role := strings.TrimSpace(group.Records[0].Role); role != "" {
				person.Role = role
			}
			if supervisor := strings.TrimSpace(group.Records[0].Supervisor); supervisor != "" {
				person.Supervisor = supervisor
			}
		}
		people = append(people, person)
	}
	return people
}

var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName resolves a 1-based month number; out-of-range values clamp to
// the first entry rather than failing.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return monthNames[0]
	}
	return monthNames[month-1]
}

const (
	pageMargin = 10.0
	tableWidth = 190.0

	colDate  = 28.0
	colStart = 26.0
	colEnd   = 26.0
	colActs  = tableWidth - colDate - colStart - colEnd

	rowLineH   = 5.0
	headerH    = 7.0
	breakY     = 265.0
	signBlockH = 40.0
)

// Render produces the attendance document: one sheet per person in input
// order (spilling onto further pages on overflow), with the supervisor
// sign-off block only on the final person's last page. The document is
// returned fully in memory; nothing is written to disk here.
func Render(people []Person, sheet Sheet) ([]byte, error) {
	return render(people, sheet, true)
}

func render(people []Person, sheet Sheet, compress bool) ([]byte, error) {
	if len(people) == 0 {
		return nil, fmt.Errorf("render attendance sheet: no people selected")
	}

	issued := sheet.IssuedAt
	if issued.IsZero() {
		issued = time.Now()
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(compress)
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(false, 0)

	for i, person := range people {
		renderPerson(doc, person, sheet, issued, i == len(people)-1)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render attendance sheet: %w", err)
	}
	return buf.Bytes(), nil
}

func renderPerson(doc *fpdf.Fpdf, person Person, sheet Sheet, issued time.Time, last bool) {
	doc.AddPage()
	emitHeader(doc, person, sheet)
	emitTableHeader(doc)

	records := report.SortByDate(person.Records)
	if len(records) == 0 {
		emitEmptyMarker(doc)
	}
	for _, record := range records {
		emitRow(doc, RowFor(record))
	}

	emitFooter(doc, person, issued, last)
}

func emitHeader(doc *fpdf.Fpdf, person Person, sheet Sheet) {
	doc.SetFont("Arial", "B", 12)
	for _, line := range sheet.InstitutionLines {
		doc.CellFormat(0, 6, Encode(line), "", 1, "C", false, 0, "")
	}

	doc.Ln(2)
	doc.SetFont("Arial", "B", 13)
	doc.CellFormat(0, 7, Encode(strings.ToUpper(sheet.Title)), "", 1, "C", false, 0, "")

	doc.SetFont("Arial", "", 11)
	reference := fmt.Sprintf("Mês de referência: %s/%d", MonthName(sheet.Month), sheet.Year)
	doc.CellFormat(0, 6, Encode(reference), "", 1, "C", false, 0, "")

	doc.Ln(2)
	role := strings.TrimSpace(person.Role)
	if role == "" {
		role = report.DefaultRole
	}
	doc.SetFont("Arial", "B", 11)
	subject := fmt.Sprintf("%s: %s", strings.ToUpper(role), strings.ToUpper(person.Name))
	doc.CellFormat(0, 6, Encode(subject), "", 1, "L", false, 0, "")
	doc.Ln(2)
}

func emitTableHeader(doc *fpdf.Fpdf) {
	doc.SetFont("Arial", "B", 10)
	doc.SetFillColor(230, 230, 230)
	doc.CellFormat(colDate, headerH, "Data", "1", 0, "C", true, 0, "")
	doc.CellFormat(colStart, headerH, Encode("Horário de Início"), "1", 0, "C", true, 0, "")
	doc.CellFormat(colEnd, headerH, Encode("Horário de Término"), "1", 0, "C", true, 0, "")
	doc.CellFormat(colActs, headerH, "Atividades", "1", 1, "C", true, 0, "")
	doc.SetFont("Arial", "", 9)
}

func emitEmptyMarker(doc *fpdf.Fpdf) {
	doc.CellFormat(tableWidth, rowLineH+2, Encode("NENHUMA ATIVIDADE REGISTRADA NO PERÍODO"), "1", 1, "C", false, 0, "")
}

// emitRow measures the wrapping activities cell first; the measured height
// becomes the row height for every cell, so one logical row always shares
// one final border height. SplitText indexes the core-font width table by
// rune value, so it gets the substituted UTF-8 activity, not encoded bytes.
func emitRow(doc *fpdf.Fpdf, row RenderedRow) {
	lines := doc.SplitText(row.Activity, colActs-2)
	if len(lines) == 0 {
		lines = []string{""}
	}
	rowH := rowLineH * float64(len(lines))

	if doc.GetY()+rowH > breakY {
		doc.AddPage()
		emitTableHeader(doc)
	}

	x, y := doc.GetXY()
	doc.CellFormat(colDate, rowH, row.Date, "1", 0, "C", false, 0, "")
	doc.CellFormat(colStart, rowH, row.Start, "1", 0, "C", false, 0, "")
	doc.CellFormat(colEnd, rowH, row.End, "1", 0, "C", false, 0, "")

	actX := x + colDate + colStart + colEnd
	doc.Rect(actX, y, colActs, rowH, "D")
	for i, line := range lines {
		doc.SetXY(actX+1, y+rowLineH*float64(i))
		doc.CellFormat(colActs-2, rowLineH, Encode(line), "", 0, "L", false, 0, "")
	}

	doc.SetXY(x, y+rowH)
}

func emitFooter(doc *fpdf.Fpdf, person Person, issued time.Time, last bool) {
	if doc.GetY()+signBlockH > breakY {
		doc.AddPage()
	}

	doc.Ln(4)
	doc.SetFont("Arial", "", 10)
	doc.CellFormat(0, 6, Encode("Observações:"), "", 1, "L", false, 0, "")
	y := doc.GetY() + 4
	doc.Line(pageMargin, y, pageMargin+tableWidth, y)
	doc.SetY(y)

	doc.Ln(10)
	role := strings.TrimSpace(person.Role)
	if role == "" {
		role = report.DefaultRole
	}
	doc.CellFormat(0, 5, "_________________________________", "", 1, "C", false, 0, "")
	doc.CellFormat(0, 5, Encode(fmt.Sprintf("%s: %s", strings.ToUpper(role), strings.ToUpper(person.Name))), "", 1, "C", false, 0, "")

	if !last {
		return
	}

	doc.Ln(8)
	doc.CellFormat(0, 5, Encode(fmt.Sprintf("Data: %s", issued.Format("02/01/2006"))), "", 1, "L", false, 0, "")
	doc.Ln(6)
	doc.CellFormat(0, 5, "_________________________________", "", 1, "C", false, 0, "")
	doc.CellFormat(0, 5, Encode(fmt.Sprintf("Preceptor(a): %s", strings.ToUpper(person.Supervisor))), "", 1, "C", false, 0, "")
}
