package export

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
	PDF  Format = "pdf"
)

var ErrUnknownFormat = errors.New("format must be one of: csv, xlsx, pdf")

// ParseFormat accepts a case-insensitive format name. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", CSV:
		return CSV, nil
	case XLSX:
		return XLSX, nil
	case PDF:
		return PDF, nil
	}
	return "", ErrUnknownFormat
}

func (f Format) ContentType() string {
	switch f {
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case PDF:
		return "application/pdf"
	}
	return "text/csv"
}

// Filename is <resource>-<yyyymmdd>.<ext>.
func Filename(resource string, f Format, now time.Time) string {
	return resource + "-" + now.Format("20060102") + "." + string(f)
}

// Table is a titled grid of already formatted cells.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

func Write(w io.Writer, f Format, t Table) error {
	switch f {
	case CSV:
		return writeCSV(w, t)
	case XLSX:
		return writeXLSX(w, t)
	case PDF:
		return writePDF(w, t)
	}
	return ErrUnknownFormat
}

func writeCSV(w io.Writer, t Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Header); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	if err := writer.WriteAll(t.Rows); err != nil {
		return errors.Wrap(err, "write csv rows")
	}
	return nil
}

func writeXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	if t.Title != "" {
		if err := f.SetSheetName(sheet, sheetName(t.Title)); err != nil {
			return errors.Wrap(err, "name sheet")
		}
		sheet = sheetName(t.Title)
	}
	if err := f.SetSheetRow(sheet, "A1", cells(t.Header)); err != nil {
		return errors.Wrap(err, "write xlsx header")
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil && len(t.Header) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(t.Header), 1)
		_ = f.SetCellStyle(sheet, "A1", last, style)
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "xlsx cell")
		}
		if err := f.SetSheetRow(sheet, cell, cells(row)); err != nil {
			return errors.Wrap(err, "write xlsx row")
		}
	}
	return errors.Wrap(f.Write(w), "write xlsx")
}

// sheetName trims a title to the 31 characters a worksheet name may hold.
func sheetName(title string) string {
	name := strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ").Replace(title)
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	return name
}

func cells(row []string) *[]any {
	out := make([]any, len(row))
	for i, v := range row {
		out[i] = v
	}
	return &out
}

const (
	pdfPageWidth = 277.0
	pdfRowHeight = 7.0
)

func writePDF(w io.Writer, t Table) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, tr(t.Title))
	pdf.Ln(12)

	width := pdfPageWidth
	if n := len(t.Header); n > 0 {
		width = pdfPageWidth / float64(n)
	}
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range t.Header {
		pdf.CellFormat(width, pdfRowHeight, tr(fit(pdf, h, width)), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 8)
	for _, row := range t.Rows {
		for _, v := range row {
			pdf.CellFormat(width, pdfRowHeight, tr(fit(pdf, v, width)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	return errors.Wrap(pdf.Output(w), "write pdf")
}

// fit shortens text until it fits a cell of the given width.
func fit(pdf *gofpdf.Fpdf, text string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(text) <= limit {
		return text
	}
	r := []rune(text)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > limit {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
