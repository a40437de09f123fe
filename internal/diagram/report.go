package diagram

import (
	"time"

	"github.com/phpdave11/gofpdf"
)

// ReportRow is one label/value line in the PDF summary.
type ReportRow struct {
	Label string
	Value string
}

// ReportSection groups rows under a heading.
type ReportSection struct {
	Title string
	Rows  []ReportRow
}

// ExportPDF writes a calculation report: a title, the run date, and the
// result rows grouped by section. Labels should stay within the core PDF
// font repertoire (no box-drawing or Greek glyphs).
func ExportPDF(title string, sections []ReportSection, filename string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, "Date: "+time.Now().Format("2006-01-02"))
	pdf.Ln(10)

	for _, sec := range sections {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, sec.Title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, row := range sec.Rows {
			pdf.Cell(90, 6, row.Label)
			pdf.Cell(0, 6, row.Value)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	return pdf.OutputFileAndClose(filename)
}
