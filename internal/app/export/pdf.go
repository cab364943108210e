package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin   = 15.0
	topMargin    = 25.0
	bottomMargin = 20.0
	headerHeight = 7.0
	lineHeight   = 6.0

	cellLineHeight = 4.5
	cellPadding    = 1.0
)

// semesterColumnWidths matches SemesterColumns on an A4 page
var semesterColumnWidths = []float64{25, 85, 20, 30, 20}

// PDFRenderer writes a Document as an A4 report with a running header and footer
type PDFRenderer struct{}

func (PDFRenderer) Render(w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator(doc.Product, true)
	pdf.SetCreationDate(doc.GeneratedAt)
	pdf.SetMargins(pageMargin, topMargin, pageMargin)
	pdf.SetAutoPageBreak(true, bottomMargin)

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(79, 70, 229)
		pdf.SetXY(pageMargin, 10)
		pdf.CellFormat(120, 6, tr(doc.Product+" - Professional Curriculum Design Platform"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 6, doc.GeneratedAt.Format("02 Jan 2006"), "", 1, "R", false, 0, "")
		pdf.SetDrawColor(200, 200, 200)
		pdf.Line(pageMargin, 17, 210-pageMargin, 17)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetY(topMargin)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(90, 8, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, tr("Generated by "+doc.Product+" AI"), "", 0, "R", false, 0, "")
	})

	r := &pdfWriter{pdf: pdf, tr: tr}
	for _, s := range doc.Sections {
		pdf.AddPage()
		r.section(s)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (r *pdfWriter) section(s Section) {
	pdf := r.pdf
	if s.Kind == SectionCover {
		pdf.SetFont("Helvetica", "B", 24)
		pdf.SetY(60)
		pdf.CellFormat(0, 14, r.tr(s.Title), "", 1, "C", false, 0, "")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 13)
		for _, b := range s.Blocks {
			for _, line := range b.Text {
				pdf.CellFormat(0, 9, r.tr(line), "", 1, "C", false, 0, "")
			}
		}
		return
	}

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(79, 70, 229)
	pdf.CellFormat(0, 10, r.tr(s.Title), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)

	for _, b := range s.Blocks {
		if b.Heading != "" {
			r.ensureSpace(lineHeight * 3)
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, lineHeight, r.tr(b.Heading), "", "L", false)
		}
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range b.Text {
			pdf.MultiCell(0, lineHeight-1, r.tr(line), "", "L", false)
		}
		if b.Table != nil {
			r.table(b.Table)
		}
		pdf.Ln(4)
	}
}

// table draws t, starting a new page and repeating the header row when the
// next row would not fit
func (r *pdfWriter) table(t *Table) {
	pdf := r.pdf
	widths := columnWidths(t.Columns)

	r.ensureSpace(headerHeight * 3)
	if t.Caption != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, headerHeight, r.tr(t.Caption), "", 1, "L", false, 0, "")
	}
	r.header(t.Columns, widths)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range t.Rows {
		r.row(t.Columns, row, widths)
	}
}

// row draws one table row, wrapping each cell inside its column. A row taller
// than the remaining page continues on the next page under a repeated header.
func (r *pdfWriter) row(cols, cells []string, widths []float64) {
	pdf := r.pdf
	lines := make([][]string, len(widths))
	height := 1
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = r.tr(cells[i])
		}
		for _, l := range pdf.SplitLines([]byte(cell), w-2*cellPadding) {
			lines[i] = append(lines[i], string(l))
		}
		if len(lines[i]) == 0 {
			lines[i] = []string{""}
		}
		height = max(height, len(lines[i]))
	}

	_, pageH := pdf.GetPageSize()
	body := pageH - bottomMargin - topMargin - headerHeight
	for start := 0; start < height; {
		need := rowHeight(height - start)
		if need > body {
			need = rowHeight(3)
		}
		if r.ensureSpace(need) {
			r.header(cols, widths)
			pdf.SetFont("Helvetica", "", 9)
		}
		fit := int((pageH - bottomMargin - pdf.GetY() - 2*cellPadding) / cellLineHeight)
		n := max(1, min(height-start, fit))

		x, y := pageMargin, pdf.GetY()
		h := rowHeight(n)
		for i, w := range widths {
			pdf.Rect(x, y, w, h, "D")
			for j := start; j < start+n && j < len(lines[i]); j++ {
				pdf.SetXY(x+cellPadding, y+cellPadding+float64(j-start)*cellLineHeight)
				pdf.CellFormat(w-2*cellPadding, cellLineHeight, lines[i][j], "", 0, "L", false, 0, "")
			}
			x += w
		}
		pdf.SetXY(pageMargin, y+h)
		start += n
	}
}

func rowHeight(lines int) float64 {
	return float64(lines)*cellLineHeight + 2*cellPadding
}

func (r *pdfWriter) header(cols []string, widths []float64) {
	pdf := r.pdf
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(79, 70, 229)
	pdf.SetTextColor(255, 255, 255)
	for i, c := range cols {
		pdf.CellFormat(widths[i], headerHeight, r.tr(c), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
}

// ensureSpace adds a page when h millimetres do not fit and reports whether it did
func (r *pdfWriter) ensureSpace(h float64) bool {
	_, pageH := r.pdf.GetPageSize()
	if r.pdf.GetY()+h > pageH-bottomMargin {
		r.pdf.AddPage()
		return true
	}
	return false
}

func columnWidths(cols []string) []float64 {
	if len(cols) == len(semesterColumnWidths) {
		return semesterColumnWidths
	}
	usable := 210 - 2*pageMargin
	if len(cols) == 2 {
		return []float64{50, usable - 50}
	}
	first := 24.0
	rest := (usable - first) / float64(len(cols)-1)
	widths := []float64{first}
	for i := 1; i < len(cols); i++ {
		widths = append(widths, rest)
	}
	return widths
}
