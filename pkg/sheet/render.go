package sheet

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
	"golang.org/x/text/encoding/charmap"

	"github.com/svregala/fathers-timesheet-autofill-pdf/pkg/timelog"
)

// RenderOptions carries everything one render run needs.
type RenderOptions struct {
	TemplatePath string
	OutPath      string
	Employee     string
	Client       string
	Week         timelog.Week
	TotalHours   float64
	Layout       Layout
	FontDir      string // searched for an Inter TTF, may be empty
	DebugGrid    bool   // draw a 25pt calibration grid over the page
}

// Render composes the overlay onto the template's first page and writes the
// merged document to OutPath. The overlay is staged in a transient
// "<out>.overlay.pdf" artifact and renamed into place; cleanup of the
// artifact after a failure is best effort.
func Render(opts RenderOptions) error {
	info, err := InspectTemplate(opts.TemplatePath)
	if err != nil {
		return err
	}
	templateData, err := os.ReadFile(opts.TemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	pdf := fpdf.New("P", "pt", "", "")
	// Pin document dates to the period so identical inputs produce
	// identical output bytes.
	pdf.SetCreationDate(opts.Week.End)
	pdf.SetModificationDate(opts.Week.End)

	family, ttfPath := ResolveFont(opts.FontDir, opts.Layout.Font)
	utf8Font := ttfPath != ""
	if utf8Font {
		pdf.AddUTF8Font(family, "", ttfPath)
	}

	pdf.AddPageFormat("P", fpdf.SizeType{Wd: info.Width, Ht: info.Height})

	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(templateData))
	tpl := importer.ImportPageFromStream(pdf, &rs, 1, "/MediaBox")
	importer.UseImportedTemplate(pdf, tpl, 0, 0, info.Width, 0)

	if opts.DebugGrid {
		drawGrid(pdf, info.Width, info.Height)
	}

	c := canvas{pdf: pdf, pageHeight: info.Height, family: family, size: opts.Layout.Font.Size, utf8Font: utf8Font}
	lay := opts.Layout

	// Header fields
	c.textSized(lay.Header.EmployeeName, opts.Employee, 11)
	c.text(lay.Header.PeriodFrom, formatDate(opts.Week.Start))
	c.text(lay.Header.PeriodTo, formatDate(opts.Week.End))

	// Weekday rows. The day labels are already printed on the template.
	for i := range timelog.Weekdays {
		y := lay.TableOrigin.Y - float64(i)*lay.RowHeight
		c.text(Point{X: lay.Col.Client, Y: y}, opts.Client)
		c.text(Point{X: lay.Col.Date, Y: y}, formatDate(opts.Week.Start.AddDate(0, 0, i)))

		e := opts.Week.Days[i]
		if e == nil {
			continue
		}
		c.text(Point{X: lay.Col.Start, Y: y}, FormatClock(e.Start))
		c.text(Point{X: lay.Col.End, Y: y}, FormatClock(e.End))
		c.text(Point{X: lay.Col.Hours, Y: y}, FormatHours(e.Hours))
	}

	// Footer totals and signature fields
	c.text(lay.Footer.TotalHours, FormatHours(opts.TotalHours))
	c.text(lay.Footer.SignatureName, opts.Employee)
	c.text(lay.Footer.SignatureDate, formatDate(opts.Week.End))

	return writeMerged(pdf, opts.OutPath)
}

// canvas wraps the fpdf document with the layout's coordinate convention:
// positions are measured from the bottom-left corner, while fpdf counts
// from the top-left.
type canvas struct {
	pdf        *fpdf.Fpdf
	pageHeight float64
	family     string
	size       float64
	utf8Font   bool
}

func (c canvas) text(p Point, s string) {
	c.textSized(p, s, c.size)
}

func (c canvas) textSized(p Point, s string, size float64) {
	c.pdf.SetFont(c.family, "", size)
	if !c.utf8Font {
		// Core fonts expect latin1; re-encode so accented names survive.
		if encoded, err := charmap.ISO8859_1.NewEncoder().String(s); err == nil {
			s = encoded
		}
	}
	c.pdf.Text(p.X, c.pageHeight-p.Y, s)
}

// drawGrid draws light 25pt gridlines to help calibrate layout coordinates
// against the template.
func drawGrid(pdf *fpdf.Fpdf, width, height float64) {
	pdf.SetDrawColor(204, 204, 204)
	for x := 0.0; x < width; x += 25 {
		pdf.Line(x, 0, x, height)
	}
	for y := 0.0; y < height; y += 25 {
		pdf.Line(0, y, width, y)
	}
}

// writeMerged stages the document in a transient overlay artifact next to
// the output path and renames it into place, so a failed run never leaves a
// half-written timesheet behind.
func writeMerged(pdf *fpdf.Fpdf, outPath string) error {
	overlayPath := outPath + ".overlay.pdf"
	f, err := os.Create(overlayPath)
	if err != nil {
		return fmt.Errorf("failed to create overlay file: %w", err)
	}

	if err := pdf.Output(f); err != nil {
		f.Close()
		os.Remove(overlayPath) // best effort
		return fmt.Errorf("failed to write overlay: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(overlayPath) // best effort
		return fmt.Errorf("failed to close overlay file: %w", err)
	}

	if err := os.Rename(overlayPath, outPath); err != nil {
		os.Remove(overlayPath) // best effort
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
