// timesheet converts a photo of a handwritten weekly time log into a filled
// agency timesheet PDF.
//
// The photo is converted to greyscale, run through OCR, and the recognized
// lines (e.g. "8/4 - 9 to 3pm - 6") are parsed into per-day entries,
// mapped onto a Monday-Sunday week and drawn onto the template PDF at
// configured coordinates.
//
// Usage:
//
//	timesheet -image photo.jpg -template timecard.pdf -out filled.pdf -month 8 -year 2025
//
// Required flags:
//
//	-image string     Path to the handwritten photo
//	-template string  Path to the timesheet template PDF
//	-out string       Output PDF path
//	-month int        Numeric month for entries without an explicit month
//	-year int         4-digit year for the entries
//
// Options:
//
//	-employee string      Employee name drawn in the header and signature
//	-client string        Client name drawn on each row
//	-ocr-json string      Pre-extracted JSON entries; skips OCR and parsing
//	-engine string        OCR engine, "tesseract" (default) or "docai"
//	-docai-config string  Document AI YAML config (project_id, location, processor_id)
//	-lang string          Tesseract recognition language (default "eng")
//	-layout string        YAML layout overrides for the coordinate table
//	-font-dir string      Directory searched for an Inter TTF
//	-debug-grid           Draw a 25pt grid to calibrate coordinates
//	-debug-api string     Save the raw Document AI response as JSON
//	-verbose              Enable debug logging
//
// Defaults assume shifts start at 9:00 AM when the start time is omitted.
// When a handwritten total disagrees with the computed hours by more than
// a quarter hour, the computed value wins and the discrepancy is reported.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/svregala/fathers-timesheet-autofill-pdf/pkg/ocr"
	"github.com/svregala/fathers-timesheet-autofill-pdf/pkg/sheet"
	"github.com/svregala/fathers-timesheet-autofill-pdf/pkg/timelog"
)

func main() {
	imagePath := flag.String("image", "", "Path to the handwritten photo")
	templatePath := flag.String("template", "", "Path to the template PDF (the agency form)")
	outPath := flag.String("out", "", "Output PDF path")
	month := flag.Int("month", 0, "Numeric month for most entries (e.g., 8 for August)")
	year := flag.Int("year", 0, "4-digit year for the entries")
	employee := flag.String("employee", "Mario Regala", "Employee name")
	clientName := flag.String("client", "Albert Tim Cronin", "Client name")
	ocrJSON := flag.String("ocr-json", "", "Optional path to a pre-extracted JSON array of entries to skip OCR")
	engine := flag.String("engine", "tesseract", "OCR engine: tesseract or docai")
	docaiConfig := flag.String("docai-config", "", "Path to the Document AI YAML config (required with -engine docai)")
	lang := flag.String("lang", "eng", "Tesseract recognition language")
	layoutPath := flag.String("layout", "", "Path to a YAML file overriding the layout coordinate table")
	fontDir := flag.String("font-dir", "", "Directory searched for Inter-Regular.ttf before falling back to the built-in font")
	debugGrid := flag.Bool("debug-grid", false, "Draw a grid to help align coordinates")
	debugAPI := flag.String("debug-api", "", "Path to save the raw Document AI response as JSON")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := validateArgs(*imagePath, *templatePath, *outPath, *month, *year); err != nil {
		fatal("Error: %v", err)
	}

	entries, err := collectEntries(*ocrJSON, *imagePath, *engine, *docaiConfig, *lang, *debugAPI, *month, *year)
	if err != nil {
		fatal("Error: %v", err)
	}
	if len(entries) == 0 {
		fatal("No entries parsed. Try -ocr-json or adjust your photo/OCR.")
	}

	dates := make([]time.Time, len(entries))
	for i, e := range entries {
		dates[i] = e.Date
	}
	weekStart, weekEnd := timelog.WeekBounds(dates)
	week := timelog.MapToWeek(entries, weekStart)
	totalHours := timelog.TotalHours(entries)

	layout := sheet.DefaultLayout()
	if *layoutPath != "" {
		layout, err = sheet.LoadLayout(*layoutPath)
		if err != nil {
			fatal("Error: %v", err)
		}
	}

	err = sheet.Render(sheet.RenderOptions{
		TemplatePath: *templatePath,
		OutPath:      *outPath,
		Employee:     *employee,
		Client:       *clientName,
		Week:         week,
		TotalHours:   totalHours,
		Layout:       layout,
		FontDir:      *fontDir,
		DebugGrid:    *debugGrid,
	})
	if err != nil {
		fatal("Error: %v", err)
	}

	fmt.Printf("Wrote %s\n", *outPath)
	fmt.Printf("Week: %s to %s\n", weekStart.Format("2006-01-02"), weekEnd.Format("2006-01-02"))
	fmt.Printf("Total hours: %s\n", sheet.FormatHours(totalHours))
}

// validateArgs checks the required flag set before any work happens.
func validateArgs(image, template, out string, month, year int) error {
	if image == "" {
		return fmt.Errorf("-image is required")
	}
	if template == "" || out == "" {
		return fmt.Errorf("-template and -out are required")
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("-month must be between 1 and 12")
	}
	if year == 0 {
		return fmt.Errorf("-year is required")
	}
	return nil
}

// collectEntries produces the DayEntry list, either from a pre-extracted
// JSON file or by running OCR over the photo and parsing the result.
func collectEntries(ocrJSON, imagePath, engine, docaiConfig, lang, debugAPI string, month, year int) ([]timelog.DayEntry, error) {
	if ocrJSON != "" {
		if _, err := os.Stat(ocrJSON); err == nil {
			return timelog.LoadEntries(ocrJSON)
		}
		log.Warnf("entries file %s not found; falling back to OCR", ocrJSON)
	}

	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	grey, err := ocr.Grayscale(imageData)
	if err != nil {
		return nil, err
	}

	eng, err := selectEngine(engine, docaiConfig, lang, debugAPI)
	if err != nil {
		return nil, err
	}

	text, err := eng.Recognize(context.Background(), grey)
	if err != nil {
		return nil, err
	}

	return slices.Collect(timelog.ParseLines(text, month, year)), nil
}

func selectEngine(engine, docaiConfig, lang, debugAPI string) (ocr.Engine, error) {
	switch engine {
	case "tesseract":
		t := ocr.NewTesseract()
		t.Lang = lang
		if err := t.Available(); err != nil {
			return nil, fmt.Errorf("%w; install tesseract or supply -ocr-json", err)
		}
		return t, nil
	case "docai":
		if docaiConfig == "" {
			return nil, fmt.Errorf("-engine docai requires -docai-config")
		}
		cfg, err := ocr.LoadDocAIConfig(docaiConfig)
		if err != nil {
			return nil, err
		}
		d := ocr.NewDocAI(cfg)
		d.DebugAPIPath = debugAPI
		return d, nil
	default:
		return nil, fmt.Errorf("unknown OCR engine %q (want tesseract or docai)", engine)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
