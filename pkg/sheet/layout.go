// Package sheet renders a mapped week of time log entries onto a
// fixed-layout agency timesheet PDF.
//
// The template's first page is imported underneath an overlay canvas and
// the parsed values are drawn at configured coordinates. Coordinates live
// in a Layout value constructed once per run; the renderer never mutates
// it, and font fallback is resolved up front by the pure ResolveFont.
package sheet

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Point is a drawing position in PDF points, measured from the bottom-left
// corner of the page.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Layout is the coordinate table for one timesheet template. Values are in
// PDF points. Tune them once with the debug grid to match the exact form.
type Layout struct {
	Page        PageSize     `yaml:"page"`
	TableOrigin Point        `yaml:"table_origin"` // top-left of the table area
	RowHeight   float64      `yaml:"row_height"`
	Col         ColumnLayout `yaml:"col"`
	Header      HeaderLayout `yaml:"header"`
	Footer      FooterLayout `yaml:"footer"`
	Font        FontConfig   `yaml:"font"`
}

// PageSize is the nominal page size the coordinates were calibrated for.
type PageSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ColumnLayout holds the x position of each table column. The template's
// mileage and initials columns exist but stay blank.
type ColumnLayout struct {
	Client float64 `yaml:"client"`
	Day    float64 `yaml:"day"`
	Date   float64 `yaml:"date"`
	Start  float64 `yaml:"start"`
	End    float64 `yaml:"end"`
	Hours  float64 `yaml:"hours"`
}

// HeaderLayout positions the fields above the table.
type HeaderLayout struct {
	EmployeeName Point `yaml:"employee_name"`
	PeriodFrom   Point `yaml:"period_from"`
	PeriodTo     Point `yaml:"period_to"`
}

// FooterLayout positions the fields below the table.
type FooterLayout struct {
	TotalHours    Point `yaml:"total_hours"`
	SignatureName Point `yaml:"signature_name"`
	SignatureDate Point `yaml:"signature_date"`
}

// FontConfig holds the drawing font settings.
type FontConfig struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
}

// DefaultLayout returns the coordinate table calibrated for the agency's
// landscape-letter time card.
func DefaultLayout() Layout {
	return Layout{
		Page:        PageSize{Width: 11 * 72, Height: 8.5 * 72},
		TableOrigin: Point{X: 70, Y: 420},
		RowHeight:   20,
		Col: ColumnLayout{
			Client: 70,
			Day:    190,
			Date:   350,
			Start:  420,
			End:    500,
			Hours:  580,
		},
		Header: HeaderLayout{
			EmployeeName: Point{X: 120, Y: 480},
			PeriodFrom:   Point{X: 550, Y: 498},
			PeriodTo:     Point{X: 650, Y: 498},
		},
		Footer: FooterLayout{
			TotalHours:    Point{X: 580, Y: 285},
			SignatureName: Point{X: 150, Y: 115},
			SignatureDate: Point{X: 440, Y: 180},
		},
		Font: FontConfig{Family: "Helvetica", Size: 10},
	}
}

// LoadLayout reads YAML overrides on top of the default layout.
func LoadLayout(path string) (Layout, error) {
	layout := DefaultLayout()
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout file: %w", err)
	}
	return layout, nil
}

// ResolveFont picks the face to draw with. When dir holds an Inter TTF the
// Inter face is preferred and its path returned for registration; otherwise
// the configured family stands with no registration needed. The layout is
// never modified.
func ResolveFont(dir string, font FontConfig) (family, ttfPath string) {
	if dir != "" {
		p := filepath.Join(dir, "Inter-Regular.ttf")
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return "Inter", p
		}
	}
	return font.Family, ""
}
