package sheet

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// TemplateInfo describes the template document the overlay is composed onto.
type TemplateInfo struct {
	Pages  int
	Width  float64 // first page media box width, points
	Height float64 // first page media box height, points
}

// InspectTemplate validates the template PDF and returns its page count and
// first-page dimensions, which the overlay canvas reuses.
func InspectTemplate(path string) (TemplateInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return TemplateInfo{}, fmt.Errorf("failed to open template: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return TemplateInfo{}, fmt.Errorf("failed to read template: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return TemplateInfo{}, fmt.Errorf("failed to count template pages: %w", err)
	}
	if ctx.PageCount < 1 {
		return TemplateInfo{}, fmt.Errorf("template has no pages")
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return TemplateInfo{}, fmt.Errorf("failed to read template page dimensions: %w", err)
	}
	if len(dims) == 0 {
		return TemplateInfo{}, fmt.Errorf("template has no page dimensions")
	}

	return TemplateInfo{
		Pages:  ctx.PageCount,
		Width:  dims[0].Width,
		Height: dims[0].Height,
	}, nil
}
