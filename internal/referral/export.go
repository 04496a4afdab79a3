package referral

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Pixel dimensions of one A4 page at 96 DPI. The rasterizer captures at
// RasterScale for print quality; the PDF page keeps the unscaled size.
const (
	PageWidthPx  = 794
	PageHeightPx = 1123
	RasterScale  = 2.0
)

// Rasterizer turns rendered HTML into a PNG bitmap of the given viewport.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string, width, height int, scale float64) ([]byte, error)
}

// Exporter runs the full pipeline: render model → rasterize region →
// assemble single-page PDF. Stages are independent so each can be tested
// in isolation.
type Exporter struct {
	renderer *TemplateRenderer
	raster   Rasterizer
}

func NewExporter(renderer *TemplateRenderer, raster Rasterizer) *Exporter {
	return &Exporter{renderer: renderer, raster: raster}
}

func (e *Exporter) Export(ctx context.Context, doc Document) ([]byte, error) {
	html, err := e.renderer.RenderHTML(doc)
	if err != nil {
		return nil, err
	}
	png, err := e.raster.Rasterize(ctx, html, PageWidthPx, PageHeightPx, RasterScale)
	if err != nil {
		return nil, fmt.Errorf("rasterize referral document: %w", err)
	}
	return AssemblePDF(png)
}

// AssemblePDF embeds a single PNG bitmap as the only page of a new PDF sized
// PageWidthPx x PageHeightPx.
func AssemblePDF(png []byte) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: PageWidthPx, Ht: PageHeightPx},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("referral", opts, bytes.NewReader(png))
	pdf.ImageOptions("referral", 0, 0, PageWidthPx, PageHeightPx, false, opts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("assemble referral pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName is the download name for an exported referral document.
func FileName(referenceID string) string {
	return fmt.Sprintf("ActiveVacancy-Referral-%s.pdf", referenceID)
}
