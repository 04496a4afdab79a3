package referral

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAssemblePDF(t *testing.T) {
	pdf, err := AssemblePDF(testPNG(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output is not a PDF")
	// single page only
	assert.Equal(t, 1, bytes.Count(pdf, []byte("/Type /Page\n")))
}

func TestAssemblePDFRejectsGarbage(t *testing.T) {
	_, err := AssemblePDF([]byte("not a png"))
	assert.Error(t, err)
}

type stubRasterizer struct {
	png     []byte
	err     error
	gotHTML string
	width   int
	height  int
	scale   float64
}

func (s *stubRasterizer) Rasterize(_ context.Context, html string, width, height int, scale float64) ([]byte, error) {
	s.gotHTML = html
	s.width, s.height, s.scale = width, height, scale
	return s.png, s.err
}

func TestExporterExport(t *testing.T) {
	renderer, err := NewTemplateRenderer("../../templates")
	require.NoError(t, err)

	ras := &stubRasterizer{png: testPNG(t)}
	exporter := NewExporter(renderer, ras)

	doc := BuildDocument(sampleApplication(), sampleJob(), time.Now())
	pdf, err := exporter.Export(context.Background(), doc)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Equal(t, PageWidthPx, ras.width)
	assert.Equal(t, PageHeightPx, ras.height)
	assert.Equal(t, RasterScale, ras.scale)
	assert.Contains(t, ras.gotHTML, doc.ReferenceID)
}

func TestExporterRasterizeFailure(t *testing.T) {
	renderer, err := NewTemplateRenderer("../../templates")
	require.NoError(t, err)

	exporter := NewExporter(renderer, &stubRasterizer{err: errors.New("chrome crashed")})
	_, err = exporter.Export(context.Background(), BuildDocument(sampleApplication(), sampleJob(), time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rasterize")
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "ActiveVacancy-Referral-AV-2025-0042.pdf", FileName("AV-2025-0042"))
}
