package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromedpRasterizer renders HTML in headless Chrome and captures the fixed
// viewport as a PNG bitmap.
type ChromedpRasterizer struct {
	execPath string
}

func NewChromedpRasterizer(execPath string) *ChromedpRasterizer {
	return &ChromedpRasterizer{execPath: execPath}
}

func (r *ChromedpRasterizer) Rasterize(ctx context.Context, html string, width, height int, scale float64) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, 60*time.Second)
	defer cancel2()

	// serve the document from a temporary file so relative assets resolve
	tmpDir, err := os.MkdirTemp("", "referral-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pngBuf []byte
	err = chromedp.Run(ctx2,
		chromedp.EmulateViewport(int64(width), int64(height), chromedp.EmulateScale(scale)),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			err := emulation.SetDefaultBackgroundColorOverride().
				WithColor(&cdp.RGBA{R: 255, G: 255, B: 255, A: 1}).Do(ctx)
			if err != nil {
				return err
			}
			pngBuf, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithCaptureBeyondViewport(false).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pngBuf, nil
}
