package infrastructure

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const (
	// CaptureScale is the device scale factor used for rasterization.
	// The raster is later scaled down to fit an A4 page, so capturing
	// at 4x keeps the downscaled result sharp.
	CaptureScale = 4

	// imageLoadTimeout bounds how long the capture waits for embedded
	// images to finish loading. A capture that races image loads would
	// produce an incomplete visual, so we block until load-complete or
	// this deadline.
	imageLoadTimeout = 15 * time.Second

	viewportWidth  = 900
	viewportHeight = 1273
)

const imagesSettled = `Array.from(document.images).every((img) => img.complete)`

// ChromedpCapturer rasterizes rendered HTML with a headless Chrome
// instance. Each capture runs in its own browser context.
type ChromedpCapturer struct {
	Timeout time.Duration
}

func NewChromedpCapturer() *ChromedpCapturer {
	return &ChromedpCapturer{Timeout: 60 * time.Second}
}

// Capture loads the HTML into a blank page and returns a full-page PNG
// screenshot at CaptureScale, composited over an opaque white
// background so transparent regions do not turn black in the PDF.
func (c *ChromedpCapturer) Capture(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx := browserCtx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(browserCtx, c.Timeout)
		defer cancel()
	}

	if err := chromedp.Run(runCtx,
		chromedp.EmulateViewport(viewportWidth, viewportHeight, chromedp.EmulateScale(CaptureScale)),
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetDefaultBackgroundColorOverride().
				WithColor(&cdp.RGBA{R: 255, G: 255, B: 255, A: 1}).
				Do(ctx)
		}),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
	); err != nil {
		return nil, err
	}

	// wait for avatars and icons; proceed anyway once the deadline hits
	err := chromedp.Run(runCtx,
		chromedp.Poll(imagesSettled, nil, chromedp.WithPollingTimeout(imageLoadTimeout)),
	)
	if err != nil && !errors.Is(err, chromedp.ErrPollingTimeout) {
		return nil, err
	}

	var shot []byte
	if err := chromedp.Run(runCtx, chromedp.FullScreenshot(&shot, 100)); err != nil {
		return nil, err
	}
	return shot, nil
}
