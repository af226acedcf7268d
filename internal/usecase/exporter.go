package usecase

import (
	"context"
	"strings"
	"time"

	"resume-builder/internal/renderer"
	"resume-builder/pkg/infrastructure"
)

// CaptureEngine rasterizes rendered HTML into an image.
type CaptureEngine interface {
	Capture(ctx context.Context, html string) ([]byte, error)
}

// CaptureFunc adapts a function to a CaptureEngine.
type CaptureFunc func(ctx context.Context, html string) ([]byte, error)

func (f CaptureFunc) Capture(ctx context.Context, html string) ([]byte, error) {
	if f == nil {
		return nil, NewError(KindInternal, "capture func is nil", nil)
	}
	return f(ctx, html)
}

// ExportResult is one finished export attempt.
type ExportResult struct {
	Filename string
	PDF      []byte
}

// Exporter renders the current document, captures it as a raster and
// embeds the raster into a single-page A4 PDF. Every failure leaves the
// document and the store untouched; each call is an independent
// attempt with no retry policy.
type Exporter struct {
	store  DocumentStore
	engine CaptureEngine
	now    func() time.Time
}

func NewExporter(store DocumentStore, engine CaptureEngine) *Exporter {
	return &Exporter{store: store, engine: engine, now: time.Now}
}

// ExportPDF produces the downloadable PDF for the given variant.
func (e *Exporter) ExportPDF(ctx context.Context, variant renderer.Variant) (*ExportResult, error) {
	doc := e.store.Document()

	html, err := renderer.Render(doc, variant)
	if err != nil {
		return nil, NewError(KindRender, "render failed", err)
	}

	raster, err := e.engine.Capture(ctx, html)
	if err != nil {
		return nil, NewError(KindExport, "capture failed", err)
	}

	pdf, err := infrastructure.AssemblePDF(raster)
	if err != nil {
		return nil, NewError(KindExport, "pdf assembly failed", err)
	}

	return &ExportResult{
		Filename: exportFilename(e.now()),
		PDF:      pdf,
	}, nil
}

// exportFilename derives the output name from the export time, with
// colons replaced so the name is valid on every filesystem, e.g.
// resume_2026-09-01T10-42-07.pdf.
func exportFilename(t time.Time) string {
	stamp := t.UTC().Format("2006-01-02T15:04:05")
	return "resume_" + strings.ReplaceAll(stamp, ":", "-") + ".pdf"
}
