package infrastructure

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/go-pdf/fpdf"
)

// A4 portrait in points.
const (
	A4WidthPt  = 595.28
	A4HeightPt = 841.89
)

// FitOnPage computes the placement of a raster on a page: uniform scale
// so the image fits entirely without distortion, centered horizontally
// and anchored to the top.
func FitOnPage(imgW, imgH, pageW, pageH float64) (w, h, x, y float64) {
	ratio := math.Min(pageW/imgW, pageH/imgH)
	w = imgW * ratio
	h = imgH * ratio
	x = (pageW - w) / 2
	y = 0
	return w, h, x, y
}

// AssemblePDF embeds the raster as the single image on a single A4
// page. Content taller than one page is compressed to fit, not split.
func AssemblePDF(raster []byte) ([]byte, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raster))
	if err != nil {
		return nil, fmt.Errorf("decode raster: %w", err)
	}

	var imgType string
	switch format {
	case "png":
		imgType = "PNG"
	case "jpeg":
		imgType = "JPG"
	default:
		return nil, fmt.Errorf("unsupported raster format: %s", format)
	}

	w, h, x, y := FitOnPage(float64(cfg.Width), float64(cfg.Height), A4WidthPt, A4HeightPt)

	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetCompression(true)
	doc.AddPage()

	opts := fpdf.ImageOptions{ImageType: imgType}
	doc.RegisterImageOptionsReader("resume", opts, bytes.NewReader(raster))
	doc.ImageOptions("resume", x, y, w, h, false, opts, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}
	return buf.Bytes(), nil
}
