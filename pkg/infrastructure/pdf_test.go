package infrastructure

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"
)

func TestFitOnPagePreservesAspectRatio(t *testing.T) {
	cases := []struct {
		name       string
		imgW, imgH float64
	}{
		{"tall capture", 3600, 5092},
		{"wide capture", 5000, 2000},
		{"square capture", 1200, 1200},
		{"smaller than page", 100, 150},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h, x, y := FitOnPage(tc.imgW, tc.imgH, A4WidthPt, A4HeightPt)

			if w > A4WidthPt+1e-9 || h > A4HeightPt+1e-9 {
				t.Fatalf("image does not fit: %gx%g on %gx%g", w, h, A4WidthPt, A4HeightPt)
			}

			want := tc.imgW / tc.imgH
			got := w / h
			if math.Abs(want-got) > 1e-9 {
				t.Fatalf("aspect ratio changed: want %g, got %g", want, got)
			}

			if math.Abs(x-(A4WidthPt-w)/2) > 1e-9 {
				t.Fatalf("not centered horizontally: x = %g, w = %g", x, w)
			}
			if y != 0 {
				t.Fatalf("not anchored to the top: y = %g", y)
			}
		})
	}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			img.Set(i, j, color.RGBA{R: 240, G: 240, B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestAssemblePDF(t *testing.T) {
	pdf, err := AssemblePDF(encodePNG(t, 180, 254))
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Fatal("output does not look like a PDF")
	}
}

func TestAssemblePDFRejectsGarbage(t *testing.T) {
	if _, err := AssemblePDF([]byte("not an image")); err == nil {
		t.Fatal("expected error for non-image input")
	}
}
