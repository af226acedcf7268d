// Command export renders the stored resume document and writes the PDF
// to disk without starting the server.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"resume-builder/internal/adapter/storage"
	"resume-builder/internal/renderer"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
)

func main() {
	dataPath := flag.String("data", storage.DefaultPath, "path to the stored resume document")
	variant := flag.String("variant", string(renderer.DefaultVariant), "template variant (modern|minimal|classic|creative|simple)")
	outDir := flag.String("out", ".", "directory to write the PDF into")
	flag.Parse()

	store := storage.Open(*dataPath)
	exporter := usecase.NewExporter(store, infra.NewChromedpCapturer())

	res, err := exporter.ExportPDF(context.Background(), renderer.ParseVariant(*variant))
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}

	out := filepath.Join(*outDir, res.Filename)
	if err := os.WriteFile(out, res.PDF, 0o644); err != nil {
		log.Fatalf("write %s: %v", out, err)
	}
	log.Printf("wrote %s (%d bytes)", out, len(res.PDF))
}
