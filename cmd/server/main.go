package main

import (
	"log"
	"os"

	httpadapter "resume-builder/internal/adapter/http"
	"resume-builder/internal/adapter/storage"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

func main() {
	path := os.Getenv("RESUME_DATA_FILE")
	if path == "" {
		path = storage.DefaultPath
	}
	store := storage.Open(path)

	editor := usecase.NewEditor(store)
	exporter := usecase.NewExporter(store, infra.NewChromedpCapturer())
	steps := usecase.NewStepNav(usecase.StepCount)

	app := fiber.New()

	h := httpadapter.NewHandler(store, editor, exporter, steps)
	h.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("resume builder listening on :%s (data: %s)", port, store.Path())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
