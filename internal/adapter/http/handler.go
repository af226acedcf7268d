package http

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/model"
	"resume-builder/internal/renderer"
	"resume-builder/internal/usecase"
)

// Handler exposes the document store, the section editors and the
// export pipeline to the local form UI.
type Handler struct {
	store    usecase.DocumentStore
	editor   *usecase.Editor
	exporter *usecase.Exporter
	steps    *usecase.StepNav
}

func NewHandler(store usecase.DocumentStore, editor *usecase.Editor, exporter *usecase.Exporter, steps *usecase.StepNav) *Handler {
	return &Handler{store: store, editor: editor, exporter: exporter, steps: steps}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/document", h.GetDocument)
	app.Delete("/api/document", h.ClearDocument)

	app.Patch("/api/document/personal", h.PatchPersonal)
	app.Post("/api/document/personal/image", h.UploadImage)

	app.Put("/api/document/sections/:section", h.ReplaceSection)
	app.Post("/api/document/sections/:section/items", h.AppendItem)
	app.Patch("/api/document/sections/:section/items/:id", h.PatchItem)
	app.Delete("/api/document/sections/:section/items/:id", h.DeleteItem)

	app.Get("/api/steps", h.GetSteps)
	app.Post("/api/steps/next", h.NextStep)
	app.Post("/api/steps/prev", h.PrevStep)

	app.Get("/preview", h.Preview)
	app.Post("/api/export", h.Export)
}

func (h *Handler) GetDocument(c *fiber.Ctx) error {
	return c.JSON(h.store.Document())
}

func (h *Handler) ClearDocument(c *fiber.Ctx) error {
	if err := h.store.Clear(); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.store.Document())
}

type fieldEdit struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type textEdit struct {
	Text string `json:"text"`
}

func (h *Handler) PatchPersonal(c *fiber.Ctx) error {
	var req fieldEdit
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := h.editor.UpdatePersonalField(req.Field, req.Value); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.store.Document().PersonalInfo)
}

func (h *Handler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return badRequest(c, "missing image file")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "unable to open upload")
	}
	defer f.Close()

	if err := h.editor.AttachPhoto(c.Context(), fh.Header.Get("Content-Type"), f); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.store.Document().PersonalInfo)
}

func (h *Handler) ReplaceSection(c *fiber.Ctx) error {
	sec, err := model.ParseSection(c.Params("section"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	value, err := model.DecodeSection(sec, c.Body())
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.store.UpdateSection(value); err != nil {
		return fail(c, err)
	}
	return c.JSON(h.store.Document())
}

func (h *Handler) AppendItem(c *fiber.Ctx) error {
	sec, err := model.ParseSection(c.Params("section"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	switch sec {
	case model.SectionEducation:
		entry, err := h.editor.AddEducation()
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(entry)
	case model.SectionWorkExperience:
		entry, err := h.editor.AddExperience()
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(entry)
	case model.SectionReferences:
		entry, err := h.editor.AddReference()
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(entry)
	case model.SectionSkills, model.SectionLanguages:
		var req textEdit
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid payload")
		}
		if sec == model.SectionSkills {
			err = h.editor.AddSkill(req.Text)
		} else {
			err = h.editor.AddLanguage(req.Text)
		}
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(req)
	}
	return badRequest(c, "section has no list items")
}

func (h *Handler) PatchItem(c *fiber.Ctx) error {
	sec, err := model.ParseSection(c.Params("section"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	id := c.Params("id")

	switch sec {
	case model.SectionEducation, model.SectionWorkExperience, model.SectionReferences:
		var req fieldEdit
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid payload")
		}
		switch sec {
		case model.SectionEducation:
			err = h.editor.UpdateEducationField(id, req.Field, req.Value)
		case model.SectionWorkExperience:
			err = h.editor.UpdateExperienceField(id, req.Field, req.Value)
		default:
			err = h.editor.UpdateReferenceField(id, req.Field, req.Value)
		}
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(h.store.Document())
	case model.SectionSkills, model.SectionLanguages:
		index, convErr := strconv.Atoi(id)
		if convErr != nil {
			return badRequest(c, "invalid list index")
		}
		var req textEdit
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid payload")
		}
		if sec == model.SectionSkills {
			err = h.editor.SetSkill(index, req.Text)
		} else {
			err = h.editor.SetLanguage(index, req.Text)
		}
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(h.store.Document())
	}
	return badRequest(c, "section has no list items")
}

func (h *Handler) DeleteItem(c *fiber.Ctx) error {
	sec, err := model.ParseSection(c.Params("section"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	id := c.Params("id")

	switch sec {
	case model.SectionEducation:
		err = h.editor.RemoveEducation(id)
	case model.SectionWorkExperience:
		err = h.editor.RemoveExperience(id)
	case model.SectionReferences:
		err = h.editor.RemoveReference(id)
	case model.SectionSkills, model.SectionLanguages:
		index, convErr := strconv.Atoi(id)
		if convErr != nil {
			return badRequest(c, "invalid list index")
		}
		if sec == model.SectionSkills {
			err = h.editor.RemoveSkill(index)
		} else {
			err = h.editor.RemoveLanguage(index)
		}
	default:
		return badRequest(c, "section has no list items")
	}
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(h.store.Document())
}

func (h *Handler) GetSteps(c *fiber.Ctx) error {
	return c.JSON(h.stepState())
}

func (h *Handler) NextStep(c *fiber.Ctx) error {
	h.steps.Next()
	return c.JSON(h.stepState())
}

func (h *Handler) PrevStep(c *fiber.Ctx) error {
	h.steps.Prev()
	return c.JSON(h.stepState())
}

func (h *Handler) stepState() fiber.Map {
	return fiber.Map{
		"step":      h.steps.Current(),
		"total":     h.steps.Total(),
		"direction": h.steps.Direction(),
	}
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	variant := renderer.ParseVariant(c.Query("variant"))
	html, err := renderer.Render(h.store.Document(), variant)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (h *Handler) Export(c *fiber.Ctx) error {
	variant := renderer.ParseVariant(c.Query("variant"))

	res, err := h.exporter.ExportPDF(c.Context(), variant)
	if err != nil {
		log.Printf("warning: export failed: %v", err)
		return fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.Filename+`"`)
	return c.Send(res.PDF)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func fail(c *fiber.Ctx, err error) error {
	ge := usecase.AsGoError(err)
	return c.Status(statusFromKind(usecase.KindFromError(err))).JSON(fiber.Map{
		"error": err.Error(),
		"code":  ge.TextCode,
	})
}

func statusFromKind(kind usecase.ErrorKind) int {
	switch kind {
	case usecase.KindValidation, usecase.KindCanceled:
		return fiber.StatusBadRequest
	case usecase.KindNotFound:
		return fiber.StatusNotFound
	case usecase.KindRender, usecase.KindExport, usecase.KindTimeout:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
