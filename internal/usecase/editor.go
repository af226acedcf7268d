package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"resume-builder/internal/model"
)

// DocumentStore is the read/replace-section contract the editors work
// against.
type DocumentStore interface {
	Document() model.Document
	UpdateSection(v model.SectionValue) error
	Clear() error
}

// MaxPhotoBytes bounds the avatar upload size before base64 encoding.
const MaxPhotoBytes = 5 << 20

// allowedImageTypes is the avatar MIME allow-list.
var allowedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
	"image/avif": {},
}

// Editor applies field edits to the shared document through whole
// section replacement. Every list operation goes through one of the
// three canonical forms: append, remove by id, update field by id.
type Editor struct {
	store DocumentStore
}

func NewEditor(store DocumentStore) *Editor {
	return &Editor{store: store}
}

type entity interface {
	EntityID() string
}

// removeByID filters the id out, preserving order. The second return
// reports whether anything was removed.
func removeByID[T entity](list []T, id string) ([]T, bool) {
	out := make([]T, 0, len(list))
	found := false
	for _, item := range list {
		if item.EntityID() == id {
			found = true
			continue
		}
		out = append(out, item)
	}
	return out, found
}

// updateByID maps over the list, replacing only the matching entity.
func updateByID[T entity](list []T, id string, apply func(T) T) ([]T, bool) {
	out := make([]T, 0, len(list))
	found := false
	for _, item := range list {
		if item.EntityID() == id {
			item = apply(item)
			found = true
		}
		out = append(out, item)
	}
	return out, found
}

// Personal info ------------------------------------------------------

var personalFields = map[string]func(*model.PersonalInfo, string){
	"name":     func(p *model.PersonalInfo, v string) { p.Name = v },
	"jobTitle": func(p *model.PersonalInfo, v string) { p.JobTitle = v },
	"email":    func(p *model.PersonalInfo, v string) { p.Email = v },
	"phone":    func(p *model.PersonalInfo, v string) { p.Phone = v },
	"location": func(p *model.PersonalInfo, v string) { p.Location = v },
	"website":  func(p *model.PersonalInfo, v string) { p.Website = v },
	"summary":  func(p *model.PersonalInfo, v string) { p.Summary = v },
}

// UpdatePersonalField sets one named personal-info field. The avatar is
// excluded here; it only changes through AttachPhoto.
func (e *Editor) UpdatePersonalField(field, value string) error {
	set, ok := personalFields[field]
	if !ok {
		return NewError(KindValidation, fmt.Sprintf("unknown personal info field: %q", field), nil)
	}
	p := e.store.Document().PersonalInfo
	set(&p, value)
	return e.update(p)
}

// AttachPhoto validates the MIME type against the allow-list, reads and
// base64-encodes the image, and writes it into personalInfo.image as a
// data URI. Validation happens before any byte is read, so a rejected
// upload leaves the document untouched. If ctx is done by the time the
// bytes are decoded, the result is dropped without applying.
func (e *Editor) AttachPhoto(ctx context.Context, mimeType string, r io.Reader) error {
	mt := strings.ToLower(strings.TrimSpace(mimeType))
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	if _, ok := allowedImageTypes[mt]; !ok {
		return NewError(KindValidation, fmt.Sprintf("unsupported image type: %q", mimeType), nil)
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxPhotoBytes+1))
	if err != nil {
		return NewError(KindValidation, "unable to read image", err)
	}
	if len(data) > MaxPhotoBytes {
		return NewError(KindValidation, "image too large", nil)
	}

	if err := ctx.Err(); err != nil {
		// uploader went away mid-decode; dropping is safe
		return NewError(KindCanceled, "photo upload abandoned", err)
	}

	p := e.store.Document().PersonalInfo
	p.Image = "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(data)
	return e.update(p)
}

// Education ----------------------------------------------------------

func (e *Editor) AddEducation() (model.Education, error) {
	entry := model.Education{ID: uuid.NewString()}
	doc := e.store.Document()
	return entry, e.update(append(doc.Education, entry))
}

func (e *Editor) UpdateEducationField(id, field, value string) error {
	switch field {
	case "institution", "degree", "duration":
	default:
		return NewError(KindValidation, fmt.Sprintf("unknown education field: %q", field), nil)
	}
	doc := e.store.Document()
	list, found := updateByID(doc.Education, id, func(item model.Education) model.Education {
		switch field {
		case "institution":
			item.Institution = value
		case "degree":
			item.Degree = value
		case "duration":
			item.Duration = value
		}
		return item
	})
	if !found {
		return NewError(KindNotFound, fmt.Sprintf("education entry %s not found", id), nil)
	}
	return e.update(model.EducationList(list))
}

func (e *Editor) RemoveEducation(id string) error {
	doc := e.store.Document()
	list, found := removeByID(doc.Education, id)
	if !found {
		return nil
	}
	return e.update(model.EducationList(list))
}

// Work experience ----------------------------------------------------

func (e *Editor) AddExperience() (model.WorkExperience, error) {
	entry := model.WorkExperience{ID: uuid.NewString()}
	doc := e.store.Document()
	return entry, e.update(append(doc.WorkExperience, entry))
}

func (e *Editor) UpdateExperienceField(id, field, value string) error {
	switch field {
	case "company", "position", "duration", "description":
	default:
		return NewError(KindValidation, fmt.Sprintf("unknown experience field: %q", field), nil)
	}
	doc := e.store.Document()
	list, found := updateByID(doc.WorkExperience, id, func(item model.WorkExperience) model.WorkExperience {
		switch field {
		case "company":
			item.Company = value
		case "position":
			item.Position = value
		case "duration":
			item.Duration = value
		case "description":
			item.Description = value
		}
		return item
	})
	if !found {
		return NewError(KindNotFound, fmt.Sprintf("experience entry %s not found", id), nil)
	}
	return e.update(model.ExperienceList(list))
}

func (e *Editor) RemoveExperience(id string) error {
	doc := e.store.Document()
	list, found := removeByID(doc.WorkExperience, id)
	if !found {
		return nil
	}
	return e.update(model.ExperienceList(list))
}

// References ---------------------------------------------------------

func (e *Editor) AddReference() (model.Reference, error) {
	entry := model.Reference{ID: uuid.NewString()}
	doc := e.store.Document()
	return entry, e.update(append(doc.References, entry))
}

func (e *Editor) UpdateReferenceField(id, field, value string) error {
	switch field {
	case "name", "position", "company", "contact":
	default:
		return NewError(KindValidation, fmt.Sprintf("unknown reference field: %q", field), nil)
	}
	doc := e.store.Document()
	list, found := updateByID(doc.References, id, func(item model.Reference) model.Reference {
		switch field {
		case "name":
			item.Name = value
		case "position":
			item.Position = value
		case "company":
			item.Company = value
		case "contact":
			item.Contact = value
		}
		return item
	})
	if !found {
		return NewError(KindNotFound, fmt.Sprintf("reference entry %s not found", id), nil)
	}
	return e.update(model.ReferenceList(list))
}

func (e *Editor) RemoveReference(id string) error {
	doc := e.store.Document()
	list, found := removeByID(doc.References, id)
	if !found {
		return nil
	}
	return e.update(model.ReferenceList(list))
}

// Skills and languages are free-text lists addressed by position.

func (e *Editor) AddSkill(text string) error {
	doc := e.store.Document()
	return e.update(append(doc.Skills, text))
}

func (e *Editor) SetSkill(index int, text string) error {
	doc := e.store.Document()
	if index < 0 || index >= len(doc.Skills) {
		return NewError(KindNotFound, fmt.Sprintf("skill %d not found", index), nil)
	}
	doc.Skills[index] = text
	return e.update(doc.Skills)
}

func (e *Editor) RemoveSkill(index int) error {
	doc := e.store.Document()
	if index < 0 || index >= len(doc.Skills) {
		return nil
	}
	return e.update(append(doc.Skills[:index:index], doc.Skills[index+1:]...))
}

func (e *Editor) AddLanguage(text string) error {
	doc := e.store.Document()
	return e.update(append(doc.Languages, text))
}

func (e *Editor) SetLanguage(index int, text string) error {
	doc := e.store.Document()
	if index < 0 || index >= len(doc.Languages) {
		return NewError(KindNotFound, fmt.Sprintf("language %d not found", index), nil)
	}
	doc.Languages[index] = text
	return e.update(doc.Languages)
}

func (e *Editor) RemoveLanguage(index int) error {
	doc := e.store.Document()
	if index < 0 || index >= len(doc.Languages) {
		return nil
	}
	return e.update(append(doc.Languages[:index:index], doc.Languages[index+1:]...))
}

func (e *Editor) update(v model.SectionValue) error {
	if err := e.store.UpdateSection(v); err != nil {
		return NewError(KindStorage, "unable to persist document", err)
	}
	return nil
}
