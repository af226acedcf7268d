// Package renderer turns the resume document into standalone HTML.
// Rendering is pure: the same document and variant always produce the
// same markup, and empty sections leave no trace in the output.
package renderer

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"resume-builder/internal/model"
)

// Variant selects one of the fixed visual layouts. All variants render
// the same document fields; they differ only in arrangement and style.
type Variant string

const (
	VariantModern   Variant = "modern"
	VariantMinimal  Variant = "minimal"
	VariantClassic  Variant = "classic"
	VariantCreative Variant = "creative"
	VariantSimple   Variant = "simple"
)

// DefaultVariant is the fallback for unrecognized variant names.
const DefaultVariant = VariantMinimal

// Variants returns the full set in presentation order.
func Variants() []Variant {
	return []Variant{VariantModern, VariantMinimal, VariantClassic, VariantCreative, VariantSimple}
}

// ParseVariant maps a raw name to a Variant, falling back to
// DefaultVariant for anything it does not recognize.
func ParseVariant(s string) Variant {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantModern:
		return VariantModern
	case VariantMinimal:
		return VariantMinimal
	case VariantClassic:
		return VariantClassic
	case VariantCreative:
		return VariantCreative
	case VariantSimple:
		return VariantSimple
	}
	return DefaultVariant
}

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// data wraps the document for template execution. The avatar may be a
// base64 data URI, which html/template would otherwise neuter in a src
// attribute, so it is passed pre-approved.
type data struct {
	model.Document
	Avatar template.URL
}

// Render produces the HTML page for the document in the given variant.
func Render(doc model.Document, v Variant) (string, error) {
	v = ParseVariant(string(v))

	var buf bytes.Buffer
	err := templates.ExecuteTemplate(&buf, string(v)+".tmpl", data{
		Document: doc,
		Avatar:   template.URL(doc.PersonalInfo.Image),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
