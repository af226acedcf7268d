package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleDocument() Document {
	return Document{
		PersonalInfo: PersonalInfo{
			Name:     "Ada Lovelace",
			JobTitle: "Software Engineer",
			Email:    "ada@example.com",
			Phone:    "+44 20 7946 0000",
			Location: "London",
			Website:  "https://ada.example.com",
			Summary:  "Analytical engine programmer.",
			Image:    PlaceholderImage,
		},
		Education: EducationList{
			{ID: "e1", Institution: "University of London", Degree: "BSc Mathematics", Duration: "1833-1836"},
		},
		WorkExperience: ExperienceList{
			{ID: "w1", Company: "Analytical Engines Ltd", Position: "Programmer", Duration: "1837-1852", Description: "Wrote the first published algorithm."},
		},
		Skills:    SkillList{"Mathematics", "Algorithms"},
		Languages: LanguageList{"English", "French"},
		References: ReferenceList{
			{ID: "r1", Name: "Charles Babbage", Position: "Inventor", Company: "Analytical Engines Ltd", Contact: "charles@example.com"},
		},
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := sampleDocument()

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Document
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got.Normalize()

	if diff := cmp.Diff(doc, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultDocumentSectionsAlwaysPresent(t *testing.T) {
	raw, err := json.Marshal(DefaultDocument())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	for _, sec := range Sections() {
		v, ok := m[string(sec)]
		if !ok {
			t.Fatalf("section %s missing from serialized default", sec)
		}
		if v == nil {
			t.Fatalf("section %s serialized as null", sec)
		}
		if sec == SectionPersonalInfo {
			continue
		}
		list, ok := v.([]any)
		if !ok || len(list) != 0 {
			t.Fatalf("section %s: expected empty list, got %v", sec, v)
		}
	}

	if m["personalInfo"].(map[string]any)["image"] != PlaceholderImage {
		t.Fatalf("default image is not the placeholder")
	}
}

func TestParseSection(t *testing.T) {
	for _, sec := range Sections() {
		got, err := ParseSection(string(sec))
		if err != nil {
			t.Fatalf("ParseSection(%s): %v", sec, err)
		}
		if got != sec {
			t.Fatalf("ParseSection(%s) = %s", sec, got)
		}
	}
	if _, err := ParseSection("hobbies"); err == nil {
		t.Fatal("expected error for unknown section")
	}
}

func TestDecodeSection(t *testing.T) {
	v, err := DecodeSection(SectionEducation, []byte(`[{"id":"e1","degree":"BSc"}]`))
	if err != nil {
		t.Fatalf("decode education: %v", err)
	}
	list, ok := v.(EducationList)
	if !ok || len(list) != 1 || list[0].Degree != "BSc" {
		t.Fatalf("unexpected decoded value: %#v", v)
	}
	if v.Section() != SectionEducation {
		t.Fatalf("decoded value reports section %s", v.Section())
	}

	if _, err := DecodeSection(SectionSkills, []byte(`{"not":"a list"}`)); err == nil {
		t.Fatal("expected error for mistyped payload")
	}
	if _, err := DecodeSection("hobbies", []byte(`[]`)); err == nil {
		t.Fatal("expected error for unknown section")
	}
}

func TestValidateBytes(t *testing.T) {
	raw, err := json.Marshal(sampleDocument())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := ValidateBytes(raw); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}

	bad := [][]byte{
		[]byte(`{"personalInfo": 5}`),
		[]byte(`{"education": "nope"}`),
		[]byte(`[]`),
	}
	for _, b := range bad {
		if err := ValidateBytes(b); err == nil {
			t.Fatalf("expected validation failure for %s", b)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	doc := sampleDocument()
	clone := doc.Clone()

	clone.Education[0].Degree = "PhD"
	clone.Skills[0] = "Poetry"
	clone.PersonalInfo.Name = "Someone Else"

	if doc.Education[0].Degree != "BSc Mathematics" {
		t.Fatal("clone shares education backing array with original")
	}
	if doc.Skills[0] != "Mathematics" {
		t.Fatal("clone shares skills backing array with original")
	}
	if doc.PersonalInfo.Name != "Ada Lovelace" {
		t.Fatal("clone shares personal info with original")
	}
}

func TestApplyCopiesSectionValue(t *testing.T) {
	doc := DefaultDocument()
	skills := SkillList{"Go"}
	doc.Apply(skills)

	skills[0] = "mutated"
	if doc.Skills[0] != "Go" {
		t.Fatal("document aliases the caller's slice")
	}
}
