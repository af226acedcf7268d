package model

import "fmt"

// PlaceholderImage is the avatar shown before the user uploads a photo.
const PlaceholderImage = "https://dummyimage.com/300x300"

// Section names a top-level field of the resume document. The set is
// closed; ParseSection rejects anything else.
type Section string

const (
	SectionPersonalInfo   Section = "personalInfo"
	SectionEducation      Section = "education"
	SectionWorkExperience Section = "workExperience"
	SectionSkills         Section = "skills"
	SectionLanguages      Section = "languages"
	SectionReferences     Section = "references"
)

// Sections returns all section keys in document order.
func Sections() []Section {
	return []Section{
		SectionPersonalInfo,
		SectionEducation,
		SectionWorkExperience,
		SectionSkills,
		SectionLanguages,
		SectionReferences,
	}
}

// ParseSection maps a raw key to a Section.
func ParseSection(s string) (Section, error) {
	switch Section(s) {
	case SectionPersonalInfo, SectionEducation, SectionWorkExperience,
		SectionSkills, SectionLanguages, SectionReferences:
		return Section(s), nil
	}
	return "", fmt.Errorf("unknown section: %q", s)
}

type PersonalInfo struct {
	Name     string `json:"name"`
	JobTitle string `json:"jobTitle"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	Summary  string `json:"summary"`
	Image    string `json:"image"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Duration    string `json:"duration"`
}

type WorkExperience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Reference struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Contact  string `json:"contact"`
}

func (e Education) EntityID() string      { return e.ID }
func (e WorkExperience) EntityID() string { return e.ID }
func (r Reference) EntityID() string      { return r.ID }

// List section types. Naming the slices lets each section value carry
// its own key, so a mismatched update cannot compile.
type (
	EducationList  []Education
	ExperienceList []WorkExperience
	SkillList      []string
	LanguageList   []string
	ReferenceList  []Reference
)

// SectionValue is a value that can replace one named section of the
// document wholesale.
type SectionValue interface {
	Section() Section
}

func (PersonalInfo) Section() Section   { return SectionPersonalInfo }
func (EducationList) Section() Section  { return SectionEducation }
func (ExperienceList) Section() Section { return SectionWorkExperience }
func (SkillList) Section() Section      { return SectionSkills }
func (LanguageList) Section() Section   { return SectionLanguages }
func (ReferenceList) Section() Section  { return SectionReferences }

// Document is the root aggregate: one resume per session, mutated only
// by whole-section replacement.
type Document struct {
	PersonalInfo   PersonalInfo   `json:"personalInfo"`
	Education      EducationList  `json:"education"`
	WorkExperience ExperienceList `json:"workExperience"`
	Skills         SkillList      `json:"skills"`
	Languages      LanguageList   `json:"languages"`
	References     ReferenceList  `json:"references"`
}

// DefaultDocument is the documented empty state: every field present,
// lists empty, avatar set to the placeholder.
func DefaultDocument() Document {
	return Document{
		PersonalInfo:   PersonalInfo{Image: PlaceholderImage},
		Education:      EducationList{},
		WorkExperience: ExperienceList{},
		Skills:         SkillList{},
		Languages:      LanguageList{},
		References:     ReferenceList{},
	}
}

// Normalize replaces nil lists with empty ones so sections are always
// present and marshal as [] rather than null.
func (d *Document) Normalize() {
	if d.Education == nil {
		d.Education = EducationList{}
	}
	if d.WorkExperience == nil {
		d.WorkExperience = ExperienceList{}
	}
	if d.Skills == nil {
		d.Skills = SkillList{}
	}
	if d.Languages == nil {
		d.Languages = LanguageList{}
	}
	if d.References == nil {
		d.References = ReferenceList{}
	}
}

// Clone returns a deep copy. Callers can mutate the copy freely without
// the store or the renderer observing the change.
func (d Document) Clone() Document {
	out := d
	out.Education = append(EducationList{}, d.Education...)
	out.WorkExperience = append(ExperienceList{}, d.WorkExperience...)
	out.Skills = append(SkillList{}, d.Skills...)
	out.Languages = append(LanguageList{}, d.Languages...)
	out.References = append(ReferenceList{}, d.References...)
	return out
}

// Apply replaces the section named by v with a copy of v.
func (d *Document) Apply(v SectionValue) {
	switch sv := v.(type) {
	case PersonalInfo:
		d.PersonalInfo = sv
	case EducationList:
		d.Education = append(EducationList{}, sv...)
	case ExperienceList:
		d.WorkExperience = append(ExperienceList{}, sv...)
	case SkillList:
		d.Skills = append(SkillList{}, sv...)
	case LanguageList:
		d.Languages = append(LanguageList{}, sv...)
	case ReferenceList:
		d.References = append(ReferenceList{}, sv...)
	}
}
