package model

import (
	"encoding/json"
	"fmt"
)

// DecodeSection unmarshals a raw JSON payload into the typed value for
// the given section. This is the single point where untyped wire data
// becomes a SectionValue.
func DecodeSection(sec Section, raw []byte) (SectionValue, error) {
	var (
		v   SectionValue
		err error
	)
	switch sec {
	case SectionPersonalInfo:
		var p PersonalInfo
		err = json.Unmarshal(raw, &p)
		v = p
	case SectionEducation:
		list := EducationList{}
		err = json.Unmarshal(raw, &list)
		v = list
	case SectionWorkExperience:
		list := ExperienceList{}
		err = json.Unmarshal(raw, &list)
		v = list
	case SectionSkills:
		list := SkillList{}
		err = json.Unmarshal(raw, &list)
		v = list
	case SectionLanguages:
		list := LanguageList{}
		err = json.Unmarshal(raw, &list)
		v = list
	case SectionReferences:
		list := ReferenceList{}
		err = json.Unmarshal(raw, &list)
		v = list
	default:
		return nil, fmt.Errorf("unknown section: %q", sec)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", sec, err)
	}
	return v, nil
}
