// Package types provides type definitions for structured data used throughout the skill-gap advisor.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CandidateProfile is the profile produced by the CV extraction collaborator.
// Every field is optional.
type CandidateProfile struct {
	Skills           SkillList           `json:"skills,omitempty"`
	AllSkills        []string            `json:"all_skills,omitempty"`
	SkillsByCategory map[string][]string `json:"skills_by_category,omitempty"`
	YearsExperience  int                 `json:"years_experience,omitempty" validate:"gte=0"`
	EducationLevel   string              `json:"education_level,omitempty"`
}

// SkillList accepts either a comma-separated string or an array of strings
type SkillList []string

// UnmarshalJSON decodes `"python, sql"` as well as `["python", "sql"]`
func (s *SkillList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = nil
		return nil
	}

	if trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		*s = SplitSkills(raw)
		return nil
	}

	var list []string
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return fmt.Errorf("skills must be a string or an array of strings: %w", err)
	}
	*s = list
	return nil
}

// SplitSkills splits a comma-separated skill string into trimmed entries
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		skills = append(skills, strings.TrimSpace(part))
	}
	return skills
}

// AnalyzeRequest is the input of a single skill-gap analysis
type AnalyzeRequest struct {
	TargetPosition   string           `json:"target_position" validate:"required,max=200"`
	CandidateProfile CandidateProfile `json:"candidate_profile"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// FitRequest asks for a candidate to be scored against every known position
type FitRequest struct {
	CandidateProfile CandidateProfile `json:"candidate_profile"`
}

// Validate validates the FitRequest using the validator.
func (r *FitRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
