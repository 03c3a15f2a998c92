// Package types provides type definitions for structured data used throughout the skill-gap advisor.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Tier identifies one of the skill groupings of a position
type Tier int

const (
	TierRequired Tier = iota
	TierAdvanced
	TierTool
	TierBusiness
)

// GapTiers are the tiers that take part in gap analysis and scoring, in report order
var GapTiers = []Tier{TierRequired, TierAdvanced, TierTool}

func (t Tier) String() string {
	switch t {
	case TierRequired:
		return "required"
	case TierAdvanced:
		return "advanced"
	case TierTool:
		return "tool"
	case TierBusiness:
		return "business"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// PositionProfile holds the layered skill catalog for one job position
type PositionProfile struct {
	RequiredSkills    []string          `json:"required_skills" yaml:"required_skills" validate:"dive,required"`
	AdvancedSkills    []string          `json:"advanced_skills" yaml:"advanced_skills" validate:"dive,required"`
	ToolSkills        []string          `json:"tool_skills" yaml:"tool_skills" validate:"dive,required"`
	BusinessSkills    []string          `json:"business_skills" yaml:"business_skills" validate:"dive,required"`
	CareerProgression CareerProgression `json:"career_progression" yaml:"career_progression" validate:"dive"`
}

// Skills returns the skill list of the given tier
func (p *PositionProfile) Skills(tier Tier) []string {
	switch tier {
	case TierRequired:
		return p.RequiredSkills
	case TierAdvanced:
		return p.AdvancedSkills
	case TierTool:
		return p.ToolSkills
	case TierBusiness:
		return p.BusinessSkills
	default:
		return nil
	}
}

// CareerLevel is one rung of a career progression ladder
type CareerLevel struct {
	Name   string   `validate:"required"`
	Skills []string `validate:"dive,required"`
}

// CareerProgression is an ordered ladder, lowest seniority first.
// It is encoded as a JSON/YAML object whose key order is significant.
type CareerProgression []CareerLevel

// MarshalJSON writes the ladder as an object, keeping level order
func (cp CareerProgression) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, level := range cp {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(level.Name)
		if err != nil {
			return nil, err
		}
		skills := level.Skills
		if skills == nil {
			skills = []string{}
		}
		value, err := json.Marshal(skills)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of level name to skill list, preserving key order
func (cp *CareerProgression) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*cp = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("career_progression must be an object, got %v", tok)
	}

	levels := make(CareerProgression, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("career_progression key must be a string, got %v", keyTok)
		}
		var skills []string
		if err := dec.Decode(&skills); err != nil {
			return fmt.Errorf("career_progression level %q: %w", name, err)
		}
		levels = append(levels, CareerLevel{Name: name, Skills: skills})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*cp = levels
	return nil
}

// MarshalYAML writes the ladder as an ordered mapping node
func (cp CareerProgression) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, level := range cp {
		var value yaml.Node
		skills := level.Skills
		if skills == nil {
			skills = []string{}
		}
		if err := value.Encode(skills); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: level.Name},
			&value,
		)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping node, preserving key order
func (cp *CareerProgression) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("career_progression must be a mapping (line %d)", node.Line)
	}

	levels := make(CareerProgression, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var skills []string
		if err := node.Content[i+1].Decode(&skills); err != nil {
			return fmt.Errorf("career_progression level %q: %w", name, err)
		}
		levels = append(levels, CareerLevel{Name: name, Skills: skills})
	}

	*cp = levels
	return nil
}

// Level returns the ladder rung with the given name
func (cp CareerProgression) Level(name string) (CareerLevel, bool) {
	for _, level := range cp {
		if level.Name == name {
			return level, true
		}
	}
	return CareerLevel{}, false
}
