// Package types provides type definitions for structured data used throughout the skill-gap advisor.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Course describes a course offered for a skill
type Course struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
	Level    string `json:"level"`
	Duration string `json:"duration"`
}

// Book describes a book recommended for a skill
type Book struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	Difficulty string `json:"difficulty"`
}

// LearningResource groups the learning material known for one skill
type LearningResource struct {
	Courses  []Course `json:"courses,omitempty"`
	Books    []Book   `json:"books,omitempty"`
	Practice []string `json:"practice,omitempty"`
}

// Certification is a suggested professional certification
type Certification struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Level    string `json:"level"`
}
