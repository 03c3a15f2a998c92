// Package schemas checks catalogs, candidate profiles and reports against the
// JSON Schemas shipped in the repository's schemas/ directory.
package schemas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema files shipped with the repository, relative to its root
const (
	PositionCatalogSchema  = "schemas/position_catalog.schema.json"
	CandidateProfileSchema = "schemas/candidate_profile.schema.json"
	SkillGapReportSchema   = "schemas/skill_gap_report.schema.json"
)

// ResolveSchemaPath returns the absolute path of a repository schema, looking
// in the working directory and then at the repository root as seen from a
// package two levels down (cmd/x, internal/x). It returns "" when neither exists.
func ResolveSchemaPath(relativePath string) string {
	for _, dir := range []string{".", filepath.Join("..", "..")} {
		abs, err := filepath.Abs(filepath.Join(dir, relativePath))
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && !info.IsDir() {
			return abs
		}
	}
	return ""
}

// FieldError is one schema violation. Field is a dotted path, "(root)" for
// the document itself.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation found in a document
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, fe := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError means the schema itself could not be read or compiled
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Schema is a compiled JSON Schema that can check many documents
type Schema struct {
	name     string
	compiled *gojsonschema.Schema
}

// Load compiles the schema file at path. Relative $ref entries resolve
// against the file's directory.
func Load(path string) (*Schema, error) {
	abs, err := existingFile(path, "schema")
	if err != nil {
		return nil, err
	}
	return compile(abs, gojsonschema.NewReferenceLoader("file://"+filepath.ToSlash(abs)))
}

// Compile builds a schema from its JSON text
func Compile(schemaJSON []byte) (*Schema, error) {
	return compile("(inline schema)", gojsonschema.NewBytesLoader(schemaJSON))
}

func compile(name string, loader gojsonschema.JSONLoader) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "invalid schema", Cause: err}
	}
	return &Schema{name: name, compiled: compiled}, nil
}

// Validate checks a JSON document. Violations come back as *ValidationError,
// unparsable input as a plain error.
func (s *Schema) Validate(document []byte) error {
	result, err := s.compiled.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("failed to read document against %s: %w", s.name, err)
	}
	if result.Valid() {
		return nil
	}

	violations := result.Errors()
	out := &ValidationError{Errors: make([]FieldError, 0, len(violations))}
	for _, v := range violations {
		field := v.Field()
		if field == "" {
			field = "(root)"
		}
		out.Errors = append(out.Errors, FieldError{Field: field, Message: v.Description()})
	}
	return out
}

// ValidateJSON checks the JSON file at jsonPath against the schema file at schemaPath
func ValidateJSON(schemaPath, jsonPath string) error {
	schema, err := Load(schemaPath)
	if err != nil {
		return err
	}
	abs, err := existingFile(jsonPath, "JSON")
	if err != nil {
		return err
	}
	document, err := os.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", abs, err)
	}
	return schema.Validate(document)
}

// ValidateBytes checks in-memory JSON against the schema file at schemaPath
func ValidateBytes(schemaPath string, data []byte) error {
	schema, err := Load(schemaPath)
	if err != nil {
		return err
	}
	return schema.Validate(data)
}

// ValidateValue marshals v and checks it against the schema file at schemaPath
func ValidateValue(schemaPath string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return ValidateBytes(schemaPath, data)
}

func existingFile(path, kind string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s path %s: %w", kind, path, err)
	}
	if _, err := os.Stat(abs); errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s file not found: %s", kind, abs)
	}
	return abs, nil
}
