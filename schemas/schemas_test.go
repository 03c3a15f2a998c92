package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/skillgap-advisor/internal/advisor"
	"github.com/jonathan/skillgap-advisor/internal/catalog"
	"github.com/jonathan/skillgap-advisor/internal/schemas"
	"github.com/jonathan/skillgap-advisor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"common.schema.json",
	"position_catalog.schema.json",
	"candidate_profile.schema.json",
	"skill_gap_report.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]
			_, hasDefs := schemaObj["definitions"]

			assert.True(t, hasSchema, "schema should declare $schema")
			assert.True(t, hasType || hasProps || hasDefs,
				"schema should have at least type, properties, or definitions")
		})
	}
}

func TestPositionCatalog_DefaultsValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skills_database.json")
	require.NoError(t, catalog.WriteDocument(path, catalog.DefaultPositions()))

	err := schemas.ValidateJSON("position_catalog.schema.json", path)
	assert.NoError(t, err)
}

func TestPositionCatalog_RejectsUnknownTier(t *testing.T) {
	doc := `{"qa": {"required_skills": ["testing"], "soft_skills": ["empathy"]}}`
	err := schemas.ValidateBytes("position_catalog.schema.json", []byte(doc))
	require.Error(t, err)

	_, ok := err.(*schemas.ValidationError)
	assert.True(t, ok, "expected ValidationError, got %T: %v", err, err)
}

func TestSkillGapReport_EngineOutputValidates(t *testing.T) {
	engine := advisor.NewEngine(catalog.Default())
	profile := &types.CandidateProfile{
		Skills:          types.SkillList{"python", "html", "css", "git"},
		YearsExperience: 2,
	}

	for _, position := range engine.Catalog().Positions() {
		t.Run(position, func(t *testing.T) {
			report := engine.Analyze(profile, position)
			require.False(t, report.Failed())

			err := schemas.ValidateValue("skill_gap_report.schema.json", report)
			assert.NoError(t, err)
		})
	}
}

func TestSkillGapReport_ErrorShapeValidates(t *testing.T) {
	report := advisor.NewEngine(catalog.Default()).Analyze(&types.CandidateProfile{}, "quantum_barista")
	require.True(t, report.Failed())

	err := schemas.ValidateValue("skill_gap_report.schema.json", report)
	assert.NoError(t, err)
}

func TestSkillGapReport_RejectsMixedShape(t *testing.T) {
	doc := `{
		"target_position": "devops",
		"analysis_timestamp": "2024-03-01T12:00:00Z",
		"error": "boom",
		"recommendations": {"immediate_priorities": []},
		"improvement_plan": {}
	}`
	err := schemas.ValidateBytes("skill_gap_report.schema.json", []byte(doc))
	assert.Error(t, err)
}

func TestCandidateProfile_StringAndArraySkills(t *testing.T) {
	assert.NoError(t, schemas.ValidateBytes("candidate_profile.schema.json", []byte(`{"skills": "python, sql"}`)))
	assert.NoError(t, schemas.ValidateBytes("candidate_profile.schema.json", []byte(`{"skills": ["python", "sql"]}`)))
	assert.Error(t, schemas.ValidateBytes("candidate_profile.schema.json", []byte(`{"skills": {"a": 1}}`)))
}
