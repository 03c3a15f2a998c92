package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/skillgap-advisor/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against one of the bundled schemas",
	Long: `Validates a catalog, candidate profile or report file. --schema accepts
"catalog", "profile", "report" or a path to a schema file.`,
	RunE: runValidate,
}

var (
	validateFile   string
	validateSchema string
)

var schemaAliases = map[string]string{
	"catalog": schemas.PositionCatalogSchema,
	"profile": schemas.CandidateProfileSchema,
	"report":  schemas.SkillGapReportSchema,
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to the JSON file to validate (required)")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Schema name (catalog, profile, report) or schema path (required)")

	if err := validateCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	schemaPath := validateSchema
	if alias, ok := schemaAliases[strings.ToLower(validateSchema)]; ok {
		schemaPath = schemas.ResolveSchemaPath(alias)
		if schemaPath == "" {
			return fmt.Errorf("schema file not found: %s", alias)
		}
	}

	if err := schemas.ValidateJSON(schemaPath, validateFile); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			for _, fieldErr := range validationErr.Errors {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", fieldErr.Field, fieldErr.Message)
			}
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", validateFile)
	return nil
}
