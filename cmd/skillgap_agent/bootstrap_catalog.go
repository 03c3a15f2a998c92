package main

import (
	"fmt"
	"os"

	"github.com/jonathan/skillgap-advisor/internal/catalog"
	"github.com/spf13/cobra"
)

var bootstrapCatalogCmd = &cobra.Command{
	Use:   "bootstrap-catalog",
	Short: "Write the built-in position catalog to a file",
	Long:  "Writes the default positions to a JSON file, or YAML when the path ends in .yaml or .yml.",
	RunE:  runBootstrapCatalog,
}

var (
	bootstrapOut   string
	bootstrapForce bool
)

func init() {
	bootstrapCatalogCmd.Flags().StringVarP(&bootstrapOut, "out", "o", "", "Path to write the catalog (defaults to --catalog or models/skills_database.json)")
	bootstrapCatalogCmd.Flags().BoolVar(&bootstrapForce, "force", false, "Overwrite an existing catalog file")

	rootCmd.AddCommand(bootstrapCatalogCmd)
}

func runBootstrapCatalog(cmd *cobra.Command, _ []string) error {
	path := bootstrapOut
	if path == "" {
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		path = cfg.CatalogPath
	}

	if _, err := os.Stat(path); err == nil && !bootstrapForce {
		return fmt.Errorf("catalog already exists at %s (use --force to overwrite)", path)
	}

	doc := catalog.DefaultPositions()
	if err := catalog.WriteDocument(path, doc); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully wrote %d positions to %s\n", len(doc), path)
	return nil
}
