package main

import (
	"context"
	"fmt"

	"github.com/safebite/safebite/internal/iotaxonomy"
	"github.com/spf13/cobra"
)

func getBuildCmd() *cobra.Command {
	var ingredientsFile, additivesFile, cacheDir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Builds the taxonomy caches from the source files",
		Long: `Parses the hierarchical ingredient and additive taxonomy source files
and writes the JSON caches consumed by 'serve' and 'scan'.

Malformed or unknown lines in the sources are skipped silently; a build
never aborts on bad data. Worst case is an entry with missing fields,
which the display and category fallback rules absorb at runtime.

Examples:
  safebite build
  safebite build --ingredients data/ingredients.txt --additives data/additives.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			if ingredientsFile != "" {
				cfg.Taxonomy.IngredientsFile = ingredientsFile
			}
			if additivesFile != "" {
				cfg.Taxonomy.AdditivesFile = additivesFile
			}
			if cacheDir != "" {
				cfg.Taxonomy.CacheDir = cacheDir
			}

			builder := iotaxonomy.NewBuilder()
			if err := builder.Build(context.Background(), cfg); err != nil {
				return fmt.Errorf("taxonomy build failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ingredientsFile, "ingredients", "",
		"path to the ingredients taxonomy source file")
	cmd.Flags().StringVar(&additivesFile, "additives", "",
		"path to the additives taxonomy source file")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "",
		"directory for the generated JSON caches")

	return cmd
}
