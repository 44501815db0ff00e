package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/safebite/safebite/internal/ioproduct"
	"github.com/safebite/safebite/internal/ioprofile"
	"github.com/safebite/safebite/internal/iotaxonomy"
	"github.com/safebite/safebite/pkg/detect"
	"github.com/safebite/safebite/pkg/product"
	"github.com/safebite/safebite/pkg/profile"
	"github.com/spf13/cobra"
)

func getScanCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "scan BARCODE",
		Short: "Looks up one barcode and prints a detection report",
		Long: `Looks up a product by barcode, parses its ingredient declaration and
reports which of the user's selected avoid-ingredients it contains.

A product whose ingredient information is missing or unparseable is
reported as "ingredient information unavailable" - an unknown risk,
which is not the same as a clean scan.

Examples:
  safebite scan 7610848337010 --user alice`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			barcode := args[0]
			ctx := context.Background()

			tx, err := iotaxonomy.LoadTaxonomy(cfg)
			if err != nil {
				return fmt.Errorf(
					"failed to load taxonomy (did you run 'safebite build'?): %w", err)
			}

			prof := profile.Profile{}
			if user != "" {
				store, err := ioprofile.New(ctx, cfg)
				if err != nil {
					return fmt.Errorf("failed to connect profile store: %w", err)
				}
				defer store.Close()

				prof, err = store.Get(ctx, user)
				if err != nil {
					return err
				}
			}

			products := ioproduct.New(cfg)
			prod, err := products.Lookup(ctx, barcode)
			if errors.Is(err, product.ErrNotFound) {
				fmt.Printf("Product %s not found in any source\n", barcode)
				return nil
			}
			if err != nil {
				return fmt.Errorf("product lookup failed: %w", err)
			}

			fmt.Printf("Product: %s (%s)\n", prod.Name, prod.Barcode)

			detector := detect.New(tx)
			detected, err := detector.DetectProduct(prod, prof)
			if errors.Is(err, detect.ErrNoIngredientData) {
				fmt.Println("Ingredient information unavailable - risk unknown")
				return nil
			}

			if len(detected) == 0 {
				fmt.Println("No avoided ingredients detected")
				return nil
			}

			fmt.Printf("Detected %d avoided ingredient(s):\n", len(detected))
			for _, d := range detected {
				fmt.Printf("  - %s\n", tx.DisplayName(d.ID, d.Lang))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "",
		"user id whose avoid-list profile to check against")

	return cmd
}
