package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"passforge/internal/domain"
	"passforge/internal/strength"
)

// harden: derive the three password variants from the base secret and
// metadata; --save persists a recovery package alongside.
func hardenCmd() *cobra.Command {
	var (
		md      domain.Metadata
		salt    string
		save    bool
		showKey bool
	)
	cmd := &cobra.Command{
		Use:   "harden",
		Short: "Derive hardened password variants from a base secret and metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := readBaseSecret()
			if err != nil {
				return err
			}

			var result domain.HardenResult
			if salt != "" {
				result, err = appCtx.Hardener.HardenWithSalt(base, md, salt, appCtx.Iterations)
			} else {
				result, err = appCtx.Hardener.Harden(base, md, appCtx.Iterations)
			}
			if err != nil {
				return err
			}

			original := strength.Analyze(base)
			fmt.Printf("Base secret entropy: %v bits (%s)\n\n", original.Entropy, original.Strength)

			for _, v := range result.Variants {
				fmt.Println(variantLine(v))
			}

			if medium, ok := result.Variant(domain.VariantMedium); ok {
				a := strength.Analyze(medium.Password)
				fmt.Printf("\nMedium variant: %s, cracked in %s\n", a.Strength, a.CrackTime.Display)
			}

			fmt.Printf("\nAlgorithm:  %s\n", result.Algorithm)
			fmt.Printf("Iterations: %d\n", result.Iterations)
			fmt.Printf("Salt:       %s\n", result.Salt)
			if showKey {
				fmt.Printf("Key:        %s\n", result.KeyHex)
			}

			if save {
				if _, err := appCtx.Recovery.Create(md, result.Salt, result.Iterations); err != nil {
					return err
				}
				fmt.Printf("\nRecovery package saved to %s\n", appCtx.File)
			}
			return nil
		},
	}
	metadataFlags(cmd, &md)
	cmd.Flags().StringVar(&salt, "salt", "", "reuse a previously issued salt instead of generating one")
	cmd.Flags().BoolVar(&save, "save", false, "persist a recovery package (salt, iterations, metadata hints)")
	cmd.Flags().BoolVar(&showKey, "show-key", false, "print the full derived key hex")
	return cmd
}

// variantLine formats one derived variant with its entropy and rating.
func variantLine(v domain.Variant) string {
	rating, _ := strength.Classify(v.Entropy)
	return fmt.Sprintf("  %-6s  %-32s  %v bits  %s", v.Label, v.Password, v.Entropy, rating)
}
