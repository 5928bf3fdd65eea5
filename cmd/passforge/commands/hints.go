package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"passforge/internal/domain"
)

// hints: show the stored metadata hints and derivation parameters without
// deriving anything.
func hintsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hints",
		Short: "Show the stored metadata hints and derivation parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg, err := appCtx.Recovery.Load()
			if err != nil {
				return err
			}

			fmt.Printf("Recovery package: %s\n", appCtx.File)
			fmt.Printf("Algorithm:  %s\n", pkg.Algorithm)
			fmt.Printf("Iterations: %d\n", pkg.Iterations)
			fmt.Printf("Secret key: %s\n", pkg.SecretKey)
			fmt.Println("Hints:")
			for _, name := range domain.MetadataFieldNames() {
				fmt.Printf("  %-15s %s\n", name, pkg.MetadataHints[name])
			}
			return nil
		},
	}
}
