package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"passforge/internal/domain"
)

// recover: regenerate password variants from the stored recovery package
// plus the re-supplied base secret and metadata.
func recoverCmd() *cobra.Command {
	var (
		md      domain.Metadata
		variant string
		all     bool
	)
	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Regenerate passwords from the recovery package",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := readBaseSecret()
			if err != nil {
				return err
			}

			if all {
				variants, err := appCtx.Recovery.RegenerateAll(base, md)
				if err != nil {
					return err
				}
				for _, v := range variants {
					fmt.Printf("  %-6s  %s\n", v.Label, v.Password)
				}
				return nil
			}

			label, err := domain.ParseVariantLabel(variant)
			if err != nil {
				return err
			}
			v, err := appCtx.Recovery.Regenerate(base, md, label)
			if err != nil {
				return err
			}
			fmt.Println(v.Password)
			return nil
		},
	}
	metadataFlags(cmd, &md)
	cmd.Flags().StringVar(&variant, "variant", string(domain.VariantMedium), "variant to regenerate (short, medium, long)")
	cmd.Flags().BoolVar(&all, "all", false, "regenerate all three variants")
	return cmd
}
