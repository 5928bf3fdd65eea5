package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"passforge/internal/domain"
)

// verify <stored>: recompute the derivation and compare. Uses --salt when
// given, otherwise the salt and iterations from the recovery package.
func verifyCmd() *cobra.Command {
	var (
		md   domain.Metadata
		salt string
	)
	cmd := &cobra.Command{
		Use:   "verify <stored>",
		Short: "Check a password against its re-derivation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := readBaseSecret()
			if err != nil {
				return err
			}

			var match bool
			if salt != "" {
				match, err = appCtx.Hardener.Verify(base, md, salt, args[0], appCtx.Iterations)
			} else {
				match, err = appCtx.Recovery.Verify(base, md, args[0])
			}
			if err != nil {
				return err
			}

			if match {
				fmt.Println("match")
			} else {
				fmt.Println("no match")
			}
			return nil
		},
	}
	metadataFlags(cmd, &md)
	cmd.Flags().StringVar(&salt, "salt", "", "salt the password was derived under (default: from the recovery package)")
	return cmd
}
