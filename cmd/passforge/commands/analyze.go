package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"passforge/internal/strength"
)

// analyze <password>: full strength report for any password.
func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <password>",
		Short: "Analyze the strength of any password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := strength.Analyze(args[0])

			fmt.Printf("Length:     %d\n", a.Length)
			fmt.Printf("Classes:    lower=%t upper=%t digits=%t symbols=%t\n",
				a.HasLowercase, a.HasUppercase, a.HasDigits, a.HasSymbols)
			fmt.Printf("Entropy:    %v bits\n", a.Entropy)
			fmt.Printf("Strength:   %s\n", a.Strength)
			fmt.Printf("Crack time: %s\n", a.CrackTime.Display)
			return nil
		},
	}
}
