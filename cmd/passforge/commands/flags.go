package commands

import (
	"github.com/spf13/cobra"

	"passforge/internal/domain"
)

// metadataFlags registers the six personal metadata fields on cmd.
func metadataFlags(cmd *cobra.Command, md *domain.Metadata) {
	f := cmd.Flags()
	f.StringVar(&md.HouseName, "house-name", "", "childhood house or street name")
	f.StringVar(&md.PhoneSuffix, "phone-suffix", "", "last digits of an old phone number")
	f.StringVar(&md.CoreMemory, "core-memory", "", "a private memorable phrase")
	f.StringVar(&md.HandleName, "handle-name", "", "an old online handle")
	f.StringVar(&md.BirthdayToken, "birthday-token", "", "a meaningful date token")
	f.StringVar(&md.Custom, "custom", "", "any extra personal token")
}
