package cmd

import (
	"os"

	"github.com/assetnote/brutegen/internal/generate"
	"github.com/assetnote/brutegen/pkg/log"
	"github.com/spf13/cobra"
)

// charsetListCmd represents the charset list command
var charsetListCmd = &cobra.Command{
	Use:   "list",
	Short: "list the builtin charsets",
	Long: `list will show every builtin charset with its id, size and symbols

usage:
brutegen charset list
brutegen charset list -o json
`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt, err := generate.FormatFromString(Output)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid format")
		}
		if err := generate.ListCharsets(os.Stdout, fmt); err != nil {
			log.Fatal().Err(err).Msg("failed to list charsets")
		}
	},
}

func init() {
	charsetCmd.AddCommand(charsetListCmd)
}
