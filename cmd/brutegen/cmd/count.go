package cmd

import (
	"os"

	"github.com/assetnote/brutegen/internal/generate"
	"github.com/assetnote/brutegen/pkg/log"
	"github.com/spf13/cobra"
)

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "show the size of the keyspace per length",
	Long: `count shows how many strings every length of the range holds, the index
of the first string of each length and the size of the output. Lengths whose
count no longer fits 64 bits are marked as overflow and cannot be enumerated.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt, err := generate.FormatFromString(Output)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid format")
		}
		if err := generate.Count(os.Stdout, fmt, keyspaceOptions()...); err != nil {
			log.Fatal().Err(err).Msg("failed to count keyspace")
		}
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
