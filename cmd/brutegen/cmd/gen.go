package cmd

import (
	"github.com/assetnote/brutegen/internal/generate"
	"github.com/spf13/cobra"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen [flags]",
	Short: "enumerate every string of the charset and length range",
	Long: `gen writes every string over the charset with a length inside the range
exactly once. Strings are ordered by length, then by the order of the symbols
in the charset. With more than one thread every thread writes a contiguous
part of the keyspace and the parts are interleaved in the output.

usage:
brutegen gen -c d -l 4
brutegen gen -c u,d --custom _- -l 3-5 -t 8 -O words-{min}-{max}.txt
brutegen gen -c d -l 8 -n 1000000
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := append(keyspaceOptions(), generate.Enumeration(count))
		runGenerate(append(opts, outputOptions()...))
	},
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().Uint64VarP(&count, "count", "n", 0, "only write the first n strings of the keyspace")
	addOutputFlags(genCmd)
}
