package cmd

import (
	"github.com/assetnote/brutegen/internal/generate"
	"github.com/spf13/cobra"
)

var (
	seed uint64
)

// randomCmd represents the random command
var randomCmd = &cobra.Command{
	Use:   "random [flags]",
	Short: "write random strings of the charset and length range",
	Long: `random draws strings with a uniformly random length inside the range
and uniformly random symbols. With -n exactly that many strings are written,
otherwise strings are written until interrupted with ctrl+c.

The generator is not suitable for secrets.

usage:
brutegen random -c h -l 12 -n 1000
brutegen random -c d -l 6-8 -t 4 --seed 1337 -n 100
brutegen random -c all -l 16 > stream.txt
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := append(keyspaceOptions(), generate.Random(count))
		if cmd.Flags().Changed("seed") {
			opts = append(opts, generate.Seed(uint64(seed)))
		}
		runGenerate(append(opts, outputOptions()...))
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)

	randomCmd.Flags().Uint64VarP(&count, "count", "n", 0, "number of strings to write. 0 writes until interrupted")
	randomCmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible output with the same thread count. unset seeds randomly")
	addOutputFlags(randomCmd)
}
