package cmd

import (
	"github.com/spf13/cobra"
)

// charsetCmd represents the charset command
var charsetCmd = &cobra.Command{
	Use:   "charset",
	Short: "look at the builtin charsets",
	Long:  `charsets are selected with -c using their id. several ids can be combined with commas`,
}

func init() {
	rootCmd.AddCommand(charsetCmd)
}
