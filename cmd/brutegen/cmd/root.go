package cmd

import (
	"fmt"
	"os"

	"github.com/assetnote/brutegen/internal/art"
	"github.com/assetnote/brutegen/internal/generate"
	"github.com/assetnote/brutegen/pkg/log"
	"github.com/spf13/cobra"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// These global variables can be configured with the corresponding lowercase flag
var (
	Verbose string // Verbose defines the logging level, either trace, debug, info, error, fatal
	Output  string // Output defines the log format, either pretty, text, json
	Quiet   bool   // Quiet will hide the ascii art upon startup

	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "brutegen",
	Short: "brutegen enumerates or samples strings over a fixed alphabet",
	Long: `brutegen generates candidate strings over a charset for brute force tooling.

Every string of a length range can be enumerated exactly once, or strings
can be sampled at random. The work is split over threads and written as one
string per line to stdout or a file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	// the config file may set the log format, so it is read first
	cobra.OnInitialize(initConfig)
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.brutegen.yaml)")

	rootCmd.PersistentFlags().StringVarP(&Verbose, "verbose", "v", "info", "level of logging verbosity. can be error,info,debug,trace")
	rootCmd.PersistentFlags().StringVarP(&Output, "output", "o", "pretty", "log format. can be json,text,pretty")
	rootCmd.PersistentFlags().BoolVarP(&Quiet, "quiet", "q", false, "quiet mode. will mute unecessary pretty text")

	rootCmd.PersistentFlags().StringP("charset", "c", "all", "comma separated charset ids, see 'charset list'")
	rootCmd.PersistentFlags().String("custom", "", "extra symbols merged into the charset")
	rootCmd.PersistentFlags().StringP("length", "l", generate.DefaultLength, "length or length range, e.g. 8 or 3-6")
	rootCmd.PersistentFlags().IntP("threads", "t", generate.DefaultThreads, "number of worker threads")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("charset", rootCmd.PersistentFlags().Lookup("charset"))
	viper.BindPFlag("custom", rootCmd.PersistentFlags().Lookup("custom"))
	viper.BindPFlag("length", rootCmd.PersistentFlags().Lookup("length"))
	viper.BindPFlag("threads", rootCmd.PersistentFlags().Lookup("threads"))
}

func initLogging() {
	if err := log.SetFormat(viper.GetString("output")); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logging")
	}

	level := viper.GetString("verbose")
	if level != "" {
		if err := log.SetLevelString(level); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize logging")
		}
	}
	log.Debug().Str("level", level).Str("format", viper.GetString("output")).Msg("custom log settings")

	if viper.GetString("output") == "pretty" && !viper.GetBool("quiet") {
		art.WriteArtBytes(os.Stderr)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".brutegen" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".brutegen")
	}

	viper.SetEnvPrefix("brutegen")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// keyspaceOptions are the options shared by every command that works on a charset and a length
func keyspaceOptions() []generate.GenerateOption {
	return []generate.GenerateOption{
		generate.Charset(viper.GetString("charset"), viper.GetString("custom")),
		generate.Length(viper.GetString("length")),
		generate.Threads(viper.GetInt("threads")),
	}
}
