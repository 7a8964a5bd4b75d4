package cmd

import (
	"errors"

	"github.com/assetnote/brutegen/internal/generate"
	"github.com/assetnote/brutegen/pkg/context"
	"github.com/assetnote/brutegen/pkg/log"
	"github.com/spf13/cobra"
)

// output flags shared by gen and random
var (
	count            uint64
	outputFile       = generate.DefaultOutputFile
	statsFile        string
	bufferSize       int
	bufferMemory     string
	progressBar      bool
	progressStyle    = "total"
	assumeYes        bool
	confirmThreshold = generate.DefaultConfirmThreshold
)

func addOutputFlags(c *cobra.Command) {
	c.Flags().StringVarP(&outputFile, "output-file", "O", outputFile,
		"file to write to, '-' for stdout. supports {charset} {min} {max} {mode} {run} tags")
	c.Flags().StringVar(&statsFile, "stats-file", statsFile, "write run statistics as json to this file")
	c.Flags().IntVar(&bufferSize, "buffer-size", 1<<20, "size in bytes of each thread's output buffer")
	c.Flags().StringVar(&bufferMemory, "buffer-memory", "", "limit for all output buffers together, e.g. 64MiB. threads over the limit produce nothing")
	c.Flags().BoolVar(&progressBar, "progress", false, "show a progress bar on stderr")
	c.Flags().StringVar(&progressStyle, "progress-style", progressStyle, "progress bar style. can be total,workers")
	c.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask before writing large outputs")
	c.Flags().StringVar(&confirmThreshold, "confirm-threshold", confirmThreshold, "estimated output size that needs a confirmation")
}

func outputOptions() []generate.GenerateOption {
	return []generate.GenerateOption{
		generate.OutputFile(outputFile),
		generate.StatsFile(statsFile),
		generate.BufferSize(bufferSize),
		generate.BufferMemory(bufferMemory),
		generate.ProgressBarEnabled(progressBar),
		generate.Progress(progressStyle),
		generate.AssumeYes(assumeYes),
		generate.ConfirmThreshold(confirmThreshold),
	}
}

func runGenerate(opts []generate.GenerateOption) {
	err := generate.Generate(context.Context(), opts...)
	switch {
	case err == nil:
	case errors.Is(err, generate.ErrAborted):
		log.Info().Msg("nothing written")
	default:
		log.Fatal().Err(err).Msg("failed to generate")
	}
}
