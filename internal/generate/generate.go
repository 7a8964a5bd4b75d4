package generate

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/assetnote/brutegen/pkg/brutegen"
	errors2 "github.com/assetnote/brutegen/pkg/errors"
	"github.com/assetnote/brutegen/pkg/keyspace"
	"github.com/assetnote/brutegen/pkg/log"
	"github.com/dustin/go-humanize"
	"github.com/manifoldco/promptui"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
)

// plan is what the run is expected to produce
type plan struct {
	run       ksuid.KSUID
	output    string
	records   uint64 // 0 when unbounded
	size      uint64
	sizeKnown bool
}

// enumerationBytes is the size of the first limit strings of the space, one per line
func enumerationBytes(space *keyspace.Space, limit uint64) (uint64, bool) {
	var (
		total     uint64
		remaining = limit
		ok        bool
	)
	for i, c := range space.Counts() {
		if remaining == 0 {
			break
		}
		n := c
		if n > remaining {
			n = remaining
		}
		v, fits := keyspace.MulChecked(n, uint64(space.Lengths().Min+i+1))
		if !fits {
			return 0, false
		}
		if total, ok = keyspace.AddChecked(total, v); !ok {
			return 0, false
		}
		remaining -= n
	}
	return total, true
}

func newPlan(o *GenerateOptions) (*plan, error) {
	p := &plan{run: ksuid.New()}
	p.output = OutputFilename(o.Output, o, p.run)

	switch o.Mode {
	case brutegen.Enumerate:
		space, err := keyspace.NewSpace(o.Alphabet, o.Lengths)
		if err != nil {
			return nil, err
		}
		p.records = space.Total()
		if o.Count > 0 {
			if o.Count > space.Total() {
				return nil, fmt.Errorf("%w: count %s is larger than the keyspace of %s", errors2.ErrInvalidConfig,
					bigComma(o.Count), bigComma(space.Total()))
			}
			p.records = o.Count
		}
		p.size, p.sizeKnown = enumerationBytes(space, p.records)
	case brutegen.RandomBounded:
		p.records = o.Count
		p.size, p.sizeKnown = keyspace.MulChecked(o.Count, uint64(o.Lengths.Min+o.Lengths.Max+2)/2)
	}
	return p, nil
}

func logSettings(o *GenerateOptions, p *plan) {
	fields := map[string]interface{}{
		"run":         p.run.String(),
		"mode":        o.Mode.String(),
		"charset":     o.charsetSelection,
		"symbols":     o.Alphabet.Len(),
		"length":      o.Lengths.String(),
		"threads":     o.Threads,
		"output":      p.output,
		"buffer-size": humanize.IBytes(uint64(o.BufferSize)),
	}
	if o.customSymbols != "" {
		fields["custom"] = o.customSymbols
	}
	if p.records > 0 {
		fields["records"] = bigComma(p.records)
	}
	if p.sizeKnown {
		fields["estimated-size"] = humanize.Bytes(p.size)
	}
	if o.BufferMemory > 0 {
		fields["buffer-memory"] = humanize.IBytes(uint64(o.BufferMemory))
	}
	if o.HasSeed {
		fields["seed"] = o.Seed
	}

	switch log.GetLogFormat() {
	case "json":
		log.Info().Fields(fields).Msg("generation options")
	case "text":
		fallthrough
	case "pretty":
		fallthrough
	default:
		// stdout may be the output stream, so the table goes to stderr
		table := tablewriter.NewWriter(os.Stderr)
		table.SetHeader([]string{"setting", "value"})
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(true)

		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, v := range keys {
			table.Append([]string{v, fmt.Sprintf("%v", fields[v])})
		}
		fmt.Fprintf(os.Stderr, "\n")
		table.Render()
		fmt.Fprintf(os.Stderr, "\n")
	}
}

func promptConfirm(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdout:    os.Stderr,
	}
	v, err := prompt.Run()
	return err == nil && strings.ToLower(v) == "y"
}

// Generate runs the engine with the options and writes the records to the configured output.
// Workers that could not allocate a buffer are reported as warnings and do not fail the run.
// An interrupted finite run returns context.Canceled after everything buffered has been written
func Generate(ctx context.Context, opts ...GenerateOption) error {
	start := time.Now()
	o, err := NewGenerateOptions(opts...)
	if err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errors2.ErrInvalidConfig, err)
	}

	p, err := newPlan(o)
	if err != nil {
		return err
	}
	logSettings(o, p)

	if p.sizeKnown && p.size > o.ConfirmThreshold && !o.AssumeYes {
		label := fmt.Sprintf("Write %s records (%s) to %s? [y/n]", bigComma(p.records), humanize.Bytes(p.size), p.output)
		if !o.confirm(label) {
			return ErrAborted
		}
	}

	w, err := openOutput(p.output)
	if err != nil {
		return err
	}

	pb := NewProgress(o)
	engineOpts := append(o.EngineOptions(), brutegen.RunID(p.run), brutegen.Progress(pb))
	stats, err := brutegen.Run(ctx, w, engineOpts...)
	pb.Finish()

	if cerr := w.Close(); cerr != nil && err == nil {
		err = errors.Wrap(cerr, "failed to close output")
	}

	if stats != nil {
		if o.StatsFile != "" {
			if serr := WriteStatsFile(o.StatsFile, stats); serr != nil {
				log.Error().Err(serr).Str("file", o.StatsFile).Msg("failed to write stats")
			}
		}
		log.Info().
			Str("run", stats.RunID.String()).
			Uint64("records", stats.Records).
			Str("written", humanize.Bytes(stats.Bytes)).
			Str("rate", humanize.SIWithDigits(stats.Rate(), 1, "records/s")).
			Dur("duration", time.Since(start)).
			Msg("generation complete")
	}

	if errors2.IsPartial(err) {
		log.Warn().Ints("workers", stats.FailedWorkers()).Msg("some workers contributed no output")
		errors2.PrintError(err, 1)
		return nil
	}
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("generation interrupted before completion")
	}
	return err
}
