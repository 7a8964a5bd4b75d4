package generate

import (
	"io"
	"os"
	"strconv"

	"github.com/assetnote/brutegen/pkg/brutegen"
	"github.com/francoispqt/gojay"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"github.com/valyala/fasttemplate"
)

// OutputFilename expands the {charset} {min} {max} {mode} and {run} tags of the output name.
// Unknown tags are left untouched
func OutputFilename(name string, o *GenerateOptions, run ksuid.KSUID) string {
	tags := map[string]string{
		"charset": o.charsetSelection,
		"min":     strconv.Itoa(o.Lengths.Min),
		"max":     strconv.Itoa(o.Lengths.Max),
		"mode":    o.Mode.String(),
		"run":     run.String(),
	}
	t, err := fasttemplate.NewTemplate(name, "{", "}")
	if err != nil {
		// unbalanced braces, use the name as is
		return name
	}
	return t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if v, ok := tags[tag]; ok {
			return w.Write([]byte(v))
		}
		return w.Write([]byte("{" + tag + "}"))
	})
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// openOutput opens the named file for writing, or stdout for "-" and ""
func openOutput(name string) (io.WriteCloser, error) {
	if name == "" || name == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open output")
	}
	return f, nil
}

// WriteStatsFile writes the run statistics as json
func WriteStatsFile(name string, stats *brutegen.Stats) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "failed to create stats file")
	}
	defer f.Close()

	enc := gojay.BorrowEncoder(f)
	defer enc.Release()
	if err := enc.Encode(stats); err != nil {
		return errors.Wrap(err, "failed to encode stats")
	}
	if _, err := f.Write([]byte("\n")); err != nil {
		return errors.Wrap(err, "failed to write stats file")
	}
	return nil
}
