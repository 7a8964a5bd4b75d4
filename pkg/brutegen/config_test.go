package brutegen

import (
	"strings"
	"testing"
	"time"

	"github.com/assetnote/brutegen/pkg/charset"
	errors2 "github.com/assetnote/brutegen/pkg/errors"
	"github.com/assetnote/brutegen/pkg/keyspace"
	"github.com/francoispqt/gojay"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		opts       []ConfigOption
		wantFields []string
	}{
		{"defaults", nil, nil},
		{"empty alphabet", []ConfigOption{Alphabet(charset.Alphabet{})}, []string{"Alphabet"}},
		{"zero min length", []ConfigOption{Lengths(keyspace.LengthRange{Min: 0, Max: 3})}, []string{"Lengths"}},
		{"inverted lengths", []ConfigOption{Lengths(keyspace.LengthRange{Min: 4, Max: 3})}, []string{"Lengths"}},
		{"zero workers", []ConfigOption{Workers(0)}, []string{"Workers"}},
		{"bounded without count", []ConfigOption{GenerationMode(RandomBounded)}, []string{"Count"}},
		{"unknown mode", []ConfigOption{GenerationMode(Mode(9))}, []string{"Mode"}},
		{"zero buffer", []ConfigOption{BufferSize(0)}, []string{"BufferSize"}},
		{"negative budget", []ConfigOption{BufferMemoryLimit(-1)}, []string{"BufferMemoryLimit"}},
		{"random without seeds", []ConfigOption{GenerationMode(RandomUnbounded), Seeds(nil)}, []string{"Seeds"}},
		{
			"every bad field is reported",
			[]ConfigOption{Workers(0), BufferSize(-5), Alphabet(charset.Alphabet{})},
			[]string{"Alphabet", "Workers", "BufferSize"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(tt.opts...)
			err := e.Config().Validate()
			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.NotNil(t, e.Config().Allocator)
				assert.NotNil(t, e.Config().ProgressBar)
				assert.False(t, e.Config().RunID.IsNil())
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, errors2.ErrInvalidConfig)

			var bad *ErrBadConfig
			require.ErrorAs(t, err, &bad)
			assert.Equal(t, tt.wantFields, bad.Fields())
			for _, f := range tt.wantFields {
				assert.Contains(t, err.Error(), f)
			}
		})
	}
}

func TestConfig_Defaults(t *testing.T) {
	c := NewDefaultConfig()
	assert.Equal(t, keyspace.LengthRange{Min: 8, Max: 9}, c.Lengths)
	assert.Equal(t, charset.ASCIIAll, c.Alphabet.String())
	assert.Equal(t, 1, c.Workers)
	assert.Equal(t, Enumerate, c.Mode)
}

func TestMode(t *testing.T) {
	assert.Equal(t, "enumerate", Enumerate.String())
	assert.Equal(t, "random-bounded", RandomBounded.String())
	assert.Equal(t, "random-unbounded", RandomUnbounded.String())
	assert.Equal(t, "mode(7)", Mode(7).String())

	assert.False(t, Enumerate.Random())
	assert.True(t, RandomBounded.Random() && RandomBounded.Finite())
	assert.False(t, RandomUnbounded.Finite())
}

func TestStats_MarshalJSON(t *testing.T) {
	id, err := ksuid.Parse("0ujtsYcgvSTl8PAuAdqWYSMnLOv")
	require.NoError(t, err)
	s := &Stats{
		RunID:    id,
		Mode:     RandomBounded,
		Charset:  "ab",
		Min:      1,
		Max:      2,
		Planned:  6,
		Records:  6,
		Bytes:    15,
		Started:  time.Date(2021, 4, 1, 12, 0, 0, 0, time.UTC),
		Duration: 1500 * time.Millisecond,
		Workers: WorkerStatsList{
			{ID: 0, Start: 0, End: 3, Records: 3, Bytes: 6, Flushes: 1},
			{ID: 1, Start: 3, End: 6, Records: 3, Bytes: 9, Flushes: 1},
		},
	}

	b := strings.Builder{}
	enc := gojay.BorrowEncoder(&b)
	defer enc.Release()
	require.NoError(t, enc.Encode(s))

	want := `{"run":"0ujtsYcgvSTl8PAuAdqWYSMnLOv","mode":"random-bounded","charset":"ab","min":1,"max":2,` +
		`"planned":6,"records":6,"bytes":15,"started":"2021-04-01T12:00:00Z","duration_ms":1500,"workers":[` +
		`{"id":0,"start":0,"end":3,"records":3,"bytes":6,"flushes":1,"cancelled":false},` +
		`{"id":1,"start":3,"end":6,"records":3,"bytes":9,"flushes":1,"cancelled":false}]}`
	assert.Equal(t, want, b.String())
	assert.InDelta(t, 4.0, s.Rate(), 0.001)
}
