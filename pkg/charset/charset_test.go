package charset

import (
	"strings"
	"testing"

	"github.com/francoispqt/gojay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlphabet(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
		wantErr error
	}{
		{"simple", "ab", nil},
		{"single", "x", nil},
		{"empty", "", ErrEmptyAlphabet},
		{"duplicate", "abca", ErrDuplicateSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAlphabet(tt.symbols)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.symbols), a.Len())
			assert.Equal(t, tt.symbols, a.String())
		})
	}
}

func TestAlphabet_Index(t *testing.T) {
	a := MustAlphabet("xyz")
	assert.Equal(t, 0, a.Index('x'))
	assert.Equal(t, 2, a.Index('z'))
	assert.Equal(t, -1, a.Index('a'))
	assert.Equal(t, byte('y'), a.Symbol(1))
	assert.True(t, a.Contains("zyx"))
	assert.False(t, a.Contains("xa"))
}

func TestAlphabet_Merge(t *testing.T) {
	a := MustAlphabet("abc")
	m, err := a.Merge("cdab")
	require.NoError(t, err)
	assert.Equal(t, "abcd", m.String())
	// the receiver is not modified
	assert.Equal(t, "abc", a.String())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		selection string
		want      string
		wantErr   error
	}{
		{"digits", "d", ASCIIDigits, nil},
		{"union", "d,j", ASCIIDigits + "ABCDEF", nil},
		{"fullwidth comma", "u，d", ASCIILower + ASCIIDigits, nil},
		{"spaces and blanks", " d , ,u", ASCIIDigits + ASCIILower, nil},
		{"repeated id", "d,d", ASCIIDigits, nil},
		{"overlap keeps first order", "j,d", ASCIIUpperHex, nil},
		{"unknown", "d,nope", "", ErrUnknownCharset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Resolve(tt.selection)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestResolve_Default(t *testing.T) {
	a, err := Resolve("")
	require.NoError(t, err)
	all, err := Resolve("all")
	require.NoError(t, err)
	assert.Equal(t, all, a)
}

func TestBuiltin_Valid(t *testing.T) {
	for _, c := range Builtin {
		t.Run(c.ID, func(t *testing.T) {
			_, err := NewAlphabet(c.Symbols)
			assert.NoError(t, err)
		})
	}
}

func TestCharsets_MarshalJSON(t *testing.T) {
	b := strings.Builder{}
	enc := gojay.BorrowEncoder(&b)
	defer enc.Release()

	require.NoError(t, enc.EncodeArray(Charsets{{ID: "d", Description: "[0-9]", Symbols: ASCIIDigits}}))
	assert.Equal(t, `[{"id":"d","description":"[0-9]","size":10,"symbols":"0123456789"}]`, b.String())
}
