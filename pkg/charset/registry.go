package charset

import (
	"fmt"
	"strings"

	"github.com/assetnote/brutegen/pkg/convert"
	"github.com/francoispqt/gojay"
)

var (
	ASCIIDigits   = "0123456789"
	ASCIILower    = "abcdefghijklmnopqrstuvwxyz"
	ASCIIUpper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	ASCIIUpperHex = "0123456789ABCDEF"
	ASCIISpecial  = " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	ASCIIAll      = ASCIILower + ASCIIUpper + ASCIIDigits + "!@#$%^&*()-_=+[]{}|;:'\",.<>?/`~"

	// DefaultSelection is used when no charset is requested
	DefaultSelection = "all"

	ErrUnknownCharset = fmt.Errorf("unknown charset")
)

// Charset is a named entry of the builtin registry
type Charset struct {
	ID          string
	Description string
	Symbols     string
}

func (c Charset) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("id", c.ID)
	enc.StringKey("description", c.Description)
	enc.IntKey("size", len(c.Symbols))
	enc.StringKey("symbols", c.Symbols)
}

func (c Charset) IsNil() bool {
	return c.ID == ""
}

// Charsets is a list of registry entries that can be encoded as a json array
type Charsets []Charset

func (c Charsets) MarshalJSONArray(enc *gojay.Encoder) {
	for _, v := range c {
		enc.Object(v)
	}
}

func (c Charsets) IsNil() bool {
	return len(c) == 0
}

// Builtin is the registry of named charsets. It is never mutated
var Builtin = Charsets{
	{ID: "d", Description: "[0-9]", Symbols: ASCIIDigits},
	{ID: "u", Description: "[a-z]", Symbols: ASCIILower},
	{ID: "i", Description: "[A-Z]", Symbols: ASCIIUpper},
	{ID: "h", Description: "[a-zA-Z0-9]", Symbols: ASCIILower + ASCIIUpper + ASCIIDigits},
	{ID: "j", Description: "[0-9A-F]", Symbols: ASCIIUpperHex},
	{ID: "k", Description: "[a-zA-Z]", Symbols: ASCIILower + ASCIIUpper},
	{ID: "s", Description: "special characters including space", Symbols: ASCIISpecial},
	{ID: "all", Description: "letters, digits and punctuation", Symbols: ASCIIAll},
}

// Lookup returns the builtin charset with the given id
func Lookup(id string) (Charset, error) {
	for _, v := range Builtin {
		if v.ID == id {
			return v, nil
		}
	}
	return Charset{}, fmt.Errorf("%w: %q", ErrUnknownCharset, id)
}

// SplitSelection splits a selection like "d,u,i" into charset ids. Both the ascii and the fullwidth
// comma are accepted, blank entries are skipped and duplicates removed
func SplitSelection(selection string) []string {
	fields := strings.FieldsFunc(selection, func(r rune) bool {
		return r == ',' || r == '，'
	})
	ret := make([]string, 0, len(fields))
	for _, v := range fields {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		ret = append(ret, v)
	}
	return convert.UniqueStrings(ret)
}

// Resolve builds the alphabet for a selection of builtin charsets. The union keeps the order in
// which symbols are first seen. An empty selection resolves DefaultSelection
func Resolve(selection string) (Alphabet, error) {
	ids := SplitSelection(selection)
	if len(ids) == 0 {
		ids = []string{DefaultSelection}
	}

	var combined []byte
	for _, id := range ids {
		c, err := Lookup(id)
		if err != nil {
			return Alphabet{}, err
		}
		combined = append(combined, c.Symbols...)
	}
	return NewAlphabet(string(convert.UniqueBytes(combined)))
}
