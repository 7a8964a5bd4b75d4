package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueStrings(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"no dupes", []string{"d", "u"}, []string{"d", "u"}},
		{"keeps first", []string{"u", "d", "u", "i", "d"}, []string{"u", "d", "i"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UniqueStrings(tt.in))
		})
	}
}

func TestUniqueBytes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no dupes", "abc", "abc"},
		{"keeps first", "abcabd0a", "abcd0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(UniqueBytes([]byte(tt.in))))
		})
	}
}

func TestFirstDuplicate(t *testing.T) {
	b, ok := FirstDuplicate([]byte("xyzy"))
	assert.True(t, ok)
	assert.Equal(t, byte('y'), b)

	_, ok = FirstDuplicate([]byte("xyz"))
	assert.False(t, ok)
}
