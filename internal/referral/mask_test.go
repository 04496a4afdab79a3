package referral

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"shorter than four", "AB", "AB"},
		{"exactly four stays unmasked", "ABCD", "ABCD"},
		{"five characters", "ABCDE", "XBCDE"},
		{"passport number", "AB123456", "XXXX3456"},
		{"long value", "P0123456789", "XXXXXXX6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskField(tt.input))
		})
	}
}

func TestMaskFieldPreservesLengthAndSuffix(t *testing.T) {
	for _, s := range []string{"", "A", "ABCD", "ABCDE", "ZX9813347", "0123456789ABCDEF"} {
		masked := MaskField(s)
		assert.Len(t, masked, len(s))

		keep := len(s)
		if keep > 4 {
			keep = 4
		}
		assert.True(t, strings.HasSuffix(masked, s[len(s)-keep:]))
		for _, r := range masked[:len(masked)-keep] {
			assert.Equal(t, 'X', r)
		}
	}
}
