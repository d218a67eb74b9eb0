// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/braille-convert/internal/braille"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		m    Mapping
		want string
	}{
		{"letters to unicode", "ABC", ToUnicode, "⠁⠃⠉"},
		{"digits and punctuation", "1,0=", ToUnicode, "⠂⠠⠴⠿"},
		{"lowercase passes through", "abc", ToUnicode, "abc"},
		{"whitespace passes through", "A B\tC", ToUnicode, "⠁ ⠃\t⠉"},
		{"unicode to nabcc", "⠁⠃⠉", ToNABCC, "ABC"},
		{"blank cell has no nabcc", "⠀⠁", ToNABCC, "⠀A"},
		{"latin passes through to nabcc", "abc é", ToNABCC, "abc é"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.in, tt.m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringInvalidUTF8(t *testing.T) {
	_, err := String("A\xe9B", ToUnicode)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestRoundTrip(t *testing.T) {
	for _, c := range braille.NABCCSymbols() {
		assert.Equal(t, c, ToNABCC(ToUnicode(c)), "%q", c)
		u := ToUnicode(c)
		assert.Equal(t, u, ToUnicode(ToNABCC(u)), "%U", u)
	}
	for _, r := range []rune{'a', 'q', ' ', '\n', '\r', '~'} {
		assert.Equal(t, r, ToUnicode(r))
		assert.Equal(t, r, ToNABCC(r))
	}
}

func TestCopyPreservesTerminators(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		want      string
		wantLines int
	}{
		{"lf", "AB\nC\n", "⠁⠃\n⠉\n", 2},
		{"crlf", "AB\r\nC\r\n", "⠁⠃\r\n⠉\r\n", 2},
		{"no final terminator", "AB\nC", "⠁⠃\n⠉", 2},
		{"blank lines", "\n\nA\n", "\n\n⠁\n", 3},
		{"empty input", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			n, err := Copy(&out, strings.NewReader(tt.in), ToUnicode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
			assert.Equal(t, tt.wantLines, n)
		})
	}
}

func TestCopyInvalidUTF8(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantLines int
		errLine   string
	}{
		{"first line", "A\xe9B\n", 0, "line 1"},
		{"after valid lines", "AB\nC\n\xff\n", 2, "line 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			n, err := Copy(&out, strings.NewReader(tt.in), ToUnicode)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidUTF8)
			assert.Contains(t, err.Error(), tt.errLine)
			assert.Equal(t, tt.wantLines, n)
			assert.NotContains(t, out.String(), "\uFFFD")
		})
	}
}

func TestCopyRoundTrip(t *testing.T) {
	in := "THE QUICK BROWN FOX, 1234567890!\r\nlower stays\n#$%&'()*+-./:;<=>?@[\\]^_\""

	var uni bytes.Buffer
	_, err := Copy(&uni, strings.NewReader(in), ToUnicode)
	require.NoError(t, err)

	var back bytes.Buffer
	_, err = Copy(&back, &uni, ToNABCC)
	require.NoError(t, err)
	assert.Equal(t, in, back.String())
}
