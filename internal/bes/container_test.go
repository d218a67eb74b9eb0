// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bes

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/braille-convert/internal/braille"
)

func TestReadContainer(t *testing.T) {
	header := bytes.Repeat([]byte{0x11}, 8)
	data := []byte{0xA1, 0xFE}

	c, err := ReadContainer(bytes.NewReader(append(header, data...)), len(header))
	require.NoError(t, err)
	assert.Equal(t, header, c.Header)
	assert.Equal(t, data, c.Data)
}

func TestReadContainerShort(t *testing.T) {
	_, err := ReadContainer(bytes.NewReader(make([]byte, 3)), 8)
	require.Error(t, err)

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 3, fe.Size)
	assert.Equal(t, 8, fe.Want)
}

func TestDecodeReader(t *testing.T) {
	d := NewDecoder(DefaultHeaderLength, braille.BRF)
	doc, err := d.DecodeReader(bytes.NewReader(besFile(0xFF, 0x00, 0x01, 0xA1, 0xA3, 0xFE, 0xA9)))
	require.NoError(t, err)
	assert.Equal(t, []string{"AB", "C"}, lineStrings(doc))
	assert.Equal(t, 1, doc.Stats.Pages)
}
