// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bes

import (
	"fmt"
	"io"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"
)

// Container is a BES file split into its header region and data section.
type Container struct {
	Header []byte
	Data   []byte
}

// ReadContainer reads a whole BES file from r and splits it at headerLength.
// It fails with a *FormatError before reading anything when the input is
// shorter than the header.
func ReadContainer(r io.ReadSeeker, headerLength int) (*Container, error) {
	if headerLength < 0 {
		return nil, &FormatError{Want: headerLength}
	}
	ks := kaitai.NewStream(r)

	size, err := ks.Size()
	if err != nil {
		return nil, fmt.Errorf("sizing BES input: %w", err)
	}
	if size < int64(headerLength) {
		return nil, &FormatError{Size: int(size), Want: headerLength}
	}

	header, err := ks.ReadBytes(headerLength)
	if err != nil {
		return nil, fmt.Errorf("reading BES header: %w", err)
	}
	data, err := ks.ReadBytesFull()
	if err != nil {
		return nil, fmt.Errorf("reading BES data section: %w", err)
	}
	return &Container{Header: header, Data: data}, nil
}

// DecodeReader reads a BES file from r and decodes its data section.
func (d *Decoder) DecodeReader(r io.ReadSeeker) (*Document, error) {
	c, err := ReadContainer(r, d.HeaderLength)
	if err != nil {
		return nil, err
	}
	return DecodeSection(c.Data, d.Table), nil
}
