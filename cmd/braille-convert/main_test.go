// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/braille-convert/internal/bes"
	"github.com/pdiddy/braille-convert/internal/convert"
	"github.com/pdiddy/braille-convert/pkg/types"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeBES(t *testing.T, dir, name string, data ...byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := append(make([]byte, bes.DefaultHeaderLength), data...)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestBes2brfAndHistory(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "history.db")
	in := writeBES(t, dir, "book.bes", 0xA0, 0xA1, 0xA2, 0xFE, 0xA1, 0xA0, 0xA0, 0xFE)

	out, err := execute(t, "bes2brf", in, "--history=true", "--history-db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "(2 lines)")

	got, err := os.ReadFile(filepath.Join(dir, "book.brf"))
	require.NoError(t, err)
	assert.Equal(t, " A1\r\nA\r\n", string(got))

	out, err = execute(t, "history", "--json", "--history-db", db)
	require.NoError(t, err)
	var records []types.Conversion
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "bes2brf", records[0].Converter)
	assert.Equal(t, types.ConversionDone, records[0].Status)
}

func TestBes2unicodeExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeBES(t, dir, "book.bes", 0xFF, 0x01, 0x02, 0xA1, 0xA2)
	outPath := filepath.Join(dir, "out", "book-braille.txt")

	_, err := execute(t, "bes2unicode", in, outPath, "--history=false")
	require.NoError(t, err)

	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "⠁⠂\n", string(got))
}

func TestConvertWithUnwritableHistory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	in := writeBES(t, dir, "book.bes", 0xA1, 0xFE)

	out, err := execute(t, "bes2brf", in, "--history=true", "--history-db", filepath.Join(blocker, "history.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "warning: history disabled")
	assert.Contains(t, out, "(1 lines)")

	got, err := os.ReadFile(filepath.Join(dir, "book.brf"))
	require.NoError(t, err)
	assert.Equal(t, "A\r\n", string(got))
}

func TestConvertMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "bes2brf", filepath.Join(dir, "missing.bes"), "--history=false")
	require.Error(t, err)
	assert.ErrorIs(t, err, convert.ErrMissingFile)
}

func TestConvertShortInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "short.bes")
	require.NoError(t, os.WriteFile(in, []byte{0xA1, 0xFE}, 0o644))

	_, err := execute(t, "bes2brf", in, "--history=false")
	require.Error(t, err)
	assert.ErrorIs(t, err, bes.ErrMalformed)

	_, statErr := os.Stat(filepath.Join(dir, "short.brf"))
	assert.True(t, os.IsNotExist(statErr), "no output file for malformed input")
}

func TestNABCCRoundTripCommands(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "note.brl")
	require.NoError(t, os.WriteFile(in, []byte("HELLO 123\nbye\n"), 0o644))

	_, err := execute(t, "nabcc2unicode", in, "--history=false")
	require.NoError(t, err)
	uni, err := os.ReadFile(filepath.Join(dir, "note.txt"))
	require.NoError(t, err)
	assert.Equal(t, "⠓⠑⠇⠇⠕ ⠂⠆⠒\nbye\n", string(uni))

	back := filepath.Join(dir, "back.brl")
	_, err = execute(t, "unicode2nabcc", filepath.Join(dir, "note.txt"), back, "--history=false")
	require.NoError(t, err)
	got, err := os.ReadFile(back)
	require.NoError(t, err)
	assert.Equal(t, "HELLO 123\nbye\n", string(got))
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "history.db")
	a := writeBES(t, dir, "a.bes", 0xA1, 0xFE)
	b := writeBES(t, dir, "b.bes", 0xA3, 0xFE)

	out, err := execute(t, "batch", a, b, "--to", "brf", "--history=true", "--history-db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "2 converted, 0 skipped, 0 failed")

	out, err = execute(t, "batch", a, b, "--to", "brf", "--history=true", "--history-db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "0 converted, 2 skipped, 0 failed")

	_, err = execute(t, "batch", a, "--to", "pdf", "--history=false")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "braille-convert dev\n", out)
}
