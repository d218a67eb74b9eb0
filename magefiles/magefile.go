//go:build mage

// Package main contains Mage build targets for braille-convert developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/braille-convert/internal/bes"
	"github.com/pdiddy/braille-convert/internal/braille"
)

const (
	binDir    = "bin"
	binName   = "braille-convert"
	cmdPkg    = "./cmd/braille-convert"
	sampleDir = "testdata"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Check builds and tests.
func Check() {
	mg.SerialDeps(Build, Test)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// Sample writes testdata/sample.bes, a small BES file with two pages, for
// trying the CLI by hand.
func Sample() error {
	pages := [][]string{
		{"BRAILLE READY FORMAT", "", "PAGE 1"},
		{"HELLO, WORLD!", "1234567890"},
	}

	data := make([]byte, bes.DefaultHeaderLength)
	copy(data, "braille-convert sample")
	for i, page := range pages {
		data = append(data, bes.BytePageStart, 0x00, byte(i+1))
		for _, line := range page {
			data = append(data, bes.ByteLineStart)
			for _, r := range line {
				data = append(data, bes.Encode(cellFor(r)))
			}
			data = append(data, bes.ByteCarriageReturn, bes.ByteLineEnd)
		}
	}

	if err := os.MkdirAll(sampleDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", sampleDir, err)
	}
	path := filepath.Join(sampleDir, "sample.bes")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", path, len(data))
	return nil
}

// cellFor maps an NABCC character to its cell; anything else is blank.
func cellFor(r rune) braille.Cell {
	u, ok := braille.NABCCToUnicode(r)
	if !ok {
		return braille.Blank
	}
	c, _ := braille.CellFromUnicode(u)
	return c
}

// Stats prints project metrics: Go production and test LOC.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	return nil
}

// countGoLines walks the directory tree and counts non-blank lines in Go files.
// If testOnly is true, count only _test.go files; otherwise count non-test .go files.
// Directories starting with "_" or "." are skipped, as the go tool does.
func countGoLines(root string, testOnly bool) (int, error) {
	total := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				total++
			}
		}
		return nil
	})
	return total, err
}
