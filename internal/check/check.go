// Package check compares generated declarations with what is on disk, so a
// CI job can fail when committed types no longer match their schemas.
package check

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"schema-typegen/internal/gen"
)

// Status of a generated file relative to disk.
type Status int

const (
	StatusMissing Status = iota
	StatusChanged
	// StatusStale marks a declaration on disk that no schema produces anymore.
	StatusStale
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusChanged:
		return "changed"
	case StatusStale:
		return "stale"
	default:
		return "missing"
	}
}

// Drift is a file whose on-disk copy is absent, differs, or is left over.
type Drift struct {
	Path   string
	Status Status
	// Diff is a line diff from disk to generated content, empty when missing or stale.
	Diff string
}

// Compare reports every file that is missing below outDir or differs from it,
// followed by declarations below outDir that files no longer contains.
func Compare(files []gen.GeneratedFile, outDir string) ([]Drift, error) {
	var drifts []Drift

	expected := make(map[string]struct{}, len(files))

	for _, f := range files {
		expected[f.Path] = struct{}{}

		p := filepath.Join(outDir, filepath.FromSlash(f.Path))

		current, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			drifts = append(drifts, Drift{Path: f.Path, Status: StatusMissing})
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}

		if bytes.Equal(current, f.Content) {
			continue
		}

		drifts = append(drifts, Drift{
			Path:   f.Path,
			Status: StatusChanged,
			Diff:   LineDiff(string(current), string(f.Content)),
		})
	}

	stale, err := leftovers(outDir, expected)
	if err != nil {
		return nil, err
	}

	return append(drifts, stale...), nil
}

// leftovers lists the .ts files below outDir that are not expected.
func leftovers(outDir string, expected map[string]struct{}) ([]Drift, error) {
	var drifts []Drift

	err := filepath.WalkDir(outDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == outDir && errors.Is(err, fs.ErrNotExist) {
				return fs.SkipAll
			}

			return err
		}

		if d.IsDir() || filepath.Ext(p) != ".ts" {
			return nil
		}

		rel, err := filepath.Rel(outDir, p)
		if err != nil {
			return err
		}

		rel = filepath.ToSlash(rel)
		if _, ok := expected[rel]; !ok {
			drifts = append(drifts, Drift{Path: rel, Status: StatusStale})
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", outDir, err)
	}

	return drifts, nil
}

// LineDiff renders a line-oriented diff with "-", "+" and " " markers.
func LineDiff(from, to string) string {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder

	for _, d := range diffs {
		marker := " "

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			marker = "-"
		case diffmatchpatch.DiffInsert:
			marker = "+"
		case diffmatchpatch.DiffEqual:
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			sb.WriteString(marker)
			sb.WriteString(line)

			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}
