package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files below the output directory.
// It creates the directory, and any sub-directory a file needs, if missing.
func WriteFiles(files []GeneratedFile, outputDir string) ([]string, error) {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	written := make([]string, 0, len(files))

	for _, file := range files {
		outputPath := filepath.Join(outputDir, filepath.FromSlash(file.Path))

		if err := os.MkdirAll(filepath.Dir(outputPath), dirPerm); err != nil {
			return written, fmt.Errorf("creating directory for %s: %w", file.Path, err)
		}

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return written, fmt.Errorf("writing file %s: %w", file.Path, err)
		}

		written = append(written, outputPath)
	}

	return written, nil
}
