package generator

import (
	"fmt"
	"log/slog"
	"os"
)

// InputFile is one embedded file: the raw path it was supplied under, the
// lookup key it will be retrievable by, and its exact byte content.
type InputFile struct {
	// Path is the raw path string from the command line or manifest.
	Path string
	// Key is the lookup key: Path itself, or its final component when
	// paths are stripped.
	Key string
	// Data is the file's full content. len(Data) is the authoritative
	// size recorded in the generated size table.
	Data []byte
}

// FileSet is an ordered sequence of input files. The slice index is the
// implicit join key across the generated name, data and size tables, so
// order must match the order the files were supplied in.
type FileSet []InputFile

// ReadInputs reads every path into memory in order and resolves each lookup
// key. Each file is opened, fully read and closed before the next one; the
// first unreadable file aborts the whole run.
func ReadInputs(paths []string, preservePaths bool) (FileSet, error) {
	files := make(FileSet, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not open input file %s: %w", path, err)
		}
		key := LookupKey(path, preservePaths)
		slog.Debug("read input file",
			slog.String("path", path),
			slog.String("key", key),
			slog.Int("size", len(data)))
		files = append(files, InputFile{Path: path, Key: key, Data: data})
	}
	return files, nil
}
