package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"github.com/dougvj/embed/internal/templates"
)

// renderTemplate loads a template by name and executes it with data into a
// string.
func renderTemplate(tmplName string, data interface{}) (string, error) {
	tmplContent, err := templates.Get(tmplName)
	if err != nil {
		return "", err
	}

	t, err := template.New(tmplName).Parse(tmplContent)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// writeArtifact writes content to outputPath via a uniquely named temp file
// in the same directory, renamed into place on success. A run that dies
// mid-write can therefore never leave a truncated artifact where a
// previous good one was.
func writeArtifact(outputPath string, content string) error {
	dir := filepath.Dir(outputPath)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(outputPath), uuid.NewString()))

	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("could not open output file %s: %w", outputPath, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("could not write output file %s: %w", outputPath, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("could not write output file %s: %w", outputPath, err)
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("could not write output file %s: %w", outputPath, err)
	}
	return nil
}
