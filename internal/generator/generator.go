// Package generator implements the file-to-source transformation: reading
// input files, escaping their bytes into C array literals, and emitting the
// coupled name/data/size tables and accessor function into a source
// artifact and an optional companion header.
package generator

import (
	"log/slog"

	"github.com/dougvj/embed/internal/config"
	"github.com/dougvj/embed/internal/ui"
)

// Generate runs one full generator invocation against a validated
// configuration: read every input, render and write the source artifact,
// then the header when one was requested. The whole model is built once,
// consumed once and discarded; nothing persists across runs.
//
// Inputs are read before the first output file is touched, and each
// artifact goes through a temp-file rename, so a failing run does not
// clobber existing output.
func Generate(cfg *config.Config) error {
	files, err := ReadInputs(cfg.Files, cfg.PreservePaths)
	if err != nil {
		return err
	}
	slog.Info("embedding files",
		slog.Int("count", len(files)),
		slog.String("function", cfg.Function))

	source, err := renderSource(cfg.Function, files)
	if err != nil {
		return err
	}
	if err := writeArtifact(cfg.Source, source); err != nil {
		return err
	}
	ui.PrintSuccess("source", cfg.Source)

	if cfg.Header == "" {
		ui.PrintWarning("header", "not producing a header file because --header was not provided")
		return nil
	}

	header, err := renderHeader(cfg.Function, cfg.Header)
	if err != nil {
		return err
	}
	if err := writeArtifact(cfg.Header, header); err != nil {
		return err
	}
	ui.PrintSuccess("header", cfg.Header)

	return nil
}
