// Package build runs one generation pass: discover schemas, load them,
// project them and write (or check) the declarations.
package build

import (
	"context"
	"fmt"
	"log/slog"

	"schema-typegen/internal/check"
	"schema-typegen/internal/config"
	"schema-typegen/internal/diagnostic"
	"schema-typegen/internal/discover"
	"schema-typegen/internal/gen"
	"schema-typegen/internal/schema"
)

// Report summarizes a generation pass.
type Report struct {
	Diagnostics diagnostic.Diagnostics
	// Written lists the files written, empty in check mode.
	Written []string
	// Drifts lists out-of-date files, check mode only.
	Drifts []check.Drift
	// Generated, Skipped and Failed count schemas by outcome.
	Generated int
	Skipped   int
	Failed    int
}

// OK reports whether the pass had no failures and no drift.
func (r *Report) OK() bool {
	return r.Diagnostics.IsValid() && len(r.Drifts) == 0
}

// Run performs one generation pass. Per-schema problems end up in the report;
// the returned error is reserved for problems that stop the whole pass, such
// as an unreadable source tree or an unwritable output directory.
func Run(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Report, error) {
	report := &Report{}

	layout, err := discover.Discover(cfg.Src)
	if err != nil {
		return nil, fmt.Errorf("discovering schemas: %w", err)
	}

	for _, dir := range layout.Missing {
		logger.Info("directory not found, skipping", "dir", dir)
		report.Diagnostics.AddInfo(diagnostic.CodeMissingDirectory, "directory not found", dir, "")
	}

	set := load(ctx, layout, schema.ParseOptions{Repair: cfg.Repair}, report, logger)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{
		Prefix:        cfg.TypePrefix(),
		ComponentsDir: cfg.ComponentsDir,
	})

	res, err := generator.Generate(set)
	if err != nil {
		return nil, err
	}

	report.Diagnostics.Merge(res.Diagnostics)
	report.Generated = res.Generated
	report.Skipped = res.Skipped
	report.Failed += res.Failed

	logDiagnostics(logger, res.Diagnostics)

	if cfg.Check {
		report.Drifts, err = check.Compare(res.Files, cfg.Out)
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", cfg.Out, err)
		}

		for _, d := range report.Drifts {
			logger.Warn("declaration out of date", "path", d.Path, "status", d.Status.String())
		}

		return report, nil
	}

	report.Written, err = gen.WriteFiles(res.Files, cfg.Out)
	if err != nil {
		return nil, err
	}

	logger.Debug("declarations written", "count", len(report.Written), "out", cfg.Out)

	return report, nil
}

// load parses every discovered document. A malformed document is reported
// and skipped; the others are still loaded.
func load(ctx context.Context, layout *discover.Layout, opts schema.ParseOptions, report *Report, logger *slog.Logger) *schema.Set {
	set := schema.NewSet()

	sources := append(append([]discover.Source{}, layout.Entities...), layout.Components...)

	for _, src := range sources {
		if ctx.Err() != nil {
			return set
		}

		d, err := schema.LoadFile(src.Path, opts)
		if err != nil {
			report.Failed++
			report.Diagnostics.AddFailure(err, src.UID())

			logger.Error("cannot load schema", "path", src.Path, "code", diagnostic.CodeFor(err), "error", err)

			continue
		}

		d.UID = src.UID()
		d.Name = src.Name
		d.Category = src.Category
		d.Role = src.Role

		set.Add(d)
	}

	return set
}

func logDiagnostics(logger *slog.Logger, d diagnostic.Diagnostics) {
	for _, e := range d.Errors {
		logger.Error("schema failed", "schema", e.Schema, "field", e.Field, "code", e.Code, "error", e.Message)
	}

	for _, w := range d.Warnings {
		logger.Warn(w.Message, "schema", w.Schema, "code", w.Code)
	}

	for _, i := range d.Infos {
		logger.Info("schema skipped", "schema", i.Schema, "reason", i.Message)
	}
}
