package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-typegen/internal/build"
	"schema-typegen/internal/check"
	"schema-typegen/internal/config"
	"schema-typegen/internal/diagnostic"
	"schema-typegen/internal/logging"
	"schema-typegen/internal/watch"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "typegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestResolveConfig_Precedence(t *testing.T) {
	path := writeConfig(t, "src: from-file\nout: file-out\nprefix: F\ndebounce: 1s\n")

	opts := &Options{Config: path, Out: "flag-out"}
	env := envOf(map[string]string{
		"TYPEGEN_SRC":    "from-env",
		"TYPEGEN_OUT":    "env-out",
		"TYPEGEN_REPAIR": "true",
	})

	cfg, err := resolveConfig(opts, env)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Src)
	assert.Equal(t, "flag-out", cfg.Out)
	assert.Equal(t, "F", cfg.TypePrefix())
	assert.Equal(t, time.Second, cfg.Debounce)
	assert.True(t, cfg.Repair)
	assert.Equal(t, "components", cfg.ComponentsDir)
}

func TestResolveConfig_EmptyPrefixFlagKeepsConfigured(t *testing.T) {
	path := writeConfig(t, "prefix: \"\"\n")

	cfg, err := resolveConfig(&Options{Config: path}, envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.TypePrefix())

	cfg, err = resolveConfig(&Options{Config: path, Prefix: "I"}, envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, "I", cfg.TypePrefix())
}

func TestResolveConfig_Invalid(t *testing.T) {
	path := writeConfig(t, "src: ./src\n")

	tests := []struct {
		name string
		opts *Options
		env  map[string]string
	}{
		{name: "check and watch", opts: &Options{Config: path, Check: true, Watch: true}},
		{name: "absolute components dir", opts: &Options{Config: path, ComponentsDir: "/abs"}},
		{name: "bad log level", opts: &Options{Config: path, LogLevel: "LOUD"}},
		{name: "bad env bool", opts: &Options{Config: path}, env: map[string]string{"TYPEGEN_CHECK": "maybe"}},
		{name: "missing config file", opts: &Options{Config: filepath.Join(t.TempDir(), "nope.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveConfig(tt.opts, envOf(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestPrinter_Summary(t *testing.T) {
	cfg := config.Default()

	t.Run("ok", func(t *testing.T) {
		var buf bytes.Buffer

		newPrinter(&buf, false).summary(&build.Report{Generated: 3, Skipped: 1}, cfg)

		assert.Equal(t, "✓ 3 generated, 1 skipped, 0 failed; written to types\n", buf.String())
	})

	t.Run("failures", func(t *testing.T) {
		var buf bytes.Buffer

		r := &build.Report{Generated: 1, Failed: 1}
		r.Diagnostics.AddError(diagnostic.CodeUnrecognizedFieldKind, "type \"geo\"", "api::place.place", "location")

		newPrinter(&buf, false).summary(r, cfg)

		out := buf.String()
		assert.Contains(t, out, "✗ ")
		assert.Contains(t, out, "api::place.place")
		assert.Contains(t, out, "! 1 generated, 0 skipped, 1 failed; written to types\n")
	})

	t.Run("drift", func(t *testing.T) {
		var buf bytes.Buffer

		checkCfg := cfg
		checkCfg.Check = true

		r := &build.Report{
			Generated: 1,
			Drifts: []check.Drift{
				{Path: "TArticle.ts", Status: check.StatusChanged, Diff: "-  a: string;\n+  a?: string;\n"},
			},
		}

		newPrinter(&buf, false).summary(r, checkCfg)

		out := buf.String()
		assert.Contains(t, out, "~ TArticle.ts (changed)\n")
		assert.Contains(t, out, "+  a?: string;\n")
		assert.Contains(t, out, "checked against types, 1 out of date\n")
	})
}

func TestPrinter_ForcedColor(t *testing.T) {
	var buf bytes.Buffer

	newPrinter(&buf, true).summary(&build.Report{Generated: 1}, config.Default())

	assert.Contains(t, buf.String(), "\x1b[")
}

func TestWatchRoots(t *testing.T) {
	src := t.TempDir()

	cfg := config.Default()
	cfg.Src = src

	_, err := watchRoots(cfg, logging.Discard())
	require.ErrorIs(t, err, watch.ErrNoRoots)

	require.NoError(t, os.MkdirAll(filepath.Join(src, "components", "shared"), 0o755))

	roots, err := watchRoots(cfg, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(src, "components")}, roots)
}
