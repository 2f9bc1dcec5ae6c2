package build

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-typegen/internal/check"
	"schema-typegen/internal/config"
	"schema-typegen/internal/diagnostic"
	"schema-typegen/internal/logging"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func project(t *testing.T) (config.Config, string) {
	t.Helper()

	root := t.TempDir()
	src := filepath.Join(root, "src")

	writeFile(t, filepath.Join(src, "api", "article", "content-types", "article", "schema.json"), `{
  "kind": "collectionType",
  "info": { "singularName": "article", "displayName": "Article" },
  "attributes": {
    "title": { "type": "string", "required": true },
    "views": { "type": "integer", "required": false },
    "status": { "type": "enumeration", "enum": ["draft", "published"], "required": true }
  }
}`)
	writeFile(t, filepath.Join(src, "api", "page", "content-types", "page", "schema.json"), `{
  "attributes": {
    "seo": { "type": "component", "component": "shared.seo", "repeatable": true, "required": true }
  }
}`)
	writeFile(t, filepath.Join(src, "api", "landing", "content-types", "landing", "schema.json"), `{
  "attributes": {
    "seo": { "type": "component", "component": "shared.seo" }
  }
}`)
	writeFile(t, filepath.Join(src, "api", "empty", "content-types", "empty", "schema.json"), `{"attributes": {}}`)
	writeFile(t, filepath.Join(src, "components", "shared", "seo.json"), `{
  "info": { "displayName": "Seo" },
  "attributes": {
    "metaTitle": { "type": "string", "required": true },
    "shareImage": { "type": "media", "multiple": false }
  }
}`)

	cfg := config.Default()
	cfg.Src = src
	cfg.Out = filepath.Join(root, "types")

	return cfg, root
}

func TestRun(t *testing.T) {
	cfg, _ := project(t)

	report, err := Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	require.True(t, report.OK(), report.Diagnostics.Error())

	assert.Equal(t, 4, report.Generated)
	assert.Equal(t, 1, report.Skipped)
	assert.Zero(t, report.Failed)

	article, err := os.ReadFile(filepath.Join(cfg.Out, "TArticle.ts"))
	require.NoError(t, err)
	assert.Equal(t, `export type TArticle = {
  id: number;
  attributes: {
    title: string;
    views?: number;
    status: "draft" | "published";
  }
}
`, string(article))

	page, err := os.ReadFile(filepath.Join(cfg.Out, "TPage.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "import { TSeo } from './components/TSeo';")
	assert.Contains(t, string(page), "seo: TSeo[];")

	seo, err := os.ReadFile(filepath.Join(cfg.Out, "components", "TSeo.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(seo), "shareImage?: TMedia;")

	for _, wk := range []string{"TPayload.ts", "TUser.ts", "TMediaFormat.ts", "TMedia.ts"} {
		assert.FileExists(t, filepath.Join(cfg.Out, wk))
	}

	assert.NoFileExists(t, filepath.Join(cfg.Out, "TEmpty.ts"))
}

func TestRun_Idempotent(t *testing.T) {
	cfg, _ := project(t)

	_, err := Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)

	first, err := os.ReadFile(filepath.Join(cfg.Out, "TPage.ts"))
	require.NoError(t, err)

	_, err = Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)

	second, err := os.ReadFile(filepath.Join(cfg.Out, "TPage.ts"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_MalformedSourceDoesNotStopSiblings(t *testing.T) {
	cfg, _ := project(t)
	writeFile(t, filepath.Join(cfg.Src, "api", "broken", "content-types", "broken", "schema.json"), `{"attributes": {"title": {"type": "string",}`)

	report, err := Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeMalformedSource, report.Diagnostics.Errors[0].Code)
	assert.Equal(t, "api::broken.broken", report.Diagnostics.Errors[0].Schema)

	assert.FileExists(t, filepath.Join(cfg.Out, "TArticle.ts"))
	assert.NoFileExists(t, filepath.Join(cfg.Out, "TBroken.ts"))

	cfg.Repair = true

	report, err = Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.True(t, report.OK(), report.Diagnostics.Error())
	assert.FileExists(t, filepath.Join(cfg.Out, "TBroken.ts"))
}

func TestRun_Check(t *testing.T) {
	cfg, _ := project(t)

	cfg.Check = true

	report, err := Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.NotEmpty(t, report.Drifts)
	assert.Empty(t, report.Written)
	assert.NoDirExists(t, cfg.Out)

	cfg.Check = false
	_, err = Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)

	cfg.Check = true
	report, err = Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.True(t, report.OK())

	writeFile(t, filepath.Join(cfg.Src, "components", "shared", "seo.json"), `{
  "attributes": {
    "metaTitle": { "type": "string" }
  }
}`)

	report, err = Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	require.Len(t, report.Drifts, 1)
	assert.Equal(t, "components/TSeo.ts", report.Drifts[0].Path)
	assert.Equal(t, check.StatusChanged, report.Drifts[0].Status)
	assert.Contains(t, report.Drifts[0].Diff, "+  metaTitle?: string;")
}

func TestRun_MissingDirectories(t *testing.T) {
	root := t.TempDir()

	cfg := config.Default()
	cfg.Src = filepath.Join(root, "src")
	cfg.Out = filepath.Join(root, "types")

	report, err := Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Len(t, report.Diagnostics.Infos, 2)
	assert.Len(t, report.Written, 4)
}

func TestRun_Cancelled(t *testing.T) {
	cfg, _ := project(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, cfg, logging.Discard())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_CheckReportsDeletedSchema(t *testing.T) {
	cfg, _ := project(t)

	_, err := Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(filepath.Join(cfg.Src, "api", "landing")))

	cfg.Check = true

	report, err := Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.False(t, report.OK())
	require.Len(t, report.Drifts, 1)
	assert.Equal(t, "TLanding.ts", report.Drifts[0].Path)
	assert.Equal(t, check.StatusStale, report.Drifts[0].Status)
}
