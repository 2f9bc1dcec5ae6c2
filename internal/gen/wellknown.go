package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"schema-typegen/internal/naming"
)

// Hand-authored declarations that generated files reference by name.
var wellKnownTemplates = []struct {
	name string
	text string
}{
	{naming.PayloadName, `export type {{.P}}Payload<T> = {
  data: T;
  meta: {
    pagination?: {
      page: number;
      pageSize: number;
      pageCount: number;
      total: number;
    }
  };
}
`},
	{naming.UserName, `export type {{.P}}User = {
  id: number;
  attributes: {
    username: string;
    email: string;
    provider: string;
    confirmed: boolean;
    blocked: boolean;
    createdAt: string;
    updatedAt: string;
  }
}
`},
	{naming.MediaFormatName, `export type {{.P}}MediaFormat = {
  name: string;
  hash: string;
  ext: string;
  mime: string;
  width: number;
  height: number;
  size: number;
  path: string;
  url: string;
}
`},
	{naming.MediaName, `import { {{.P}}MediaFormat } from './{{.P}}MediaFormat';

export type {{.P}}Media = {
  id: number;
  attributes: {
    name: string;
    alternativeText: string;
    caption: string;
    width: number;
    height: number;
    formats: { thumbnail: {{.P}}MediaFormat; medium: {{.P}}MediaFormat; small: {{.P}}MediaFormat; };
    hash: string;
    ext: string;
    mime: string;
    size: number;
    url: string;
    previewUrl: string;
    provider: string;
    createdAt: string;
    updatedAt: string;
  }
}
`},
}

// WellKnownFiles renders the hand-authored declarations in dependency order.
func WellKnownFiles(prefix string) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(wellKnownTemplates))

	for _, wk := range wellKnownTemplates {
		tmpl, err := template.New(wk.name).Parse(wk.text)
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", wk.name, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, struct{ P string }{prefix}); err != nil {
			return nil, fmt.Errorf("executing %s template: %w", wk.name, err)
		}

		files = append(files, GeneratedFile{
			Path:    prefix + wk.name + ".ts",
			Content: buf.Bytes(),
		})
	}

	return files, nil
}

// wellKnownNames returns the declared names of the hand-authored types.
func wellKnownNames(prefix string) []string {
	names := make([]string, 0, len(wellKnownTemplates))
	for _, wk := range wellKnownTemplates {
		names = append(names, prefix+wk.name)
	}

	return names
}
