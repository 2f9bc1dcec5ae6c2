package gen

import (
	"bytes"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
	"text/template"
)

// declTemplate renders one projected declaration.
var declTemplate = template.Must(template.New("decl").Parse(
	`{{range .Imports}}import { {{.Name}} } from '{{.Path}}';
{{end}}{{if .Imports}}
{{end}}export type {{.Name}} = {
  id: number;
{{- if .Envelope}}
  attributes: {
{{- range .Fields}}
    {{.Key}}{{if .Optional}}?{{end}}: {{.Expr}};
{{- end}}
  }
{{- else}}
{{- range .Fields}}
  {{.Key}}{{if .Optional}}?{{end}}: {{.Expr}};
{{- end}}
{{- end}}
}
`))

// declData holds all data needed for the declaration template.
type declData struct {
	Name     string
	Envelope bool
	Imports  []importSpec
	Fields   []fieldData
}

type importSpec struct {
	Name string
	Path string
}

type fieldData struct {
	Key      string
	Optional bool
	Expr     string
}

var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Render renders pt as a TypeScript module. componentsDir is the components
// sub-directory relative to the output root; it decides relative import paths.
func Render(pt *ProjectedType, componentsDir string) ([]byte, error) {
	data := &declData{
		Name:     pt.Name,
		Envelope: pt.Shape == ShapeEnvelope,
		Imports:  resolveImports(pt, componentsDir),
		Fields:   make([]fieldData, 0, len(pt.Fields)),
	}

	for _, f := range pt.Fields {
		data.Fields = append(data.Fields, fieldData{
			Key:      propertyKey(f.Name),
			Optional: f.Type.Optional,
			Expr:     f.Type.Expr,
		})
	}

	var buf bytes.Buffer
	if err := declTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// resolveImports returns import lines sorted by path, without self references.
func resolveImports(pt *ProjectedType, componentsDir string) []importSpec {
	from := pt.Area()
	seen := make(map[string]struct{}, len(pt.Refs))

	var imports []importSpec

	for _, ref := range pt.Refs {
		if ref.Name == pt.Name && ref.Area == from {
			continue
		}

		if _, ok := seen[ref.Name]; ok {
			continue
		}

		seen[ref.Name] = struct{}{}
		imports = append(imports, importSpec{
			Name: ref.Name,
			Path: importPath(from, ref, componentsDir),
		})
	}

	sort.Slice(imports, func(i, j int) bool {
		return imports[i].Path < imports[j].Path
	})

	return imports
}

func importPath(from Area, ref TypeRef, componentsDir string) string {
	dir := path.Clean(componentsDir)

	switch {
	case from == ref.Area, dir == ".":
		return "./" + ref.Name
	case from == AreaRoot:
		return "./" + path.Join(dir, ref.Name)
	default:
		depth := strings.Count(dir, "/") + 1
		return strings.Repeat("../", depth) + ref.Name
	}
}

// propertyKey quotes attribute names that are not valid identifiers.
func propertyKey(name string) string {
	if identRe.MatchString(name) {
		return name
	}

	return quoteLiteral(name)
}
