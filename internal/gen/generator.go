package gen

import (
	"fmt"
	"path"

	"schema-typegen/internal/diagnostic"
	"schema-typegen/internal/naming"
	"schema-typegen/internal/schema"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Prefix is prepended to every declared type name.
	Prefix string
	// ComponentsDir is the sub-directory of the output root for component declarations.
	ComponentsDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Prefix:        naming.DefaultPrefix,
		ComponentsDir: "components",
	}
}

// GeneratedFile represents a generated TypeScript module.
type GeneratedFile struct {
	// Path is slash-separated and relative to the output root (e.g. "components/TSeo.ts").
	Path string
	// Content is the module text.
	Content []byte
	// UID is the schema the file was projected from, empty for well-known files.
	UID string
}

// Result is the outcome of one generation run.
type Result struct {
	// Files lists well-known files first, then entities, then components.
	Files       []GeneratedFile
	Diagnostics diagnostic.Diagnostics
	// Generated counts projected schemas that produced a file.
	Generated int
	// Skipped counts schemas without attributes.
	Skipped int
	// Failed counts schemas that produced no file because of an error.
	Failed int
}

// Generator projects a schema set into TypeScript modules.
type Generator struct {
	config    GeneratorConfig
	projector *Projector
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{
		config:    config,
		projector: NewProjector(config.Prefix),
	}
}

// candidate is a successful projection waiting for reference checks.
type candidate struct {
	pt   *ProjectedType
	desc *schema.Descriptor
	path string
}

// Generate projects every entity and component of set.
//
// Each component is declared once no matter how many schemas reference it.
// A schema that fails, or that references a declaration which will not exist,
// produces no file; its siblings are unaffected.
func (g *Generator) Generate(set *schema.Set) (*Result, error) {
	res := &Result{}

	wellKnown, err := WellKnownFiles(g.config.Prefix)
	if err != nil {
		return nil, fmt.Errorf("generating well-known declarations: %w", err)
	}

	res.Files = append(res.Files, wellKnown...)

	var ordered []*schema.Descriptor

	ordered = append(ordered, set.Entities...)
	for _, uid := range set.ComponentUIDs() {
		ordered = append(ordered, set.Components[uid])
	}

	reserved := make(map[string]string)
	for _, f := range wellKnown {
		reserved[f.Path] = ""
	}

	var candidates []*candidate

	for _, d := range ordered {
		c, ok := g.project(d, reserved, res)
		if ok {
			candidates = append(candidates, c)
		}
	}

	candidates = g.dropUnresolved(candidates, res)

	for _, c := range candidates {
		content, err := Render(c.pt, g.config.ComponentsDir)
		if err != nil {
			res.Failed++
			res.Diagnostics.AddFailure(err, c.desc.UID)

			continue
		}

		res.Files = append(res.Files, GeneratedFile{
			Path:    c.path,
			Content: content,
			UID:     c.desc.UID,
		})
		res.Generated++
	}

	return res, nil
}

// project projects one schema and claims its output path.
func (g *Generator) project(d *schema.Descriptor, reserved map[string]string, res *Result) (*candidate, bool) {
	typeName := naming.TypeName(g.config.Prefix, d.Name)

	pt, err := g.projector.Project(d, typeName)
	if err != nil {
		res.Failed++
		res.Diagnostics.AddFailure(err, d.UID)

		return nil, false
	}

	if pt == nil {
		res.Skipped++
		res.Diagnostics.AddInfo(diagnostic.CodeEmptySchema, "no attributes, nothing to generate", d.UID, "")

		return nil, false
	}

	p := g.filePath(pt)
	if owner, taken := reserved[p]; taken {
		res.Failed++

		msg := fmt.Sprintf("type name %s is already declared", pt.Name)
		if owner != "" {
			msg = fmt.Sprintf("type name %s is already declared by %s", pt.Name, owner)
		}

		res.Diagnostics.AddError(diagnostic.CodeDuplicateTypeName, msg, d.UID, "")

		return nil, false
	}

	reserved[p] = d.UID

	return &candidate{pt: pt, desc: d, path: p}, true
}

// dropUnresolved removes candidates that reference declarations which will not
// be written, repeating until every remaining reference resolves.
func (g *Generator) dropUnresolved(candidates []*candidate, res *Result) []*candidate {
	declared := map[TypeRef]bool{}
	for _, name := range wellKnownNames(g.config.Prefix) {
		declared[TypeRef{Name: name, Area: AreaRoot}] = true
	}

	key := func(pt *ProjectedType) TypeRef {
		return TypeRef{Name: pt.Name, Area: pt.Area()}
	}

	for _, c := range candidates {
		declared[key(c.pt)] = true
	}

	for {
		var (
			kept    []*candidate
			dropped bool
		)

		for _, c := range candidates {
			missing, ok := firstUnresolved(c.pt, declared)
			if ok {
				kept = append(kept, c)
				continue
			}

			dropped = true
			declared[key(c.pt)] = false
			res.Failed++

			err := fmt.Errorf("projecting %s: %w: %s %q has no declaration",
				c.pt.Name, schema.ErrUnresolvedReference, refKind(missing), refLabel(missing))
			res.Diagnostics.AddFailure(err, c.desc.UID)
		}

		candidates = kept

		if !dropped {
			return candidates
		}
	}
}

func firstUnresolved(pt *ProjectedType, declared map[TypeRef]bool) (TypeRef, bool) {
	for _, ref := range pt.Refs {
		if !declared[TypeRef{Name: ref.Name, Area: ref.Area}] {
			return ref, false
		}
	}

	return TypeRef{}, true
}

func refKind(ref TypeRef) string {
	if ref.Area == AreaComponents {
		return "component"
	}

	return "relation target"
}

func refLabel(ref TypeRef) string {
	if ref.UID != "" {
		return ref.UID
	}

	return ref.Name
}

func (g *Generator) filePath(pt *ProjectedType) string {
	if pt.Area() == AreaComponents {
		return path.Join(g.config.ComponentsDir, pt.Name+".ts")
	}

	return pt.Name + ".ts"
}
