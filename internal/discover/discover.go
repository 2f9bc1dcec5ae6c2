// Package discover enumerates schema documents in a project source tree.
//
// Layout:
//
//	<src>/api/<api>/content-types/<name>/schema.json
//	<src>/components/<category>/<name>.json
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"schema-typegen/internal/schema"
)

// Source is one schema document found on disk.
type Source struct {
	// Path of the document.
	Path string
	// Name is the content-type folder or component file name without extension.
	Name string
	// Category is the component category, empty for entities.
	Category string
	// Role tells entities from components.
	Role schema.Role
}

// UID returns the schema UID for the source.
func (s Source) UID() string {
	if s.Role == schema.RoleComponent {
		return schema.ComponentUID(s.Category, s.Name)
	}

	return s.apiUID()
}

func (s Source) apiUID() string {
	// <src>/api/<api>/content-types/<name>/schema.json
	api := filepath.Base(filepath.Dir(filepath.Dir(filepath.Dir(s.Path))))
	return "api::" + api + "." + s.Name
}

// Layout lists every schema document of a project.
type Layout struct {
	Entities   []Source
	Components []Source
	// Missing lists expected directories that do not exist.
	Missing []string

	roots []string
}

// Dirs returns the api and components directories that exist. Every schema
// document, present or future, lives below one of them.
func (l *Layout) Dirs() []string {
	return append([]string(nil), l.roots...)
}

// Discover lists the schema documents below srcDir. Hidden entries are
// ignored and results are sorted. A missing api or components directory is
// not an error; it is reported in Layout.Missing.
func Discover(srcDir string) (*Layout, error) {
	l := &Layout{}

	entities, err := discoverEntities(filepath.Join(srcDir, "api"))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.Missing = append(l.Missing, filepath.Join(srcDir, "api"))
	case err != nil:
		return nil, err
	default:
		l.Entities = entities
		l.roots = append(l.roots, filepath.Join(srcDir, "api"))
	}

	components, err := discoverComponents(filepath.Join(srcDir, "components"))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.Missing = append(l.Missing, filepath.Join(srcDir, "components"))
	case err != nil:
		return nil, err
	default:
		l.Components = components
		l.roots = append(l.roots, filepath.Join(srcDir, "components"))
	}

	return l, nil
}

func discoverEntities(apiDir string) ([]Source, error) {
	apis, err := visibleDirs(apiDir)
	if err != nil {
		return nil, err
	}

	var out []Source

	for _, api := range apis {
		ctDir := filepath.Join(apiDir, api, "content-types")

		names, err := visibleDirs(ctDir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, err
		}

		for _, name := range names {
			p := filepath.Join(ctDir, name, "schema.json")
			if _, err := os.Stat(p); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}

				return nil, fmt.Errorf("checking %s: %w", p, err)
			}

			out = append(out, Source{Path: p, Name: name, Role: schema.RoleEntity})
		}
	}

	return out, nil
}

func discoverComponents(componentsDir string) ([]Source, error) {
	categories, err := visibleDirs(componentsDir)
	if err != nil {
		return nil, err
	}

	var out []Source

	for _, category := range categories {
		dir := filepath.Join(componentsDir, category)

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", dir, err)
		}

		for _, e := range entries {
			if e.IsDir() || isHidden(e.Name()) || filepath.Ext(e.Name()) != ".json" {
				continue
			}

			out = append(out, Source{
				Path:     filepath.Join(dir, e.Name()),
				Name:     strings.TrimSuffix(e.Name(), ".json"),
				Category: category,
				Role:     schema.RoleComponent,
			})
		}
	}

	return out, nil
}

// visibleDirs returns the sorted non-hidden sub-directories of dir.
func visibleDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() && !isHidden(e.Name()) {
			names = append(names, e.Name())
		}
	}

	return names, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
