package gen

import (
	"fmt"

	"schema-typegen/internal/diagnostic"
	"schema-typegen/internal/naming"
	"schema-typegen/internal/schema"
)

// Shape is the layout of a projected declaration.
type Shape int

const (
	// ShapeEnvelope is { id: number; attributes: { ... } }, used for entities.
	ShapeEnvelope Shape = iota
	// ShapeFlat is { id: number; ... }, used for components.
	ShapeFlat
)

// ProjectedField is one member of a projected declaration.
type ProjectedField struct {
	Name string
	Type FieldType
}

// ProjectedType is the projection of a whole schema.
type ProjectedType struct {
	// Name is the declared type name.
	Name string
	// UID is the schema the declaration was projected from.
	UID string
	// Shape selects the envelope layout.
	Shape Shape
	// Fields follow the schema's authoring order.
	Fields []ProjectedField
	// Components lists distinct component UIDs referenced, in first-encounter order.
	Components []string
	// Refs lists distinct referenced declarations, in first-encounter order.
	Refs []TypeRef
}

// Area returns where the declaration is written.
func (pt *ProjectedType) Area() Area {
	if pt.Shape == ShapeFlat {
		return AreaComponents
	}

	return AreaRoot
}

// Projector turns schema descriptors into declarations.
type Projector struct {
	mapper Mapper
}

// NewProjector creates a Projector that prefixes type names with prefix.
func NewProjector(prefix string) *Projector {
	return &Projector{mapper: Mapper{Prefix: prefix}}
}

var defaultProjector = NewProjector(naming.DefaultPrefix)

// ProjectEntity projects d under typeName using the default prefix.
func ProjectEntity(d *schema.Descriptor, typeName string) (*ProjectedType, error) {
	return defaultProjector.Project(d, typeName)
}

// Project builds the declaration for d. typeName is used as given.
//
// A schema without attributes yields nil and no error. Any attribute that fails
// to map fails the whole projection.
func (p *Projector) Project(d *schema.Descriptor, typeName string) (*ProjectedType, error) {
	if d == nil || len(d.Fields) == 0 {
		return nil, nil
	}

	pt := &ProjectedType{
		Name:   typeName,
		UID:    d.UID,
		Fields: make([]ProjectedField, 0, len(d.Fields)),
	}

	if d.Role == schema.RoleComponent {
		pt.Shape = ShapeFlat
	}

	seenRefs := make(map[TypeRef]struct{})
	seenComponents := make(map[string]struct{})

	for i := range d.Fields {
		f := &d.Fields[i]

		ft, err := p.mapper.MapField(f)
		if err != nil {
			return nil, fmt.Errorf("projecting %s: %w", typeName, &diagnostic.FieldError{Field: f.Name, Err: err})
		}

		pt.Fields = append(pt.Fields, ProjectedField{Name: f.Name, Type: ft})

		for _, ref := range ft.Refs {
			if _, ok := seenRefs[ref]; !ok {
				seenRefs[ref] = struct{}{}
				pt.Refs = append(pt.Refs, ref)
			}

			if ref.Area != AreaComponents {
				continue
			}

			if _, ok := seenComponents[ref.UID]; !ok {
				seenComponents[ref.UID] = struct{}{}
				pt.Components = append(pt.Components, ref.UID)
			}
		}
	}

	return pt, nil
}
