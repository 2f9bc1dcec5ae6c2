package schema

import (
	"sort"
)

// Role distinguishes content types from reusable components.
type Role int

const (
	RoleEntity Role = iota
	RoleComponent
)

// String returns a human-readable role name.
func (r Role) String() string {
	if r == RoleComponent {
		return "component"
	}

	return "entity"
}

// Field is one attribute of an entity or component schema.
type Field struct {
	// Name is the attribute key as authored.
	Name string
	// Kind is the resolved attribute type.
	Kind FieldKind
	// RawType is the "type" tag exactly as found on disk.
	RawType string
	// Required is nil when the schema does not say.
	Required *bool

	// Enum holds the literal values of an enumeration.
	Enum []string

	// Relation is the cardinality word of a relation (e.g. "oneToMany").
	Relation string
	// Target is the relation target UID (e.g. "api::category.category").
	Target string

	// Component is the component UID (e.g. "shared.seo").
	Component string
	// Repeatable marks a component field as a list.
	Repeatable bool
	// Components lists the variants of a dynamic zone.
	Components []string

	// Multiple marks a media field as a list.
	Multiple bool
}

// IsRequired reports whether the field is guaranteed present.
// A missing "required" key counts as not required.
func (f *Field) IsRequired() bool {
	return f.Required != nil && *f.Required
}

// Descriptor is a parsed schema document.
type Descriptor struct {
	// UID identifies the schema: "api::<name>.<name>" for entities, "<category>.<name>" for components.
	UID string
	// Name is the folder or file name the schema was found under.
	Name string
	// Category is the component category folder, empty for entities.
	Category string
	// DisplayName is informational only.
	DisplayName string
	// Role tells entities from components.
	Role Role
	// Fields are kept in authoring order.
	Fields []Field
}

// Set holds every schema of a project.
type Set struct {
	Entities   []*Descriptor
	Components map[string]*Descriptor
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{Components: make(map[string]*Descriptor)}
}

// Add registers a descriptor by role.
func (s *Set) Add(d *Descriptor) {
	if d.Role == RoleComponent {
		s.Components[d.UID] = d
		return
	}

	s.Entities = append(s.Entities, d)
}

// Component looks up a component by UID.
func (s *Set) Component(uid string) (*Descriptor, bool) {
	d, ok := s.Components[uid]
	return d, ok
}

// ComponentUIDs returns component UIDs in sorted order.
func (s *Set) ComponentUIDs() []string {
	uids := make([]string, 0, len(s.Components))
	for uid := range s.Components {
		uids = append(uids, uid)
	}

	sort.Strings(uids)

	return uids
}

// EntityUID builds the UID of an api content type.
func EntityUID(name string) string {
	return "api::" + name + "." + name
}

// ComponentUID builds the UID of a component.
func ComponentUID(category, name string) string {
	return category + "." + name
}
