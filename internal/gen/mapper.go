package gen

import (
	"encoding/json"
	"fmt"
	"strings"

	"schema-typegen/internal/naming"
	"schema-typegen/internal/schema"
)

// Area is the output location of a declaration.
type Area int

const (
	// AreaRoot holds entity and well-known declarations.
	AreaRoot Area = iota
	// AreaComponents holds component declarations.
	AreaComponents
)

// TypeRef is a named declaration referenced by a type expression.
type TypeRef struct {
	Name string
	Area Area
	// UID is the schema the reference came from, empty for well-known declarations.
	UID string
	// WellKnown marks hand-authored declarations that always exist.
	WellKnown bool
}

// FieldType is the projection of one attribute.
type FieldType struct {
	// Expr is the TypeScript type expression.
	Expr string
	// Optional is true unless the attribute is required.
	Optional bool
	// Refs lists the named declarations Expr depends on, in order of appearance.
	Refs []TypeRef
}

const openMapType = "Record<string, unknown>"

// Mapper maps attribute descriptors to type expressions.
type Mapper struct {
	// Prefix is prepended to every referenced type name.
	Prefix string
}

// DefaultMapper uses the default type name prefix.
var DefaultMapper = Mapper{Prefix: naming.DefaultPrefix}

// MapField maps an attribute using DefaultMapper.
func MapField(f *schema.Field) (FieldType, error) {
	return DefaultMapper.MapField(f)
}

// MapField returns the type expression of an attribute and whether it is optional.
// Unknown kinds and descriptors missing kind-specific keys are errors; there is
// no fallback type.
func (m Mapper) MapField(f *schema.Field) (FieldType, error) {
	ft := FieldType{Optional: !f.IsRequired()}

	switch f.Kind {
	case schema.KindString, schema.KindText, schema.KindRichText,
		schema.KindEmail, schema.KindPassword, schema.KindUID:
		ft.Expr = "string"

	case schema.KindInteger, schema.KindFloat, schema.KindDecimal, schema.KindBigInteger:
		ft.Expr = "number"

	case schema.KindBoolean:
		ft.Expr = "boolean"

	case schema.KindDate, schema.KindDateTime, schema.KindTime, schema.KindTimestamp:
		// ISO-8601 text, as in the well-known declarations
		ft.Expr = "string"

	case schema.KindJSON:
		ft.Expr = openMapType

	case schema.KindEnumeration:
		expr, err := enumUnion(f.Enum)
		if err != nil {
			return FieldType{}, err
		}

		ft.Expr = expr

	case schema.KindRelation:
		ref, many, err := m.relationRef(f)
		if err != nil {
			return FieldType{}, err
		}

		ft.Expr = listOf(ref.Name, many)
		ft.Refs = []TypeRef{ref}

	case schema.KindComponent:
		if f.Component == "" {
			return FieldType{}, fmt.Errorf("%w: component without \"component\"", schema.ErrIncompleteDescriptor)
		}

		ref, err := m.componentRef(f.Component)
		if err != nil {
			return FieldType{}, err
		}

		ft.Expr = listOf(ref.Name, f.Repeatable)
		ft.Refs = []TypeRef{ref}

	case schema.KindDynamicZone:
		expr, refs, err := m.dynamicZone(f.Components)
		if err != nil {
			return FieldType{}, err
		}

		ft.Expr = expr
		ft.Refs = refs

	case schema.KindMedia:
		ref := TypeRef{Name: m.Prefix + naming.MediaName, Area: AreaRoot, WellKnown: true}
		ft.Expr = listOf(ref.Name, f.Multiple)
		ft.Refs = []TypeRef{ref}

	case schema.KindUnknown:
		return FieldType{}, fmt.Errorf("%w: type %q", schema.ErrUnrecognizedFieldKind, f.RawType)

	default:
		return FieldType{}, fmt.Errorf("%w: %s", schema.ErrUnrecognizedFieldKind, f.Kind)
	}

	return ft, nil
}

// relationRef resolves the target of a relation. The cardinality comes from the
// relation word only; it is not shared with the component "repeatable" flag.
func (m Mapper) relationRef(f *schema.Field) (TypeRef, bool, error) {
	if f.Target == "" {
		return TypeRef{}, false, fmt.Errorf("%w: relation without \"target\"", schema.ErrIncompleteDescriptor)
	}

	card := schema.ParseCardinality(f.Relation)
	if card == schema.CardinalityUnknown {
		return TypeRef{}, false, fmt.Errorf("%w: relation %q has no known cardinality", schema.ErrIncompleteDescriptor, f.Relation)
	}

	name, ok := naming.RelationTargetName(m.Prefix, f.Target)
	if !ok {
		return TypeRef{}, false, fmt.Errorf("%w: cannot derive a type name from target %q", schema.ErrIncompleteDescriptor, f.Target)
	}

	ref := TypeRef{
		Name:      name,
		Area:      AreaRoot,
		UID:       f.Target,
		WellKnown: naming.IsWellKnownTarget(f.Target),
	}

	return ref, card == schema.CardinalityToMany, nil
}

func (m Mapper) componentRef(uid string) (TypeRef, error) {
	name, ok := naming.ComponentTypeName(m.Prefix, uid)
	if !ok {
		return TypeRef{}, fmt.Errorf("%w: cannot derive a type name from component %q", schema.ErrIncompleteDescriptor, uid)
	}

	return TypeRef{Name: name, Area: AreaComponents, UID: uid}, nil
}

func (m Mapper) dynamicZone(uids []string) (string, []TypeRef, error) {
	if len(uids) == 0 {
		return "", nil, fmt.Errorf("%w: dynamic zone without \"components\"", schema.ErrIncompleteDescriptor)
	}

	var (
		refs  []TypeRef
		names []string
	)

	seen := make(map[string]struct{}, len(uids))

	for _, uid := range uids {
		ref, err := m.componentRef(uid)
		if err != nil {
			return "", nil, err
		}

		if _, dup := seen[ref.Name]; dup {
			continue
		}

		seen[ref.Name] = struct{}{}
		refs = append(refs, ref)
		names = append(names, ref.Name)
	}

	if len(names) == 1 {
		return names[0] + "[]", refs, nil
	}

	return "Array<" + strings.Join(names, " | ") + ">", refs, nil
}

// enumUnion renders the values as a union of string literals, first occurrence wins.
func enumUnion(values []string) (string, error) {
	if len(values) == 0 {
		return "", fmt.Errorf("%w: enumeration without values", schema.ErrIncompleteDescriptor)
	}

	seen := make(map[string]struct{}, len(values))
	members := make([]string, 0, len(values))

	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}

		seen[v] = struct{}{}
		members = append(members, quoteLiteral(v))
	}

	return strings.Join(members, " | "), nil
}

// quoteLiteral returns v as a double-quoted literal valid in both JSON and TypeScript.
func quoteLiteral(v string) string {
	b, err := json.Marshal(v)
	if err != nil {
		// strings always marshal
		panic(err)
	}

	return string(b)
}

func listOf(name string, many bool) string {
	if many {
		return name + "[]"
	}

	return name
}
