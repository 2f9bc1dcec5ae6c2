package schema

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/kaptinlin/jsonrepair"
)

// ParseOptions controls how schema documents are decoded.
type ParseOptions struct {
	// Repair retries a document that fails to decode after running it through jsonrepair.
	Repair bool
}

// LoadFile loads and parses a schema document from the given path.
func LoadFile(path string, opts ParseOptions) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	d, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Parse decodes a schema document. Attribute order is preserved as authored.
// The returned descriptor has no UID, Name or Role; callers fill those in from
// where the document was found.
func Parse(data []byte, opts ParseOptions) (*Descriptor, error) {
	doc, err := decodeOrdered(data)
	if err != nil && opts.Repair {
		repaired, repairErr := jsonrepair.JSONRepair(string(data))
		if repairErr != nil {
			return nil, fmt.Errorf("%w: %v (repair failed: %v)", ErrMalformedSource, err, repairErr)
		}

		doc, err = decodeOrdered([]byte(repaired))
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}

	return fromDocument(doc)
}

func decodeOrdered(data []byte) (yaml.MapSlice, error) {
	var doc yaml.MapSlice

	err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap())
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func fromDocument(doc yaml.MapSlice) (*Descriptor, error) {
	d := &Descriptor{}

	if info, ok := lookup(doc, "info"); ok {
		if infoMap, ok := info.(yaml.MapSlice); ok {
			d.DisplayName, _ = stringValue(infoMap, "displayName")
		}
	}

	raw, ok := lookup(doc, "attributes")
	if !ok || raw == nil {
		return d, nil
	}

	attrs, ok := raw.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: \"attributes\" must be an object, got %T", ErrMalformedSource, raw)
	}

	d.Fields = make([]Field, 0, len(attrs))

	for _, item := range attrs {
		name := fmt.Sprint(item.Key)

		entry, ok := item.Value.(yaml.MapSlice)
		if !ok {
			return nil, fmt.Errorf("%w: attribute %q must be an object, got %T", ErrMalformedSource, name, item.Value)
		}

		f, err := fieldFromEntry(name, entry)
		if err != nil {
			return nil, err
		}

		d.Fields = append(d.Fields, f)
	}

	return d, nil
}

func fieldFromEntry(name string, entry yaml.MapSlice) (Field, error) {
	f := Field{Name: name}

	f.RawType, _ = stringValue(entry, "type")
	f.Kind = ParseFieldKind(f.RawType)

	if v, ok := lookup(entry, "required"); ok {
		b, isBool := v.(bool)
		if !isBool {
			return f, fmt.Errorf("%w: attribute %q: \"required\" must be a boolean", ErrMalformedSource, name)
		}

		f.Required = &b
	}

	f.Relation, _ = stringValue(entry, "relation")

	f.Target, _ = stringValue(entry, "target")
	if f.Target == "" {
		f.Target, _ = stringValue(entry, "targetModel")
	}

	f.Component, _ = stringValue(entry, "component")
	f.Repeatable, _ = boolValue(entry, "repeatable")
	f.Multiple, _ = boolValue(entry, "multiple")

	var err error

	f.Enum, err = stringList(entry, "enum")
	if err != nil {
		return f, fmt.Errorf("%w: attribute %q: %v", ErrMalformedSource, name, err)
	}

	f.Components, err = stringList(entry, "components")
	if err != nil {
		return f, fmt.Errorf("%w: attribute %q: %v", ErrMalformedSource, name, err)
	}

	return f, nil
}

func lookup(m yaml.MapSlice, key string) (any, bool) {
	for _, item := range m {
		if k, ok := item.Key.(string); ok && k == key {
			return item.Value, true
		}
	}

	return nil, false
}

func stringValue(m yaml.MapSlice, key string) (string, bool) {
	v, ok := lookup(m, key)
	if !ok {
		return "", false
	}

	s, ok := v.(string)

	return s, ok
}

func boolValue(m yaml.MapSlice, key string) (bool, bool) {
	v, ok := lookup(m, key)
	if !ok {
		return false, false
	}

	b, ok := v.(bool)

	return b, ok
}

func stringList(m yaml.MapSlice, key string) ([]string, error) {
	v, ok := lookup(m, key)
	if !ok || v == nil {
		return nil, nil
	}

	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%q must be a list, got %T", key, v)
	}

	out := make([]string, 0, len(items))

	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%q[%d] must be a string, got %T", key, i, item)
		}

		out = append(out, s)
	}

	return out, nil
}
