package schema

import "errors"

var (
	// ErrMalformedSource is returned when a document does not have the expected structure.
	ErrMalformedSource = errors.New("malformed schema source")
	// ErrUnrecognizedFieldKind is returned for a "type" tag outside the known set.
	ErrUnrecognizedFieldKind = errors.New("unrecognized field kind")
	// ErrIncompleteDescriptor is returned when a kind-specific key is missing.
	ErrIncompleteDescriptor = errors.New("incomplete field descriptor")
)

// ErrUnresolvedReference is returned when a field points at a component or
// entity that is not part of the schema set.
var ErrUnresolvedReference = errors.New("unresolved schema reference")
