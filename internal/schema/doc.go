// Package schema reads content-type and component schema documents.
//
// Documents are JSON files with a top-level "attributes" object. Each
// attribute carries a "type" tag plus kind-specific keys:
//   - enumeration: "enum"
//   - relation: "relation", "target" (or "targetModel")
//   - component: "component", "repeatable"
//   - dynamiczone: "components"
//   - media: "multiple"
//
// Attribute order is preserved exactly as authored so that generated
// declarations are reproducible.
package schema
