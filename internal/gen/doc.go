// Package gen projects schema descriptors into TypeScript type declarations.
//
// Generation approach uses text/template for readable, deterministic output.
//
// Projection rules:
//   - Scalars map to string, number, boolean or an open Record type
//   - Enumerations become unions of quoted literals
//   - Relations, components and media reference named declarations,
//     as arrays when the attribute holds many
//   - Entities nest their attributes under "attributes" next to a numeric id;
//     components are flat
//   - Components get one declaration each, in their own sub-directory
//
// Identical input always yields byte-identical output.
package gen
