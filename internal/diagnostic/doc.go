// Package diagnostic collects per-schema errors, warnings and informational
// notes produced while generating declarations.
//
// A failing schema never stops its siblings; the build keeps going and the
// diagnostics are reported together at the end.
package diagnostic
