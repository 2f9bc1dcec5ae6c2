// Package main provides the CLI entrypoint for schema-typegen.
//
// schema-typegen reads content-type and component schemas from a project
// source tree and writes one TypeScript declaration per schema:
//   - Content types become { id; attributes: {...} } envelopes
//   - Components are declared once each under the components sub-directory
//   - Pagination, user and media declarations are always written
package main

import (
	"context"

	_ "github.com/joho/godotenv/autoload"
	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
