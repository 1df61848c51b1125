// Package schemas ships the CoverageJSON JSON Schema set. Every file declares
// the 2020-12 dialect and a path-only identifier under /schemas/.
package schemas

import (
	"embed"

	"github.com/goliatone/go-covjson/internal/schema"
)

// FS holds the schema files.
//
//go:embed *.json
var FS embed.FS

// Dir is the directory inside FS holding the schema files.
const Dir = "."

// RootID identifies the schema accepting any top-level CoverageJSON object.
const RootID = "/schemas/coveragejson"

// Load builds a store from the embedded schema files.
func Load(opts ...schema.StoreOption) (*schema.Store, error) {
	return schema.LoadStore(FS, Dir, opts...)
}
