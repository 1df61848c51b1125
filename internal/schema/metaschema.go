package schema

import (
	"bytes"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// DefaultBaseURL anchors the store's path-only identifiers when schemas are
// handed to the validation engine.
const DefaultBaseURL = "https://covjson.org"

const metaCheckResource = DefaultBaseURL + "/draft07-check.json"

// CheckMetaSchema compiles doc as a draft-07 schema. Compilation validates the
// document against the draft-07 meta-schema and resolves every local $ref.
func CheckMetaSchema(doc Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return &MetaSchemaViolationError{Dialect: Draft07, Cause: err}
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(metaCheckResource, bytes.NewReader(data)); err != nil {
		return &MetaSchemaViolationError{Dialect: Draft07, Cause: err}
	}
	if _, err := compiler.Compile(metaCheckResource); err != nil {
		return &MetaSchemaViolationError{Dialect: Draft07, Cause: err}
	}
	return nil
}
