package schema

import "strings"

// Document is a decoded JSON Schema document.
type Document = map[string]any

const (
	KeySchema           = "$schema"
	KeyID               = "$id"
	KeyRef              = "$ref"
	KeyDefs             = "$defs"
	KeyDefinitions      = "definitions"
	KeyAllOf            = "allOf"
	KeyDependentSchemas = "dependentSchemas"
	KeyDependencies     = "dependencies"
)

const (
	Draft07   = "http://json-schema.org/draft-07/schema#"
	Draft2019 = "https://json-schema.org/draft/2019-09/schema"
	Draft2020 = "https://json-schema.org/draft/2020-12/schema"
)

// DefaultIDPrefix is the path prefix shared by every schema identifier in the store.
const DefaultIDPrefix = "/schemas/"

const (
	defsPointerPrefix        = "#/" + KeyDefs + "/"
	definitionsPointerPrefix = "#/" + KeyDefinitions + "/"
)

// SupportedDialects lists the dialects the bundler accepts for a root schema.
var SupportedDialects = []string{Draft2019, Draft2020}

var dialectAliases = map[string]string{
	"http://json-schema.org/draft-07/schema":       Draft07,
	"https://json-schema.org/draft-07/schema":      Draft07,
	"https://json-schema.org/draft/2019-09/schema": Draft2019,
	"http://json-schema.org/draft/2019-09/schema":  Draft2019,
	"http://json-schema.org/2019-09/schema":        Draft2019,
	"https://json-schema.org/draft/2020-12/schema": Draft2020,
	"http://json-schema.org/draft/2020-12/schema":  Draft2020,
	"http://json-schema.org/2020-12/schema":        Draft2020,
}

// CanonicalDialect maps the accepted spellings of a $schema value onto the
// canonical identifier. Unknown values are returned trimmed but otherwise untouched.
func CanonicalDialect(value string) string {
	trimmed := strings.TrimSuffix(strings.TrimSpace(value), "#")
	if canonical, ok := dialectAliases[trimmed]; ok {
		return canonical
	}
	return strings.TrimSpace(value)
}

// Dialect returns the canonical dialect declared by the document and whether one is declared.
func Dialect(doc Document) (string, bool) {
	value, ok := doc[KeySchema].(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return CanonicalDialect(value), true
}

// IsSupportedDialect reports whether the bundler accepts the given $schema value.
func IsSupportedDialect(value string) bool {
	canonical := CanonicalDialect(value)
	for _, dialect := range SupportedDialects {
		if canonical == dialect {
			return true
		}
	}
	return false
}

// IsDraft07 reports whether the $schema value names draft-07.
func IsDraft07(value string) bool {
	return CanonicalDialect(value) == Draft07
}
