package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrMissingIdentifier   = errors.New("schema: missing identifier")
	ErrDuplicateIdentifier = errors.New("schema: duplicate identifier")
	ErrUnknownSchema       = errors.New("schema: unknown schema")
	ErrUnsupportedDialect  = errors.New("schema: unsupported dialect")
	ErrUnresolvedReference = errors.New("schema: unresolved reference")
	ErrDuplicateDefinition = errors.New("schema: duplicate definition")
	ErrDuplicateKeyword    = errors.New("schema: duplicate keyword")
	ErrUnsupportedKeyword  = errors.New("schema: unsupported keyword")
	ErrMetaSchemaViolation = errors.New("schema: meta-schema violation")
)

// MissingIdentifierError reports a schema file without a usable $id.
type MissingIdentifierError struct {
	Path string
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("%s: %s not present in schema %s", ErrMissingIdentifier, KeyID, e.Path)
}

func (e *MissingIdentifierError) Unwrap() error { return ErrMissingIdentifier }

// DuplicateIdentifierError reports two schema files declaring the same $id.
type DuplicateIdentifierError struct {
	ID       string
	Path     string
	Existing string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("%s: %q declared by %s and %s", ErrDuplicateIdentifier, e.ID, e.Existing, e.Path)
}

func (e *DuplicateIdentifierError) Unwrap() error { return ErrDuplicateIdentifier }

// UnknownSchemaError reports a lookup of an identifier the store does not hold.
type UnknownSchemaError struct {
	ID string
}

func (e *UnknownSchemaError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownSchema, e.ID)
}

func (e *UnknownSchemaError) Unwrap() error { return ErrUnknownSchema }

// UnsupportedDialectError reports a root schema declaring a dialect outside Supported.
type UnsupportedDialectError struct {
	Dialect   string
	Supported []string
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("%s: %q, root schema dialect must be one of [%s]",
		ErrUnsupportedDialect, e.Dialect, strings.Join(e.Supported, ", "))
}

func (e *UnsupportedDialectError) Unwrap() error { return ErrUnsupportedDialect }

// UnresolvedReferenceError reports a $ref that does not point at a known schema or definition.
type UnresolvedReferenceError struct {
	Ref   string
	Known []string
}

func (e *UnresolvedReferenceError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("%s: %q", ErrUnresolvedReference, e.Ref)
	}
	known := append([]string(nil), e.Known...)
	sort.Strings(known)
	return fmt.Sprintf("%s: %q not found in definitions: %s", ErrUnresolvedReference, e.Ref, strings.Join(known, ", "))
}

func (e *UnresolvedReferenceError) Unwrap() error { return ErrUnresolvedReference }

// DuplicateDefinitionError reports two embedded schemas collapsing to the same local name.
type DuplicateDefinitionError struct {
	Name string
}

func (e *DuplicateDefinitionError) Error() string {
	return fmt.Sprintf("%s: %q", ErrDuplicateDefinition, e.Name)
}

func (e *DuplicateDefinitionError) Unwrap() error { return ErrDuplicateDefinition }

// DuplicateKeywordError reports a rename whose target keyword already exists on the node.
type DuplicateKeywordError struct {
	Keyword string
	Source  string
}

func (e *DuplicateKeywordError) Error() string {
	return fmt.Sprintf("%s: cannot rename %q, %q already present", ErrDuplicateKeyword, e.Source, e.Keyword)
}

func (e *DuplicateKeywordError) Unwrap() error { return ErrDuplicateKeyword }

// UnsupportedKeywordError reports keywords the target dialect cannot express.
type UnsupportedKeywordError struct {
	Keyword string
	Path    string
}

func (e *UnsupportedKeywordError) Error() string {
	path := e.Path
	if path == "" {
		path = "#"
	}
	return fmt.Sprintf("%s: %s at %s", ErrUnsupportedKeyword, e.Keyword, path)
}

func (e *UnsupportedKeywordError) Unwrap() error { return ErrUnsupportedKeyword }

// MetaSchemaViolationError wraps the meta-schema diagnostic for a rewritten document.
type MetaSchemaViolationError struct {
	Dialect string
	Cause   error
}

func (e *MetaSchemaViolationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", ErrMetaSchemaViolation, e.Dialect)
	}
	return fmt.Sprintf("%s: %s: %v", ErrMetaSchemaViolation, e.Dialect, e.Cause)
}

func (e *MetaSchemaViolationError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrMetaSchemaViolation}
	}
	return []error{ErrMetaSchemaViolation, e.Cause}
}
