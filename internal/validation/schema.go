package validation

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-covjson/internal/logging"
	"github.com/goliatone/go-covjson/internal/schema"
	"github.com/goliatone/go-covjson/pkg/interfaces"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaCompile   = errors.New("schema compile failed")
	ErrDocumentInvalid = errors.New("document validation failed")
	ErrModeUnknown     = errors.New("validation mode unknown")
)

// Mode selects which form of a schema a validator is compiled from.
type Mode string

const (
	// ModeNative compiles the 2020-12 schema straight from the store.
	ModeNative Mode = "native"
	// ModeBundled compiles the single-document 2020-12 bundle.
	ModeBundled Mode = "bundled"
	// ModeDraft07 compiles the bundle after downgrading it to draft-07.
	ModeDraft07 Mode = "draft07"
)

// Modes lists every mode in a stable order.
var Modes = []Mode{ModeNative, ModeBundled, ModeDraft07}

// ParseMode maps a configuration or flag value onto a Mode.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(ModeNative):
		return ModeNative, nil
	case string(ModeBundled):
		return ModeBundled, nil
	case string(ModeDraft07), "draft-07", "draft7":
		return ModeDraft07, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrModeUnknown, value)
	}
}

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// DocumentValidationError surfaces validation issues with schema-aware context.
type DocumentValidationError struct {
	SchemaID string
	Mode     Mode
	Issues   []ValidationIssue
	Cause    error
}

func (e *DocumentValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrDocumentInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *DocumentValidationError) Unwrap() error {
	return ErrDocumentInvalid
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var docErr *DocumentValidationError
	if errors.As(err, &docErr) && docErr != nil {
		return docErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// CompileOption configures Compile.
type CompileOption func(*compileOptions)

type compileOptions struct {
	baseURL   string
	logger    interfaces.Logger
	bundle    []schema.BundleOption
	downgrade []schema.DowngradeOption
}

// WithBaseURL overrides the URL path-only identifiers are resolved against.
func WithBaseURL(base string) CompileOption {
	return func(o *compileOptions) {
		if trimmed := strings.TrimRight(strings.TrimSpace(base), "/"); trimmed != "" {
			o.baseURL = trimmed
		}
	}
}

// WithLogger injects the logger used while compiling.
func WithLogger(logger interfaces.Logger) CompileOption {
	return func(o *compileOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithBundleOptions forwards options to the bundler in bundled and draft07 modes.
func WithBundleOptions(opts ...schema.BundleOption) CompileOption {
	return func(o *compileOptions) { o.bundle = append(o.bundle, opts...) }
}

// WithDowngradeOptions forwards options to the downgrader in draft07 mode.
func WithDowngradeOptions(opts ...schema.DowngradeOption) CompileOption {
	return func(o *compileOptions) { o.downgrade = append(o.downgrade, opts...) }
}

// Validator validates documents against one compiled schema.
type Validator struct {
	SchemaID string
	Mode     Mode
	compiled *jsonschema.Schema
}

// Compile builds a validator for the schema id from store in the given mode.
func Compile(store *schema.Store, id string, mode Mode, opts ...CompileOption) (*Validator, error) {
	options := compileOptions{baseURL: schema.DefaultBaseURL, logger: logging.NoOp()}
	for _, opt := range opts {
		opt(&options)
	}
	logger := logging.WithSchemaContext(options.logger, id, store.Path(id), string(mode))

	if !store.Has(id) {
		return nil, fmt.Errorf("%w: %w", ErrSchemaCompile, &schema.UnknownSchemaError{ID: id})
	}

	compiler := jsonschema.NewCompiler()
	var err error
	switch mode {
	case ModeNative:
		compiler.Draft = jsonschema.Draft2020
		for _, storedID := range store.IDs() {
			doc, _ := store.Get(storedID)
			if err = addResource(compiler, options.baseURL+storedID, doc); err != nil {
				break
			}
		}
	case ModeBundled:
		compiler.Draft = jsonschema.Draft2020
		var bundled schema.Document
		if bundled, err = schema.Bundle(store, id, options.bundle...); err == nil {
			err = addResource(compiler, options.baseURL+id, bundled)
		}
	case ModeDraft07:
		compiler.Draft = jsonschema.Draft7
		var bundled, downgraded schema.Document
		if bundled, err = schema.Bundle(store, id, options.bundle...); err == nil {
			if downgraded, err = schema.Downgrade(bundled, options.downgrade...); err == nil {
				err = addResource(compiler, options.baseURL+id, downgraded)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrModeUnknown, mode)
	}
	if err != nil {
		logger.Error("validation.compile.failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrSchemaCompile, err)
	}

	compiled, err := compiler.Compile(options.baseURL + id)
	if err != nil {
		logger.Error("validation.compile.failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrSchemaCompile, err)
	}
	logger.Debug("validation.compile.complete")
	return &Validator{SchemaID: id, Mode: mode, compiled: compiled}, nil
}

// Validate checks doc, which must be a value produced by JSON decoding.
func (v *Validator) Validate(doc any) error {
	if err := v.compiled.Validate(doc); err != nil {
		return &DocumentValidationError{
			SchemaID: v.SchemaID,
			Mode:     v.Mode,
			Issues:   Issues(err),
			Cause:    err,
		}
	}
	return nil
}

// ValidateBytes decodes data as JSON and validates the result.
func (v *Validator) ValidateBytes(data []byte) error {
	doc, err := schema.DecodeBytes(data)
	if err != nil {
		return fmt.Errorf("%w: decode: %w", ErrDocumentInvalid, err)
	}
	return v.Validate(doc)
}

func addResource(compiler *jsonschema.Compiler, url string, doc schema.Document) error {
	encoded, err := schema.Marshal(doc)
	if err != nil {
		return err
	}
	return compiler.AddResource(url, bytes.NewReader(encoded))
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
