// Package covjson exposes the CoverageJSON schema tooling: the schema store,
// bundling, draft-07 downgrading, identifier patching and document validation.
package covjson

import (
	"strings"

	"github.com/goliatone/go-covjson/internal/di"
	"github.com/goliatone/go-covjson/internal/logging"
	"github.com/goliatone/go-covjson/internal/schema"
	"github.com/goliatone/go-covjson/internal/validation"
	"github.com/goliatone/go-covjson/pkg/interfaces"
)

// Document is a decoded JSON Schema or CoverageJSON document.
type Document = schema.Document

// Store exports the read-only schema store.
type Store = schema.Store

// Mode selects the schema form a validator is compiled from.
type Mode = validation.Mode

// Validator exports the compiled validator type.
type Validator = validation.Validator

// PatchOptions exports the $id patch options.
type PatchOptions = schema.PatchOptions

const (
	ModeNative  = validation.ModeNative
	ModeBundled = validation.ModeBundled
	ModeDraft07 = validation.ModeDraft07
)

var (
	ErrUnknownSchema       = schema.ErrUnknownSchema
	ErrUnresolvedReference = schema.ErrUnresolvedReference
	ErrUnsupportedDialect  = schema.ErrUnsupportedDialect
	ErrSchemaCompile       = validation.ErrSchemaCompile
	ErrDocumentInvalid     = validation.ErrDocumentInvalid
)

// Option customises module construction.
type Option = di.Option

// WithLoggerProvider overrides the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return di.WithLoggerProvider(provider)
}

// WithStore supplies a preloaded store instead of loading Config.Schemas.Dir.
func WithStore(store *Store) Option {
	return di.WithStore(store)
}

// Module represents the top level façade over the schema tooling.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.container.Config
}

// Store returns the loaded schema store.
func (m *Module) Store() *Store {
	return m.container.Store()
}

// Logger returns a module logger for name from the configured provider.
func (m *Module) Logger(name string) interfaces.Logger {
	return logging.ModuleLogger(m.container.LoggerProvider(), name)
}

// Bundle bundles rootID, or the configured root when rootID is empty, with the
// configured reference policy.
func (m *Module) Bundle(rootID string) (Document, error) {
	if strings.TrimSpace(rootID) == "" {
		rootID = m.container.Config.Schemas.RootID
	}
	return schema.Bundle(m.Store(), rootID, m.container.BundleOptions()...)
}

// Downgrade rewrites a bundled 2020-12 schema to draft-07.
func (m *Module) Downgrade(doc Document) (Document, error) {
	return schema.Downgrade(doc, m.container.DowngradeOptions()...)
}

// Patch returns a copy of doc with its $id set or removed.
func (m *Module) Patch(doc Document, opts PatchOptions) Document {
	return schema.Patch(doc, opts)
}

// Validator returns the validator for id in mode. Validators are shared through
// the cache when Config.Validation.CacheEnabled is set.
func (m *Module) Validator(mode Mode, id string) (*Validator, error) {
	if cache := m.container.Cache(); cache != nil {
		return cache.Validator(mode, id)
	}
	return validation.Compile(m.Store(), id, mode, m.container.CompileOptions()...)
}

// Validate validates doc against id in the configured mode. An empty id selects
// the configured root schema.
func (m *Module) Validate(id string, doc any) error {
	mode, err := validation.ParseMode(m.container.Config.Validation.Mode)
	if err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		id = m.container.Config.Schemas.RootID
	}
	validator, err := m.Validator(mode, id)
	if err != nil {
		return err
	}
	return validator.Validate(doc)
}

// Issues extracts validation issues from an error returned by Validate.
func Issues(err error) []validation.ValidationIssue {
	return validation.Issues(err)
}
