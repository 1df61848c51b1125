package di

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-covjson/internal/logging"
	"github.com/goliatone/go-covjson/internal/logging/console"
	"github.com/goliatone/go-covjson/internal/logging/gologger"
	"github.com/goliatone/go-covjson/internal/runtimeconfig"
	"github.com/goliatone/go-covjson/internal/schema"
	"github.com/goliatone/go-covjson/internal/validation"
	"github.com/goliatone/go-covjson/pkg/interfaces"
	"github.com/goliatone/go-covjson/schemas"
)

// Container wires the schema store, the validator cache and the logger provider
// described by a Config.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	store          *schema.Store
	cache          *validation.Cache
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithStore supplies a preloaded store, bypassing Config.Schemas.Dir.
func WithStore(store *schema.Store) Option {
	return func(c *Container) {
		c.store = store
	}
}

// NewContainer validates cfg and builds the container.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Container{Config: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if err := c.configureStore(); err != nil {
		return nil, err
	}
	if cfg.Validation.CacheEnabled {
		c.cache = validation.NewCache(c.store, c.CompileOptions()...)
	}
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}
	cfg := c.Config.Logging
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(cfg)
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		c.loggerProvider = console.NewProvider(console.Options{Level: cfg.Level})
	}
	return nil
}

func (c *Container) configureStore() error {
	if c.store != nil {
		return nil
	}
	logger := logging.StoreLogger(c.loggerProvider)
	dir := strings.TrimSpace(c.Config.Schemas.Dir)
	var (
		store *schema.Store
		err   error
	)
	if dir == "" {
		store, err = schemas.Load(schema.WithStoreLogger(logger))
	} else {
		store, err = schema.LoadStoreDir(dir, schema.WithStoreLogger(logger))
	}
	if err != nil {
		return fmt.Errorf("load schemas: %w", err)
	}
	logger.Info("schemas.store.configured", "schemas", store.Len(), "dir", dir)
	c.store = store
	return nil
}

// LoggerProvider returns the configured provider. It is nil when logging is disabled,
// which module loggers treat as a no-op.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Store returns the schema store.
func (c *Container) Store() *schema.Store {
	return c.store
}

// Cache returns the validator cache, or nil when caching is disabled.
func (c *Container) Cache() *validation.Cache {
	return c.cache
}

// BundleOptions maps Config.Bundle onto bundler options.
func (c *Container) BundleOptions() []schema.BundleOption {
	return []schema.BundleOption{
		schema.WithBundleLogger(logging.BundleLogger(c.loggerProvider)),
		schema.WithExternalPrefixes(c.Config.Bundle.ExternalPrefixes...),
		schema.WithStrictReferences(c.Config.Bundle.StrictReferences),
	}
}

// DowngradeOptions maps Config.Schemas and Config.Downgrade onto downgrader options.
func (c *Container) DowngradeOptions() []schema.DowngradeOption {
	opts := []schema.DowngradeOption{
		schema.WithDowngradeLogger(logging.DowngradeLogger(c.loggerProvider)),
		schema.WithIDPrefix(c.Config.Schemas.IDPrefix),
	}
	if c.Config.Downgrade.SkipMetaSchemaCheck {
		opts = append(opts, schema.WithoutMetaSchemaCheck())
	}
	if c.Config.Downgrade.SkipKeywordAudit {
		opts = append(opts, schema.WithoutKeywordAudit())
	}
	return opts
}

// CompileOptions returns the validator options derived from the configuration.
func (c *Container) CompileOptions() []validation.CompileOption {
	return []validation.CompileOption{
		validation.WithBaseURL(c.Config.Schemas.BaseURL),
		validation.WithLogger(logging.ValidationLogger(c.loggerProvider)),
		validation.WithBundleOptions(c.BundleOptions()...),
		validation.WithDowngradeOptions(c.DowngradeOptions()...),
	}
}
