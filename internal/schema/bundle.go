package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-covjson/internal/logging"
	"github.com/goliatone/go-covjson/pkg/interfaces"
)

// Bundler embeds every schema transitively referenced from a root schema into
// the root's $defs, following the bundling method of JSON Schema 2019-09+.
type Bundler struct {
	Store  *Store
	Logger interfaces.Logger
	// ExternalPrefixes lists reference prefixes that are expected to live outside
	// the store, such as third-party vocabularies.
	ExternalPrefixes []string
	// StrictReferences turns references that are neither in the store nor
	// covered by ExternalPrefixes into errors instead of warnings.
	StrictReferences bool
}

// BundleOption configures Bundle.
type BundleOption func(*Bundler)

// WithBundleLogger injects the logger used while bundling.
func WithBundleLogger(logger interfaces.Logger) BundleOption {
	return func(b *Bundler) { b.Logger = logger }
}

// WithExternalPrefixes marks reference prefixes that are allowed to stay unresolved.
func WithExternalPrefixes(prefixes ...string) BundleOption {
	return func(b *Bundler) { b.ExternalPrefixes = append(b.ExternalPrefixes, prefixes...) }
}

// WithStrictReferences toggles strict handling of unknown references.
func WithStrictReferences(strict bool) BundleOption {
	return func(b *Bundler) { b.StrictReferences = strict }
}

// Bundle bundles rootID from store using a Bundler configured by opts.
func Bundle(store *Store, rootID string, opts ...BundleOption) (Document, error) {
	b := &Bundler{Store: store}
	for _, opt := range opts {
		opt(b)
	}
	return b.Bundle(rootID)
}

// Bundle returns a deep copy of the root schema with every reachable schema
// embedded under $defs, keyed by its identifier. Stored documents are not modified.
func (b *Bundler) Bundle(rootID string) (Document, error) {
	logger := b.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	logger = logging.WithFields(logger, map[string]any{"root": rootID})

	stored, ok := b.Store.Get(rootID)
	if !ok {
		return nil, &UnknownSchemaError{ID: rootID}
	}
	root := Clone(stored)

	if declared, present := root[KeySchema]; present {
		dialect, ok := declared.(string)
		if !ok || !IsSupportedDialect(dialect) {
			return nil, &UnsupportedDialectError{Dialect: fmt.Sprint(declared), Supported: SupportedDialects}
		}
	}

	refs, err := b.closure(rootID, logger)
	if err != nil {
		return nil, err
	}

	defs, _ := root[KeyDefs].(map[string]any)
	if defs == nil {
		defs = map[string]any{}
		root[KeyDefs] = defs
	}
	for _, id := range refs {
		if id == rootID {
			continue
		}
		doc, _ := b.Store.Get(id)
		defs[id] = Clone(doc)
	}

	logger.Debug("schema.bundle.complete", "embedded", len(refs))
	return root, nil
}

// Reachable returns the sorted identifiers reachable from rootID, excluding rootID.
func (b *Bundler) Reachable(rootID string) ([]string, error) {
	if !b.Store.Has(rootID) {
		return nil, &UnknownSchemaError{ID: rootID}
	}
	logger := b.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	refs, err := b.closure(rootID, logger)
	if err != nil {
		return nil, err
	}
	out := refs[:0]
	for _, id := range refs {
		if id != rootID {
			out = append(out, id)
		}
	}
	return out, nil
}

// closure walks the reference graph from rootID until no unseen identifier
// remains. Each schema is walked at most once, so cycles terminate.
func (b *Bundler) closure(rootID string, logger interfaces.Logger) ([]string, error) {
	found := map[string]struct{}{}
	done := map[string]struct{}{}
	todo := []string{rootID}

	var walkErr error
	for len(todo) > 0 {
		id := todo[0]
		todo = todo[1:]
		if _, seen := done[id]; seen {
			continue
		}
		done[id] = struct{}{}

		doc, _ := b.Store.Get(id)
		Walk(doc, KeyRef, func(_ map[string]any, _ string, value any) {
			ref, ok := value.(string)
			if !ok || walkErr != nil {
				return
			}
			if b.Store.Has(ref) {
				if _, known := found[ref]; !known {
					found[ref] = struct{}{}
					todo = append(todo, ref)
				}
				return
			}
			walkErr = b.checkExternal(id, ref, logger)
		})
		if walkErr != nil {
			return nil, walkErr
		}
	}

	refs := make([]string, 0, len(found))
	for id := range found {
		refs = append(refs, id)
	}
	sort.Strings(refs)
	return refs, nil
}

func (b *Bundler) checkExternal(from, ref string, logger interfaces.Logger) error {
	if strings.HasPrefix(ref, "#") {
		return nil
	}
	for _, prefix := range b.ExternalPrefixes {
		if prefix != "" && strings.HasPrefix(ref, prefix) {
			logger.Trace("schema.bundle.external_ref", "schema", from, "ref", ref)
			return nil
		}
	}
	if b.StrictReferences {
		return &UnresolvedReferenceError{Ref: ref, Known: b.Store.IDs()}
	}
	logger.Warn("schema.bundle.unresolved_ref", "schema", from, "ref", ref)
	return nil
}
