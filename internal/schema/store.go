package schema

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-covjson/internal/logging"
	"github.com/goliatone/go-covjson/pkg/interfaces"
)

// Store maps schema identifiers to loaded schema documents. It is read-only
// once constructed.
type Store struct {
	docs  map[string]Document
	paths map[string]string
}

// StoreOption configures LoadStore.
type StoreOption func(*storeOptions)

type storeOptions struct {
	logger interfaces.Logger
}

// WithStoreLogger injects the logger used while loading. Defaults to a no-op logger.
func WithStoreLogger(logger interfaces.Logger) StoreOption {
	return func(o *storeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewStore builds a store from in-memory documents keyed by identifier.
func NewStore(docs map[string]Document) *Store {
	store := &Store{
		docs:  make(map[string]Document, len(docs)),
		paths: make(map[string]string, len(docs)),
	}
	for id, doc := range docs {
		store.docs[id] = doc
	}
	return store
}

// LoadStoreDir loads every schema file in dir on the local filesystem.
func LoadStoreDir(dir string, opts ...StoreOption) (*Store, error) {
	return LoadStore(os.DirFS(dir), ".", opts...)
}

// LoadStore loads every *.json file directly inside dir and indexes it by its
// declared $id. Any failure aborts the load and no store is returned.
func LoadStore(fsys fs.FS, dir string, opts ...StoreOption) (*Store, error) {
	options := storeOptions{logger: logging.NoOp()}
	for _, opt := range opts {
		opt(&options)
	}
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("schema: read schema directory %s: %w", dir, err)
	}

	docs := map[string]Document{}
	paths := map[string]string{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		filePath := path.Join(dir, entry.Name())
		doc, err := ReadFile(fsys, filePath)
		if err != nil {
			return nil, fmt.Errorf("schema: load %s: %w", filePath, err)
		}
		id, ok := doc[KeyID].(string)
		if !ok || strings.TrimSpace(id) == "" {
			return nil, &MissingIdentifierError{Path: filePath}
		}
		if existing, dup := paths[id]; dup {
			return nil, &DuplicateIdentifierError{ID: id, Path: filePath, Existing: existing}
		}
		docs[id] = doc
		paths[id] = filePath
		options.logger.Debug("schema.store.loaded", "id", id, "path", filePath)
	}

	options.logger.Info("schema.store.ready", "dir", dir, "schemas", len(docs))
	return &Store{docs: docs, paths: paths}, nil
}

// Get returns the stored document for id. Callers must not mutate it.
func (s *Store) Get(id string) (Document, bool) {
	if s == nil {
		return nil, false
	}
	doc, ok := s.docs[id]
	return doc, ok
}

// Has reports whether id is present.
func (s *Store) Has(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// Path returns the file the schema was loaded from, if any.
func (s *Store) Path(id string) string {
	if s == nil {
		return ""
	}
	return s.paths[id]
}

// IDs returns the stored identifiers in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.docs))
	for id := range s.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of stored schemas.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.docs)
}
