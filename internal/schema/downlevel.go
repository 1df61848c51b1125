package schema

import (
	"strings"

	"github.com/goliatone/go-covjson/internal/logging"
	"github.com/goliatone/go-covjson/pkg/interfaces"
)

// Downgrader rewrites a bundled 2019-09/2020-12 schema into draft-07 using
// local JSON pointer references only.
type Downgrader struct {
	Logger interfaces.Logger
	// IDPrefix is stripped from embedded $id values to derive definition names.
	IDPrefix            string
	SkipMetaSchemaCheck bool
	SkipKeywordAudit    bool
}

// DowngradeOption configures Downgrade.
type DowngradeOption func(*Downgrader)

// WithDowngradeLogger injects the logger used while downgrading.
func WithDowngradeLogger(logger interfaces.Logger) DowngradeOption {
	return func(d *Downgrader) { d.Logger = logger }
}

// WithIDPrefix overrides DefaultIDPrefix.
func WithIDPrefix(prefix string) DowngradeOption {
	return func(d *Downgrader) { d.IDPrefix = prefix }
}

// WithoutMetaSchemaCheck skips compiling the result against the draft-07 meta-schema.
func WithoutMetaSchemaCheck() DowngradeOption {
	return func(d *Downgrader) { d.SkipMetaSchemaCheck = true }
}

// WithoutKeywordAudit skips rejecting keywords draft-07 cannot express.
func WithoutKeywordAudit() DowngradeOption {
	return func(d *Downgrader) { d.SkipKeywordAudit = true }
}

// DowngradeResult carries the rewritten document and whether the input was already draft-07.
type DowngradeResult struct {
	Document Document
	NoOp     bool
}

// Downgrade downgrades doc using a Downgrader configured by opts.
func Downgrade(doc Document, opts ...DowngradeOption) (Document, error) {
	d := &Downgrader{}
	for _, opt := range opts {
		opt(d)
	}
	result, err := d.Run(doc)
	if err != nil {
		return nil, err
	}
	return result.Document, nil
}

// Run downgrades a deep copy of doc. Documents already declaring draft-07 are
// returned as an equal copy with NoOp set, which makes the rewrite idempotent.
func (d *Downgrader) Run(doc Document) (DowngradeResult, error) {
	logger := d.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	prefix := d.IDPrefix
	if prefix == "" {
		prefix = DefaultIDPrefix
	}

	root := Clone(doc)
	if root == nil {
		root = Document{}
	}
	if dialect, ok := root[KeySchema].(string); ok && IsDraft07(dialect) {
		logger.Debug("schema.downgrade.noop", "dialect", dialect)
		return DowngradeResult{Document: root, NoOp: true}, nil
	}

	root[KeySchema] = Draft07

	definitions, err := relocateDefinitions(root, prefix)
	if err != nil {
		return DowngradeResult{}, err
	}
	root[KeyDefinitions] = definitions

	rootID, _ := root[KeyID].(string)
	if err := rewriteReferences(root, definitions, prefix, rootID); err != nil {
		return DowngradeResult{}, err
	}
	splitReferenceSiblings(root)
	if err := renameKeyword(root, KeyDependentSchemas, KeyDependencies); err != nil {
		return DowngradeResult{}, err
	}

	if !d.SkipKeywordAudit {
		if err := AuditDraft07(root); err != nil {
			return DowngradeResult{}, err
		}
	}
	if !d.SkipMetaSchemaCheck {
		if err := CheckMetaSchema(root); err != nil {
			return DowngradeResult{}, err
		}
	}

	logger.Debug("schema.downgrade.complete", "definitions", len(definitions))
	return DowngradeResult{Document: root}, nil
}

// relocateDefinitions moves every $defs container, at any depth and including
// those nested in relocated entries, into one flat definitions map. Entries
// that were embedded resources lose their $id and $schema.
func relocateDefinitions(root Document, prefix string) (map[string]any, error) {
	definitions := map[string]any{}

	var err error
	var relocate func(node any)
	add := func(name string, value any) {
		if err != nil {
			return
		}
		if _, exists := definitions[name]; exists {
			err = &DuplicateDefinitionError{Name: name}
			return
		}
		definitions[name] = value
		relocate(value)
	}
	relocate = func(node any) {
		Walk(node, KeyDefs, func(parent map[string]any, key string, value any) {
			delete(parent, key)
			defs, ok := value.(map[string]any)
			if !ok {
				return
			}
			for _, name := range sortedKeys(defs) {
				entry := defs[name]
				local := name
				if body, ok := entry.(map[string]any); ok {
					if id, ok := body[KeyID].(string); ok {
						local = strings.TrimPrefix(id, prefix)
						delete(body, KeyID)
						delete(body, KeySchema)
					}
				}
				add(local, entry)
			}
		})
	}

	if existing, ok := root[KeyDefinitions].(map[string]any); ok {
		delete(root, KeyDefinitions)
		for _, name := range sortedKeys(existing) {
			add(name, existing[name])
		}
	}
	relocate(root)
	if err != nil {
		return nil, err
	}
	return definitions, nil
}

// rewriteReferences points every $ref into definitions. The bundler never embeds
// the root in its own $defs, so references back to the root become "#".
func rewriteReferences(root Document, definitions map[string]any, prefix, rootID string) error {
	rootLocal := ""
	if rootID != "" {
		rootLocal = strings.TrimPrefix(rootID, prefix)
	}
	var err error
	Walk(root, KeyRef, func(parent map[string]any, key string, value any) {
		ref, ok := value.(string)
		if !ok || err != nil {
			return
		}
		if rootID != "" && ref == rootID {
			parent[key] = "#"
			return
		}
		rewritten := ref
		switch {
		case strings.HasPrefix(ref, prefix):
			rewritten = definitionsPointerPrefix + strings.TrimPrefix(ref, prefix)
		case strings.HasPrefix(ref, defsPointerPrefix):
			rewritten = definitionsPointerPrefix + strings.TrimPrefix(ref, defsPointerPrefix)
		}
		name, ok := strings.CutPrefix(rewritten, definitionsPointerPrefix)
		if !ok {
			err = &UnresolvedReferenceError{Ref: ref, Known: sortedKeys(definitions)}
			return
		}
		if _, ok := definitions[name]; !ok {
			if rootLocal != "" && name == rootLocal {
				parent[key] = "#"
				return
			}
			err = &UnresolvedReferenceError{Ref: ref, Known: sortedKeys(definitions)}
			return
		}
		parent[key] = rewritten
	})
	return err
}

// splitReferenceSiblings rewrites {$ref, k: v...} into {allOf: [{$ref}, {k: v...}]}
// so draft-07 validators do not ignore the siblings.
func splitReferenceSiblings(root Document) {
	Walk(root, KeyRef, func(parent map[string]any, key string, value any) {
		if _, ok := value.(string); !ok {
			return
		}
		siblings := map[string]any{}
		for name, sibling := range parent {
			if name == KeyRef || isMetaKeyword(name) {
				continue
			}
			siblings[name] = sibling
		}
		if len(siblings) == 0 {
			return
		}
		for name := range siblings {
			delete(parent, name)
		}
		delete(parent, key)
		parent[KeyAllOf] = []any{
			map[string]any{KeyRef: value},
			siblings,
		}
	})
}

func isMetaKeyword(key string) bool {
	return strings.HasPrefix(key, "$") || key == KeyDefinitions
}

func renameKeyword(node any, from, to string) error {
	var err error
	Walk(node, from, func(parent map[string]any, key string, value any) {
		if err != nil {
			return
		}
		if _, exists := parent[to]; exists {
			err = &DuplicateKeywordError{Keyword: to, Source: from}
			return
		}
		parent[to] = value
		delete(parent, key)
		err = renameKeyword(value, from, to)
	})
	return err
}
