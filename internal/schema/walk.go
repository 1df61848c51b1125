package schema

import "sort"

// VisitFunc receives the mapping holding the matched key along with the key and its value.
// The callback may add or remove keys of parent.
type VisitFunc func(parent map[string]any, key string, value any)

type entry struct {
	key   string
	value any
}

// Walk calls fn for every key/value pair named key found anywhere in node,
// including mappings nested inside sequences. Matched values are not descended
// into. Keys are visited in sorted order over a snapshot of each mapping, so
// the traversal is deterministic and tolerates callbacks that mutate parent.
func Walk(node any, key string, fn VisitFunc) {
	if fn == nil {
		return
	}
	walkNode(node, key, fn)
}

func walkNode(node any, key string, fn VisitFunc) {
	switch typed := node.(type) {
	case map[string]any:
		for _, item := range snapshot(typed) {
			if item.key == key {
				fn(typed, item.key, item.value)
				continue
			}
			walkNode(item.value, key, fn)
		}
	case []any:
		for _, item := range typed {
			walkNode(item, key, fn)
		}
	}
}

func snapshot(m map[string]any) []entry {
	entries := make([]entry, 0, len(m))
	for key, value := range m {
		entries = append(entries, entry{key: key, value: value})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	return entries
}

// CollectReferences returns the sorted, de-duplicated string values of every $ref in node.
func CollectReferences(node any) []string {
	seen := map[string]struct{}{}
	Walk(node, KeyRef, func(_ map[string]any, _ string, value any) {
		if ref, ok := value.(string); ok {
			seen[ref] = struct{}{}
		}
	})
	refs := make([]string, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}
