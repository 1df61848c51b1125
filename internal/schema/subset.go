package schema

import (
	"fmt"
	"strings"
)

// newerKeywords are 2019-09/2020-12 keywords with no draft-07 meaning. Draft-07
// validators silently ignore unknown keywords, so leaving one behind would
// weaken validation without any error.
var newerKeywords = map[string]struct{}{
	"$defs":                 {},
	"$anchor":               {},
	"$dynamicRef":           {},
	"$dynamicAnchor":        {},
	"$recursiveRef":         {},
	"$recursiveAnchor":      {},
	"$vocabulary":           {},
	"prefixItems":           {},
	"unevaluatedProperties": {},
	"unevaluatedItems":      {},
	"dependentRequired":     {},
	"dependentSchemas":      {},
	"minContains":           {},
	"maxContains":           {},
}

var (
	schemaMapKeywords = []string{"properties", "patternProperties", "definitions", "dependencies"}
	schemaKeywords    = []string{"additionalItems", "additionalProperties", "contains", "propertyNames", "not", "if", "then", "else"}
	schemaListKeyword = []string{"allOf", "anyOf", "oneOf"}
)

// AuditDraft07 walks every schema position of doc and fails on the first
// keyword that only exists in newer dialects.
func AuditDraft07(doc Document) error {
	return auditNode(doc, "")
}

func auditNode(node map[string]any, path string) error {
	if node == nil {
		return nil
	}
	for _, key := range sortedKeys(node) {
		if _, newer := newerKeywords[key]; newer {
			return &UnsupportedKeywordError{Keyword: key, Path: "#" + path}
		}
	}
	for _, key := range schemaMapKeywords {
		children, ok := node[key].(map[string]any)
		if !ok {
			continue
		}
		for _, name := range sortedKeys(children) {
			if child, ok := children[name].(map[string]any); ok {
				if err := auditNode(child, joinPath(path, key, escapeToken(name))); err != nil {
					return err
				}
			}
		}
	}
	for _, key := range schemaKeywords {
		if child, ok := node[key].(map[string]any); ok {
			if err := auditNode(child, joinPath(path, key)); err != nil {
				return err
			}
		}
	}
	switch items := node["items"].(type) {
	case map[string]any:
		if err := auditNode(items, joinPath(path, "items")); err != nil {
			return err
		}
	case []any:
		if err := auditList(items, joinPath(path, "items")); err != nil {
			return err
		}
	}
	for _, key := range schemaListKeyword {
		if list, ok := node[key].([]any); ok {
			if err := auditList(list, joinPath(path, key)); err != nil {
				return err
			}
		}
	}
	return nil
}

func auditList(list []any, path string) error {
	for idx, entry := range list {
		child, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if err := auditNode(child, fmt.Sprintf("%s/%d", path, idx)); err != nil {
			return err
		}
	}
	return nil
}

func escapeToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

func joinPath(base string, parts ...string) string {
	var b strings.Builder
	b.WriteString(base)
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteByte('/')
		b.WriteString(part)
	}
	return b.String()
}
