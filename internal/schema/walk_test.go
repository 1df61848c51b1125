package schema

import (
	"reflect"
	"testing"
)

func TestWalkVisitsNestedMappingsAndSequences(t *testing.T) {
	doc := map[string]any{
		"a": map[string]any{
			"$ref": "x",
			"b":    map[string]any{"$ref": "y"},
		},
		"list": []any{
			map[string]any{"$ref": "z"},
			"plain",
		},
	}

	var seen []string
	Walk(doc, KeyRef, func(_ map[string]any, _ string, value any) {
		seen = append(seen, value.(string))
	})

	if want := []string{"x", "y", "z"}; !reflect.DeepEqual(seen, want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
}

func TestWalkDoesNotDescendIntoMatchedValues(t *testing.T) {
	doc := map[string]any{
		"$defs": map[string]any{
			"$defs": map[string]any{"inner": true},
		},
	}

	calls := 0
	Walk(doc, KeyDefs, func(_ map[string]any, _ string, _ any) {
		calls++
	})
	if calls != 1 {
		t.Fatalf("expected a single visit, got %d", calls)
	}
}

func TestWalkToleratesParentMutation(t *testing.T) {
	doc := map[string]any{
		"properties": map[string]any{
			"a": map[string]any{"$ref": "one", "title": "A"},
		},
	}

	var seen []string
	Walk(doc, KeyRef, func(parent map[string]any, key string, value any) {
		seen = append(seen, value.(string))
		delete(parent, key)
		delete(parent, "title")
		parent["zz"] = map[string]any{KeyRef: "added"}
	})

	if want := []string{"one"}; !reflect.DeepEqual(seen, want) {
		t.Fatalf("expected only the original reference, got %v", seen)
	}
	a := doc["properties"].(map[string]any)["a"].(map[string]any)
	if _, ok := a["title"]; ok {
		t.Fatalf("expected title removed")
	}
	if _, ok := a["zz"]; !ok {
		t.Fatalf("expected added key present")
	}
}

func TestWalkNilCallbackIsNoop(t *testing.T) {
	Walk(map[string]any{"$ref": "x"}, KeyRef, nil)
}

func TestCollectReferencesSortsAndDeduplicates(t *testing.T) {
	doc := map[string]any{
		"allOf": []any{
			map[string]any{"$ref": "/schemas/b"},
			map[string]any{"$ref": "/schemas/a"},
			map[string]any{"$ref": "/schemas/b"},
			map[string]any{"$ref": 42},
		},
	}

	got := CollectReferences(doc)
	if want := []string{"/schemas/a", "/schemas/b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestResolvePointer(t *testing.T) {
	doc := map[string]any{
		"definitions": map[string]any{
			"a/b": map[string]any{"type": "string"},
			"list": []any{
				"zero",
				map[string]any{"k": "v"},
			},
		},
	}

	cases := []struct {
		pointer string
		want    any
		ok      bool
	}{
		{pointer: "#/definitions/a~1b/type", want: "string", ok: true},
		{pointer: "/definitions/list/1/k", want: "v", ok: true},
		{pointer: "#/definitions/list/7", ok: false},
		{pointer: "#/definitions/missing", ok: false},
		{pointer: "#definitions", ok: false},
	}
	for _, tc := range cases {
		got, ok := ResolvePointer(doc, tc.pointer)
		if ok != tc.ok {
			t.Fatalf("%s: expected ok=%v, got %v", tc.pointer, tc.ok, ok)
		}
		if ok && got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.pointer, tc.want, got)
		}
	}

	if root, ok := ResolvePointer(doc, "#"); !ok || !reflect.DeepEqual(root, doc) {
		t.Fatalf("expected empty pointer to resolve to the root")
	}
}

func TestCloneIsDeep(t *testing.T) {
	doc := Document{"properties": map[string]any{"a": []any{map[string]any{"x": 1}}}}
	copied := Clone(doc)
	copied["properties"].(map[string]any)["a"].([]any)[0].(map[string]any)["x"] = 2

	if doc["properties"].(map[string]any)["a"].([]any)[0].(map[string]any)["x"] != 1 {
		t.Fatalf("expected original to be untouched")
	}
}
