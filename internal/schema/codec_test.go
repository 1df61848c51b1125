package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMarshalIndentsWithTrailingNewline(t *testing.T) {
	data, err := Marshal(map[string]any{"b": "<x>", "a": 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": \"<x>\"\n}\n"
	if string(data) != want {
		t.Fatalf("unexpected encoding:\n%s", data)
	}
}

func TestDecodeDocumentRejectsNonObjects(t *testing.T) {
	if _, err := DecodeDocument(strings.NewReader(`"text"`)); err == nil {
		t.Fatalf("expected error for scalar document")
	}
	doc, err := DecodeDocument(strings.NewReader(`{"n": 2}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc["n"] != float64(2) {
		t.Fatalf("expected float64 number, got %T", doc["n"])
	}
}

func TestWriteFileReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.json")
	if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	doc := Document{KeyID: "/schemas/a"}
	if err := WriteFile(path, doc); err != nil {
		t.Fatalf("write: %v", err)
	}

	read, err := ReadPath(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if read[KeyID] != "/schemas/a" {
		t.Fatalf("unexpected content %v", read)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temporary files cleaned up, found %d entries", len(entries))
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.json")
	if err := WriteFile(path, Document{}); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
