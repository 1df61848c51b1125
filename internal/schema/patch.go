package schema

// PatchOptions selects the changes applied by Patch.
type PatchOptions struct {
	SetID  string
	DropID bool
}

// Patch returns a copy of doc with its $id set or removed. DropID wins over
// SetID; a non-empty SetID is stored exactly as given.
func Patch(doc Document, opts PatchOptions) Document {
	patched := Clone(doc)
	if patched == nil {
		patched = Document{}
	}
	switch {
	case opts.DropID:
		delete(patched, KeyID)
	case opts.SetID != "":
		patched[KeyID] = opts.SetID
	}
	return patched
}
