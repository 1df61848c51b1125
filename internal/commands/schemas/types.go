package schemascmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-covjson/internal/schema"
	covvalidation "github.com/goliatone/go-covjson/internal/validation"
)

const (
	bundleSchemaMessageType     = "covjson.schemas.bundle"
	downgradeSchemaMessageType  = "covjson.schemas.downgrade"
	patchSchemaMessageType      = "covjson.schemas.patch"
	validateDocumentMessageType = "covjson.schemas.validate"
)

// ResultCallback receives the outcome of a schema command. It is optional and invoked
// synchronously from the handler once the result is known.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope carries the produced document and where it was written.
type ResultEnvelope struct {
	Document schema.Document
	Output   string
	Metadata map[string]any
}

// BundleSchemaCommand bundles RootID and its transitive references into one document.
type BundleSchemaCommand struct {
	// RootID selects the schema whose reference closure is bundled.
	RootID string `json:"root_id"`
	// Output is the file the bundle is written to. Empty skips writing.
	Output         string         `json:"output,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (BundleSchemaCommand) Type() string { return bundleSchemaMessageType }

// Validate ensures a root identifier is present.
func (m BundleSchemaCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.RootID, validation.Required, validation.By(notBlank("covjson.schemas.bundle.root_required", "root_id is required"))),
	)
}

// DowngradeSchemaCommand rewrites a bundled schema file to draft-07.
type DowngradeSchemaCommand struct {
	Input string `json:"input"`
	// Output defaults to Input, replacing the file in place.
	Output         string         `json:"output,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (DowngradeSchemaCommand) Type() string { return downgradeSchemaMessageType }

// Validate ensures an input file is named.
func (m DowngradeSchemaCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Input, validation.Required, validation.By(notBlank("covjson.schemas.downgrade.input_required", "input is required"))),
	)
}

// OutputPath returns Output, or Input when no output was given.
func (m DowngradeSchemaCommand) OutputPath() string {
	return outputPath(m.Input, m.Output)
}

// PatchSchemaCommand sets or removes the $id of a schema file.
type PatchSchemaCommand struct {
	Input          string         `json:"input"`
	Output         string         `json:"output,omitempty"`
	SetID          string         `json:"set_id,omitempty"`
	DropID         bool           `json:"drop_id,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (PatchSchemaCommand) Type() string { return patchSchemaMessageType }

// Validate requires an input file and one of SetID or DropID.
func (m PatchSchemaCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.Input) == "" {
		errs["input"] = validation.NewError("covjson.schemas.patch.input_required", "input is required")
	}
	if m.SetID == "" && !m.DropID {
		errs["set_id"] = validation.NewError("covjson.schemas.patch.change_required", "set_id or drop_id is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// OutputPath returns Output, or Input when no output was given.
func (m PatchSchemaCommand) OutputPath() string {
	return outputPath(m.Input, m.Output)
}

// ValidateDocumentCommand validates a JSON document file against a schema.
type ValidateDocumentCommand struct {
	Document string `json:"document"`
	SchemaID string `json:"schema_id"`
	// Mode is parsed with validation.ParseMode; empty selects native.
	Mode           string         `json:"mode,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (ValidateDocumentCommand) Type() string { return validateDocumentMessageType }

// Validate ensures the document and schema are named and the mode is known.
func (m ValidateDocumentCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Document, validation.Required, validation.By(notBlank("covjson.schemas.validate.document_required", "document is required"))),
		validation.Field(&m.SchemaID, validation.Required),
		validation.Field(&m.Mode, validation.By(func(value any) error {
			if _, err := covvalidation.ParseMode(value.(string)); err != nil {
				return validation.NewError("covjson.schemas.validate.mode_invalid", err.Error())
			}
			return nil
		})),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}

func outputPath(input, output string) string {
	if trimmed := strings.TrimSpace(output); trimmed != "" {
		return trimmed
	}
	return strings.TrimSpace(input)
}
