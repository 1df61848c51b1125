package schemascmd

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/goliatone/go-covjson/internal/commands"
	"github.com/goliatone/go-covjson/internal/schema"
	"github.com/goliatone/go-covjson/internal/validation"
	"github.com/goliatone/go-covjson/pkg/interfaces"
)

// ErrServiceUnavailable is returned when a handler was built without a service.
var ErrServiceUnavailable = errors.New("schemascmd: schema service not configured")

// Service is the subset of the module the schema handlers drive.
type Service interface {
	Bundle(rootID string) (schema.Document, error)
	Downgrade(doc schema.Document) (schema.Document, error)
	Validator(mode validation.Mode, id string) (*validation.Validator, error)
}

// BundleSchemaHandler bundles a schema and optionally writes the result.
type BundleSchemaHandler struct {
	inner *commands.Handler[BundleSchemaCommand]
}

// NewBundleSchemaHandler constructs a bundle handler over service.
func NewBundleSchemaHandler(service Service, logger interfaces.Logger, opts ...commands.HandlerOption[BundleSchemaCommand]) *BundleSchemaHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg BundleSchemaCommand) error {
		if service == nil {
			return ErrServiceUnavailable
		}
		doc, err := service.Bundle(strings.TrimSpace(msg.RootID))
		if err != nil {
			return err
		}
		output := strings.TrimSpace(msg.Output)
		if output != "" {
			if err := schema.WriteFile(output, doc); err != nil {
				return err
			}
		}
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Document: doc,
			Output:   output,
			Metadata: map[string]any{
				"operation":   "bundle",
				"definitions": definitionCount(doc, schema.KeyDefs),
			},
		})
		return nil
	}

	handlerOpts := []commands.HandlerOption[BundleSchemaCommand]{
		commands.WithLogger[BundleSchemaCommand](baseLogger),
		commands.WithOperation[BundleSchemaCommand]("schemas.bundle"),
		commands.WithMessageFields(func(msg BundleSchemaCommand) map[string]any {
			return map[string]any{"root_id": msg.RootID}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BundleSchemaCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BundleSchemaHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BundleSchemaCommand].
func (h *BundleSchemaHandler) Execute(ctx context.Context, msg BundleSchemaCommand) error {
	return h.inner.Execute(ctx, msg)
}

// DowngradeSchemaHandler rewrites a bundled schema file to draft-07.
type DowngradeSchemaHandler struct {
	inner *commands.Handler[DowngradeSchemaCommand]
}

// NewDowngradeSchemaHandler constructs a downgrade handler over service.
func NewDowngradeSchemaHandler(service Service, logger interfaces.Logger, opts ...commands.HandlerOption[DowngradeSchemaCommand]) *DowngradeSchemaHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg DowngradeSchemaCommand) error {
		if service == nil {
			return ErrServiceUnavailable
		}
		input, err := schema.ReadPath(strings.TrimSpace(msg.Input))
		if err != nil {
			return err
		}
		doc, err := service.Downgrade(input)
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		output := msg.OutputPath()
		if err := schema.WriteFile(output, doc); err != nil {
			return err
		}
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Document: doc,
			Output:   output,
			Metadata: map[string]any{
				"operation":   "downgrade",
				"definitions": definitionCount(doc, schema.KeyDefinitions),
			},
		})
		return nil
	}

	handlerOpts := []commands.HandlerOption[DowngradeSchemaCommand]{
		commands.WithLogger[DowngradeSchemaCommand](baseLogger),
		commands.WithOperation[DowngradeSchemaCommand]("schemas.downgrade"),
		commands.WithMessageFields(func(msg DowngradeSchemaCommand) map[string]any {
			return map[string]any{"input": msg.Input, "output": msg.OutputPath()}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[DowngradeSchemaCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &DowngradeSchemaHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[DowngradeSchemaCommand].
func (h *DowngradeSchemaHandler) Execute(ctx context.Context, msg DowngradeSchemaCommand) error {
	return h.inner.Execute(ctx, msg)
}

// PatchSchemaHandler sets or drops the $id of a schema file. It needs no service.
type PatchSchemaHandler struct {
	inner *commands.Handler[PatchSchemaCommand]
}

// NewPatchSchemaHandler constructs a patch handler.
func NewPatchSchemaHandler(logger interfaces.Logger, opts ...commands.HandlerOption[PatchSchemaCommand]) *PatchSchemaHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg PatchSchemaCommand) error {
		input, err := schema.ReadPath(strings.TrimSpace(msg.Input))
		if err != nil {
			return err
		}
		doc := schema.Patch(input, schema.PatchOptions{
			SetID:  msg.SetID,
			DropID: msg.DropID,
		})
		output := msg.OutputPath()
		if err := schema.WriteFile(output, doc); err != nil {
			return err
		}
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Document: doc,
			Output:   output,
			Metadata: map[string]any{"operation": "patch"},
		})
		return nil
	}

	handlerOpts := []commands.HandlerOption[PatchSchemaCommand]{
		commands.WithLogger[PatchSchemaCommand](baseLogger),
		commands.WithOperation[PatchSchemaCommand]("schemas.patch"),
		commands.WithMessageFields(func(msg PatchSchemaCommand) map[string]any {
			fields := map[string]any{"input": msg.Input}
			if msg.DropID {
				fields["drop_id"] = true
			} else {
				fields["set_id"] = msg.SetID
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[PatchSchemaCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PatchSchemaHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[PatchSchemaCommand].
func (h *PatchSchemaHandler) Execute(ctx context.Context, msg PatchSchemaCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ValidateDocumentHandler validates a document file. An invalid document fails the
// command with an error matching validation.ErrDocumentInvalid.
type ValidateDocumentHandler struct {
	inner *commands.Handler[ValidateDocumentCommand]
}

// NewValidateDocumentHandler constructs a validate handler over service.
func NewValidateDocumentHandler(service Service, logger interfaces.Logger, opts ...commands.HandlerOption[ValidateDocumentCommand]) *ValidateDocumentHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ValidateDocumentCommand) error {
		if service == nil {
			return ErrServiceUnavailable
		}
		mode, err := validation.ParseMode(msg.Mode)
		if err != nil {
			return err
		}
		validator, err := service.Validator(mode, strings.TrimSpace(msg.SchemaID))
		if err != nil {
			return err
		}
		data, err := os.ReadFile(strings.TrimSpace(msg.Document))
		if err != nil {
			return err
		}
		verdict := validator.ValidateBytes(data)
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Metadata: map[string]any{
				"operation": "validate",
				"mode":      string(mode),
				"valid":     verdict == nil,
				"issues":    validation.Issues(verdict),
			},
		})
		return verdict
	}

	handlerOpts := []commands.HandlerOption[ValidateDocumentCommand]{
		commands.WithLogger[ValidateDocumentCommand](baseLogger),
		commands.WithOperation[ValidateDocumentCommand]("schemas.validate"),
		commands.WithMessageFields(func(msg ValidateDocumentCommand) map[string]any {
			return map[string]any{"document": msg.Document, "schema_id": msg.SchemaID, "mode": msg.Mode}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ValidateDocumentCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ValidateDocumentHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ValidateDocumentCommand].
func (h *ValidateDocumentHandler) Execute(ctx context.Context, msg ValidateDocumentCommand) error {
	return h.inner.Execute(ctx, msg)
}

func definitionCount(doc schema.Document, key string) int {
	defs, _ := doc[key].(map[string]any)
	return len(defs)
}

func invokeCallback(cb ResultCallback, envelope ResultEnvelope) {
	if cb == nil {
		return
	}
	cb(envelope)
}
