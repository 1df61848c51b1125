package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-covjson/cmd/internal/bootstrap"
	"github.com/goliatone/go-covjson/internal/commands"
	schemascmd "github.com/goliatone/go-covjson/internal/commands/schemas"
	"github.com/goliatone/go-covjson/internal/validation"
)

var (
	moduleBuilder           = bootstrap.BuildModule
	stdout        io.Writer = os.Stdout
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("covjson validate: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("covjson-validate", flag.ExitOnError)
	schemasDir := fs.String("schemas", "", "Directory of schema files (defaults to the embedded set)")
	root := fs.String("root", "", "Identifier of the schema to validate against (defaults to config root)")
	mode := fs.String("mode", "", "Validation mode: native, bundled or draft07 (defaults to config mode)")
	configPath := fs.String("config", "", "Optional YAML configuration file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: covjson-validate [flags] DOCUMENT")
	}

	module, err := moduleBuilder(bootstrap.Options{
		ConfigPath: *configPath,
		SchemasDir: *schemasDir,
		RootID:     *root,
		Mode:       *mode,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	cfg := module.Module.Config()
	handler := schemascmd.NewValidateDocumentHandler(module.Module, module.Logger,
		commands.WithTimeout[schemascmd.ValidateDocumentCommand](cfg.Commands.Timeout))
	cmd := schemascmd.ValidateDocumentCommand{
		Document: fs.Arg(0),
		SchemaID: cfg.Schemas.RootID,
		Mode:     cfg.Validation.Mode,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		if errors.Is(err, validation.ErrDocumentInvalid) {
			for _, issue := range validation.Issues(err) {
				fmt.Fprintf(stdout, "#%s: %s\n", issue.Location, issue.Message)
			}
		}
		return fmt.Errorf("execute validate command: %w", err)
	}
	fmt.Fprintln(stdout, "Valid!")
	return nil
}
