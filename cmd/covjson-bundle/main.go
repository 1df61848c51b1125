package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-covjson/cmd/internal/bootstrap"
	"github.com/goliatone/go-covjson/internal/commands"
	schemascmd "github.com/goliatone/go-covjson/internal/commands/schemas"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("covjson bundle: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("covjson-bundle", flag.ExitOnError)
	schemasDir := fs.String("schemas", "", "Directory of schema files (defaults to the embedded set)")
	root := fs.String("root", "", "Identifier of the root schema (defaults to config root)")
	out := fs.String("out", "bundle.json", "Path the bundled schema is written to")
	configPath := fs.String("config", "", "Optional YAML configuration file")
	strict := fs.Bool("strict", false, "Fail on references that resolve to no known schema")
	external := fs.String("external", "", "Comma separated reference prefixes left unresolved")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ConfigPath:       *configPath,
		SchemasDir:       *schemasDir,
		RootID:           *root,
		StrictReferences: *strict,
		ExternalPrefixes: bootstrap.SplitList(*external),
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	cfg := module.Module.Config()
	handler := schemascmd.NewBundleSchemaHandler(module.Module, module.Logger,
		commands.WithTimeout[schemascmd.BundleSchemaCommand](cfg.Commands.Timeout))

	var definitions any
	cmd := schemascmd.BundleSchemaCommand{
		RootID: cfg.Schemas.RootID,
		Output: *out,
		ResultCallback: func(env schemascmd.ResultEnvelope) {
			definitions = env.Metadata["definitions"]
		},
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute bundle command: %w", err)
	}
	fmt.Fprintf(os.Stdout, "bundled %s with %v definitions into %s\n", cmd.RootID, definitions, cmd.Output)
	return nil
}
