package main

import (
	"context"
	"errors"
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
		log.Fatalf("covjson downgrade: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("covjson-downgrade", flag.ExitOnError)
	out := fs.String("out", "", "Output path (defaults to rewriting INPUT in place)")
	configPath := fs.String("config", "", "Optional YAML configuration file")
	skipMeta := fs.Bool("skip-meta-check", false, "Skip the draft-07 meta-schema check of the result")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: covjson-downgrade [flags] INPUT")
	}

	module, err := moduleBuilder(bootstrap.Options{
		ConfigPath:          *configPath,
		SkipMetaSchemaCheck: *skipMeta,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := schemascmd.NewDowngradeSchemaHandler(module.Module, module.Logger,
		commands.WithTimeout[schemascmd.DowngradeSchemaCommand](module.Module.Config().Commands.Timeout))
	cmd := schemascmd.DowngradeSchemaCommand{
		Input:  fs.Arg(0),
		Output: *out,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute downgrade command: %w", err)
	}
	fmt.Fprintf(os.Stdout, "downgraded %s to draft-07 in %s\n", cmd.Input, cmd.OutputPath())
	return nil
}
