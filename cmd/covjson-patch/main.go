package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	schemascmd "github.com/goliatone/go-covjson/internal/commands/schemas"
	"github.com/goliatone/go-covjson/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("covjson patch: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("covjson-patch", flag.ExitOnError)
	out := fs.String("out", "", "Output path (defaults to rewriting INPUT in place)")
	setID := fs.String("set-id", "", "Replace the schema $id with this value")
	dropID := fs.Bool("drop-id", false, "Remove the schema $id (wins over -set-id)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: covjson-patch [flags] INPUT")
	}

	handler := schemascmd.NewPatchSchemaHandler(logging.NoOp())
	cmd := schemascmd.PatchSchemaCommand{
		Input:  fs.Arg(0),
		Output: *out,
		SetID:  *setID,
		DropID: *dropID,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute patch command: %w", err)
	}
	fmt.Fprintf(os.Stdout, "patched %s\n", cmd.OutputPath())
	return nil
}
