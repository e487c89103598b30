package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/deppfellow/reqschema/internal/lib/utils"
	"github.com/deppfellow/reqschema/internal/schema"
)

// errInvalidInput signals violations that were already printed.
var errInvalidInput = errors.New("input does not satisfy schema")

type validateOptions struct {
	schema string
	file   string
	output string
}

func newValidateCmd(a *app) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a JSON request document",
		Long: `Reads a JSON document shaped like {"body": {...}, "params": {...}, "query": {...}}
from --file (or stdin) and checks it against the named schema.
Exits with status 1 when the document has violations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "schema name, as listed by the schemas command")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "-", "input file, - for stdin")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "output format: text or json")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, opts *validateOptions) error {
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	node, ok := a.registry.Get(opts.schema)
	if !ok {
		return fmt.Errorf("unknown schema %q", opts.schema)
	}

	input, err := readInput(cmd, opts.file)
	if err != nil {
		return err
	}

	start := time.Now()
	res := schema.Validate(node, input)

	a.logger.Debug().
		Str("schema", opts.schema).
		Int("violations", len(res.Errors)).
		Dur("duration", time.Since(start)).
		Msg("validation finished")

	out := cmd.OutOrStdout()
	if opts.output == "json" {
		if err := utils.PrintJSON(out, res); err != nil {
			return err
		}
	} else if res.OK() {
		fmt.Fprintln(out, "ok")
	} else {
		for _, fe := range res.Errors {
			fmt.Fprintln(out, fe.String())
		}
	}

	if !res.OK() {
		return errInvalidInput
	}
	return nil
}

func readInput(cmd *cobra.Command, file string) (any, error) {
	var r io.Reader = cmd.InOrStdin()
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var input any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&input); err != nil {
		return nil, fmt.Errorf("input must be a JSON document: %w", err)
	}
	return input, nil
}
