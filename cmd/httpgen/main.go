package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-httpgen/internal/tui"
	pkgopenapi "github.com/goliatone/go-httpgen/pkg/openapi"
	"github.com/goliatone/go-httpgen/pkg/orchestrator"
)

// Exit codes: transport failures and parse failures are distinguishable so
// callers can tell a dead server from a broken document.
const (
	exitFailure = 1
	exitRequest = 2
	exitParse   = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("httpgen", flag.ContinueOnError)
	var output string
	flags.StringVar(&output, "o", "", "output file path")
	flags.StringVar(&output, "output", "", "output file path")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: httpgen [flags] <input>\n\n")
		fmt.Fprintf(flags.Output(), "Convert a Swagger 2.0 or OpenAPI 3.x document into a .http request collection.\n")
		fmt.Fprintf(flags.Output(), "The input is a local file path (swagger.json, openapi.yaml) or an HTTP endpoint.\n\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return exitFailure
	}

	if output == "" {
		output = orchestrator.DefaultOutputPath
	}

	input := strings.TrimSpace(flags.Arg(0))
	if input == "" {
		resolved, err := promptForInput(output)
		switch {
		case errors.Is(err, errDeclined):
			return 0
		case errors.Is(err, tui.ErrInterrupted):
			return exitFailure
		case err != nil:
			fmt.Fprintf(os.Stderr, "httpgen: %v\n", err)
			flags.Usage()
			return exitRequest
		}
		input = resolved
	}

	src := pkgopenapi.SourceFromString(input)
	if src == nil {
		fmt.Fprintf(os.Stderr, "httpgen: invalid input %q\n", input)
		return exitFailure
	}

	gen := orchestrator.New()
	result, err := gen.Generate(context.Background(), orchestrator.Request{
		Source:     src,
		OutputPath: output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "httpgen: %v\n", err)
		return exitCode(err)
	}

	fmt.Printf("Wrote %s with %d endpoints (base URL %s)\n", result.Path, result.Endpoints, result.BaseURL)
	return 0
}

// errDeclined stops the run quietly after the user answers "no" to the
// overwrite prompt.
var errDeclined = errors.New("overwrite declined")

// promptForInput is the interactive fallback when no positional argument is
// given. It asks for a source and, since the user is present, confirms
// before overwriting an existing output file.
func promptForInput(output string) (string, error) {
	ctx := context.Background()
	prompts := tui.NewPromptDriver()

	input, err := prompts.Input(ctx, tui.InputConfig{
		Message: "Document path or URL:",
		Help:    "A local swagger/openapi file or an http(s) endpoint serving one.",
		Validator: func(text string) error {
			if strings.TrimSpace(text) == "" {
				return errors.New("input is required")
			}
			return nil
		},
	})
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(output); err == nil {
		overwrite, err := prompts.Confirm(ctx, tui.ConfirmConfig{
			Message: fmt.Sprintf("%s exists, overwrite?", output),
			Default: true,
		})
		if err != nil {
			return "", err
		}
		if !overwrite {
			return "", errDeclined
		}
	}

	return input, nil
}

func exitCode(err error) int {
	var requestErr *pkgopenapi.RequestError
	if errors.As(err, &requestErr) {
		return exitRequest
	}
	var parseErr *pkgopenapi.ParseError
	if errors.As(err, &parseErr) {
		return exitParse
	}
	return exitFailure
}
