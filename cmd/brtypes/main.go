// Command brtypes validates, formats and generates Brazilian identifiers
// and serves the same operations over HTTP.
//
// Usage:
//
//	brtypes validate [-kind k] [value ...]
//	brtypes format [-kind k] [-raw|-mask] [value ...]
//	brtypes generate [-n N] [-raw] cpf|cnpj
//	brtypes serve
//
// Values are read from standard input, one per line, when none are given.
// The exit status is 1 when any value is invalid and 2 on usage errors.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gestaolivre/brtypes/pkg/document"
	"github.com/gestaolivre/brtypes/pkg/sanitizer"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

var errInvalidInput = errors.New("invalid input")

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, args []string, env *cliEnv) error
}

// cliEnv holds the streams a command reads and writes.
type cliEnv struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

var commands = []command{
	{"validate", "validate [-kind k] [value ...]", runValidate},
	{"format", "format [-kind k] [-raw|-mask] [value ...]", runFormat},
	{"generate", "generate [-n N] [-raw] cpf|cnpj", runGenerate},
	{"serve", "serve", runServe},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], &cliEnv{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, env *cliEnv) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage(env.stderr)
		if len(args) == 0 {
			return exitUsage
		}
		return exitOK
	}

	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		err := c.run(ctx, args[1:], env)
		switch {
		case err == nil:
			return exitOK
		case errors.Is(err, errInvalidInput):
			return exitInvalid
		case errors.Is(err, flag.ErrHelp):
			return exitOK
		default:
			fmt.Fprintf(env.stderr, "brtypes %s: %v\n", c.name, err)
			if errors.Is(err, errUsage) {
				return exitUsage
			}
			return exitInvalid
		}
	}

	fmt.Fprintf(env.stderr, "brtypes: unknown command %q\n", args[0])
	usage(env.stderr)
	return exitUsage
}

var errUsage = errors.New("usage error")

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	for _, c := range commands {
		fmt.Fprintf(w, "  brtypes %s\n", c.usage)
	}
}

func newFlagSet(name string, env *cliEnv) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errors.Join(errUsage, err)
	}
	return nil
}

// inputs returns args, or the non-blank lines of stdin when args is empty.
func inputs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var values []string
	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if line := sanitizer.Input(sc.Text()); line != "" {
			values = append(values, line)
		}
	}
	return values, sc.Err()
}

// kindOf resolves the -kind flag, or detects the kind from value.
func kindOf(flagValue, value string) (document.Kind, error) {
	if flagValue != "" {
		k, ok := document.ParseKind(strings.ToLower(flagValue))
		if !ok {
			return document.KindUnknown, errors.Join(errUsage, fmt.Errorf("unknown kind %q", flagValue))
		}
		return k, nil
	}
	if k := document.Detect(value); k != document.KindUnknown {
		return k, nil
	}
	return document.KindUnknown, fmt.Errorf("%q: %w", value, document.ErrUnknownKind)
}
