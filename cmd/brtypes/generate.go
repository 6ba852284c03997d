package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gestaolivre/brtypes/pkg/cnpj"
	"github.com/gestaolivre/brtypes/pkg/cpf"
)

const maxGenerate = 10000

func runGenerate(_ context.Context, args []string, env *cliEnv) error {
	fs := newFlagSet("generate", env)
	n := fs.Int("n", 1, "how many numbers to generate")
	raw := fs.Bool("raw", false, "print digits only")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.Join(errUsage, errors.New("expected exactly one kind: cpf or cnpj"))
	}
	if *n < 1 || *n > maxGenerate {
		return errors.Join(errUsage, fmt.Errorf("-n must be between 1 and %d", maxGenerate))
	}
	code := "f"
	if *raw {
		code = "r"
	}

	var next func() (formattable, error)
	switch kind := strings.ToLower(fs.Arg(0)); kind {
	case "cpf":
		next = func() (formattable, error) {
			c, err := cpf.Generate(nil)
			return c, err
		}
	case "cnpj":
		next = func() (formattable, error) {
			c, err := cnpj.Generate(nil)
			return c, err
		}
	default:
		return errors.Join(errUsage, fmt.Errorf("cannot generate %q", kind))
	}

	for range *n {
		v, err := next()
		if err != nil {
			return err
		}
		s, err := v.FormatAs(code)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.stdout, s)
	}
	return nil
}
