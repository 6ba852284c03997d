package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestaolivre/brtypes/pkg/cep"
	"github.com/gestaolivre/brtypes/pkg/cnpj"
	"github.com/gestaolivre/brtypes/pkg/cpf"
	"github.com/gestaolivre/brtypes/pkg/document"
	"github.com/gestaolivre/brtypes/pkg/phone"
)

type formattable interface {
	FormatAs(code string) (string, error)
}

type checked interface {
	Valid() bool
}

func parseAs(kind document.Kind, value string) (formattable, error) {
	switch kind {
	case document.KindCPF:
		return cpf.Parse(value)
	case document.KindCNPJ:
		return cnpj.Parse(value)
	case document.KindCEP:
		return cep.Parse(value)
	case document.KindPhone:
		return phone.Parse(value)
	default:
		return nil, document.ErrUnknownKind
	}
}

// runFormat prints every value in the requested form. Values that parse but
// fail their check digits are still printed and reported on stderr.
func runFormat(_ context.Context, args []string, env *cliEnv) error {
	fs := newFlagSet("format", env)
	kindFlag := fs.String("kind", "", "cpf, cnpj, cep or phone (detected from the digit count when empty)")
	raw := fs.Bool("raw", false, "print digits only")
	mask := fs.Bool("mask", false, "print the masked form")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *raw && *mask {
		return errors.Join(errUsage, errors.New("-raw and -mask are mutually exclusive"))
	}
	code := "f"
	switch {
	case *raw:
		code = "r"
	case *mask:
		code = "m"
	}

	values, err := inputs(fs.Args(), env.stdin)
	if err != nil {
		return err
	}

	invalid := 0
	for _, value := range values {
		kind, err := kindOf(*kindFlag, value)
		if errors.Is(err, errUsage) {
			return err
		}
		var v formattable
		if err == nil {
			v, err = parseAs(kind, value)
		}
		if err != nil {
			invalid++
			fmt.Fprintf(env.stderr, "%v\n", err)
			continue
		}

		out, err := v.FormatAs(code)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.stdout, out)

		if c, ok := v.(checked); ok && !c.Valid() {
			invalid++
			fmt.Fprintf(env.stderr, "%s: invalid %s\n", value, kind)
		}
	}

	if invalid > 0 {
		return errInvalidInput
	}
	return nil
}
