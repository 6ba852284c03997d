package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gestaolivre/brtypes/pkg/api"
	"github.com/gestaolivre/brtypes/pkg/validator"
)

// runValidate prints one line per value: the formatted value (or the input
// when invalid), its kind and "valid" or the reason it is not.
func runValidate(_ context.Context, args []string, env *cliEnv) error {
	fs := newFlagSet("validate", env)
	kindFlag := fs.String("kind", "", "cpf, cnpj, cep or phone (detected from the digit count when empty)")
	if err := parseFlags(fs, args); err != nil {
		return err
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
		if err != nil {
			invalid++
			fmt.Fprintf(env.stdout, "%s\t-\tunknown kind\n", value)
			continue
		}

		desc, err := api.Describe(kind, kind.String(), value)
		if err != nil {
			invalid++
			reason := err.Error()
			if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
				reason = verrs[0].Message
			}
			fmt.Fprintf(env.stdout, "%s\t%s\t%s\n", value, kind, reason)
			continue
		}
		fmt.Fprintf(env.stdout, "%s\t%s\tvalid\n", desc.Formatted, kind)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d values: %w", invalid, len(values), errInvalidInput)
	}
	return nil
}
