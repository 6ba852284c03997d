package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaolivre/brtypes/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "cpf", Message: "must be a valid CPF"})
		errs.Add(validator.ValidationError{Field: "cep", Message: "must be a valid CEP"})

		assert.Equal(t, "validation failed: cpf: must be a valid CPF; cep: must be a valid CEP", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "phone", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "cpf", Message: "invalid"})
	errs.Add(validator.ValidationError{Field: "phone", Message: "unknown area code"})

	assert.True(t, errs.Has("phone"))
	assert.False(t, errs.Has("cnpj"))
	assert.Equal(t, []string{"too short", "unknown area code"}, errs.Get("phone"))
	assert.Nil(t, errs.Get("cnpj"))
	assert.Len(t, errs.GetErrors("phone"), 2)
	assert.Equal(t, []string{"phone", "cpf"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "Ana"),
			validator.ValidCPF("cpf", "581.194.436-59"),
		)
		assert.NoError(t, err)
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "  "),
			validator.ValidCPF("cpf", "581.194.436-59"),
			validator.ValidCNPJ("cnpj", "58.414.462/0001-36"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"name", "cnpj"}, verrs.Fields())
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
		assert.Equal(t, "validation.cnpj", verrs[1].TranslationKey)
		assert.Equal(t, "cnpj", verrs[1].TranslationValues["field"])
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts wrapped errors", func(t *testing.T) {
		err := validator.Apply(validator.ValidCEP("cep", "123"))
		wrapped := fmt.Errorf("saving address: %w", err)

		verrs := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("cep"))
		assert.True(t, validator.IsValidationError(wrapped))
		assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(errors.New("boom")))
		assert.False(t, validator.IsValidationError(nil))
	})
}
