package cpf

import (
	"database/sql/driver"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/gestaolivre/brtypes/pkg/document"
)

func (c CPF) MarshalText() ([]byte, error) {
	if c.Empty() {
		return []byte{}, nil
	}
	return []byte(c.Raw()), nil
}

func (c *CPF) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = CPF{}
		return nil
	}
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalJSON writes the raw digits as a string, or null for the empty CPF.
func (c CPF) MarshalJSON() ([]byte, error) {
	if c.Empty() {
		return []byte("null"), nil
	}
	return json.Marshal(c.Raw())
}

// UnmarshalJSON accepts a string in any punctuation, an integer or null.
func (c *CPF) UnmarshalJSON(data []byte) error {
	s, ok, err := document.UnmarshalJSONString(data)
	if err != nil {
		return err
	}
	if !ok {
		*c = CPF{}
		return nil
	}
	return c.UnmarshalText([]byte(s))
}

func (c CPF) MarshalYAML() (any, error) {
	if c.Empty() {
		return nil, nil
	}
	return c.Raw(), nil
}

func (c *CPF) UnmarshalYAML(node *yaml.Node) error {
	s, ok, err := document.ScalarString(node)
	if err != nil {
		return err
	}
	if !ok {
		*c = CPF{}
		return nil
	}
	return c.UnmarshalText([]byte(s))
}

func (c CPF) MarshalBSONValue() (byte, []byte, error) {
	if c.Empty() {
		return document.MarshalBSONString("")
	}
	return document.MarshalBSONString(c.Raw())
}

func (c *CPF) UnmarshalBSONValue(typ byte, data []byte) error {
	s, ok, err := document.UnmarshalBSONString(typ, data)
	if err != nil {
		return err
	}
	if !ok {
		*c = CPF{}
		return nil
	}
	return c.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer. The empty CPF is stored as NULL.
func (c CPF) Value() (driver.Value, error) {
	if c.Empty() {
		return nil, nil
	}
	return c.Raw(), nil
}

// Scan implements sql.Scanner for text and integer columns.
func (c *CPF) Scan(src any) error {
	s, ok, err := document.ScanString(src)
	if err != nil {
		return err
	}
	if !ok {
		*c = CPF{}
		return nil
	}
	return c.UnmarshalText([]byte(s))
}
