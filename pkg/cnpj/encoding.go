package cnpj

import (
	"database/sql/driver"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/gestaolivre/brtypes/pkg/document"
)

func (c CNPJ) MarshalText() ([]byte, error) {
	if c.Empty() {
		return []byte{}, nil
	}
	return []byte(c.Raw()), nil
}

func (c *CNPJ) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = CNPJ{}
		return nil
	}
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalJSON writes the raw digits as a string, or null for the empty CNPJ.
func (c CNPJ) MarshalJSON() ([]byte, error) {
	if c.Empty() {
		return []byte("null"), nil
	}
	return json.Marshal(c.Raw())
}

// UnmarshalJSON accepts a string in any punctuation, an integer or null.
func (c *CNPJ) UnmarshalJSON(data []byte) error {
	s, ok, err := document.UnmarshalJSONString(data)
	if err != nil {
		return err
	}
	if !ok {
		*c = CNPJ{}
		return nil
	}
	return c.UnmarshalText([]byte(s))
}

func (c CNPJ) MarshalYAML() (any, error) {
	if c.Empty() {
		return nil, nil
	}
	return c.Raw(), nil
}

func (c *CNPJ) UnmarshalYAML(node *yaml.Node) error {
	s, ok, err := document.ScalarString(node)
	if err != nil {
		return err
	}
	if !ok {
		*c = CNPJ{}
		return nil
	}
	return c.UnmarshalText([]byte(s))
}

func (c CNPJ) MarshalBSONValue() (byte, []byte, error) {
	if c.Empty() {
		return document.MarshalBSONString("")
	}
	return document.MarshalBSONString(c.Raw())
}

func (c *CNPJ) UnmarshalBSONValue(typ byte, data []byte) error {
	s, ok, err := document.UnmarshalBSONString(typ, data)
	if err != nil {
		return err
	}
	if !ok {
		*c = CNPJ{}
		return nil
	}
	return c.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer. The empty CNPJ is stored as NULL.
func (c CNPJ) Value() (driver.Value, error) {
	if c.Empty() {
		return nil, nil
	}
	return c.Raw(), nil
}

// Scan implements sql.Scanner for text and integer columns.
func (c *CNPJ) Scan(src any) error {
	s, ok, err := document.ScanString(src)
	if err != nil {
		return err
	}
	if !ok {
		*c = CNPJ{}
		return nil
	}
	return c.UnmarshalText([]byte(s))
}
