package phone

import (
	"database/sql/driver"
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/gestaolivre/brtypes/pkg/document"
)

// Phones are encoded in E.164 form so stored values stay unambiguous.

func (p Phone) MarshalText() ([]byte, error) {
	return []byte(p.E164()), nil
}

func (p *Phone) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = Phone{}
		return nil
	}
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p Phone) MarshalJSON() ([]byte, error) {
	if p.Empty() {
		return []byte("null"), nil
	}
	return json.Marshal(p.E164())
}

func (p *Phone) UnmarshalJSON(data []byte) error {
	s, _, err := document.UnmarshalJSONString(data)
	if err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

func (p Phone) MarshalYAML() (any, error) {
	if p.Empty() {
		return nil, nil
	}
	return p.E164(), nil
}

func (p *Phone) UnmarshalYAML(node *yaml.Node) error {
	s, _, err := document.ScalarString(node)
	if err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

func (p Phone) Value() (driver.Value, error) {
	if p.Empty() {
		return nil, nil
	}
	return p.E164(), nil
}

func (p *Phone) Scan(src any) error {
	s, _, err := document.ScanString(src)
	if err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}
