package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
	"gopkg.in/yaml.v3"
)

// ScanString converts a database/sql source value into a string.
// The boolean result is false for SQL NULL.
func ScanString(src any) (string, bool, error) {
	switch v := src.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case []byte:
		return string(v), true, nil
	case int64:
		return strconv.FormatInt(v, 10), true, nil
	default:
		return "", false, fmt.Errorf("%w: %T", ErrInvalidType, src)
	}
}

// UnmarshalJSONString accepts a JSON string, a JSON integer or null.
// Numbers are accepted because identifiers are often stored as integers,
// which drops their leading zeros.
func UnmarshalJSONString(data []byte) (string, bool, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", false, nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		return s, true, nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", false, fmt.Errorf("%w: %s", ErrInvalidType, data)
	}
	if _, err := n.Int64(); err != nil {
		return "", false, fmt.Errorf("%w: %s", ErrInvalidType, data)
	}
	return n.String(), true, nil
}

// ScalarString extracts the value of a YAML scalar node.
// The boolean result is false for a YAML null.
func ScalarString(node *yaml.Node) (string, bool, error) {
	if node == nil || node.Tag == "!!null" {
		return "", false, nil
	}
	if node.Kind != yaml.ScalarNode {
		return "", false, fmt.Errorf("%w: yaml node kind %d", ErrInvalidType, node.Kind)
	}
	return node.Value, true, nil
}

// MarshalBSONString encodes s as a BSON string, or BSON null when s is empty.
func MarshalBSONString(s string) (byte, []byte, error) {
	if s == "" {
		return byte(bson.TypeNull), nil, nil
	}
	t, data, err := bson.MarshalValue(s)
	return byte(t), data, err
}

// UnmarshalBSONString decodes a BSON string, int32, int64 or null.
func UnmarshalBSONString(typ byte, data []byte) (string, bool, error) {
	raw := bson.RawValue{Type: bson.Type(typ), Value: data}

	switch raw.Type {
	case bson.TypeNull, bson.TypeUndefined:
		return "", false, nil
	case bson.TypeString:
		s, ok := raw.StringValueOK()
		if !ok {
			return "", false, fmt.Errorf("%w: malformed bson string", ErrInvalidType)
		}
		return s, true, nil
	case bson.TypeInt32:
		n, ok := raw.Int32OK()
		if !ok {
			return "", false, fmt.Errorf("%w: malformed bson int32", ErrInvalidType)
		}
		return strconv.FormatInt(int64(n), 10), true, nil
	case bson.TypeInt64:
		n, ok := raw.Int64OK()
		if !ok {
			return "", false, fmt.Errorf("%w: malformed bson int64", ErrInvalidType)
		}
		return strconv.FormatInt(n, 10), true, nil
	default:
		return "", false, fmt.Errorf("%w: bson type %v", ErrInvalidType, raw.Type)
	}
}
