package document_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"gopkg.in/yaml.v3"

	"github.com/gestaolivre/brtypes/pkg/document"
)

func TestDigits(t *testing.T) {
	assert.Equal(t, "58119443659", document.Digits("581.194.436-59"))
	assert.Equal(t, "581", document.Digits("５８１"))
	assert.Equal(t, "", document.Digits("abc"))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "00000000123", document.Pad("123", 11))
	assert.Equal(t, "123456", document.Pad("123456", 4))
}

func TestCanonical(t *testing.T) {
	got, err := document.Canonical("1.234", 8)
	require.NoError(t, err)
	assert.Equal(t, "00001234", got)

	_, err = document.Canonical("123456789", 8)
	assert.ErrorIs(t, err, document.ErrInvalidLength)

	_, err = document.Canonical("abc", 8)
	assert.ErrorIs(t, err, document.ErrNoDigits)

	got, err = document.Canonical("000-00", 8)
	require.NoError(t, err)
	assert.Equal(t, "", got, "all zeros collapse to the empty form")
}

func TestIsZeroAndRepeated(t *testing.T) {
	assert.True(t, document.IsZero(""))
	assert.True(t, document.IsZero("0000"))
	assert.False(t, document.IsZero("0010"))

	assert.True(t, document.Repeated("1111"))
	assert.False(t, document.Repeated("1112"))
	assert.False(t, document.Repeated(""))
}

func TestMod11(t *testing.T) {
	// CPF 581.194.436-59, first check digit.
	sum := document.WeightedSum("581194436", []int{10, 9, 8, 7, 6, 5, 4, 3, 2})
	assert.Equal(t, 5, document.Mod11(sum))

	assert.Equal(t, 0, document.Mod11(11))
	assert.Equal(t, 0, document.Mod11(12))
	assert.Equal(t, 9, document.Mod11(13))
}

func TestRandomDigits(t *testing.T) {
	t.Run("maps bytes to digits", func(t *testing.T) {
		got, err := document.RandomDigits(bytes.NewReader([]byte{1, 12, 23}), 3)
		require.NoError(t, err)
		assert.Equal(t, "123", got)
	})

	t.Run("rejects biased bytes", func(t *testing.T) {
		got, err := document.RandomDigits(bytes.NewReader([]byte{255, 1, 2, 3, 9, 9}), 3)
		require.NoError(t, err)
		assert.Equal(t, "123", got)
	})

	t.Run("reports exhausted source", func(t *testing.T) {
		_, err := document.RandomDigits(bytes.NewReader(nil), 3)
		assert.ErrorIs(t, err, document.ErrRandomSource)
	})

	t.Run("defaults to crypto rand", func(t *testing.T) {
		got, err := document.RandomDigits(nil, 20)
		require.NoError(t, err)
		assert.Len(t, got, 20)
		assert.Equal(t, got, document.Digits(got))
	})
}

func TestDetect(t *testing.T) {
	tests := []struct {
		in   string
		want document.Kind
	}{
		{"581.194.436-59", document.KindCPF},
		{"58.414.462/0001-35", document.KindCNPJ},
		{"01310-100", document.KindCEP},
		{"123", document.KindUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, document.Detect(tt.in), tt.in)
	}
}

func TestParseKind(t *testing.T) {
	k, ok := document.ParseKind("phone")
	assert.True(t, ok)
	assert.Equal(t, document.KindPhone, k)

	_, ok = document.ParseKind("rg")
	assert.False(t, ok)
}

func TestScanString(t *testing.T) {
	s, ok, err := document.ScanString([]byte("123"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "123", s)

	s, ok, err = document.ScanString(int64(42))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "42", s)

	_, ok, err = document.ScanString(nil)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = document.ScanString(3.14)
	assert.ErrorIs(t, err, document.ErrInvalidType)
}

func TestUnmarshalJSONString(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
		err    bool
	}{
		{"string", `"581.194.436-59"`, "581.194.436-59", true, false},
		{"number", `58119443659`, "58119443659", true, false},
		{"null", `null`, "", false, false},
		{"float", `1.5`, "", false, true},
		{"bool", `true`, "", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := document.UnmarshalJSONString([]byte(tt.in))
			if tt.err {
				assert.ErrorIs(t, err, document.ErrInvalidType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScalarString(t *testing.T) {
	s, ok, err := document.ScalarString(&yaml.Node{Kind: yaml.ScalarNode, Value: "01310100"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "01310100", s)

	_, ok, err = document.ScalarString(&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null"})
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = document.ScalarString(&yaml.Node{Kind: yaml.MappingNode})
	assert.ErrorIs(t, err, document.ErrInvalidType)
}

func TestBSONString(t *testing.T) {
	t.Run("string round trip", func(t *testing.T) {
		typ, data, err := document.MarshalBSONString("58119443659")
		require.NoError(t, err)
		assert.Equal(t, byte(bson.TypeString), typ)

		s, ok, err := document.UnmarshalBSONString(typ, data)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "58119443659", s)
	})

	t.Run("empty is null", func(t *testing.T) {
		typ, data, err := document.MarshalBSONString("")
		require.NoError(t, err)
		assert.Equal(t, byte(bson.TypeNull), typ)

		_, ok, err := document.UnmarshalBSONString(typ, data)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("integers", func(t *testing.T) {
		typ, data, err := bson.MarshalValue(int64(1310100))
		require.NoError(t, err)

		s, ok, err := document.UnmarshalBSONString(byte(typ), data)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "1310100", s)
	})

	t.Run("unsupported type", func(t *testing.T) {
		typ, data, err := bson.MarshalValue(true)
		require.NoError(t, err)

		_, _, err = document.UnmarshalBSONString(byte(typ), data)
		assert.ErrorIs(t, err, document.ErrInvalidType)
	})
}
