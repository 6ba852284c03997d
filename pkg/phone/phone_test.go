package phone_test

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"github.com/gestaolivre/brtypes/pkg/phone"
	"github.com/gestaolivre/brtypes/pkg/uf"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   string
		mobile bool
		state  uf.UF
	}{
		{name: "national mobile", input: "(11) 91234-5678", want: "(11) 91234-5678", mobile: true, state: uf.SP},
		{name: "raw mobile", input: "11912345678", want: "(11) 91234-5678", mobile: true, state: uf.SP},
		{name: "country code", input: "+55 21 98765-4321", want: "(21) 98765-4321", mobile: true, state: uf.RJ},
		{name: "country code without plus", input: "5521987654321", want: "(21) 98765-4321", mobile: true, state: uf.RJ},
		{name: "landline", input: "(61) 3456-7890", want: "(61) 3456-7890", state: uf.DF},
		{name: "landline with country code", input: "+55 61 3456-7890", want: "(61) 3456-7890", state: uf.DF},
		{name: "trunk prefix", input: "0 (51) 3333-4444", want: "(51) 3333-4444", state: uf.RS},
		{name: "trunk prefix mobile", input: "051999998888", want: "(51) 99999-8888", mobile: true, state: uf.RS},
		{name: "carrier selection", input: "0 21 85 3222-1111", want: "(85) 3222-1111", state: uf.CE},
		{name: "carrier selection mobile", input: "0 15 92 99123-4567", want: "(92) 99123-4567", mobile: true, state: uf.AM},
		{name: "area code 55", input: "(55) 3222-1111", want: "(55) 3222-1111", state: uf.RS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := phone.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
			assert.Equal(t, tt.mobile, p.Mobile())
			assert.Equal(t, !tt.mobile, p.Landline())
			assert.Equal(t, tt.state, p.State())
			assert.True(t, phone.Validate(tt.input))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		err   error
	}{
		{"", phone.ErrInvalidLength},
		{"1234", phone.ErrInvalidLength},
		{"123456789012345", phone.ErrInvalidLength},
		{"(10) 91234-5678", phone.ErrInvalidAreaCode},
		{"(20) 3456-7890", phone.ErrInvalidAreaCode},
		{"(11) 81234-5678", phone.ErrInvalidNumber},
		{"(11) 9123-4567", phone.ErrInvalidNumber},
		{"(11) 1234-5678", phone.ErrInvalidNumber},
	}

	for _, tt := range tests {
		_, err := phone.Parse(tt.input)
		assert.ErrorIs(t, err, tt.err, tt.input)
		assert.False(t, phone.Validate(tt.input), tt.input)
	}

	assert.Panics(t, func() { phone.MustParse("123") })
}

func TestPhone_Accessors(t *testing.T) {
	t.Parallel()

	p := phone.MustParse("(11) 91234-5678")
	assert.Equal(t, "11", p.AreaCode())
	assert.Equal(t, "912345678", p.Number())
	assert.Equal(t, "11912345678", p.National())
	assert.Equal(t, "+5511912345678", p.E164())
	assert.Equal(t, "(11) *****-5678", p.Masked())
	assert.False(t, p.Empty())

	l := phone.MustParse("6134567890")
	assert.Equal(t, "(61) ****-7890", l.Masked())

	var zero phone.Phone
	assert.True(t, zero.Empty())
	assert.Empty(t, zero.String())
	assert.Empty(t, zero.E164())
	assert.Empty(t, zero.Masked())

	assert.True(t, phone.ValidAreaCode("99"))
	assert.False(t, phone.ValidAreaCode("23"))
}

func TestPhone_Encoding(t *testing.T) {
	t.Parallel()

	type contact struct {
		Phone phone.Phone `json:"phone" yaml:"phone"`
	}

	in := contact{Phone: phone.MustParse("(11) 91234-5678")}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"phone":"+5511912345678"}`, string(data))

	var out contact
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	data, err = json.Marshal(contact{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"phone":null}`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`{"phone":"123"}`), &out))

	y, err := yaml.Marshal(in)
	require.NoError(t, err)
	out = contact{}
	require.NoError(t, yaml.Unmarshal(y, &out))
	assert.Equal(t, in, out)
}

func TestPhone_SQL(t *testing.T) {
	t.Parallel()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE contacts (id INTEGER PRIMARY KEY, phone TEXT)`)
	require.NoError(t, err)

	p := phone.MustParse("(21) 98765-4321")
	_, err = db.Exec(`INSERT INTO contacts (id, phone) VALUES (1, ?)`, p)
	require.NoError(t, err)

	var stored string
	require.NoError(t, db.QueryRow(`SELECT phone FROM contacts WHERE id = 1`).Scan(&stored))
	assert.Equal(t, "+5521987654321", stored)

	var got phone.Phone
	require.NoError(t, db.QueryRow(`SELECT phone FROM contacts WHERE id = 1`).Scan(&got))
	assert.Equal(t, p, got)
}

func TestPhone_FormatAs(t *testing.T) {
	t.Parallel()

	p := phone.MustParse("11912345678")
	for code, want := range map[string]string{
		"":  "(11) 91234-5678",
		"f": "(11) 91234-5678",
		"r": "11912345678",
		"e": "+5511912345678",
		"m": "(11) *****-5678",
	} {
		got, err := p.FormatAs(code)
		require.NoError(t, err, code)
		assert.Equal(t, want, got, code)
	}

	_, err := p.FormatAs("x")
	assert.ErrorIs(t, err, phone.ErrUnknownFormat)
}
