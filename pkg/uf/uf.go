// Package uf lists the Brazilian federative units (unidades federativas):
// the 26 states and the Federal District, with their names, geographic
// regions and the fiscal regions encoded in CPF numbers.
package uf

import (
	"errors"
	"strings"
)

// ErrUnknownUF is returned by Parse for an unrecognised code.
var ErrUnknownUF = errors.New("unknown federative unit")

// UF is a two-letter federative unit code, e.g. "SP".
type UF string

const (
	AC UF = "AC"
	AL UF = "AL"
	AP UF = "AP"
	AM UF = "AM"
	BA UF = "BA"
	CE UF = "CE"
	DF UF = "DF"
	ES UF = "ES"
	GO UF = "GO"
	MA UF = "MA"
	MT UF = "MT"
	MS UF = "MS"
	MG UF = "MG"
	PA UF = "PA"
	PB UF = "PB"
	PR UF = "PR"
	PE UF = "PE"
	PI UF = "PI"
	RJ UF = "RJ"
	RN UF = "RN"
	RS UF = "RS"
	RO UF = "RO"
	RR UF = "RR"
	SC UF = "SC"
	SP UF = "SP"
	SE UF = "SE"
	TO UF = "TO"
)

// Region is one of the five geographic regions defined by IBGE.
type Region string

const (
	Norte       Region = "Norte"
	Nordeste    Region = "Nordeste"
	CentroOeste Region = "Centro-Oeste"
	Sudeste     Region = "Sudeste"
	Sul         Region = "Sul"
)

type info struct {
	name   string
	region Region
}

var units = map[UF]info{
	AC: {"Acre", Norte},
	AL: {"Alagoas", Nordeste},
	AP: {"Amapá", Norte},
	AM: {"Amazonas", Norte},
	BA: {"Bahia", Nordeste},
	CE: {"Ceará", Nordeste},
	DF: {"Distrito Federal", CentroOeste},
	ES: {"Espírito Santo", Sudeste},
	GO: {"Goiás", CentroOeste},
	MA: {"Maranhão", Nordeste},
	MT: {"Mato Grosso", CentroOeste},
	MS: {"Mato Grosso do Sul", CentroOeste},
	MG: {"Minas Gerais", Sudeste},
	PA: {"Pará", Norte},
	PB: {"Paraíba", Nordeste},
	PR: {"Paraná", Sul},
	PE: {"Pernambuco", Nordeste},
	PI: {"Piauí", Nordeste},
	RJ: {"Rio de Janeiro", Sudeste},
	RN: {"Rio Grande do Norte", Nordeste},
	RS: {"Rio Grande do Sul", Sul},
	RO: {"Rondônia", Norte},
	RR: {"Roraima", Norte},
	SC: {"Santa Catarina", Sul},
	SP: {"São Paulo", Sudeste},
	SE: {"Sergipe", Nordeste},
	TO: {"Tocantins", Norte},
}

var all = []UF{
	AC, AL, AP, AM, BA, CE, DF, ES, GO, MA, MT, MS, MG, PA,
	PB, PR, PE, PI, RJ, RN, RS, RO, RR, SC, SP, SE, TO,
}

// All returns every federative unit in alphabetical order of name.
func All() []UF {
	out := make([]UF, len(all))
	copy(out, all)
	return out
}

// Parse accepts a code in any case, surrounding spaces ignored.
func Parse(code string) (UF, error) {
	u := UF(strings.ToUpper(strings.TrimSpace(code)))
	if !u.Valid() {
		return "", ErrUnknownUF
	}
	return u, nil
}

func (u UF) Valid() bool {
	_, ok := units[u]
	return ok
}

// Name returns the full name, or "" for an unknown code.
func (u UF) Name() string {
	return units[u].name
}

func (u UF) Region() Region {
	return units[u].region
}

func (u UF) String() string {
	return string(u)
}
