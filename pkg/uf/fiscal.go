package uf

// FiscalRegion is the Receita Federal tax region that issued a CPF.
// It is encoded in the ninth digit of the number (0 through 9).
type FiscalRegion int

var fiscalRegions = [10][]UF{
	0: {RS},
	1: {DF, GO, MT, MS, TO},
	2: {AC, AP, AM, PA, RO, RR},
	3: {CE, MA, PI},
	4: {AL, PB, PE, RN},
	5: {BA, SE},
	6: {MG},
	7: {ES, RJ},
	8: {SP},
	9: {PR, SC},
}

// States returns the federative units served by the region.
// It returns nil for a value outside 0..9.
func (r FiscalRegion) States() []UF {
	if r < 0 || int(r) >= len(fiscalRegions) {
		return nil
	}
	out := make([]UF, len(fiscalRegions[r]))
	copy(out, fiscalRegions[r])
	return out
}

// Covers reports whether u belongs to the region.
func (r FiscalRegion) Covers(u UF) bool {
	for _, s := range r.States() {
		if s == u {
			return true
		}
	}
	return false
}
