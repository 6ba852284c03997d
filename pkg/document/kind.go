package document

// Kind identifies the type of a Brazilian identifier.
type Kind string

const (
	KindUnknown Kind = ""
	KindCPF     Kind = "cpf"
	KindCNPJ    Kind = "cnpj"
	KindCEP     Kind = "cep"
	KindPhone   Kind = "phone"
)

// Digit counts of the canonical forms.
const (
	CPFLength  = 11
	CNPJLength = 14
	CEPLength  = 8
)

// ParseKind maps a lowercase kind name to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindCPF, KindCNPJ, KindCEP, KindPhone:
		return k, true
	}
	return KindUnknown, false
}

// Detect guesses the kind of a formatted or raw identifier by its digit count.
// Phone numbers overlap with the document lengths and are never detected.
func Detect(s string) Kind {
	switch len(Digits(s)) {
	case CPFLength:
		return KindCPF
	case CNPJLength:
		return KindCNPJ
	case CEPLength:
		return KindCEP
	default:
		return KindUnknown
	}
}

func (k Kind) String() string {
	return string(k)
}
