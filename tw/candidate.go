package tw

// ValueKind tells how a candidate's value (or modifier) was written.
type ValueKind int

const (
	ValueNone ValueKind = iota
	// ValueNamed is a bare token resolved later against the theme: "blue-500".
	ValueNamed
	// ValueArbitrary is a bracketed literal: "[10px]", "[length:var(--x)]".
	ValueArbitrary
)

func (k ValueKind) String() string {
	switch k {
	case ValueNamed:
		return "named"
	case ValueArbitrary:
		return "arbitrary"
	}
	return "none"
}

// MarshalText lets candidates print readably as JSON.
func (k ValueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Value is the value or modifier part of a candidate.
type Value struct {
	Kind ValueKind `json:"kind"`
	// Text is the bare token, or the decoded literal for arbitrary values
	// (underscores already turned into spaces).
	Text string `json:"text,omitempty"`
	// Hint is the type named inside an arbitrary value: "length" in
	// "[length:var(--x)]".
	Hint string `json:"hint,omitempty"`
}

// IsZero reports whether no value was written.
func (v Value) IsZero() bool {
	return v.Kind == ValueNone
}

// VariantKind tells how a variant was written.
type VariantKind int

const (
	// VariantNamed: "hover", "md", "group-hover/item", "@lg".
	VariantNamed VariantKind = iota
	// VariantNamedArbitrary: "data-[state=open]", "supports-[display:grid]".
	VariantNamedArbitrary
	// VariantArbitrary: "[&:nth-child(3)]", "[@media(min-width:300px)]".
	VariantArbitrary
)

func (k VariantKind) String() string {
	switch k {
	case VariantNamedArbitrary:
		return "named-arbitrary"
	case VariantArbitrary:
		return "arbitrary"
	}
	return "named"
}

func (k VariantKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Variant is one "prefix:" of a candidate.
type Variant struct {
	Raw       string      `json:"raw"`
	Kind      VariantKind `json:"kind"`
	Name      string      `json:"name,omitempty"`
	Arbitrary string      `json:"arbitrary,omitempty"`
	// Label is the "/name" suffix of group and peer variants.
	Label string `json:"label,omitempty"`
}

// Candidate is the structured form of a utility-class token.
//
//	"md:hover:-translate-x-1/2!" → Variants [md hover], Negative, Key "translate-x",
//	                                Value named "1", Modifier named "2", Important
type Candidate struct {
	Raw       string    `json:"raw"`
	Variants  []Variant `json:"variants,omitempty"`
	Important bool      `json:"important,omitempty"`
	Negative  bool      `json:"negative,omitempty"`
	Key       string    `json:"key,omitempty"`
	Value     Value     `json:"value"`
	Modifier  Value     `json:"modifier"`
	// Property is set for fully arbitrary candidates such as
	// "[mask-type:luminance]"; Value then holds the declaration value.
	Property string `json:"property,omitempty"`
}

// IsProperty reports whether c is a fully arbitrary property candidate.
func (c Candidate) IsProperty() bool {
	return c.Property != ""
}

// Fraction reports whether value and modifier are both unsigned integers,
// which makes "w-1/2" readable as the fraction 1/2.
func (c Candidate) Fraction() (num, den string, ok bool) {
	if c.Value.Kind != ValueNamed || c.Modifier.Kind != ValueNamed {
		return "", "", false
	}
	if !isDigits(c.Value.Text) || !isDigits(c.Modifier.Text) {
		return "", "", false
	}
	return c.Value.Text, c.Modifier.Text, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
