package data

import "strings"

//Pair binds a pair of endpoint identifiers where direction matters.
type Pair struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

//MapKey generates a string which may be used to index a directed pair
//of endpoints. A->B and B->A produce distinct keys.
func (p Pair) MapKey() string {
	var builder strings.Builder
	builder.Grow(len(p.Src) + 2 + len(p.Dst))
	builder.WriteString(p.Src)
	builder.WriteString("->")
	builder.WriteString(p.Dst)
	return builder.String()
}

//CanonicalKey generates an order independent string which may be used to
//index an unordered pair of endpoints. CanonicalKey(A,B) == CanonicalKey(B,A).
func (p Pair) CanonicalKey() string {
	a, b := p.Src, p.Dst
	if b < a {
		a, b = b, a
	}
	var builder strings.Builder
	builder.Grow(len(a) + 3 + len(b))
	builder.WriteString(a)
	builder.WriteString("<->")
	builder.WriteString(b)
	return builder.String()
}

//Ordered returns the endpoints of the pair in canonical (sorted) order.
func (p Pair) Ordered() (string, string) {
	if p.Dst < p.Src {
		return p.Dst, p.Src
	}
	return p.Src, p.Dst
}
