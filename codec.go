package cpoly

import (
	"fmt"

	"github.com/jonathanmweiss/go-cpoly/common/cbor"
	"github.com/jonathanmweiss/go-cpoly/common/errors"
)

// wireTerm is encoded as the CBOR array [exponent, real, imaginary].
type wireTerm struct {
	_ struct{} `cbor:",toarray"`

	Exponent int
	Real     float64
	Imag     float64
}

// MarshalCBOR encodes p as a canonical CBOR array of terms in ascending
// exponent order.
func (p *Polynomial) MarshalCBOR() ([]byte, error) {
	terms := p.Terms()

	wire := make([]wireTerm, len(terms))
	for i, t := range terms {
		wire[i] = wireTerm{
			Exponent: t.Exponent,
			Real:     real(t.Coefficient),
			Imag:     imag(t.Coefficient),
		}
	}

	return cbor.Marshal(wire), nil
}

// UnmarshalCBOR decodes the MarshalCBOR encoding into p and canonicalizes it.
func (p *Polynomial) UnmarshalCBOR(data []byte) error {
	var wire []wireTerm
	if err := cbor.Unmarshal(data, &wire); err != nil {
		return errors.WithContext(ErrFormat, err.Error())
	}

	terms := make(map[int]*Term, len(wire))
	for _, w := range wire {
		if w.Exponent < 0 {
			return errors.WithContext(ErrFormat, fmt.Sprintf("negative exponent %d", w.Exponent))
		}

		if existing, ok := terms[w.Exponent]; ok {
			existing.Coefficient += complex(w.Real, w.Imag)
			continue
		}

		terms[w.Exponent] = &Term{Exponent: w.Exponent, Coefficient: complex(w.Real, w.Imag)}
	}

	p.terms = terms
	p.Canonicalize()

	return nil
}

// Encode returns the canonical CBOR encoding of p.
func Encode(p *Polynomial) []byte {
	mustNotBeNil(p)

	b, _ := p.MarshalCBOR()

	return b
}

// Decode parses a CBOR encoding produced by Encode.
func Decode(data []byte) (*Polynomial, error) {
	p := &Polynomial{}
	if err := p.UnmarshalCBOR(data); err != nil {
		return nil, err
	}

	return p, nil
}
