// scalar.go - Scalar field helpers over the BN254 group order.
//
// Scalars are fr.Element values, always reduced into [0, n). Random sampling
// goes through fr.Element.SetRandom, which rejection-samples uniform field
// elements from crypto/rand; reducing a short byte string mod n directly
// would bias the distribution and is never done here.

package curve

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrDivisionByZero is returned when inverting the zero scalar.
var ErrDivisionByZero = errors.New("division by zero")

// RandomScalar samples a uniform scalar in [0, n).
func RandomScalar() (*fr.Element, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return nil, fmt.Errorf("scalar sampling failed: %w", err)
	}
	return &s, nil
}

// RandomNonZeroScalar samples a uniform scalar in [1, n).
func RandomNonZeroScalar() (*fr.Element, error) {
	for {
		s, err := RandomScalar()
		if err != nil {
			return nil, err
		}
		if !s.IsZero() {
			return s, nil
		}
	}
}

// InvertScalar returns x^-1 mod n. Inverting zero fails with ErrDivisionByZero.
func InvertScalar(x *fr.Element) (*fr.Element, error) {
	if x.IsZero() {
		return nil, ErrDivisionByZero
	}
	var inv fr.Element
	inv.Inverse(x)
	return &inv, nil
}
