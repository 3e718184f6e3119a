// curve.go - BN254 group parameters and point arithmetic for the commitment scheme.
//
// All commitments live in the prime-order G1 group of BN254 (y^2 = x^3 + 3 over F_p).
// Two bases are fixed at initialization: the curve generator G and the setup point H.
// H stands in for the output of the multi-party trusted setup; its discrete logarithm
// with respect to G is unknown to every party, prover included.

package curve

import (
	"errors"
	"math/big"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// KMax is the largest value a single note may commit to.
const KMax = 1 << 20

// setupSeed fixes the derivation of the setup point H via hash-to-curve,
// so that nobody knows log_G(H).
const setupSeed = "mintproof commitment setup point v1"

// curveB is the constant term of the curve equation y^2 = x^3 + 3.
var curveB = big.NewInt(3)

var (
	initOnce sync.Once
	genG     bn254.G1Affine
	genH     bn254.G1Affine
)

func initGenerators() {
	g1Jac, _, _, _ := bn254.Generators()
	genG.FromJacobian(&g1Jac)
	h, err := bn254.HashToG1([]byte(setupSeed), []byte("mintproof-H"))
	if err != nil {
		panic("curve: setup point derivation failed: " + err.Error())
	}
	genH = h
}

// G returns the BN254 G1 generator.
func G() *bn254.G1Affine {
	initOnce.Do(initGenerators)
	g := genG
	return &g
}

// H returns the public setup point used as the commitment base.
func H() *bn254.G1Affine {
	initOnce.Do(initGenerators)
	h := genH
	return &h
}

// FieldModulus returns p, the modulus of the curve's coordinate field.
func FieldModulus() *big.Int {
	return fp.Modulus()
}

// GroupOrder returns n, the order of the G1 group and of the scalar field.
func GroupOrder() *big.Int {
	return fr.Modulus()
}

// Point is an untrusted affine point claim. Coordinates are kept as raw big
// integers so that malformed wire data can be represented; anything coming
// from outside must pass IsOnCurve before it is used in group arithmetic.
// The pair (0, 0) encodes the point at infinity.
type Point struct {
	X *big.Int
	Y *big.Int
}

// NewPoint builds a point claim from coordinate copies.
func NewPoint(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return Point{X: new(big.Int), Y: new(big.Int)}
}

// IsInfinity reports whether p encodes the group identity. The identity is a
// valid group element but never a valid commitment component.
func (p Point) IsInfinity() bool {
	return p.X != nil && p.Y != nil && p.X.Sign() == 0 && p.Y.Sign() == 0
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + 3 with 0 < x, y < p.
// The point at infinity does not satisfy the equation and is rejected.
func (p Point) IsOnCurve() bool {
	if p.X == nil || p.Y == nil {
		return false
	}
	mod := fp.Modulus()
	if p.X.Sign() <= 0 || p.Y.Sign() <= 0 || p.X.Cmp(mod) >= 0 || p.Y.Cmp(mod) >= 0 {
		return false
	}
	lhs := new(big.Int).Mul(p.Y, p.Y)
	lhs.Mod(lhs, mod)
	rhs := new(big.Int).Mul(p.X, p.X)
	rhs.Mul(rhs, p.X)
	rhs.Add(rhs, curveB)
	rhs.Mod(rhs, mod)
	return lhs.Cmp(rhs) == 0
}

// Equal reports whether p and q claim the same coordinates.
func (p Point) Equal(q Point) bool {
	if p.X == nil || p.Y == nil || q.X == nil || q.Y == nil {
		return false
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// ToAffine converts a validated point claim into a gnark-crypto affine point.
func (p Point) ToAffine() (*bn254.G1Affine, error) {
	if !p.IsOnCurve() {
		return nil, errors.New("curve: point is not on the curve")
	}
	var a bn254.G1Affine
	a.X.SetBigInt(p.X)
	a.Y.SetBigInt(p.Y)
	return &a, nil
}

// FromAffine converts a gnark-crypto affine point into coordinate form.
func FromAffine(a *bn254.G1Affine) Point {
	return Point{
		X: a.X.BigInt(new(big.Int)),
		Y: a.Y.BigInt(new(big.Int)),
	}
}

// ScalarMul returns s * p.
func ScalarMul(p *bn254.G1Affine, s *fr.Element) *bn254.G1Affine {
	var out bn254.G1Affine
	out.ScalarMultiplication(p, s.BigInt(new(big.Int)))
	return &out
}

// AddPoints returns p + q.
func AddPoints(p, q *bn254.G1Affine) *bn254.G1Affine {
	var out bn254.G1Affine
	out.Add(p, q)
	return &out
}

// Neg returns -p.
func Neg(p *bn254.G1Affine) *bn254.G1Affine {
	var out bn254.G1Affine
	out.Neg(p)
	return &out
}
