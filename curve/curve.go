// Package curve carries the domain parameters of a short-Weierstrass curve
// with a = 0 — the only curve family the rest of this module's arithmetic
// supports — plus constructors for secp256k1 and the small toy curve used in
// tests.
package curve

import (
	"math/big"

	"github.com/m256i/go-ecdh-secp256k1/point"
)

// Curve carries the parameters of a curve y² = x³ + B mod P. There is no A
// field: the doubling formula in package pointops is specialized to a = 0,
// so carrying a nonzero A would be misleading. A curve with a general a != 0
// would need a different doubling formula (B would pick up an a*Z⁴ term);
// that generalization is out of scope here.
type Curve struct {
	Name    string
	P       *big.Int // field prime
	B       *big.Int // curve equation constant
	Gx, Gy  *big.Int // generator point
	N       *big.Int // order of the generator; unenforced by the scalar multiplier
	BitSize int
}

// Generator returns the curve's base point in affine coordinates.
func (c *Curve) Generator() point.Affine {
	return point.Affine{X: new(big.Int).Set(c.Gx), Y: new(big.Int).Set(c.Gy)}
}

// Secp256k1 returns the domain parameters for secp256k1: y² = x³ + 7 mod p,
// p = 2²⁵⁶ - 2³² - 977.
func Secp256k1() *Curve {
	p, _ := new(big.Int).SetString(
		"fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	gx, _ := new(big.Int).SetString(
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", 16)
	gy, _ := new(big.Int).SetString(
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8", 16)
	n, _ := new(big.Int).SetString(
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

	return &Curve{
		Name:    "secp256k1",
		P:       p,
		B:       big.NewInt(7),
		Gx:      gx,
		Gy:      gy,
		N:       n,
		BitSize: 256,
	}
}

// Toy returns the small curve y² = x³ + 7 mod 17 with generator (15, 13),
// used by tests that need a curve small enough to brute-force.
func Toy() *Curve {
	return &Curve{
		Name:    "toy-17",
		P:       big.NewInt(17),
		B:       big.NewInt(7),
		Gx:      big.NewInt(15),
		Gy:      big.NewInt(13),
		N:       nil, // order is unused by the toy fixture's tests
		BitSize: 5,
	}
}

// ByName resolves a curve by its --curve flag name. ok is false for any
// unrecognized name.
func ByName(name string) (c *Curve, ok bool) {
	switch name {
	case "secp256k1":
		return Secp256k1(), true
	default:
		return nil, false
	}
}
