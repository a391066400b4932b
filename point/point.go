// Package point defines the two point representations scalar multiplication
// operates on: AffinePoint for input/output, and JacobianPoint, the
// projective form used internally to avoid a modular inversion on every
// group operation.
package point

import (
	"math/big"

	"github.com/m256i/go-ecdh-secp256k1/modarith"
)

// Affine is a point (x, y) on a short-Weierstrass curve. The identity
// (point at infinity) is represented by the sentinel (0, 0), which is safe
// because (0, 0) never lies on a curve with nonzero B (0 has no curve point
// for secp256k1, since y² = 7 has no solution mod p).
type Affine struct {
	X, Y *big.Int
}

// IdentityAffine returns the affine point-at-infinity sentinel.
func IdentityAffine() Affine {
	return Affine{X: big.NewInt(0), Y: big.NewInt(0)}
}

// IsIdentity reports whether p is the affine identity sentinel.
func (p Affine) IsIdentity() bool {
	return p.X.Sign() == 0 && p.Y.Sign() == 0
}

// Equal reports whether p and q have identical coordinates. Both operands
// must already be canonicalized into [0, p) by the caller.
func (p Affine) Equal(q Affine) bool {
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// ToJacobian lifts an affine point to Jacobian coordinates with Z = 1, or to
// the Jacobian identity sentinel if p is the affine identity.
func (p Affine) ToJacobian() Jacobian {
	if p.IsIdentity() {
		return IdentityJacobian()
	}
	return Jacobian{
		X: new(big.Int).Set(p.X),
		Y: new(big.Int).Set(p.Y),
		Z: big.NewInt(1),
	}
}

// Jacobian is a point (X, Y, Z) in Jacobian projective coordinates, where the
// affine equivalent (when Z != 0) is (X/Z², Y/Z³). The identity (point at
// infinity) is the unambiguous Z = 0 sentinel (1, 1, 0); any point with Z = 0
// encountered as input is treated as identity and normalized to this
// sentinel on output. The alternative sentinel (0, 0, 1) sometimes seen in
// the literature is not used here: lifted to Jacobian, (0, 0) is a
// non-identity point under these addition formulas and breaks them.
type Jacobian struct {
	X, Y, Z *big.Int
}

// IdentityJacobian returns the Jacobian point-at-infinity sentinel.
func IdentityJacobian() Jacobian {
	return Jacobian{X: big.NewInt(1), Y: big.NewInt(1), Z: big.NewInt(0)}
}

// IsIdentity reports whether j is the identity, i.e. has Z = 0.
func (j Jacobian) IsIdentity() bool {
	return j.Z.Sign() == 0
}

// ToAffine converts j to affine coordinates modulo p, normalizing any Z = 0
// point to the affine identity sentinel.
func (j Jacobian) ToAffine(p *big.Int) (Affine, error) {
	if j.IsIdentity() {
		return IdentityAffine(), nil
	}

	zInv, err := modarith.ModInverse(j.Z, p)
	if err != nil {
		return Affine{}, err
	}
	zInv2 := modarith.Mod(new(big.Int).Mul(zInv, zInv), p)
	zInv3 := modarith.Mod(new(big.Int).Mul(zInv2, zInv), p)

	return Affine{
		X: modarith.Mod(new(big.Int).Mul(j.X, zInv2), p),
		Y: modarith.Mod(new(big.Int).Mul(j.Y, zInv3), p),
	}, nil
}

// Equal reports whether j and k represent the same group element modulo p,
// by comparing their affine projections.
func (j Jacobian) Equal(k Jacobian, p *big.Int) (bool, error) {
	ja, err := j.ToAffine(p)
	if err != nil {
		return false, err
	}
	ka, err := k.ToAffine(p)
	if err != nil {
		return false, err
	}
	return ja.Equal(ka), nil
}
