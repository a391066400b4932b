// Package modarith provides the thin modular-arithmetic floor that the point
// and scalar-multiplication layers are built on: a canonical mod reduction,
// modular inversion via the iterative extended Euclidean algorithm, and the
// truncated-division helper the inversion loop needs.
//
// It is deliberately hand-rolled on top of math/big rather than delegating to
// big.Int.ModInverse: the sign-convention pitfall described below is part of
// what this package exists to get right and regression-test, not an
// implementation detail to hide behind a library call.
package modarith

import (
	"math/big"

	"github.com/m256i/go-ecdh-secp256k1/eccerr"
)

var one = big.NewInt(1)

// Mod returns r such that r ≡ a (mod p) and 0 <= r < p.
//
// math/big's own Int.Mod already computes this Euclidean remainder, but this
// function mirrors the bigint provider's raw, sign-of-dividend remainder (as
// produced by Int.Rem, the Go analogue of the original C/C++ truncating `%`)
// and then renormalizes by hand. That renormalization is the behavior this
// package's tests pin down; skipping it was a concrete bug in an earlier
// draft of this algorithm.
func Mod(a, p *big.Int) *big.Int {
	r := new(big.Int).Rem(a, p)
	if r.Sign() < 0 {
		r.Add(r, p)
	}
	return r
}

// DivMod returns the truncated quotient q = trunc(a/b) and the canonical
// remainder r = Mod(a, |b|), which lies in [0, |b|) whatever the signs of a
// and b. It exists only to feed ModInverse's extended Euclidean loop.
func DivMod(a, b *big.Int) (q, r *big.Int) {
	q = new(big.Int).Quo(a, b)
	r = Mod(a, new(big.Int).Abs(b))
	return q, r
}

// ModInverse computes a⁻¹ mod p via the iterative extended Euclidean
// algorithm, tracking the Bezout coefficients (x, lastx) exactly as the
// reference implementation this algorithm was distilled from does. The
// result is sign(a)·lastx, reduced into [0, p).
//
// a = 0 has no inverse; ModInverse reports ErrInverseDoesNotExist rather than
// looping forever or returning a meaningless value.
func ModInverse(a, p *big.Int) (*big.Int, error) {
	if a.Sign() == 0 {
		return nil, eccerr.New(eccerr.ErrInverseDoesNotExist, "modinv: no inverse of 0")
	}

	lastRemainder := new(big.Int).Abs(a)
	remainder := new(big.Int).Abs(p)
	x := big.NewInt(0)
	lastX := big.NewInt(1)
	// y/lastY track the Bezout coefficient for p; kept for fidelity with the
	// textbook extended-Euclid recurrence even though only lastX is used.
	y := big.NewInt(1)
	lastY := big.NewInt(0)

	for remainder.Sign() != 0 {
		oldRemainder := remainder
		q, r := DivMod(lastRemainder, remainder)
		remainder = r
		lastRemainder = oldRemainder

		tmpX := x
		x = new(big.Int).Sub(lastX, new(big.Int).Mul(q, x))
		lastX = tmpX

		tmpY := y
		y = new(big.Int).Sub(lastY, new(big.Int).Mul(q, y))
		lastY = tmpY
	}

	if lastRemainder.Cmp(one) != 0 {
		return nil, eccerr.New(eccerr.ErrInverseDoesNotExist, "modinv: gcd(a, p) != 1")
	}

	result := lastX
	if a.Sign() < 0 {
		result = new(big.Int).Neg(result)
	}
	return Mod(result, p), nil
}

// Bits returns the unsigned integer formed by count consecutive bits of a
// starting at bit start, least-significant-first (bit 0 of the result is bit
// `start` of a). It is the get_bits primitive the bigint provider contract
// calls for but math/big has no single call for.
func Bits(a *big.Int, start, count int) uint64 {
	var v uint64
	for i := 0; i < count; i++ {
		if a.Bit(start+i) == 1 {
			v |= uint64(1) << uint(i)
		}
	}
	return v
}
