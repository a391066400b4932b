// Package scalarmul implements scalar multiplication on Jacobian points: the
// textbook left-to-right double-and-add ladder (used as an oracle in tests)
// and the fixed-window multiplier the rest of the system actually uses.
package scalarmul

import (
	"fmt"
	"math/big"

	"github.com/m256i/go-ecdh-secp256k1/eccerr"
	"github.com/m256i/go-ecdh-secp256k1/modarith"
	"github.com/m256i/go-ecdh-secp256k1/point"
	"github.com/m256i/go-ecdh-secp256k1/pointops"
)

// Window is the fixed window width the precomputed table and windowed
// multiplier use.
const Window = 4

// TableSize is the number of entries a Window-wide precomputed table holds:
// {O, 1P, 2P, ..., (2^Window - 1)P}.
const TableSize = 1 << Window

// DoubleAndAdd computes [k]P using the left-to-right binary ladder. It is
// the reference multiplier used to cross-check WindowedScalarMul and does
// not use a precomputed table.
func DoubleAndAdd(p point.Jacobian, k *big.Int, P *big.Int) point.Jacobian {
	if k.Sign() == 0 {
		return point.IdentityJacobian()
	}

	m := k.BitLen()
	q := p
	for i := 2; i <= m; i++ {
		q = pointops.Double(q, P)
		if k.Bit(m-i) == 1 {
			q = pointops.Add(p, q, P)
		}
	}
	return q
}

// Precompute builds the fixed-window table {O, 1P, 2P, ..., (2^Window-1)P}
// for the windowed multiplier, computing each entry by repeated addition of
// p to the previous entry.
func Precompute(p point.Jacobian, P *big.Int) []point.Jacobian {
	table := make([]point.Jacobian, TableSize)
	table[0] = point.IdentityJacobian()
	table[1] = p
	for i := 2; i < TableSize; i++ {
		table[i] = pointops.Add(p, table[i-1], P)
	}
	return table
}

// WindowedScalarMul computes [k]P using a fixed-window (w = 4) left-to-right
// multiplier driven by a precomputed table of small multiples of the base,
// as produced by Precompute. table[i] must equal the Jacobian projection of
// [i]P for every i in [0, TableSize); a malformed table is a precondition
// violation reported as ErrInvalidInput rather than silently miscomputed.
func WindowedScalarMul(table []point.Jacobian, k *big.Int, P *big.Int) (point.Jacobian, error) {
	if len(table) != TableSize {
		return point.Jacobian{}, eccerr.New(eccerr.ErrInvalidInput,
			fmt.Sprintf("windowed_scalar_mul: table has %d entries, want %d", len(table), TableSize))
	}

	l := k.BitLen()
	if l == 0 {
		return point.IdentityJacobian(), nil
	}

	windows := (l + Window - 1) / Window
	q := point.IdentityJacobian()

	for i := 0; i < windows; i++ {
		for d := 0; d < Window; d++ {
			q = pointops.Double(q, P)
		}

		start := (windows - i - 1) * Window
		v := modarith.Bits(k, start, Window)
		if v > 0 {
			q = pointops.Add(q, table[v], P)
		}
	}

	return q, nil
}
