// Package ecdh composes the point and scalar-multiplication layers into a
// Diffie-Hellman key-agreement driver: given a curve, its generator, and two
// private scalars, it computes the two public points and cross-checks that
// both sides of the exchange land on the same shared point.
package ecdh

import (
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"
	"sync"

	"golang.org/x/crypto/hkdf"

	"github.com/m256i/go-ecdh-secp256k1/curve"
	"github.com/m256i/go-ecdh-secp256k1/eccerr"
	"github.com/m256i/go-ecdh-secp256k1/point"
	"github.com/m256i/go-ecdh-secp256k1/scalarmul"
)

// baseTables caches each curve's base-point precompute table keyed by curve
// name, so repeated Agree calls against the same curve only pay for the
// table's 14 additions once. This is the only shared mutable state in the
// package; every other value here is an immutable, freshly computed
// snapshot.
var baseTables sync.Map // map[string][]point.Jacobian

func baseTable(c *curve.Curve) []point.Jacobian {
	if cached, ok := baseTables.Load(c.Name); ok {
		return cached.([]point.Jacobian)
	}
	table := scalarmul.Precompute(c.Generator().ToJacobian(), c.P)
	actual, _ := baseTables.LoadOrStore(c.Name, table)
	return actual.([]point.Jacobian)
}

// Result is the outcome of a successful key agreement.
type Result struct {
	// PublicA, PublicB are the public points [a]G and [b]G.
	PublicA, PublicB point.Affine
	// SharedX is the affine x-coordinate of the shared point [a][b]G, the
	// raw ECDH shared secret. It should not be used directly as a symmetric
	// key; pass it to DeriveKey first.
	SharedX *big.Int
}

// Agree performs the ECDH exchange described in the driver's operation: it
// computes A = [a]G, B = [b]G, then independently recomputes the shared
// point as [a]B and [b]A and requires the two to agree. A mismatch indicates
// a bug in the underlying arithmetic, not a caller error, and is reported as
// ErrInconsistentResult.
//
// Agree does not validate that a, b lie in [0, N); per the data model, the
// core trusts the caller to supply scalars in range and performs no
// zero-check.
func Agree(c *curve.Curve, a, b *big.Int) (*Result, error) {
	tG := baseTable(c)

	pubA, err := scalarmul.WindowedScalarMul(tG, a, c.P)
	if err != nil {
		return nil, err
	}
	pubB, err := scalarmul.WindowedScalarMul(tG, b, c.P)
	if err != nil {
		return nil, err
	}

	tB := scalarmul.Precompute(pubB, c.P)
	tA := scalarmul.Precompute(pubA, c.P)

	sharedA, err := scalarmul.WindowedScalarMul(tB, a, c.P)
	if err != nil {
		return nil, err
	}
	sharedB, err := scalarmul.WindowedScalarMul(tA, b, c.P)
	if err != nil {
		return nil, err
	}

	affA, err := sharedA.ToAffine(c.P)
	if err != nil {
		return nil, err
	}
	affB, err := sharedB.ToAffine(c.P)
	if err != nil {
		return nil, err
	}
	if !affA.Equal(affB) {
		return nil, eccerr.New(eccerr.ErrInconsistentResult,
			fmt.Sprintf("ecdh: [a]B = %v but [b]A = %v", affA, affB))
	}

	affPubA, err := pubA.ToAffine(c.P)
	if err != nil {
		return nil, err
	}
	affPubB, err := pubB.ToAffine(c.P)
	if err != nil {
		return nil, err
	}

	return &Result{
		PublicA: affPubA,
		PublicB: affPubB,
		SharedX: affA.X,
	}, nil
}

// DeriveKey runs the raw shared x-coordinate through HKDF-SHA256 to derive a
// keyLen-byte symmetric key, with info bound into the derivation as context
// (e.g. a protocol name and version). A raw curve coordinate should never be
// used directly as a symmetric key; this is the step that turns an ECDH
// shared secret into one.
func DeriveKey(sharedX *big.Int, info []byte, keyLen int) ([]byte, error) {
	if sharedX == nil {
		return nil, eccerr.New(eccerr.ErrInvalidInput, "derive_key: nil shared secret")
	}
	if keyLen <= 0 {
		return nil, eccerr.New(eccerr.ErrInvalidInput, "derive_key: keyLen must be positive")
	}

	kdf := hkdf.New(sha256.New, sharedX.Bytes(), nil, info)
	key := make([]byte, keyLen)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, eccerr.New(eccerr.ErrInvalidInput, "derive_key: "+err.Error())
	}
	return key, nil
}
