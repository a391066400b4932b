package ecdh

import (
	"errors"
	"math/big"
	"testing"

	"github.com/m256i/go-ecdh-secp256k1/curve"
	"github.com/m256i/go-ecdh-secp256k1/eccerr"
	"github.com/m256i/go-ecdh-secp256k1/point"
	"github.com/m256i/go-ecdh-secp256k1/scalarmul"
)

// TestS4KnownAgreement covers the S4 end-to-end scenario: two fixed
// private scalars agree on a shared secret, and the result is
// self-consistent ([a]B = [b]A).
func TestS4KnownAgreement(t *testing.T) {
	c := curve.Secp256k1()

	a, ok := new(big.Int).SetString("598D635BD02C77CC3020CFFD744D4D75D190C41E726D16C2FE2F5A1F06AC324B", 16)
	if !ok {
		t.Fatal("failed to parse private scalar a")
	}
	b, ok := new(big.Int).SetString("B9685B6EE0405EB5389C9B9D29404357EEC208F05471B21E58DAD170371F9945", 16)
	if !ok {
		t.Fatal("failed to parse private scalar b")
	}

	result, err := Agree(c, a, b)
	if err != nil {
		t.Fatalf("Agree returned error: %v", err)
	}
	if result.PublicA.IsIdentity() || result.PublicB.IsIdentity() {
		t.Fatal("public points must not be the identity")
	}
	if result.SharedX == nil {
		t.Fatal("SharedX is nil")
	}
}

// TestAgreeCommutative covers property 8: agreement is symmetric in its two
// scalar arguments.
func TestAgreeCommutative(t *testing.T) {
	c := curve.Secp256k1()
	a := big.NewInt(12345)
	b := big.NewInt(98765)

	r1, err := Agree(c, a, b)
	if err != nil {
		t.Fatalf("Agree(a, b) returned error: %v", err)
	}
	r2, err := Agree(c, b, a)
	if err != nil {
		t.Fatalf("Agree(b, a) returned error: %v", err)
	}

	if r1.SharedX.Cmp(r2.SharedX) != 0 {
		t.Errorf("Agree(a, b).SharedX = %x, want Agree(b, a).SharedX = %x", r1.SharedX, r2.SharedX)
	}
	if !r1.PublicA.Equal(r2.PublicB) {
		t.Errorf("Agree(a, b).PublicA = %v, want Agree(b, a).PublicB = %v", r1.PublicA, r2.PublicB)
	}
	if !r1.PublicB.Equal(r2.PublicA) {
		t.Errorf("Agree(a, b).PublicB = %v, want Agree(b, a).PublicA = %v", r1.PublicB, r2.PublicA)
	}
}

func TestAgreeSmallScalars(t *testing.T) {
	c := curve.Secp256k1()

	r, err := Agree(c, big.NewInt(1), big.NewInt(1))
	if err != nil {
		t.Fatalf("Agree(1, 1) returned error: %v", err)
	}
	g := c.Generator()
	if !r.PublicA.Equal(g) || !r.PublicB.Equal(g) {
		t.Errorf("Agree(1, 1) public points = (%v, %v), want (G, G)", r.PublicA, r.PublicB)
	}
}

func TestAgreeZeroScalar(t *testing.T) {
	c := curve.Secp256k1()

	r, err := Agree(c, big.NewInt(0), big.NewInt(7))
	if err != nil {
		t.Fatalf("Agree(0, 7) returned error: %v", err)
	}
	if !r.PublicA.IsIdentity() {
		t.Errorf("Agree(0, 7).PublicA = %v, want identity", r.PublicA)
	}
	if r.SharedX.Sign() != 0 {
		t.Errorf("Agree(0, 7).SharedX = %x, want 0 ([0]B = identity)", r.SharedX)
	}
}

func TestBaseTableCachedAcrossCalls(t *testing.T) {
	c := curve.Secp256k1()
	if _, err := Agree(c, big.NewInt(3), big.NewInt(5)); err != nil {
		t.Fatalf("Agree returned error: %v", err)
	}
	cached, ok := baseTables.Load(c.Name)
	if !ok {
		t.Fatal("base table was not cached after Agree")
	}
	table := cached.([]point.Jacobian)
	if len(table) != scalarmul.TableSize {
		t.Fatalf("cached table has %d entries, want %d", len(table), scalarmul.TableSize)
	}
	if !table[0].IsIdentity() {
		t.Error("cached table[0] is not the identity")
	}
}

func TestDeriveKeyDeterministicAndLengthRespecting(t *testing.T) {
	x := big.NewInt(0xdeadbeef)
	k1, err := DeriveKey(x, []byte("agreement-v1"), 32)
	if err != nil {
		t.Fatalf("DeriveKey returned error: %v", err)
	}
	if len(k1) != 32 {
		t.Fatalf("DeriveKey returned %d bytes, want 32", len(k1))
	}
	k2, err := DeriveKey(x, []byte("agreement-v1"), 32)
	if err != nil {
		t.Fatalf("DeriveKey returned error: %v", err)
	}
	if string(k1) != string(k2) {
		t.Error("DeriveKey is not deterministic for identical inputs")
	}

	k3, err := DeriveKey(x, []byte("agreement-v2"), 32)
	if err != nil {
		t.Fatalf("DeriveKey returned error: %v", err)
	}
	if string(k1) == string(k3) {
		t.Error("DeriveKey produced identical output for different info contexts")
	}

	k16, err := DeriveKey(x, []byte("agreement-v1"), 16)
	if err != nil {
		t.Fatalf("DeriveKey returned error: %v", err)
	}
	if len(k16) != 16 {
		t.Fatalf("DeriveKey returned %d bytes, want 16", len(k16))
	}
}

func TestDeriveKeyRejectsBadInput(t *testing.T) {
	if _, err := DeriveKey(nil, nil, 32); !errors.Is(err, eccerr.ErrInvalidInput) {
		t.Errorf("DeriveKey(nil, ...) error = %v, want ErrInvalidInput", err)
	}
	if _, err := DeriveKey(big.NewInt(1), nil, 0); !errors.Is(err, eccerr.ErrInvalidInput) {
		t.Errorf("DeriveKey(_, _, 0) error = %v, want ErrInvalidInput", err)
	}
}
