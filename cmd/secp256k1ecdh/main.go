// Command secp256k1ecdh runs an ECDH key agreement between two private
// scalars on a named curve and prints the resulting shared secret.
package main

import (
	"fmt"
	"log/slog"
	"math/big"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/m256i/go-ecdh-secp256k1/curve"
	"github.com/m256i/go-ecdh-secp256k1/ecdh"
	"github.com/m256i/go-ecdh-secp256k1/eccerr"
)

// Exit codes, per the agreement driver's contract: 0 on success, 1 when the
// supplied scalars or curve name are malformed, 2 when the two independently
// computed shared points disagree.
const (
	exitOK             = 0
	exitMalformedInput = 1
	exitInconsistent   = 2
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	app := &cli.App{
		Name:  "secp256k1ecdh",
		Usage: "perform an ECDH key agreement on a short-Weierstrass curve",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "curve",
				Value: "secp256k1",
				Usage: "named curve to use",
			},
			&cli.StringFlag{
				Name:     "priv-a",
				Usage:    "first party's private scalar, as hex",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "priv-b",
				Usage:    "second party's private scalar, as hex",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "derive",
				Usage: "also derive and print a symmetric key via HKDF-SHA256",
			},
		},
		Action: func(c *cli.Context) error {
			return run(logger, c)
		},
	}

	if err := app.Run(os.Args); err != nil {
		code := exitMalformedInput
		if errors.Is(err, eccerr.ErrInconsistentResult) {
			code = exitInconsistent
		}
		logger.Error("secp256k1ecdh failed", "error", err)
		os.Exit(code)
	}
	os.Exit(exitOK)
}

func run(logger *slog.Logger, c *cli.Context) error {
	curveName := c.String("curve")
	crv, ok := curve.ByName(curveName)
	if !ok {
		return errors.Errorf("unknown curve %q", curveName)
	}

	a, err := parseScalar(c.String("priv-a"))
	if err != nil {
		return errors.Wrap(err, "priv-a")
	}
	b, err := parseScalar(c.String("priv-b"))
	if err != nil {
		return errors.Wrap(err, "priv-b")
	}

	logger.Info("starting key agreement", "curve", crv.Name)

	result, err := ecdh.Agree(crv, a, b)
	if err != nil {
		return errors.Wrap(err, "key agreement")
	}

	logger.Info("key agreement succeeded", "curve", crv.Name)
	fmt.Println(result.SharedX.Text(16))

	if c.Bool("derive") {
		key, err := ecdh.DeriveKey(result.SharedX, []byte("secp256k1ecdh-cli"), 32)
		if err != nil {
			return errors.Wrap(err, "key derivation")
		}
		fmt.Printf("%x\n", key)
	}

	return nil
}

func parseScalar(hex string) (*big.Int, error) {
	if hex == "" {
		return nil, eccerr.New(eccerr.ErrInvalidInput, "scalar is empty")
	}
	v, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return nil, eccerr.New(eccerr.ErrInvalidInput, fmt.Sprintf("%q is not valid hex", hex))
	}
	return v, nil
}
