// Package solana provides Solana address generation and validation helpers.
//
// The API server never talks to a Solana cluster; mint creation happens in the
// user's wallet. This package only produces syntactically valid placeholder
// addresses and checks address shape for allow-lists.
package solana

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/mr-tron/base58"

	"github.com/memeforge/memeforge/internal/metrics"
)

// addressLen is the byte length of a Solana public key.
const addressLen = 32

// AddressGenerator produces new base58-encoded addresses. The token service
// depends on this capability to assign placeholder mint addresses.
type AddressGenerator interface {
	GenerateAddress() (string, error)
}

// KeypairGenerator generates a fresh ed25519 keypair per address and discards
// the private half. The public key is a valid on-curve Solana address.
type KeypairGenerator struct{}

// NewKeypairGenerator creates a KeypairGenerator.
func NewKeypairGenerator() *KeypairGenerator {
	return &KeypairGenerator{}
}

// GenerateAddress returns the base58-encoded public key of a newly generated
// ed25519 keypair.
func (g *KeypairGenerator) GenerateAddress() (string, error) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", fmt.Errorf("failed to generate keypair: %w", err)
	}
	metrics.MintAddressesGenerated.Inc()
	return base58.Encode(pub), nil
}

// ValidateAddress checks that addr is a base58-encoded 32-byte value lying on
// the ed25519 curve, i.e. a plausible wallet or mint address. Program derived
// addresses are deliberately off-curve and are rejected.
func ValidateAddress(addr string) error {
	decoded, err := base58.Decode(addr)
	if err != nil {
		return fmt.Errorf("invalid base58 address: %w", err)
	}
	if len(decoded) != addressLen {
		return fmt.Errorf("address must decode to %d bytes, got %d", addressLen, len(decoded))
	}
	if !isOnCurve(decoded) {
		return fmt.Errorf("address is not an ed25519 curve point")
	}
	return nil
}

func isOnCurve(point []byte) bool {
	if len(point) != addressLen {
		return false
	}
	_, err := new(edwards25519.Point).SetBytes(point)
	return err == nil
}
