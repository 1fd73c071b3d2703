package solana

import (
	"testing"

	"github.com/mr-tron/base58"
)

func TestKeypairGeneratorProducesValidAddresses(t *testing.T) {
	gen := NewKeypairGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		addr, err := gen.GenerateAddress()
		if err != nil {
			t.Fatalf("failed to generate address: %v", err)
		}
		if err := ValidateAddress(addr); err != nil {
			t.Fatalf("generated address %q failed validation: %v", addr, err)
		}
		if seen[addr] {
			t.Fatalf("generated duplicate address %q", addr)
		}
		seen[addr] = true
	}
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{
			name: "system program",
			addr: "11111111111111111111111111111111",
		},
		{
			name: "token program",
			addr: "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA",
		},
		{
			name:    "empty",
			addr:    "",
			wantErr: true,
		},
		{
			name:    "invalid base58 characters",
			addr:    "0OIl+/=",
			wantErr: true,
		},
		{
			name:    "too short",
			addr:    base58.Encode([]byte{1, 2, 3}),
			wantErr: true,
		},
		{
			name:    "off curve",
			addr:    base58.Encode(offCurvePoint()),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddress(tt.addr)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for %q, got nil", tt.addr)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.addr, err)
			}
		})
	}
}

// offCurvePoint returns a 32-byte value that does not decode to an ed25519
// curve point. The all-0xff pattern has a y coordinate outside the field.
func offCurvePoint() []byte {
	p := make([]byte, addressLen)
	for i := range p {
		p[i] = 0xff
	}
	return p
}
