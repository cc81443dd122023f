package securecrypto

import (
	"crypto/sha512"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/hkdf"

	"github.com/mavbozo/securecrypto/internal/identity"
)

// enhancedInfo is the expand-step label for the enhanced mixer.
const enhancedInfo = "enhanced-entropy"

// EnhancedGenerator layers defense-in-depth mixing over a Generator: each
// draw combines two independent CSPRNG blocks with fresh base entropy and
// the process identity through HKDF-SHA-512. Mixing does not raise entropy
// beyond the strongest input; it prevents a single compromised source from
// dominating the output.
//
// The declared quality is always QualityHardware. If the process identity
// cannot be obtained, construction fails rather than downgrades.
type EnhancedGenerator struct {
	base     *Generator
	identity []byte
}

// NewEnhancedGenerator returns an EnhancedGenerator bound to the process
// identity. It fails with ErrBackendUnavailable if the identity or the
// system CSPRNG is unavailable.
func NewEnhancedGenerator() (*EnhancedGenerator, error) {
	id, err := identity.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: process identity unavailable: %v", ErrBackendUnavailable, err)
	}

	base, err := NewGenerator()
	if err != nil {
		return nil, err
	}

	return &EnhancedGenerator{base: base, identity: id}, nil
}

// Quality always reports QualityHardware; construction has already failed
// if the mixing inputs are unavailable.
func (g *EnhancedGenerator) Quality() Quality {
	return QualityHardware
}

// Bytes returns size mixed random bytes.
func (g *EnhancedGenerator) Bytes(size int) ([]byte, error) {
	sb, err := g.SecureBytes(size)
	if err != nil {
		return nil, err
	}

	return sb.copyOut(), nil
}

// SecureBytes returns size mixed random bytes wrapped for zeroization.
//
// The mix draws block1, block2, and base entropy as three independent
// CSPRNG reads, then computes
//
//	HKDF-SHA-512(salt=identity, ikm=block1 || block2 || base, info="enhanced-entropy")
//
// expanded to size bytes. All intermediate buffers are wiped before return.
func (g *EnhancedGenerator) SecureBytes(size int) (*SecureBuffer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidArgument, size)
	}

	// Three independent draws: two mixing blocks plus base entropy.
	ikm := make([]byte, 3*size)
	defer memguard.WipeBytes(ikm)

	for i := 0; i < 3; i++ {
		block, err := g.base.Bytes(size)
		if err != nil {
			return nil, err
		}

		copy(ikm[i*size:], block)
		memguard.WipeBytes(block)
	}

	out := make([]byte, size)

	r := hkdf.New(sha512.New, ikm, g.identity, []byte(enhancedInfo))
	if _, err := io.ReadFull(r, out); err != nil {
		memguard.WipeBytes(out)
		return nil, fmt.Errorf("%w: entropy mixing failed: %v", ErrBackendUnavailable, err)
	}

	return NewSecureBuffer(out), nil
}
