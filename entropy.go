package securecrypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/awnumar/memguard"
)

// Quality labels the provenance of a random source. It describes the
// provider, never individual byte outputs.
type Quality int

const (
	// QualityFallback means the source is a software CSPRNG.
	QualityFallback Quality = iota

	// QualityHardware means the source is backed by a vendor driver or TEE.
	QualityHardware
)

// String returns the label name.
func (q Quality) String() string {
	if q == QualityHardware {
		return "Hardware"
	}

	return "Fallback"
}

// hwRNGDevice is the character device exposed by vendor/TEE RNG drivers on
// Linux. Its presence is the portable stand-in for the Android
// "AndroidOpenSSL"/"AndroidKeyStore" provider probe: both detect a
// hardware-backed source behind the OS CSPRNG.
const hwRNGDevice = "/dev/hwrng"

// detectQuality labels the OS CSPRNG. The label is a heuristic, not a gate;
// generation proceeds under either label.
func detectQuality() Quality {
	if runtime.GOOS == "linux" {
		if _, err := os.Stat(hwRNGDevice); err == nil {
			return QualityHardware
		}
	}

	return QualityFallback
}

// Generator produces cryptographically secure random bytes from the OS
// CSPRNG, labelled with the provenance of that source. It is safe for
// concurrent use; draws are serialized by the underlying reader.
type Generator struct {
	rng     io.Reader
	quality Quality
}

// NewGenerator returns a Generator around the OS CSPRNG. Construction draws
// and discards 64 bytes so a freshly seeded source has produced output
// before any caller-visible draw, then labels the provider quality.
func NewGenerator() (*Generator, error) {
	g := &Generator{rng: rand.Reader, quality: detectQuality()}

	var seed [64]byte
	defer memguard.WipeBytes(seed[:])

	if _, err := io.ReadFull(g.rng, seed[:]); err != nil {
		return nil, fmt.Errorf("%w: system CSPRNG read failed: %v", ErrBackendUnavailable, err)
	}

	return g, nil
}

// Quality returns the provenance label of the underlying source.
func (g *Generator) Quality() Quality {
	return g.quality
}

// Bytes fills a fresh buffer of exactly size bytes with CSPRNG output.
func (g *Generator) Bytes(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidArgument, size)
	}

	b := make([]byte, size)
	if _, err := io.ReadFull(g.rng, b); err != nil {
		return nil, fmt.Errorf("%w: system CSPRNG read failed: %v", ErrBackendUnavailable, err)
	}

	return b, nil
}

// SecureBytes is Bytes with the output wrapped for zeroization.
func (g *Generator) SecureBytes(size int) (*SecureBuffer, error) {
	b, err := g.Bytes(size)
	if err != nil {
		return nil, err
	}

	return NewSecureBuffer(b), nil
}

// GenerateBytes creates an ephemeral Generator, draws size bytes through a
// SecureBuffer, and returns a copy; the internal draw is wiped.
func GenerateBytes(size int) ([]byte, error) {
	g, err := NewGenerator()
	if err != nil {
		return nil, err
	}

	sb, err := g.SecureBytes(size)
	if err != nil {
		return nil, err
	}

	return sb.copyOut(), nil
}

// GenerateHex returns size random bytes rendered as lowercase hex. The
// output is 2*size characters.
func GenerateHex(size int) (string, error) {
	return generateAs(size, encodeHex)
}

// GenerateBase64 returns size random bytes rendered in the requested Base64
// variant as a single unwrapped line.
func GenerateBase64(size int, flags Base64Flags) (string, error) {
	enc, err := flags.encoding()
	if err != nil {
		return "", err
	}

	return generateAs(size, enc.EncodeToString)
}

// GenerateBase58 returns size random bytes rendered in the Bitcoin Base58
// alphabet.
func GenerateBase58(size int) (string, error) {
	return generateAs(size, encodeBase58)
}

// generateAs draws size bytes through a SecureBuffer and renders them with
// encode before the draw is wiped.
func generateAs(size int, encode func([]byte) string) (string, error) {
	g, err := NewGenerator()
	if err != nil {
		return "", err
	}

	sb, err := g.SecureBytes(size)
	if err != nil {
		return "", err
	}

	var out string

	if err := sb.Use(func(b []byte) error {
		out = encode(b)
		return nil
	}); err != nil {
		return "", err
	}

	return out, nil
}
