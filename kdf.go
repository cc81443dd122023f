package securecrypto

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // deprecated variant retained for compatibility
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/hkdf"
)

// Algorithm selects the HMAC variant used by key derivation.
type Algorithm int

const (
	// SHA256 is HMAC-SHA-256 with a 32-byte MAC.
	SHA256 Algorithm = iota

	// SHA512 is HMAC-SHA-512 with a 64-byte MAC.
	SHA512

	// SHA1 is HMAC-SHA-1 with a 20-byte MAC.
	//
	// Deprecated: retained only for compatibility with existing
	// derivations. Use SHA256 or SHA512.
	SHA1
)

// Size returns the MAC output length in bytes.
func (a Algorithm) Size() int {
	switch a {
	case SHA512:
		return sha512.Size
	case SHA1:
		return sha1.Size
	default:
		return sha256.Size
	}
}

// String returns the HMAC algorithm name.
func (a Algorithm) String() string {
	switch a {
	case SHA256:
		return "HmacSHA256"
	case SHA512:
		return "HmacSHA512"
	case SHA1:
		return "HmacSHA1"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// hash returns the underlying hash constructor.
func (a Algorithm) hash() func() hash.Hash {
	switch a {
	case SHA512:
		return sha512.New
	case SHA1:
		return sha1.New
	default:
		return sha256.New
	}
}

const (
	// DefaultKeySize is the derived key length used by DeriveKey.
	DefaultKeySize = 32

	// minMasterKeySize is the smallest master key accepted for derivation.
	minMasterKeySize = 16

	// infoPrefix and infoVersionTag frame every derivation's info string:
	//
	//	infoPrefix || domain || infoVersionTag || context
	//
	// The prefix and the version tag are part of the derivation contract;
	// changing either changes every derived key.
	infoPrefix     = "com.mavbozo.androidsecurecrypto."
	infoVersionTag = ".v1:"
)

// DeriveKey derives a 32-byte key from master with HMAC-SHA-256, separated
// by domain and context. See Derive.
func DeriveKey(master []byte, domain, context string) (*SecureBuffer, error) {
	return Derive(master, domain, context, DefaultKeySize, SHA256)
}

// Derive derives a size-byte key from master using HKDF (RFC 5869) over the
// given algorithm. The Extract salt is all zeros of the MAC length, and the
// Expand info string is
//
//	"com.mavbozo.androidsecurecrypto." || domain || ".v1:" || context
//
// so keys derived for different domains or contexts are computationally
// independent. For fixed inputs the output is bit-for-bit identical across
// calls and implementations.
//
// The master key must be at least 16 bytes, domain and context must be
// non-empty, and size must be in (0, 255*MAC length]. Every HKDF
// intermediate is wiped before return, on success and failure alike.
func Derive(master []byte, domain, context string, size int, alg Algorithm) (*SecureBuffer, error) {
	switch {
	case size <= 0:
		return nil, fmt.Errorf("%w: key size must be positive, got %d", ErrInvalidArgument, size)
	case len(master) < minMasterKeySize:
		return nil, fmt.Errorf("%w: master key too short, need at least %d bytes", ErrInvalidArgument, minMasterKeySize)
	case domain == "":
		return nil, fmt.Errorf("%w: domain must not be empty", ErrInvalidArgument)
	case context == "":
		return nil, fmt.Errorf("%w: context must not be empty", ErrInvalidArgument)
	case size > 255*alg.Size():
		return nil, fmt.Errorf("%w: key size %d exceeds %s limit of %d", ErrInvalidArgument, size, alg, 255*alg.Size())
	}

	info := []byte(infoPrefix + domain + infoVersionTag + context)

	// Extract with the "salt not provided" case: zeros of the MAC length.
	salt := make([]byte, alg.Size())
	defer memguard.WipeBytes(salt)

	prk := hkdf.Extract(alg.hash(), master, salt)
	defer memguard.WipeBytes(prk)

	okm := expand(alg.hash(), prk, info, size)

	return NewSecureBuffer(okm), nil
}

// expand implements HKDF-Expand (RFC 5869 §2.3):
//
//	T(0) = empty
//	T(i) = HMAC(PRK, T(i-1) || info || i)
//
// concatenating T(1)..T(N) truncated to size. It is written out against
// crypto/hmac rather than layered on the x/crypto reader so every T(i)
// block can be wiped; the reader retains its last block internally.
//
// The caller has validated 0 < size <= 255*MAC length.
func expand(h func() hash.Hash, prk, info []byte, size int) []byte {
	mac := hmac.New(h, prk)
	okm := make([]byte, size)

	var t []byte

	for off, i := 0, byte(1); off < size; i++ {
		mac.Reset()
		mac.Write(t)
		mac.Write(info)
		mac.Write([]byte{i})

		block := mac.Sum(nil)
		memguard.WipeBytes(t)
		t = block

		off += copy(okm[off:], t)
	}

	memguard.WipeBytes(t)

	return okm
}
