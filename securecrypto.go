// Package securecrypto provides a small set of interlocking symmetric
// primitives for applications that handle key material in memory: a
// zeroizing secure buffer, a provenance-labelled random source with an
// enhanced two-source mixer, HKDF key derivation with strict domain
// separation, and an authenticated AES-256-GCM cipher with a
// self-describing, version-tagged ciphertext container.
//
// Sensitive byte material produced by this package is held in SecureBuffer
// values and is overwritten with zeros on every exit path, including error
// returns and panics. Derived keys are deterministic and portable: for a
// fixed master key, domain, context, size, and algorithm, Derive produces
// bit-identical output across processes and implementations. The framed
// ciphertext format is likewise bit-identical across implementations and is
// the only persistent format this package produces.
package securecrypto

import "errors"

// Sentinel errors for errors.Is checks. Operational failures wrap one of
// these with a sub-reason, e.g. "invalid header: unsupported version".
var (
	// ErrInvalidArgument is returned when a caller-supplied size, key, or
	// derivation parameter fails validation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidHeader is returned when framed ciphertext fails header
	// validation. It is always distinct from ErrAuthFailure: header checks
	// run before the GCM tag is verified.
	ErrInvalidHeader = errors.New("invalid header")

	// ErrAuthFailure is returned when the GCM tag does not verify, which
	// means the ciphertext was tampered with or the key is wrong.
	ErrAuthFailure = errors.New("authentication failed")

	// ErrBackendUnavailable is returned when the platform identity or the
	// system CSPRNG cannot be obtained.
	ErrBackendUnavailable = errors.New("entropy backend unavailable")

	// ErrIO is returned when a file read, write, or rename fails. It wraps
	// the underlying cause.
	ErrIO = errors.New("i/o failure")

	// ErrEncoding is returned when hex or Base64 decoding receives
	// malformed input, or when decrypted plaintext is not valid UTF-8.
	ErrEncoding = errors.New("encoding failure")
)
