package securecrypto

import "github.com/awnumar/memguard"

// SecureBuffer owns a byte region holding sensitive material and guarantees
// the region is zeroized when its scoped borrow ends. The wipe uses
// memguard.WipeBytes, a store the compiler cannot elide.
//
// A SecureBuffer is effectively single-use: Use wipes the region before it
// returns, so a second call observes all-zero bytes. That second call is
// defined behavior, not an error; callers which need the material twice
// should copy it out during the first borrow.
type SecureBuffer struct {
	buf []byte
}

// NewSecureBuffer wraps b in a SecureBuffer, taking ownership of it. The
// caller must not retain or read b afterwards. Wrapping never fails; a nil
// or empty slice yields a zero-length buffer.
func NewSecureBuffer(b []byte) *SecureBuffer {
	return &SecureBuffer{buf: b}
}

// Len returns the length of the wrapped region.
func (s *SecureBuffer) Len() int {
	return len(s.buf)
}

// Use invokes f with a mutable view of the wrapped bytes and wipes the
// entire region before returning, on every exit path: normal return, an
// error from f, or a panic propagating out of f. Any error from f is
// returned after the wipe.
func (s *SecureBuffer) Use(f func(b []byte) error) error {
	defer memguard.WipeBytes(s.buf)

	return f(s.buf)
}

// copyOut borrows the buffer once and returns a heap copy of its contents,
// leaving the internal region wiped.
func (s *SecureBuffer) copyOut() []byte {
	out := make([]byte, len(s.buf))

	_ = s.Use(func(b []byte) error {
		copy(out, b)
		return nil
	})

	return out
}
