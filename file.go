package securecrypto

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/awnumar/memguard"
)

// MaxFileSize is the largest file EncryptFile and DecryptFile accept. The
// whole file is read into memory, so the cap bounds the working set.
const MaxFileSize = 10 * 1024 * 1024

// EncryptFile reads src in full, encrypts it under key, and writes the
// framed ciphertext to dst. The write goes to a temporary file in dst's
// directory which is renamed into place on success, so a readable dst
// always holds complete, authenticated output. The plaintext buffer is
// wiped on every exit.
//
// Sources larger than MaxFileSize are rejected with ErrInvalidArgument.
func EncryptFile(key []byte, src, dst string) error {
	plaintext, err := readCapped(src)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(plaintext)

	framed, err := EncryptBytes(key, plaintext)
	if err != nil {
		return err
	}

	return writeAtomic(dst, framed)
}

// DecryptFile reads the framed ciphertext at src in full, authenticates and
// decrypts it under key, and writes the plaintext to dst via the same
// temp-and-rename discipline. The plaintext buffer is wiped after the
// write. The size cap applies to the encrypted input.
func DecryptFile(key []byte, src, dst string) error {
	framed, err := readCapped(src)
	if err != nil {
		return err
	}

	plaintext, err := DecryptBytes(key, framed)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(plaintext)

	return writeAtomic(dst, plaintext)
}

// readCapped reads the file at path in full, rejecting files over
// MaxFileSize before reading.
func readCapped(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", ErrIO, path, err)
	}

	if fi.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s exceeds maximum allowed size of %d bytes", ErrInvalidArgument, path, MaxFileSize)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
	}

	return b, nil
}

// writeAtomic writes data to a temporary file next to dst and renames it
// into place, removing the temporary file on any failure.
func writeAtomic(dst string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dst), filepath.Base(dst)+".tmp*")
	if err != nil {
		return fmt.Errorf("%w: create temp for %s: %v", ErrIO, dst, err)
	}

	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)

		return fmt.Errorf("%w: write %s: %v", ErrIO, dst, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)

		return fmt.Errorf("%w: close %s: %v", ErrIO, dst, err)
	}

	if err := os.Rename(name, dst); err != nil {
		_ = os.Remove(name)

		return fmt.Errorf("%w: rename %s: %v", ErrIO, dst, err)
	}

	return nil
}
