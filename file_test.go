package securecrypto

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	key := testKey()
	dir := t.TempDir()

	src := filepath.Join(dir, "plain.txt")
	enc := filepath.Join(dir, "plain.txt.secb")
	dec := filepath.Join(dir, "plain.txt.out")

	want := bytes.Repeat([]byte("file round trip\n"), 1000)
	if err := os.WriteFile(src, want, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := EncryptFile(key, src, enc); err != nil {
		t.Fatal(err)
	}

	framed, err := os.ReadFile(enc)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "framed length", len(want)+24+16, len(framed))

	if err := DecryptFile(key, enc, dec); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dec)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "round trip", want, got)
}

func TestFileEmptyPlaintext(t *testing.T) {
	t.Parallel()

	key := testKey()
	dir := t.TempDir()

	src := filepath.Join(dir, "empty")
	enc := filepath.Join(dir, "empty.secb")
	dec := filepath.Join(dir, "empty.out")

	if err := os.WriteFile(src, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := EncryptFile(key, src, enc); err != nil {
		t.Fatal(err)
	}

	framed, err := os.ReadFile(enc)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "framed length", 40, len(framed))

	if err := DecryptFile(key, enc, dec); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dec)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "decrypted length", 0, len(got))
}

func TestEncryptFileSizeCap(t *testing.T) {
	t.Parallel()

	key := testKey()
	dir := t.TempDir()

	src := filepath.Join(dir, "big")
	if err := os.WriteFile(src, make([]byte, MaxFileSize+1), 0o600); err != nil {
		t.Fatal(err)
	}

	err := EncryptFile(key, src, filepath.Join(dir, "big.secb"))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
}

func TestEncryptFileMissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := EncryptFile(testKey(), filepath.Join(dir, "absent"), filepath.Join(dir, "out"))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("error = %v, want ErrIO", err)
	}
}

func TestDecryptFileTamperLeavesNoOutput(t *testing.T) {
	t.Parallel()

	key := testKey()
	dir := t.TempDir()

	src := filepath.Join(dir, "plain")
	enc := filepath.Join(dir, "plain.secb")
	dec := filepath.Join(dir, "plain.out")

	if err := os.WriteFile(src, []byte("authentic content"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := EncryptFile(key, src, enc); err != nil {
		t.Fatal(err)
	}

	framed, err := os.ReadFile(enc)
	if err != nil {
		t.Fatal(err)
	}

	framed[len(framed)-1] ^= 1

	if err := os.WriteFile(enc, framed, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := DecryptFile(key, enc, dec); !errors.Is(err, ErrAuthFailure) {
		t.Fatalf("error = %v, want ErrAuthFailure", err)
	}

	// A readable destination implies authenticated plaintext; a failed
	// decrypt must not leave one behind.
	if _, err := os.Stat(dec); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("destination exists after failed decrypt: %v", err)
	}
}

func TestEncryptFileOverwritesDestination(t *testing.T) {
	t.Parallel()

	key := testKey()
	dir := t.TempDir()

	src := filepath.Join(dir, "plain")
	dst := filepath.Join(dir, "out.secb")

	if err := os.WriteFile(src, []byte("new content"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(dst, []byte("stale"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := EncryptFile(key, src, dst); err != nil {
		t.Fatal(err)
	}

	framed, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}

	plaintext, err := DecryptBytes(key, framed)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "replaced content", []byte("new content"), plaintext)
}
