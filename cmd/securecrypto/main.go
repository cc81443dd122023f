package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/awnumar/memguard"
	"golang.org/x/term"

	"github.com/mavbozo/securecrypto"
)

type cli struct {
	Random  randomCmd  `cmd:"" help:"Generate random bytes."`
	Derive  deriveCmd  `cmd:"" help:"Derive a key from a master key."`
	Encrypt encryptCmd `cmd:"" help:"Encrypt a file with AES-256-GCM."`
	Decrypt decryptCmd `cmd:"" help:"Decrypt a framed ciphertext file."`
}

func main() {
	var cli cli

	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// askKey prompts for a hex-encoded key on stderr and decodes it. The hex
// input is wiped after decoding.
func askKey(prompt string, wantLen int) ([]byte, error) {
	defer func() { _, _ = fmt.Fprintln(os.Stderr) }()

	_, _ = fmt.Fprint(os.Stderr, prompt)

	line, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, err
	}

	defer memguard.WipeBytes(line)

	key := make([]byte, hex.DecodedLen(len(line)))
	if _, err := hex.Decode(key, line); err != nil {
		return nil, fmt.Errorf("key must be hex: %w", err)
	}

	if wantLen > 0 && len(key) != wantLen {
		memguard.WipeBytes(key)
		return nil, fmt.Errorf("key must be %d bytes, got %d", wantLen, len(key))
	}

	return key, nil
}

// encryptionKey prompts for the 32-byte AES key.
func encryptionKey() ([]byte, error) {
	return askKey("Enter key (64 hex chars): ", securecrypto.KeySize)
}
