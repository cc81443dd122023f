package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/awnumar/memguard"

	"github.com/mavbozo/securecrypto"
)

type decryptCmd struct {
	Ciphertext string `arg:"" type:"existingfile" help:"The path to the ciphertext file."`
	Plaintext  string `arg:"" type:"path" help:"The path to the plaintext file."`

	Armor bool `help:"Decode the ciphertext from base64 text."`
}

func (cmd *decryptCmd) Run(_ *kong.Context) error {
	key, err := encryptionKey()
	if err != nil {
		return err
	}

	defer memguard.WipeBytes(key)

	if !cmd.Armor {
		return securecrypto.DecryptFile(key, cmd.Ciphertext, cmd.Plaintext)
	}

	armored, err := os.ReadFile(cmd.Ciphertext)
	if err != nil {
		return err
	}

	plaintext, err := securecrypto.DecryptString(key, strings.TrimSpace(string(armored)))
	if err != nil {
		return err
	}

	b := []byte(plaintext)
	defer memguard.WipeBytes(b)

	return os.WriteFile(cmd.Plaintext, b, 0o600)
}
