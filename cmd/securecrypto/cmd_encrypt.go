package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/awnumar/memguard"

	"github.com/mavbozo/securecrypto"
)

type encryptCmd struct {
	Plaintext  string `arg:"" type:"existingfile" help:"The path to the plaintext file."`
	Ciphertext string `arg:"" type:"path" help:"The path to the ciphertext file."`

	Armor bool `help:"Encode the ciphertext as base64 text."`
}

func (cmd *encryptCmd) Run(_ *kong.Context) error {
	key, err := encryptionKey()
	if err != nil {
		return err
	}

	defer memguard.WipeBytes(key)

	if !cmd.Armor {
		return securecrypto.EncryptFile(key, cmd.Plaintext, cmd.Ciphertext)
	}

	plaintext, err := os.ReadFile(cmd.Plaintext)
	if err != nil {
		return err
	}

	defer memguard.WipeBytes(plaintext)

	armored, err := securecrypto.EncryptString(key, string(plaintext))
	if err != nil {
		return err
	}

	return os.WriteFile(cmd.Ciphertext, []byte(armored+"\n"), 0o600)
}
