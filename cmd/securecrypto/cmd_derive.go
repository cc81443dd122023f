package main

import (
	"encoding/hex"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/mavbozo/securecrypto"
)

type deriveCmd struct {
	Domain  string `arg:"" help:"The purpose domain, e.g. myapp.encryption."`
	Context string `arg:"" help:"The usage context within the domain."`

	Size      int    `default:"32" help:"The derived key size in bytes."`
	Algorithm string `default:"sha256" enum:"sha256,sha512,sha1" help:"The HMAC variant."`
}

func (cmd *deriveCmd) Run(_ *kong.Context) error {
	// Read the master key off the terminal; 16 bytes is the derivation
	// minimum, longer keys are fine.
	master, err := askKey("Enter master key (hex): ", 0)
	if err != nil {
		return err
	}

	key, err := securecrypto.Derive(master, cmd.Domain, cmd.Context, cmd.Size, cmd.algorithm())
	if err != nil {
		return err
	}

	return key.Use(func(b []byte) error {
		fmt.Println(hex.EncodeToString(b))
		return nil
	})
}

func (cmd *deriveCmd) algorithm() securecrypto.Algorithm {
	switch cmd.Algorithm {
	case "sha512":
		return securecrypto.SHA512
	case "sha1":
		return securecrypto.SHA1
	default:
		return securecrypto.SHA256
	}
}
