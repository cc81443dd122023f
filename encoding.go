package securecrypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
)

// Base64Flags selects one of the four Base64 output variants. All variants
// emit a single continuous string with no line breaks.
type Base64Flags int

const (
	// Base64Default uses the standard alphabet with padding.
	Base64Default Base64Flags = iota

	// Base64NoPadding uses the standard alphabet without padding.
	Base64NoPadding

	// Base64URLSafe uses the URL-safe alphabet with padding.
	Base64URLSafe

	// Base64URLSafeNoPadding uses the URL-safe alphabet without padding.
	Base64URLSafeNoPadding
)

// encoding maps the flag to its encoding/base64 codec.
func (f Base64Flags) encoding() (*base64.Encoding, error) {
	switch f {
	case Base64Default:
		return base64.StdEncoding, nil
	case Base64NoPadding:
		return base64.RawStdEncoding, nil
	case Base64URLSafe:
		return base64.URLEncoding, nil
	case Base64URLSafeNoPadding:
		return base64.RawURLEncoding, nil
	default:
		return nil, fmt.Errorf("%w: unknown Base64 variant %d", ErrInvalidArgument, int(f))
	}
}

// encodeHex renders b as lowercase hex, two characters per byte.
func encodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// encodeBase58 renders b in the Bitcoin Base58 alphabet.
func encodeBase58(b []byte) string {
	return base58.Encode(b)
}

// decodeBase64Std decodes a standard, padded, unwrapped Base64 string.
func decodeBase64Std(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed Base64 input: %v", ErrEncoding, err)
	}

	return b, nil
}
