package securecrypto

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Format identifies a cipher format inside the framed ciphertext container.
type Format byte

const (
	// FormatAESGCM is AES-256-GCM with a 96-bit IV and 128-bit tag.
	FormatAESGCM Format = 0x01
)

// paramsLen returns the length of the format's parameter block.
func (f Format) paramsLen() int {
	return gcmParamsLen
}

const (
	headerMagic   = "SECB"
	headerVersion = 0x01

	// fixedHeaderLen is the length of the header before the parameter
	// block: magic (4), version (1), algorithm id (1), params length (2).
	fixedHeaderLen = 8

	// KeySize is the AES-256-GCM key length in bytes.
	KeySize = 32

	gcmIVSize    = 12
	gcmTagBits   = 128
	gcmParamsLen = gcmIVSize + 4
)

// header is the self-describing prefix of a framed ciphertext. All
// multi-byte integers are big-endian.
//
//	offset  size  field
//	0       4     magic "SECB"
//	4       1     version 0x01
//	5       1     algorithm id
//	6       2     parameter block length L
//	8       L     parameter block
type header struct {
	format Format
	params []byte
}

// newGCMHeader builds an AES-GCM header around a fresh IV. The parameter
// block is IV (12 bytes) followed by the tag bit length (4 bytes).
func newGCMHeader(iv []byte) header {
	params := make([]byte, gcmParamsLen)
	copy(params, iv)
	binary.BigEndian.PutUint32(params[gcmIVSize:], gcmTagBits)

	return header{format: FormatAESGCM, params: params}
}

// encode emits the fixed prefix plus the parameter block.
func (h header) encode() []byte {
	buf := make([]byte, 0, fixedHeaderLen+len(h.params))
	buf = append(buf, headerMagic...)
	buf = append(buf, headerVersion, byte(h.format))
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(h.params)))
	buf = append(buf, h.params...)

	return buf
}

// len returns the total encoded header length.
func (h header) len() int {
	return fixedHeaderLen + len(h.params)
}

// gcmParams slices the IV and tag bit length out of the parameter block.
// Only a 128-bit tag is accepted.
func (h header) gcmParams() (iv []byte, err error) {
	if tagBits := binary.BigEndian.Uint32(h.params[gcmIVSize:]); tagBits != gcmTagBits {
		return nil, headerErr("unexpected tag length")
	}

	return h.params[:gcmIVSize], nil
}

// headerErr wraps ErrInvalidHeader with the failing validation step.
func headerErr(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidHeader, reason)
}

// parseHeader validates and decodes the header at the front of b. Checks
// run in a fixed order and fail with the first mismatched step, so a
// header whose structure fails validation is reported as ErrInvalidHeader
// and never reaches the cipher. The IV bytes of the parameter block are not
// checked here; a corrupted IV surfaces as ErrAuthFailure on decryption.
func parseHeader(b []byte) (header, error) {
	if len(b) < fixedHeaderLen {
		return header{}, headerErr("truncated header")
	}

	if !bytes.Equal(b[0:4], []byte(headerMagic)) {
		return header{}, headerErr("invalid magic")
	}

	if b[4] != headerVersion {
		return header{}, headerErr("unsupported version")
	}

	format := Format(b[5])
	if format != FormatAESGCM {
		return header{}, headerErr("unsupported algorithm")
	}

	l := int(binary.BigEndian.Uint16(b[6:8]))
	if l == 0 || l != format.paramsLen() {
		return header{}, headerErr("invalid params length")
	}

	if len(b) < fixedHeaderLen+l {
		return header{}, headerErr("truncated params")
	}

	return header{format: format, params: b[fixedHeaderLen : fixedHeaderLen+l]}, nil
}
