package securecrypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"regexp"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/mr-tron/base58"
)

func TestGeneratorBytes(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator()
	if err != nil {
		t.Fatal(err)
	}

	for _, size := range []int{1, 16, 32, 1024} {
		b, err := g.Bytes(size)
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, "output length", size, len(b))
	}
}

func TestGeneratorBadSizes(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator()
	if err != nil {
		t.Fatal(err)
	}

	for _, size := range []int{0, -1, -64} {
		if _, err := g.Bytes(size); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Bytes(%d) error = %v, want ErrInvalidArgument", size, err)
		}
	}
}

func TestGeneratorDistinctOutputs(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator()
	if err != nil {
		t.Fatal(err)
	}

	a, err := g.Bytes(32)
	if err != nil {
		t.Fatal(err)
	}

	b, err := g.Bytes(32)
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(a, b) {
		t.Fatal("successive draws produced identical output")
	}
}

func TestGeneratorQualityLabel(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator()
	if err != nil {
		t.Fatal(err)
	}

	switch q := g.Quality(); q {
	case QualityHardware, QualityFallback:
	default:
		t.Fatalf("unknown quality label %d", q)
	}
}

func TestGeneratorSecureBytes(t *testing.T) {
	t.Parallel()

	g, err := NewGenerator()
	if err != nil {
		t.Fatal(err)
	}

	sb, err := g.SecureBytes(16)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "buffer length", 16, sb.Len())

	if err := sb.Use(func(b []byte) error {
		if bytes.Equal(b, make([]byte, 16)) {
			t.Fatal("draw is all zero")
		}
		return nil
	}); err != nil {
		t.Fatal(err)
	}
}

func TestGenerateBytes(t *testing.T) {
	t.Parallel()

	b, err := GenerateBytes(24)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "output length", 24, len(b))

	if _, err := GenerateBytes(0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("GenerateBytes(0) error = %v, want ErrInvalidArgument", err)
	}

	if _, err := GenerateBytes(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("GenerateBytes(-1) error = %v, want ErrInvalidArgument", err)
	}
}

func TestGenerateHex(t *testing.T) {
	t.Parallel()

	hexPattern := regexp.MustCompile(`^[0-9a-f]+$`)

	for _, size := range []int{1, 16, 33} {
		s, err := GenerateHex(size)
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, "hex length", 2*size, len(s))

		if !hexPattern.MatchString(s) {
			t.Fatalf("output %q is not lowercase hex", s)
		}
	}
}

func TestGenerateBase64(t *testing.T) {
	t.Parallel()

	variants := []struct {
		name  string
		flags Base64Flags
		enc   *base64.Encoding
	}{
		{"default", Base64Default, base64.StdEncoding},
		{"no padding", Base64NoPadding, base64.RawStdEncoding},
		{"url safe", Base64URLSafe, base64.URLEncoding},
		{"url safe no padding", Base64URLSafeNoPadding, base64.RawURLEncoding},
	}

	for _, v := range variants {
		v := v

		t.Run(v.name, func(t *testing.T) {
			t.Parallel()

			for _, size := range []int{1, 2, 3, 16, 31} {
				s, err := GenerateBase64(size, v.flags)
				if err != nil {
					t.Fatal(err)
				}

				assert.Equal(t, "encoded length", v.enc.EncodedLen(size), len(s))

				decoded, err := v.enc.DecodeString(s)
				if err != nil {
					t.Fatal(err)
				}

				assert.Equal(t, "decoded length", size, len(decoded))
			}
		})
	}
}

func TestGenerateBase64UnknownVariant(t *testing.T) {
	t.Parallel()

	if _, err := GenerateBase64(16, Base64Flags(42)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
}

func TestGenerateBase58(t *testing.T) {
	t.Parallel()

	s, err := GenerateBase58(20)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := base58.Decode(s)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "decoded length", 20, len(decoded))
}

func TestQualityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hardware", "Hardware", QualityHardware.String())
	assert.Equal(t, "fallback", "Fallback", QualityFallback.String())
}

func BenchmarkGeneratorBytes(b *testing.B) {
	g, err := NewGenerator()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = g.Bytes(32)
	}
}
