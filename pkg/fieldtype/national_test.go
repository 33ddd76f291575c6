package fieldtype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPESEL(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		_, msg := run(t, "pesel", "44051401359")
		assert.Empty(t, msg)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{
			"44051401358", // wrong control digit
			"4405140135",  // too short
			"4405140135a", // non-digit
		} {
			_, msg := run(t, "pesel", raw)
			assert.NotEmpty(t, msg, raw)
		}
	})
}

func TestBSN(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		_, msg := run(t, "bsn", "111222333")
		assert.Empty(t, msg)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{
			"111222334",
			"11122233",
			"11122233x",
		} {
			_, msg := run(t, "bsn", raw)
			assert.NotEmpty(t, msg, raw)
		}
	})
}

func TestDNI(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		_, msg := run(t, "dni", "12345678z")
		assert.Empty(t, msg, "control letter check is case-insensitive via pre")
	})

	t.Run("invalid", func(t *testing.T) {
		for _, raw := range []string{
			"12345678A", // wrong control letter
			"1234567Z",  // too short
			"abcdefghZ", // non-digit body
		} {
			_, msg := run(t, "dni", raw)
			assert.NotEmpty(t, msg, raw)
		}
	})
}
