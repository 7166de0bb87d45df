package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "picoplaca/pkg/domain-errors"
)

// TestParsePlate_Invariants validates the parsing invariant:
// "plates are 2 or 3 uppercase letters, a hyphen, and a 4-digit suffix".
func TestParsePlate_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParsePlate("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects short suffix", func(t *testing.T) {
		_, err := ParsePlate("EBA-023")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects lowercase letters", func(t *testing.T) {
		_, err := ParsePlate("eba-0234")
		require.Error(t, err)
	})

	t.Run("rejects missing hyphen", func(t *testing.T) {
		_, err := ParsePlate("EBA0234")
		require.Error(t, err)
	})

	t.Run("rejects extra hyphen", func(t *testing.T) {
		_, err := ParsePlate("EB-A-0234")
		require.Error(t, err)
	})

	t.Run("rejects non-digit suffix", func(t *testing.T) {
		_, err := ParsePlate("EBA-02X4")
		require.Error(t, err)
	})

	t.Run("rejects single-letter prefix", func(t *testing.T) {
		_, err := ParsePlate("A-1234")
		require.Error(t, err)
	})

	t.Run("accepts private plate", func(t *testing.T) {
		p, err := ParsePlate("EBA-0234")
		require.NoError(t, err)
		assert.Equal(t, "EBA", p.Prefix())
		assert.Equal(t, "0234", p.Suffix())
		assert.Equal(t, 4, p.LastDigit())
		assert.Equal(t, "EBA-0234", p.String())
	})

	t.Run("accepts diplomatic plate", func(t *testing.T) {
		p, err := ParsePlate("CD-0123")
		require.NoError(t, err)
		assert.Equal(t, 3, p.LastDigit())
	})
}

func TestPlate_LastDigit(t *testing.T) {
	p, err := ParsePlate("PBX-1230")
	require.NoError(t, err)
	assert.Equal(t, 0, p.LastDigit())
}

// TestPlate_Exempt covers the vehicle classes the ordinance never restricts.
func TestPlate_Exempt(t *testing.T) {
	t.Run("diplomatic two-letter prefix is exempt", func(t *testing.T) {
		p, err := ParsePlate("CD-0234")
		require.NoError(t, err)
		assert.True(t, p.Exempt())
	})

	t.Run("official class letters are exempt", func(t *testing.T) {
		for _, raw := range []string{"AEC-0234", "PUB-0234", "PZA-0234", "PEJ-0234", "PXA-0234", "PMA-0234"} {
			p, err := ParsePlate(raw)
			require.NoError(t, err)
			assert.True(t, p.Exempt(), "plate %s should be exempt", raw)
		}
	})

	t.Run("private plate is not exempt", func(t *testing.T) {
		p, err := ParsePlate("EBA-0234")
		require.NoError(t, err)
		assert.False(t, p.Exempt())
	})
}
