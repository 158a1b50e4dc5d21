package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"0.05", 5, false},
		{"100", 10000, false},
		{"100.00", 10000, false},
		{"5.5", 550, false},
		{".99", 99, false},
		{"0", 0, false},
		{" 7.25 ", 725, false},
		{"", 0, true},
		{"-1.00", 0, true},
		{"1.234", 0, true},
		{"abc", 0, true},
		{"1.2x", 0, true},
		// Amounts whose cents would wrap int64 must be rejected, not
		// silently parsed as small values.
		{"4611686018427387904", 0, true},
		{"9223372036854775807.99", 0, true},
		{"99999999999999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCents(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "12.34", FormatCents(1234))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "100.00", FormatCents(10000))
	assert.Equal(t, "-1.50", FormatCents(-150))
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"0.00", "5.50", "100.00", "12.34"} {
		cents, err := ParseCents(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatCents(cents))
	}
}
