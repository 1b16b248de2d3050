package bip32path

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input  string
		output Path
		err    error
	}{
		// Plain absolute derivation paths
		{"m/44'/0'/0'", Path{hdkeychain.HardenedKeyStart + 44, hdkeychain.HardenedKeyStart, hdkeychain.HardenedKeyStart}, nil},
		{"m/84'/0'/0'/0", Path{hdkeychain.HardenedKeyStart + 84, hdkeychain.HardenedKeyStart, hdkeychain.HardenedKeyStart, 0}, nil},
		{"m/84'/0'/0'/128", Path{hdkeychain.HardenedKeyStart + 84, hdkeychain.HardenedKeyStart, hdkeychain.HardenedKeyStart, 128}, nil},
		{"m/2147483692/2147483648/2147483648", Path{hdkeychain.HardenedKeyStart + 44, hdkeychain.HardenedKeyStart, hdkeychain.HardenedKeyStart}, nil},

		// Hexadecimal absolute derivation paths
		{"m/0x2C'/0x00'/0x00'", Path{hdkeychain.HardenedKeyStart + 44, hdkeychain.HardenedKeyStart, hdkeychain.HardenedKeyStart}, nil},
		{"m/0x8000002C/0x80000000/0x80000000", Path{hdkeychain.HardenedKeyStart + 44, hdkeychain.HardenedKeyStart, hdkeychain.HardenedKeyStart}, nil},

		// Relative derivation paths
		{"48'/0'/0'/2'", Path{hdkeychain.HardenedKeyStart + 48, hdkeychain.HardenedKeyStart, hdkeychain.HardenedKeyStart, hdkeychain.HardenedKeyStart + 2}, nil},
		{"0'/0/0", Path{hdkeychain.HardenedKeyStart, 0, 0}, nil},

		// Master key
		{"m", Path{}, nil},

		// Invalid derivation paths
		{"", nil, ErrNullPath},                                  // Empty path
		{"m/", nil, ErrMalformedPath},                           // Missing last derivation component
		{"/44'/0'/0'", nil, ErrMalformedPath},                   // Absolute path without m prefix, might be user error
		{"m/0/0/0/0/0/0/0/0/0", nil, ErrPathTooLong},            // More steps than the protocol supports
		{"m/2147483648'", nil, nil},                             // Overflows 32 bit integer (dynamic values on error, not constant)
		{"m/-1'", nil, nil},                                     // Cannot contain negative number (dynamic values on error, not constant)
	}
	for _, tt := range tests {
		path, err := Parse(tt.input)
		if err != nil {
			if tt.err != nil {
				assert.Equal(t, tt.err, err)
			}
		}
		assert.Equal(t, tt.output, path)
	}
}

func TestParseHardenedBound(t *testing.T) {
	// The biggest index that still fits once the hardened bit is set.
	path, err := Parse("m/2147483647'")
	require.NoError(t, err)
	assert.Equal(t, Path{Hardened(MaxHardenedValue)}, path)

	_, err = Parse("m/2147483648'")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	tests := []struct {
		path     Path
		expected string
	}{
		{Path{}, "m"},
		{Path{Hardened(44), Hardened(0), Hardened(0)}, "m/44'/0'/0'"},
		{Path{Hardened(48), Hardened(0), Hardened(0), Hardened(2)}, "m/48'/0'/0'/2'"},
		{Path{Hardened(84), Hardened(0), Hardened(0), 0, 42}, "m/84'/0'/0'/0/42"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.path.String())
	}
}

func TestRoundTrip(t *testing.T) {
	paths := []string{
		"m/44'/0'/0'",
		"m/48'/1'/0'/2'",
		"m/84'/0'/0'/1/3",
	}
	for _, strPath := range paths {
		path, err := Parse(strPath)
		require.NoError(t, err)
		assert.Equal(t, strPath, path.String())
	}
}

func TestHardenedHelpers(t *testing.T) {
	assert.Equal(t, uint32(0x8000002C), Hardened(44))
	assert.True(t, IsHardened(Hardened(0)))
	assert.False(t, IsHardened(0x7FFFFFFF))
	assert.Equal(t, uint32(44), UnhardenedValue(Hardened(44)))
	assert.Equal(t, uint32(44), UnhardenedValue(44))
}
