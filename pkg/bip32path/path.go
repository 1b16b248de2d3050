package bip32path

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

const (
	// MaxSteps is the maximum number of derivation steps supported by the
	// device protocol. Longer paths are rejected at parse time.
	MaxSteps = 8

	// MaxHardenedValue is the max value for hardened indexes of BIP32
	// derivation paths
	MaxHardenedValue = math.MaxUint32 - hdkeychain.HardenedKeyStart
)

// Path is the internal representation of a BIP32 derivation path, one
// unsigned 32-bit integer per derivation step with the hardened flag encoded
// in the high bit. The empty path identifies the master key.
type Path []uint32

// Hardened returns the hardened derivation index for the given step value.
func Hardened(value uint32) uint32 {
	return hdkeychain.HardenedKeyStart + value
}

// IsHardened reports whether the given derivation index has the hardened
// bit set.
func IsHardened(value uint32) bool {
	return value >= hdkeychain.HardenedKeyStart
}

// UnhardenedValue returns the given derivation index with the hardened bit
// masked off.
func UnhardenedValue(value uint32) uint32 {
	return value & ^uint32(hdkeychain.HardenedKeyStart)
}

// Parse converts a derivation path string to the internal binary
// representation. Both absolute ("m/44'/0'/0'") and relative ("44'/0'/0'")
// paths are accepted, the string "m" alone identifies the master key.
func Parse(strPath string) (Path, error) {
	path := Path{}

	if strPath == "" {
		return nil, ErrNullPath
	}
	if strings.TrimSpace(strPath) == "m" {
		return path, nil
	}

	elems := strings.Split(strPath, "/")
	switch {
	case containsEmptyString(elems):
		return nil, ErrMalformedPath
	case len(elems) > 1 && strings.TrimSpace(elems[0]) == "m":
		elems = elems[1:]
	}

	if len(elems) > MaxSteps {
		return nil, ErrPathTooLong
	}

	// all remaining elems are relative, append one by one
	for _, elem := range elems {
		elem = strings.TrimSpace(elem)
		var value uint32

		if strings.HasSuffix(elem, "'") {
			value = hdkeychain.HardenedKeyStart
			elem = strings.TrimSpace(strings.TrimSuffix(elem, "'"))
		}

		// use big int for conversion
		bigval, ok := new(big.Int).SetString(elem, 0)
		if !ok {
			return nil, fmt.Errorf("invalid elem '%s' in path", elem)
		}

		max := uint32(math.MaxUint32)
		if value == hdkeychain.HardenedKeyStart {
			max = MaxHardenedValue
		}
		if bigval.Sign() < 0 || bigval.Cmp(big.NewInt(int64(max))) > 0 {
			if value == 0 {
				return nil, fmt.Errorf("elem %v must be in range [0, %d]", bigval, max)
			}
			return nil, fmt.Errorf("elem %v must be in hardened range [0, %d]", bigval, max)
		}
		value += uint32(bigval.Uint64())

		path = append(path, value)
	}

	return path, nil
}

// String converts a binary derivation path to its canonical representation.
// The master key is rendered as "m".
func (path Path) String() string {
	result := "m"
	for _, component := range path {
		var hardened bool
		if component >= hdkeychain.HardenedKeyStart {
			component -= hdkeychain.HardenedKeyStart
			hardened = true
		}
		result = fmt.Sprintf("%s/%d", result, component)
		if hardened {
			result += "'"
		}
	}
	return result
}

// Validate returns an error if the path exceeds the protocol maximum.
func (path Path) Validate() error {
	if len(path) > MaxSteps {
		return ErrPathTooLong
	}
	return nil
}

func containsEmptyString(composedPath []string) bool {
	for _, s := range composedPath {
		if s == "" {
			return true
		}
	}
	return false
}
