package domain

import (
	"github.com/keyport-network/keyportd/pkg/bip32path"
)

const (
	// MaxRecommendedAccount is the highest BIP44 account index considered
	// standard for unattended export. Larger accounts require an on-device
	// confirmation.
	MaxRecommendedAccount = 100

	// MaxSerializedPubkeyLen is the upper bound on the base58 serialization
	// of an extended public key returned to the host.
	MaxSerializedPubkeyLen = 112
)

// Accepted purposes and the number of hardened steps their paths must start
// with. BIP45 formally prescribes a single hardened step, but deployed
// wallets use m/45'/coin_type'/account', so it is validated like BIP44.
var hardenedPrefixLenByPurpose = map[uint32]int{
	44: 3,
	45: 3,
	48: 4,
	49: 3,
	84: 3,
	86: 3,
}

// CoinTypeSet is the set of unhardened coin-type identifiers the device
// accepts as known coins.
type CoinTypeSet []uint32

// Contains reports whether the given unhardened coin type belongs to the set.
func (s CoinTypeSet) Contains(coinType uint32) bool {
	for _, c := range s {
		if c == coinType {
			return true
		}
	}
	return false
}

// pathException is a non-standard derivation path used by a third-party
// wallet before the export policy existed. Exceptions are matched by exact
// length and exact value on every step, hardened bit included, and bypass
// the structural policy entirely.
type pathException struct {
	wallet string
	path   bip32path.Path
}

var pathExceptions = []pathException{
	{
		// Qtum Electrum historically derived encryption keys at this path.
		wallet: "qtum-electrum",
		path: bip32path.Path{
			bip32path.Hardened(44),
			bip32path.Hardened(88),
			bip32path.Hardened(4541509),
			bip32path.Hardened(1112098098),
		},
	},
	{
		wallet: "legacy m/0'/45342'",
		path: bip32path.Path{
			bip32path.Hardened(0),
			bip32path.Hardened(45342),
		},
	},
	{
		wallet: "legacy m/20698'/3053'/12648430'",
		path: bip32path.Path{
			bip32path.Hardened(20698),
			bip32path.Hardened(3053),
			bip32path.Hardened(12648430),
		},
	},
}

// IsSafeForPubkeyExport classifies a derivation path as safe or unsafe for
// exporting an extended public key without user confirmation. The rules are
// evaluated in order and the first matching one decides:
//
//  1. paths matching a grandfathered exception are safe;
//  2. paths shorter than 3 steps are unsafe;
//  3. the purpose (first step, unhardened) must be a known wallet standard;
//  4. the path must be at least as long as the purpose's hardened prefix;
//  5. prefix steps must be hardened, any extra step must be unhardened;
//  6. the coin type (second step, unhardened) must be a known coin;
//  7. the account (third step, unhardened) must not exceed the recommended
//     maximum;
//  8. for purpose 48, the script type (fourth step, unhardened) must be 1
//     or 2.
func IsSafeForPubkeyExport(path bip32path.Path, coinTypes CoinTypeSet) bool {
	for _, exception := range pathExceptions {
		if pathsEqual(path, exception.path) {
			return true
		}
	}

	if len(path) < 3 {
		return false
	}

	purpose := bip32path.UnhardenedValue(path[0])
	hardenedPrefixLen, ok := hardenedPrefixLenByPurpose[purpose]
	if !ok {
		return false
	}

	// the path can have additional unhardened steps after the prefix, but
	// never fewer steps than the prefix itself
	if len(path) < hardenedPrefixLen {
		return false
	}

	for i, step := range path {
		if bip32path.IsHardened(step) != (i < hardenedPrefixLen) {
			return false
		}
	}

	coinType := bip32path.UnhardenedValue(path[1])
	if !coinTypes.Contains(coinType) {
		return false
	}

	account := bip32path.UnhardenedValue(path[2])
	if account > MaxRecommendedAccount {
		return false
	}

	if purpose == 48 {
		scriptType := bip32path.UnhardenedValue(path[3])
		if scriptType != 1 && scriptType != 2 {
			return false
		}
	}

	return true
}

func pathsEqual(a, b bip32path.Path) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
