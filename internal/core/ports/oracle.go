package ports

import (
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/keyport-network/keyportd/pkg/bip32path"
)

// DerivationOracle derives extended public keys from the master key held by
// the device. The master key never crosses this boundary, callers only ever
// receive neutered keys.
type DerivationOracle interface {
	// DeriveExtendedPubkey derives the neutered extended key at the given
	// path from the master key.
	DeriveExtendedPubkey(path bip32path.Path) (*hdkeychain.ExtendedKey, error)
}
