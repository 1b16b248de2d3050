package application

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/keyport-network/keyportd/internal/core/domain"
	"github.com/keyport-network/keyportd/internal/core/ports"
	"github.com/keyport-network/keyportd/pkg/bip32path"
)

// PubkeyExporter turns a derivation path into the base58 serialization of
// the extended public key at that path, stamped with the network's extended
// pubkey version bytes. The cryptographic derivation is delegated to the
// oracle, which only ever hands out neutered keys.
type PubkeyExporter struct {
	oracle    ports.DerivationOracle
	netParams *chaincfg.Params
}

// NewPubkeyExporter returns a PubkeyExporter serializing keys for the given
// network.
func NewPubkeyExporter(
	oracle ports.DerivationOracle, netParams *chaincfg.Params,
) *PubkeyExporter {
	return &PubkeyExporter{
		oracle:    oracle,
		netParams: netParams,
	}
}

// Export derives and serializes the extended public key at the given path.
// By the time this is called the path has already been judged structurally
// valid, so any failure is an unexpected internal condition.
func (e *PubkeyExporter) Export(path bip32path.Path) (string, error) {
	xpub, err := e.oracle.DeriveExtendedPubkey(path)
	if err != nil {
		return "", err
	}

	xpub, err = xpub.CloneWithVersion(e.netParams.HDPublicKeyID[:])
	if err != nil {
		return "", err
	}

	serialized := xpub.String()
	if len(serialized) > domain.MaxSerializedPubkeyLen {
		return "", ErrPubkeyTooLong
	}
	return serialized, nil
}
