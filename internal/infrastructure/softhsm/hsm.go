package softhsm

import (
	"bytes"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/vulpemventures/go-bip39"

	"github.com/keyport-network/keyportd/pkg/bip32path"
)

// SoftHSM simulates the secure element of a hardware wallet: it holds the
// seed-derived master key, gates it behind a PIN and answers derivation
// requests with neutered keys only.
type SoftHSM struct {
	lock sync.RWMutex

	signingMasterKey []byte
	pinHash          []byte
	unlocked         bool
}

// NewSoftHSM derives the master key from the given BIP39 mnemonic and
// returns a locked device guarded by the given PIN.
func NewSoftHSM(
	mnemonic []string, pin string, netParams *chaincfg.Params,
) (*SoftHSM, error) {
	if len(mnemonic) <= 0 {
		return nil, ErrNullMnemonic
	}
	if len(pin) <= 0 {
		return nil, ErrNullPIN
	}

	strMnemonic := strings.Join(mnemonic, " ")
	if !bip39.IsMnemonicValid(strMnemonic) {
		return nil, ErrInvalidMnemonic
	}

	seed := bip39.NewSeed(strMnemonic, "")
	masterKey, err := hdkeychain.NewMaster(seed, netParams)
	if err != nil {
		return nil, err
	}

	return &SoftHSM{
		signingMasterKey: base58.Decode(masterKey.String()),
		pinHash:          btcutil.Hash160([]byte(pin)),
	}, nil
}

// GenMnemonic returns a fresh mnemonic of the given entropy size.
func GenMnemonic(entropySize int) ([]string, error) {
	entropy, err := bip39.NewEntropy(entropySize)
	if err != nil {
		return nil, err
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, err
	}
	return strings.Split(mnemonic, " "), nil
}

// IsUnlocked implements the SecureDevice interface.
func (h *SoftHSM) IsUnlocked() bool {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.unlocked
}

// Unlock implements the SecureDevice interface.
func (h *SoftHSM) Unlock(pin string) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	if !bytes.Equal(btcutil.Hash160([]byte(pin)), h.pinHash) {
		return ErrInvalidPIN
	}
	h.unlocked = true
	return nil
}

// Lock implements the SecureDevice interface.
func (h *SoftHSM) Lock() {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.unlocked = false
}

// DeriveExtendedPubkey implements the DerivationOracle interface. The
// returned key is always neutered, private material never leaves the HSM.
func (h *SoftHSM) DeriveExtendedPubkey(
	path bip32path.Path,
) (*hdkeychain.ExtendedKey, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}

	h.lock.RLock()
	defer h.lock.RUnlock()

	if !h.unlocked {
		return nil, ErrDeviceLocked
	}

	hdNode, err := hdkeychain.NewKeyFromString(
		base58.Encode(h.signingMasterKey),
	)
	if err != nil {
		return nil, err
	}

	for _, step := range path {
		hdNode, err = hdNode.Derive(step)
		if err != nil {
			return nil, err
		}
	}

	return hdNode.Neuter()
}

// MasterFingerprint returns the hex fingerprint of the master public key,
// useful to identify the device in logs without exposing key material.
func (h *SoftHSM) MasterFingerprint() (string, error) {
	h.lock.RLock()
	defer h.lock.RUnlock()

	hdNode, err := hdkeychain.NewKeyFromString(
		base58.Encode(h.signingMasterKey),
	)
	if err != nil {
		return "", err
	}

	pubkey, err := hdNode.ECPubKey()
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(btcutil.Hash160(pubkey.SerializeCompressed())[:4]), nil
}
