package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/keyport-network/keyportd/internal/core/domain"
)

const (
	// ListenAddrKey is the address where the device link will listen on
	ListenAddrKey = "LISTEN_ADDR"
	// MetricsAddrKey is the address where prometheus metrics are served, empty disables them
	MetricsAddrKey = "METRICS_ADDR"
	// DatadirKey is the local data directory to store the internal state of the daemon
	DatadirKey = "DATA_DIR_PATH"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// NetworkKey is the network to use. Either "mainnet", "testnet" or "regtest"
	NetworkKey = "NETWORK"
	// CoinTypesKey is the comma-separated list of BIP44 coin types accepted as known coins
	CoinTypesKey = "COIN_TYPES"
	// MnemonicKey is the BIP39 mnemonic of the master key of the simulated device
	MnemonicKey = "MNEMONIC"
	// PinKey is the PIN unlocking the simulated device
	PinKey = "PIN"
	// EnableAuditKey enables the on-disk journal of export decisions
	EnableAuditKey = "ENABLE_AUDIT"
)

var vip *viper.Viper

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("KEYPORT")
	vip.AutomaticEnv()

	vip.SetDefault(ListenAddrKey, ":7399")
	vip.SetDefault(MetricsAddrKey, "")
	vip.SetDefault(DatadirKey, btcutil.AppDataDir("keyportd", false))
	vip.SetDefault(LogLevelKey, int(log.InfoLevel))
	vip.SetDefault(NetworkKey, "mainnet")
	vip.SetDefault(CoinTypesKey, "0,1")
	vip.SetDefault(PinKey, "1234")
	vip.SetDefault(EnableAuditKey, true)
}

// GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

// GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetBool ...
func GetBool(key string) bool {
	return vip.GetBool(key)
}

// GetMnemonic returns the configured mnemonic as a word list, or nil if not
// set.
func GetMnemonic() []string {
	mnemonic := strings.TrimSpace(vip.GetString(MnemonicKey))
	if mnemonic == "" {
		return nil
	}
	return strings.Fields(mnemonic)
}

// GetNetwork returns the chain parameters for the configured network.
func GetNetwork() (*chaincfg.Params, error) {
	switch network := vip.GetString(NetworkKey); network {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unknown network '%s'", network)
	}
}

// GetCoinTypes returns the configured set of known coin types.
func GetCoinTypes() (domain.CoinTypeSet, error) {
	coinTypes := domain.CoinTypeSet{}
	for _, elem := range strings.Split(vip.GetString(CoinTypesKey), ",") {
		elem = strings.TrimSpace(elem)
		if elem == "" {
			continue
		}
		coinType, err := strconv.ParseUint(elem, 10, 31)
		if err != nil {
			return nil, fmt.Errorf("invalid coin type '%s': %w", elem, err)
		}
		coinTypes = append(coinTypes, uint32(coinType))
	}
	if len(coinTypes) <= 0 {
		return nil, fmt.Errorf("at least one coin type must be configured")
	}
	return coinTypes, nil
}

// Validate makes sure the configuration is sane before starting the daemon.
func Validate() error {
	if _, err := GetNetwork(); err != nil {
		return err
	}
	if _, err := GetCoinTypes(); err != nil {
		return err
	}
	if len(GetString(PinKey)) <= 0 {
		return fmt.Errorf("pin must not be empty")
	}
	return nil
}
