package application_test

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyport-network/keyportd/internal/core/application"
	"github.com/keyport-network/keyportd/internal/core/domain"
)

func TestPubkeyExporter(t *testing.T) {
	oracle := &mockOracle{}
	oracle.On("DeriveExtendedPubkey", safePath).Return(testKey(t), nil)

	t.Run("mainnet version bytes", func(t *testing.T) {
		exporter := application.NewPubkeyExporter(oracle, &chaincfg.MainNetParams)
		xpub, err := exporter.Export(safePath)
		require.NoError(t, err)
		assert.Equal(t, testXpub, xpub)
		assert.LessOrEqual(t, len(xpub), domain.MaxSerializedPubkeyLen)
	})

	t.Run("testnet version bytes", func(t *testing.T) {
		exporter := application.NewPubkeyExporter(oracle, &chaincfg.TestNet3Params)
		tpub, err := exporter.Export(safePath)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(tpub, "tpub"))
		assert.LessOrEqual(t, len(tpub), domain.MaxSerializedPubkeyLen)
	})
}
