package device

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyport-network/keyportd/internal/core/application"
	"github.com/keyport-network/keyportd/internal/core/domain"
	"github.com/keyport-network/keyportd/internal/core/ports"
	"github.com/keyport-network/keyportd/internal/infrastructure/softhsm"
	"github.com/keyport-network/keyportd/pkg/bip32path"
)

var testMnemonic = strings.Split(
	"abandon abandon abandon abandon abandon abandon "+
		"abandon abandon abandon abandon abandon about", " ",
)

const testAccountXpub = "xpub6BosfCnifzxcFwrSzQiqu2DBVTshkCXacvNsWGYJVVhha" +
	"wA7d4R5WSWGFNbi8Aw6ZRc1brxMyWMzG3DSSSSoekkudhUd9yLb6qx39T9nMdj"

// acceptAllConfirmer approves every export without a warning check.
type acceptAllConfirmer struct{}

func (acceptAllConfirmer) ConfirmPubkeyExport(string, bool, string) bool {
	return true
}

func startTestLink(t *testing.T, confirmer ports.ConfirmationSurface) string {
	t.Helper()

	hsm, err := softhsm.NewSoftHSM(testMnemonic, "1234", &chaincfg.MainNetParams)
	require.NoError(t, err)

	exporter := application.NewPubkeyExporter(hsm, &chaincfg.MainNetParams)
	exportSvc := application.NewExportService(
		hsm, confirmer, exporter, domain.CoinTypeSet{0, 1}, nil,
	)

	svc := NewService("127.0.0.1:0", exportSvc, hsm).(*service)
	require.NoError(t, svc.Start())
	t.Cleanup(svc.Stop)

	return svc.Addr()
}

func newTestLink(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(startTestLink(t, acceptAllConfirmer{}))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client
}

func TestDeviceLink(t *testing.T) {
	client := newTestLink(t)
	path, err := bip32path.Parse("m/44'/0'/0'")
	require.NoError(t, err)

	// Locked device refuses the export.
	_, sw, err := client.GetExtendedPubkey(path, false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSecurityNotSatisfied, sw)

	// Wrong PIN keeps it locked.
	sw, err = client.Unlock("0000")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSecurityNotSatisfied, sw)

	sw, err = client.Unlock("1234")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOK, sw)

	// Standard path exports silently.
	xpub, sw, err := client.GetExtendedPubkey(path, false)
	require.NoError(t, err)
	require.Equal(t, domain.StatusOK, sw)
	assert.Equal(t, testAccountXpub, xpub)

	// Non-standard path is rejected without display.
	oddPath, err := bip32path.Parse("m/999'/0'/0'")
	require.NoError(t, err)
	_, sw, err = client.GetExtendedPubkey(oddPath, false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotSupported, sw)

	// With display requested the confirmer approves it.
	xpub, sw, err = client.GetExtendedPubkey(oddPath, true)
	require.NoError(t, err)
	require.Equal(t, domain.StatusOK, sw)
	assert.True(t, strings.HasPrefix(xpub, "xpub"))

	// Locking closes the gate again.
	sw, err = client.Lock()
	require.NoError(t, err)
	require.Equal(t, domain.StatusOK, sw)

	_, sw, err = client.GetExtendedPubkey(path, false)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSecurityNotSatisfied, sw)
}

// countingConfirmer approves every export while tracking how many
// confirmations are in flight at once.
type countingConfirmer struct {
	mtx         sync.Mutex
	inFlight    int
	maxInFlight int
}

func (c *countingConfirmer) ConfirmPubkeyExport(string, bool, string) bool {
	c.mtx.Lock()
	c.inFlight++
	if c.inFlight > c.maxInFlight {
		c.maxInFlight = c.inFlight
	}
	c.mtx.Unlock()

	// Keep the confirmation pending long enough for a concurrent request
	// to pile up behind it.
	time.Sleep(50 * time.Millisecond)

	c.mtx.Lock()
	c.inFlight--
	c.mtx.Unlock()
	return true
}

func (c *countingConfirmer) MaxInFlight() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return c.maxInFlight
}

func TestDeviceLinkSerializesRequests(t *testing.T) {
	confirmer := &countingConfirmer{}
	addr := startTestLink(t, confirmer)

	unlocker, err := NewClient(addr)
	require.NoError(t, err)
	defer unlocker.Close()

	sw, err := unlocker.Unlock("1234")
	require.NoError(t, err)
	require.Equal(t, domain.StatusOK, sw)

	path, err := bip32path.Parse("m/44'/0'/0'")
	require.NoError(t, err)

	statuses := make(chan domain.StatusWord, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			client, err := NewClient(addr)
			if !assert.NoError(t, err) {
				return
			}
			defer client.Close()

			_, sw, err := client.GetExtendedPubkey(path, true)
			if assert.NoError(t, err) {
				statuses <- sw
			}
		}()
	}
	wg.Wait()
	close(statuses)

	count := 0
	for sw := range statuses {
		assert.Equal(t, domain.StatusOK, sw)
		count++
	}
	require.Equal(t, 2, count)

	// Requests from separate connections run to completion one at a
	// time, so the confirmation surface is never entered concurrently.
	assert.Equal(t, 1, confirmer.MaxInFlight())
}

func TestDeviceLinkUnknownCommand(t *testing.T) {
	client := newTestLink(t)

	payload, sw, err := client.roundTrip([]byte{0x7F})
	require.NoError(t, err)
	assert.Empty(t, payload)
	assert.Equal(t, domain.StatusNotSupported, sw)
}
