package application_test

import (
	"context"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/stretchr/testify/mock"

	"github.com/keyport-network/keyportd/internal/core/domain"
	"github.com/keyport-network/keyportd/pkg/bip32path"
)

// **** SecureDevice ****

type mockDevice struct {
	mock.Mock
}

func (m *mockDevice) IsUnlocked() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *mockDevice) Unlock(pin string) error {
	args := m.Called(pin)
	return args.Error(0)
}

func (m *mockDevice) Lock() {
	m.Called()
}

// **** DerivationOracle ****

type mockOracle struct {
	mock.Mock
}

func (m *mockOracle) DeriveExtendedPubkey(
	path bip32path.Path,
) (*hdkeychain.ExtendedKey, error) {
	args := m.Called(path)

	var res *hdkeychain.ExtendedKey
	if a := args.Get(0); a != nil {
		res = a.(*hdkeychain.ExtendedKey)
	}
	return res, args.Error(1)
}

// **** ConfirmationSurface ****

type mockConfirmer struct {
	mock.Mock
}

func (m *mockConfirmer) ConfirmPubkeyExport(
	pathText string, unsafe bool, pubkey string,
) bool {
	args := m.Called(pathText, unsafe, pubkey)
	return args.Bool(0)
}

// **** ExportRecordRepository ****

type mockExportRecordRepository struct {
	mock.Mock
}

func (m *mockExportRecordRepository) AddRecord(
	ctx context.Context, record domain.ExportRecord,
) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockExportRecordRepository) ListAllRecords(
	ctx context.Context,
) ([]domain.ExportRecord, error) {
	args := m.Called(ctx)

	var res []domain.ExportRecord
	if a := args.Get(0); a != nil {
		res = a.([]domain.ExportRecord)
	}
	return res, args.Error(1)
}
