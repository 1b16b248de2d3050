package dbbadger

import (
	"context"
	"sort"

	"github.com/timshannon/badgerhold/v4"

	"github.com/keyport-network/keyportd/internal/core/domain"
)

type exportRecordRepositoryImpl struct {
	store *badgerhold.Store
}

// NewExportRecordRepositoryImpl initializes a badger implementation of the
// domain.ExportRecordRepository
func NewExportRecordRepositoryImpl(store *badgerhold.Store) domain.ExportRecordRepository {
	return exportRecordRepositoryImpl{store}
}

func (r exportRecordRepositoryImpl) AddRecord(
	ctx context.Context, record domain.ExportRecord,
) error {
	if err := r.store.Insert(record.Key(), &record); err != nil {
		if err != badgerhold.ErrKeyExists {
			return err
		}
	}
	return nil
}

func (r exportRecordRepositoryImpl) ListAllRecords(
	ctx context.Context,
) ([]domain.ExportRecord, error) {
	records := []domain.ExportRecord{}
	if err := r.store.Find(&records, nil); err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}
