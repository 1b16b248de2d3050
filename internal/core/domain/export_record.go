package domain

import (
	"context"
	"time"
)

// ExportRecord is the journal entry persisted for every terminal export
// decision. It never carries key material, only the outcome.
type ExportRecord struct {
	ID        string
	Path      string
	Display   bool
	Safe      bool
	Status    uint16
	Timestamp time.Time
}

// Key returns the storage key of the record.
func (r ExportRecord) Key() string {
	return r.ID
}

// ExportRecordRepository defines the access to the append-only journal of
// export decisions.
type ExportRecordRepository interface {
	// AddRecord appends a record to the journal.
	AddRecord(ctx context.Context, record ExportRecord) error
	// ListAllRecords returns every record of the journal.
	ListAllRecords(ctx context.Context) ([]ExportRecord, error)
}
