package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/keyport-network/keyportd/internal/core/domain"
	"github.com/keyport-network/keyportd/internal/core/ports"
)

// ExportService handles the get-extended-pubkey command. Every request runs
// to completion and terminates with exactly one status word; the only
// suspension point is the blocking user confirmation.
type ExportService interface {
	ExportPubkey(ctx context.Context, payload []byte) *ExportReply
}

type exportService struct {
	device     ports.SecureDevice
	confirmer  ports.ConfirmationSurface
	exporter   *PubkeyExporter
	coinTypes  domain.CoinTypeSet
	repository domain.ExportRecordRepository
}

// NewExportService returns an ExportService enforcing the path policy for
// the given coin-type set. The repository is optional, a nil repository
// disables the decision journal.
func NewExportService(
	device ports.SecureDevice,
	confirmer ports.ConfirmationSurface,
	exporter *PubkeyExporter,
	coinTypes domain.CoinTypeSet,
	repository domain.ExportRecordRepository,
) ExportService {
	return &exportService{
		device:     device,
		confirmer:  confirmer,
		exporter:   exporter,
		coinTypes:  coinTypes,
		repository: repository,
	}
}

func (s *exportService) ExportPubkey(
	ctx context.Context, payload []byte,
) *ExportReply {
	l := log.WithField("request_id", uuid.New().String())

	// The device must be unlocked. A locked device refuses the command
	// before even reading the path.
	if !s.device.IsUnlocked() {
		l.Warn("refusing pubkey export: device is locked")
		return s.respond(ctx, l, nil, false, domain.StatusSecurityNotSatisfied, "")
	}

	req, sw := parseExportRequest(payload)
	if !sw.Ok() {
		l.WithField("status", sw.String()).Warn("malformed pubkey export request")
		return s.respond(ctx, l, nil, false, sw, "")
	}

	safe := domain.IsSafeForPubkeyExport(req.Path, s.coinTypes)

	// Silent export of a non-standard path is never permitted, no matter
	// what the host intends to do with the key.
	if !safe && !req.Display {
		l.WithField("path", req.Path.String()).
			Warn("refusing unattended export of non-standard path")
		return s.respond(ctx, l, req, safe, domain.StatusNotSupported, "")
	}

	// The path is structurally valid (or the user is about to vouch for
	// it), so a derivation failure past this point signals corrupted
	// device state.
	pubkey, err := s.exporter.Export(req.Path)
	if err != nil {
		l.WithError(err).Error("unexpected derivation failure")
		return s.respond(ctx, l, req, safe, domain.StatusBadState, "")
	}

	pathText := req.Path.String()
	if len(req.Path) == 0 {
		pathText = "(master key)"
	}

	if req.Display {
		if !s.confirmer.ConfirmPubkeyExport(pathText, !safe, pubkey) {
			l.WithField("path", pathText).Info("pubkey export denied by user")
			return s.respond(ctx, l, req, safe, domain.StatusDenied, "")
		}
	}

	l.WithField("path", pathText).Info("pubkey exported")
	reply := s.respond(ctx, l, req, safe, domain.StatusOK, pubkey)
	reply.Path = pathText
	return reply
}

// respond builds the terminal reply and appends the decision to the journal.
func (s *exportService) respond(
	ctx context.Context,
	l *log.Entry,
	req *ExportRequest,
	safe bool,
	sw domain.StatusWord,
	pubkey string,
) *ExportReply {
	if s.repository != nil {
		record := domain.ExportRecord{
			ID:        uuid.New().String(),
			Safe:      safe,
			Status:    uint16(sw),
			Timestamp: time.Now(),
		}
		if req != nil {
			record.Path = req.Path.String()
			record.Display = req.Display
		}
		if err := s.repository.AddRecord(ctx, record); err != nil {
			l.WithError(err).Warn("failed to journal export decision")
		}
	}

	return &ExportReply{
		Status: sw,
		Pubkey: pubkey,
	}
}
