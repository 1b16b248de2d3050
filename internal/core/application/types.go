package application

import (
	"github.com/keyport-network/keyportd/internal/core/domain"
	"github.com/keyport-network/keyportd/pkg/bip32path"
)

// ExportRequest is the decoded payload of a get-extended-pubkey command.
type ExportRequest struct {
	Display bool
	Path    bip32path.Path
}

// ExportReply is the terminal outcome of a get-extended-pubkey command.
// Pubkey and Path are empty unless the status is StatusOK.
type ExportReply struct {
	Status domain.StatusWord
	Pubkey string
	Path   string
}

// parseExportRequest decodes a raw command payload:
//
//	displayFlag: u8 (0|1)
//	pathLen:     u8 (0..bip32path.MaxSteps)
//	path:        pathLen big-endian u32 derivation indexes
//
// A truncated payload maps to StatusWrongDataLength, an out-of-range flag or
// declared length to StatusIncorrectData.
func parseExportRequest(payload []byte) (*ExportRequest, domain.StatusWord) {
	if len(payload) < 2 {
		return nil, domain.StatusWrongDataLength
	}

	display := payload[0]
	pathLen := int(payload[1])

	if display > 1 || pathLen > bip32path.MaxSteps {
		return nil, domain.StatusIncorrectData
	}

	path, err := bip32path.Deserialize(payload[2:], pathLen)
	if err != nil {
		return nil, domain.StatusWrongDataLength
	}

	return &ExportRequest{
		Display: display == 1,
		Path:    path,
	}, domain.StatusOK
}
