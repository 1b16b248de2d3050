package device

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/keyport-network/keyportd/internal/core/domain"
)

// Command bytes of the device link protocol.
const (
	// CmdGetExtendedPubkey requests the extended public key at a path.
	CmdGetExtendedPubkey byte = 0x00
	// CmdUnlock submits the PIN to unlock the device.
	CmdUnlock byte = 0x01
	// CmdLock locks the device again.
	CmdLock byte = 0x02
)

// maxFrameSize bounds a frame body; the biggest legitimate request is a
// full-length path and the biggest response a serialized pubkey plus the
// status word trailer.
const maxFrameSize = 256

// ErrFrameTooLarge ...
var ErrFrameTooLarge = errors.New("frame exceeds the maximum supported size")

// readFrame reads one length-prefixed frame body: u16be length followed by
// that many bytes.
func readFrame(r io.Reader) ([]byte, error) {
	var header [2]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}

	size := binary.BigEndian.Uint16(header[:])
	if size > maxFrameSize {
		return nil, ErrFrameTooLarge
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}
	return body, nil
}

// writeFrame writes one length-prefixed frame body.
func writeFrame(w io.Writer, body []byte) error {
	if len(body) > maxFrameSize {
		return ErrFrameTooLarge
	}

	buf := make([]byte, 2, 2+len(body))
	binary.BigEndian.PutUint16(buf, uint16(len(body)))
	buf = append(buf, body...)

	_, err := w.Write(buf)
	return err
}

// writeResponse writes a response frame: optional payload followed by the
// 2-byte status word trailer.
func writeResponse(w io.Writer, payload []byte, sw domain.StatusWord) error {
	body := make([]byte, 0, len(payload)+2)
	body = append(body, payload...)
	body = append(body, byte(sw>>8), byte(sw))
	return writeFrame(w, body)
}

// splitResponse splits a response body into payload and status word.
func splitResponse(body []byte) ([]byte, domain.StatusWord, error) {
	if len(body) < 2 {
		return nil, 0, errors.New("response frame is missing the status word")
	}
	sw := domain.StatusWord(binary.BigEndian.Uint16(body[len(body)-2:]))
	return body[:len(body)-2], sw, nil
}

func commandName(cmd byte) string {
	switch cmd {
	case CmdGetExtendedPubkey:
		return "get_extended_pubkey"
	case CmdUnlock:
		return "unlock"
	case CmdLock:
		return "lock"
	default:
		return "unknown"
	}
}
