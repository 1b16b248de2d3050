package device

import (
	"net"

	"github.com/keyport-network/keyportd/internal/core/domain"
	"github.com/keyport-network/keyportd/pkg/bip32path"
)

// Client is the host side of the device link.
type Client struct {
	conn net.Conn
}

// NewClient dials the device link at the given address.
func NewClient(addr string) (*Client, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Client{conn}, nil
}

// Close closes the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// GetExtendedPubkey requests the extended public key at the given path. With
// display set, the device asks the user to confirm the export on its trusted
// surface before answering.
func (c *Client) GetExtendedPubkey(
	path bip32path.Path, display bool,
) (string, domain.StatusWord, error) {
	displayFlag := byte(0)
	if display {
		displayFlag = 1
	}

	body := []byte{CmdGetExtendedPubkey, displayFlag, byte(len(path))}
	body = append(body, path.Serialize()...)

	payload, sw, err := c.roundTrip(body)
	if err != nil {
		return "", 0, err
	}
	return string(payload), sw, nil
}

// Unlock submits the PIN.
func (c *Client) Unlock(pin string) (domain.StatusWord, error) {
	_, sw, err := c.roundTrip(append([]byte{CmdUnlock}, []byte(pin)...))
	return sw, err
}

// Lock locks the device.
func (c *Client) Lock() (domain.StatusWord, error) {
	_, sw, err := c.roundTrip([]byte{CmdLock})
	return sw, err
}

func (c *Client) roundTrip(body []byte) ([]byte, domain.StatusWord, error) {
	if err := writeFrame(c.conn, body); err != nil {
		return nil, 0, err
	}

	response, err := readFrame(c.conn)
	if err != nil {
		return nil, 0, err
	}
	return splitResponse(response)
}
