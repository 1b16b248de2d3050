package device

import (
	"context"
	"net"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/keyport-network/keyportd/internal/core/application"
	"github.com/keyport-network/keyportd/internal/core/domain"
	"github.com/keyport-network/keyportd/internal/core/ports"
	"github.com/keyport-network/keyportd/internal/interfaces"
)

// service exposes the device commands to hosts over a framed TCP link. One
// request is processed at a time per connection, run to completion.
type service struct {
	addr      string
	exportSvc application.ExportService
	device    ports.SecureDevice

	lock     sync.Mutex
	listener net.Listener
	stopped  bool

	// cmdLock serializes command processing across connections: the
	// device handles one request at a time, run to completion.
	cmdLock sync.Mutex
}

// NewService returns the device link listening on the given address.
func NewService(
	addr string,
	exportSvc application.ExportService,
	secureDevice ports.SecureDevice,
) interfaces.Service {
	return &service{
		addr:      addr,
		exportSvc: exportSvc,
		device:    secureDevice,
	}
}

func (s *service) Start() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.lock.Lock()
	s.listener = listener
	s.lock.Unlock()

	log.Infof("device link is listening on %s", listener.Addr())
	go s.acceptLoop(listener)
	return nil
}

func (s *service) Stop() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.stopped = true
	if s.listener != nil {
		// nolint
		s.listener.Close()
	}
}

// Addr returns the address the link is bound to, useful when listening on
// an ephemeral port.
func (s *service) Addr() string {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

func (s *service) acceptLoop(listener net.Listener) {
	for {
		conn, err := listener.Accept()
		if err != nil {
			s.lock.Lock()
			stopped := s.stopped
			s.lock.Unlock()
			if !stopped {
				log.WithError(err).Warn("device link: accept failed")
			}
			return
		}
		go s.handleConn(conn)
	}
}

func (s *service) handleConn(conn net.Conn) {
	defer conn.Close()

	l := log.WithField("conn_id", uuid.New().String())
	l.Debugf("host connected from %s", conn.RemoteAddr())

	for {
		body, err := readFrame(conn)
		if err != nil {
			l.Debug("host disconnected")
			return
		}

		if err := s.handleFrame(l, conn, body); err != nil {
			l.WithError(err).Warn("failed to write response")
			return
		}
	}
}

func (s *service) handleFrame(l *log.Entry, conn net.Conn, body []byte) error {
	// A request from one host must terminate, confirmation included,
	// before a request from another host is processed.
	s.cmdLock.Lock()
	defer s.cmdLock.Unlock()

	if len(body) < 1 {
		statusWordsTotal.WithLabelValues(domain.StatusWrongDataLength.String()).Inc()
		return writeResponse(conn, nil, domain.StatusWrongDataLength)
	}

	cmd, payload := body[0], body[1:]
	commandsTotal.WithLabelValues(commandName(cmd)).Inc()

	var responsePayload []byte
	var sw domain.StatusWord

	switch cmd {
	case CmdGetExtendedPubkey:
		reply := s.exportSvc.ExportPubkey(context.Background(), payload)
		sw = reply.Status
		if sw.Ok() {
			responsePayload = []byte(reply.Pubkey)
		}
	case CmdUnlock:
		if err := s.device.Unlock(string(payload)); err != nil {
			l.WithError(err).Warn("unlock refused")
			sw = domain.StatusSecurityNotSatisfied
		} else {
			l.Info("device unlocked")
			sw = domain.StatusOK
		}
	case CmdLock:
		s.device.Lock()
		l.Info("device locked")
		sw = domain.StatusOK
	default:
		l.Warnf("unknown command 0x%02X", cmd)
		sw = domain.StatusNotSupported
	}

	statusWordsTotal.WithLabelValues(sw.String()).Inc()
	return writeResponse(conn, responsePayload, sw)
}
