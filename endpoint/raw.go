package endpoint

import (
	"fmt"

	samerrors "github.com/go-i2p/sam3go/errors"
	"github.com/go-i2p/sam3go/session"
	"github.com/go-i2p/sam3go/socket"
)

// RawDatagram sends and receives anonymous, unordered datagrams: the
// sender's destination is never attached, so a reply requires an
// out-of-band channel to learn the peer's address (spec.md §4.6).
type RawDatagram struct {
	session *session.Session
	conn    *socket.DatagramSocket
}

// NewRawDatagram binds a UDP socket to port on 127.0.0.1 (0 picks a free
// port) and brings up an AnonymousDatagram session, reporting the bound port
// to the router so inbound datagrams land there.
func NewRawDatagram(port int, options ...string) (*RawDatagram, error) {
	conn, err := socket.Listen(socket.DefaultHost, port)
	if err != nil {
		return nil, err
	}
	s, err := session.NewDatagram(session.AnonymousDatagram, conn.LocalPort(), options...)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &RawDatagram{session: s, conn: conn}, nil
}

// GetLocalDest returns this session's own base64 destination.
func (r *RawDatagram) GetLocalDest() string { return r.session.Local.Base64() }

// GetNick returns this session's SAMv3 ID=.
func (r *RawDatagram) GetNick() string { return r.session.Nick }

// SendTo sends buf to dest, prefixed with the SAMv3 datagram header the
// bridge expects on its UDP port (spec.md §4.1). An empty buf is rejected
// without touching the network (spec.md §8).
func (r *RawDatagram) SendTo(buf []byte, dest string) error {
	if len(buf) == 0 {
		return samerrors.New(samerrors.InvalidValue, nil, "sendto: empty buffer")
	}
	header := fmt.Sprintf("3.0 %s %s\n", r.session.Nick, dest)
	packet := append([]byte(header), buf...)
	return r.conn.SendTo(packet)
}

// Recv reads one inbound datagram's payload into buf.
func (r *RawDatagram) Recv(buf []byte) (int, error) {
	return r.conn.Recv(buf)
}

// Close closes the UDP socket and the session's control connection.
func (r *RawDatagram) Close() error {
	connErr := r.conn.Close()
	if err := r.session.Close(); err != nil {
		return err
	}
	return connErr
}
