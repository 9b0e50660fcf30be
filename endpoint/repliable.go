package endpoint

import (
	"fmt"

	samerrors "github.com/go-i2p/sam3go/errors"
	"github.com/go-i2p/sam3go/message"
	"github.com/go-i2p/sam3go/session"
	"github.com/go-i2p/sam3go/socket"
)

// maxDatagramSize is large enough for any single I2P datagram payload plus
// its leading "<sender_dest>\n" header.
const maxDatagramSize = 65536

// RepliableDatagram sends and receives datagrams tagged with the sender's
// destination, letting the receiver reply without a separate lookup
// (spec.md §4.6).
type RepliableDatagram struct {
	session *session.Session
	conn    *socket.DatagramSocket
	buf     []byte
}

// NewRepliableDatagram binds a UDP socket to port on 127.0.0.1 (0 picks a
// free port) and brings up a RepliableDatagram session for the bound port.
func NewRepliableDatagram(port int, options ...string) (*RepliableDatagram, error) {
	conn, err := socket.Listen(socket.DefaultHost, port)
	if err != nil {
		return nil, err
	}
	s, err := session.NewDatagram(session.RepliableDatagram, conn.LocalPort(), options...)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &RepliableDatagram{session: s, conn: conn, buf: make([]byte, maxDatagramSize)}, nil
}

// GetLocalDest returns this session's own base64 destination.
func (r *RepliableDatagram) GetLocalDest() string { return r.session.Local.Base64() }

// GetNick returns this session's SAMv3 ID=.
func (r *RepliableDatagram) GetNick() string { return r.session.Nick }

// SendTo sends buf to dest, prefixed with the SAMv3 datagram header. An
// empty buf is rejected without touching the network (spec.md §8).
func (r *RepliableDatagram) SendTo(buf []byte, dest string) error {
	if len(buf) == 0 {
		return samerrors.New(samerrors.InvalidValue, nil, "sendto: empty buffer")
	}
	header := fmt.Sprintf("3.0 %s %s\n", r.session.Nick, dest)
	packet := append([]byte(header), buf...)
	return r.conn.SendTo(packet)
}

// RecvFrom reads one inbound datagram into buf and returns the number of
// payload bytes copied plus the sender's destination, parsed from the
// leading header line the bridge attaches (spec.md §4.1).
func (r *RepliableDatagram) RecvFrom(buf []byte) (n int, senderDest string, err error) {
	nread, err := r.conn.Recv(r.buf)
	if err != nil {
		return 0, "", err
	}

	hdr, payload, err := message.ParseDatagramHeader(r.buf[:nread])
	if err != nil {
		log.WithError(err).Error("failed to parse repliable datagram header")
		return 0, "", err
	}

	n = copy(buf, payload)
	return n, hdr.Dest, nil
}

// Recv reads one inbound datagram's payload into buf, discarding the
// sender's destination.
func (r *RepliableDatagram) Recv(buf []byte) (int, error) {
	n, _, err := r.RecvFrom(buf)
	return n, err
}

// Close closes the UDP socket and the session's control connection.
func (r *RepliableDatagram) Close() error {
	connErr := r.conn.Close()
	if err := r.session.Close(); err != nil {
		return err
	}
	return connErr
}
