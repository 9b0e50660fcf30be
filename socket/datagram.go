package socket

import (
	"net"
	"strconv"
	"time"

	samerrors "github.com/go-i2p/sam3go/errors"
)

const recvTimeout = 60 * time.Second

// DatagramSocket is a UDP socket bound to a local port for exchanging raw
// or repliable datagrams with the bridge's datagram port, per spec.md §4.6.
// The bridge learns this local port via SESSION CREATE's PORT= parameter,
// and sends replies to it directly rather than back over the control
// connection.
type DatagramSocket struct {
	conn *net.UDPConn
	dest *net.UDPAddr
}

// Listen binds a UDP socket to host:port and targets the bridge's default
// datagram endpoint (127.0.0.1:7655) for outgoing sends.
func Listen(host string, port int) (*DatagramSocket, error) {
	local, err := net.ResolveUDPAddr("udp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, samerrors.New(samerrors.UdpWriteError, err, "resolve local udp addr %s:%d", host, port)
	}
	conn, err := net.ListenUDP("udp", local)
	if err != nil {
		log.WithError(err).WithField("port", port).Error("failed to bind datagram socket")
		return nil, samerrors.New(samerrors.UdpWriteError, err, "bind udp %s:%d", host, port)
	}
	dest, err := net.ResolveUDPAddr("udp", net.JoinHostPort(DefaultHost, strconv.Itoa(UDPPort)))
	if err != nil {
		conn.Close()
		return nil, samerrors.New(samerrors.UdpWriteError, err, "resolve router udp addr")
	}
	return &DatagramSocket{conn: conn, dest: dest}, nil
}

// LocalPort returns the bound local UDP port.
func (d *DatagramSocket) LocalPort() int {
	return d.conn.LocalAddr().(*net.UDPAddr).Port
}

// SendTo writes buf to the bridge's datagram port. An empty buf is
// rejected without touching the network (spec.md §8).
func (d *DatagramSocket) SendTo(buf []byte) error {
	if len(buf) == 0 {
		return samerrors.New(samerrors.InvalidValue, nil, "sendto: empty buffer")
	}
	if _, err := d.conn.WriteToUDP(buf, d.dest); err != nil {
		log.WithError(err).Error("failed to write to datagram socket")
		return samerrors.New(samerrors.UdpWriteError, err, "sendto")
	}
	return nil
}

// Recv reads one datagram into buf, returning the number of bytes read.
func (d *DatagramSocket) Recv(buf []byte) (int, error) {
	_ = d.conn.SetReadDeadline(time.Now().Add(recvTimeout))
	n, _, err := d.conn.ReadFromUDP(buf)
	if err != nil {
		log.WithError(err).Error("failed to read from datagram socket")
		return n, samerrors.New(samerrors.UdpReadError, err, "recv")
	}
	return n, nil
}

// Close closes the underlying UDP socket.
func (d *DatagramSocket) Close() error {
	return d.conn.Close()
}
