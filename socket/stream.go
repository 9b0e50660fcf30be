// Package socket wraps the two transports a SAMv3 client needs: a TCP
// connection to the bridge's control port (127.0.0.1:7656) used for every
// command/reply exchange, and a UDP socket bound for datagram traffic
// against its datagram port (127.0.0.1:7655). Every call here blocks; the
// caller's own goroutine is the only concurrency this package assumes
// (spec.md §5).
package socket

import (
	"bufio"
	"io"
	"net"
	"strconv"
	"time"

	samerrors "github.com/go-i2p/sam3go/errors"
)

// Default bridge endpoints and I/O deadlines (spec.md §1, §4.4).
const (
	DefaultHost = "127.0.0.1"
	TCPPort     = 7656
	UDPPort     = 7655

	readTimeout = 120 * time.Second
)

// StreamSocket is a buffered TCP connection to the SAM bridge, used both as
// the long-lived control connection and as a virtual stream's data
// connection once STREAM CONNECT/ACCEPT has completed.
type StreamSocket struct {
	conn   net.Conn
	reader *bufio.Reader
	writer *bufio.Writer
}

// Dial opens a new TCP connection to host:port.
func Dial(host string, port int) (*StreamSocket, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		log.WithError(err).WithField("addr", addr).Error("failed to connect to the router")
		return nil, samerrors.New(samerrors.TcpConnectionError, err, "dial %s", addr)
	}
	return newStreamSocket(conn), nil
}

// DialControl opens a TCP connection to the bridge's default control port.
func DialControl() (*StreamSocket, error) {
	return Dial(DefaultHost, TCPPort)
}

func newStreamSocket(conn net.Conn) *StreamSocket {
	return &StreamSocket{
		conn:   conn,
		reader: bufio.NewReader(conn),
		writer: bufio.NewWriter(conn),
	}
}

// WriteLine sends a single SAMv3 command line, appending the trailing "\n"
// if the caller didn't include one.
func (s *StreamSocket) WriteLine(line string) error {
	if len(line) == 0 || line[len(line)-1] != '\n' {
		line += "\n"
	}
	return s.Write([]byte(line))
}

// Write writes buf to the connection in full. An empty buf is rejected
// without touching the network (spec.md §8).
func (s *StreamSocket) Write(buf []byte) error {
	if len(buf) == 0 {
		return samerrors.New(samerrors.InvalidValue, nil, "write: empty buffer")
	}
	if _, err := s.writer.Write(buf); err != nil {
		log.WithError(err).Error("failed to send command to the router")
		return samerrors.New(samerrors.TcpStreamError, err, "write")
	}
	if err := s.writer.Flush(); err != nil {
		log.WithError(err).Error("failed to flush command to the router")
		return samerrors.New(samerrors.TcpStreamError, err, "flush")
	}
	return nil
}

// ReadLine reads one newline-terminated reply line, stripping the trailing
// newline, with a default 120s deadline (spec.md §4.1).
func (s *StreamSocket) ReadLine() (string, error) {
	_ = s.conn.SetReadDeadline(time.Now().Add(readTimeout))
	line, err := s.reader.ReadString('\n')
	if err != nil && line == "" {
		log.WithError(err).Error("failed to read response from the router")
		return "", samerrors.New(samerrors.TcpStreamError, err, "read line")
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}

// Read reads up to len(buf) bytes into buf, returning the count read.
func (s *StreamSocket) Read(buf []byte) (int, error) {
	_ = s.conn.SetReadDeadline(time.Now().Add(readTimeout))
	n, err := s.reader.Read(buf)
	if err != nil {
		return n, samerrors.New(samerrors.TcpStreamError, err, "read")
	}
	return n, nil
}

// ReadExact reads exactly len(buf) bytes into buf.
func (s *StreamSocket) ReadExact(buf []byte) error {
	_ = s.conn.SetReadDeadline(time.Now().Add(readTimeout))
	if _, err := readFull(s.reader, buf); err != nil {
		return samerrors.New(samerrors.TcpStreamError, err, "read exact")
	}
	return nil
}

// ReadToString reads from the connection until EOF and returns it as a string.
// Any other read error is returned along with the bytes read before it.
func (s *StreamSocket) ReadToString() (string, error) {
	var b []byte
	buf := make([]byte, 4096)
	for {
		_ = s.conn.SetReadDeadline(time.Now().Add(readTimeout))
		n, err := s.reader.Read(buf)
		if n > 0 {
			b = append(b, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return string(b), samerrors.New(samerrors.TcpStreamError, err, "read to string")
		}
	}
	return string(b), nil
}

// Close closes the underlying connection.
func (s *StreamSocket) Close() error {
	return s.conn.Close()
}

// LocalAddr reports the connection's local address.
func (s *StreamSocket) LocalAddr() net.Addr { return s.conn.LocalAddr() }

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
