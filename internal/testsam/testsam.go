// Package testsam provides a minimal in-process stand-in for a SAM bridge's
// control port, so command/session tests can exercise real TCP
// I/O without a running I2P router.
package testsam

import (
	"bufio"
	"net"
	"strconv"
	"testing"
)

// Server is a scripted fake SAM control-port listener.
type Server struct {
	Listener net.Listener
	Addr     string
}

// Handler processes one accepted connection, reading requests with r and
// replying with w.
type Handler func(r *bufio.Reader, w *bufio.Writer)

// New starts a fake SAM bridge bound to 127.0.0.1:0 that runs handler for
// every accepted connection. It is closed automatically at test cleanup.
func New(t *testing.T, handler Handler) *Server {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("testsam: listen: %v", err)
	}
	s := &Server{Listener: ln, Addr: ln.Addr().String()}

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				handler(bufio.NewReader(c), bufio.NewWriter(c))
			}(conn)
		}
	}()

	t.Cleanup(func() { ln.Close() })
	return s
}

// HostPort splits Addr into its host and numeric port.
func (s *Server) HostPort() (string, int) {
	host, port, err := net.SplitHostPort(s.Addr)
	if err != nil {
		return "127.0.0.1", 0
	}
	p, _ := strconv.Atoi(port)
	return host, p
}

// ReplyOnce reads exactly one line from r and writes reply (with a trailing
// newline appended if missing) to w, flushing it.
func ReplyOnce(r *bufio.Reader, w *bufio.Writer, reply string) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return line, err
	}
	if len(reply) == 0 || reply[len(reply)-1] != '\n' {
		reply += "\n"
	}
	if _, err := w.WriteString(reply); err != nil {
		return line, err
	}
	return line, w.Flush()
}
