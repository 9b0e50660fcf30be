// Package endpoint implements the three application-facing socket types:
// VirtualStream (a TCP-like connection), RawDatagram (anonymous, unordered
// messages), and RepliableDatagram (messages tagged with the sender's
// destination). Each wraps a session.Session plus whatever extra socket its
// style needs (spec.md §3, §4.5, §4.6).
package endpoint

import (
	"github.com/go-i2p/sam3go/command"
	samerrors "github.com/go-i2p/sam3go/errors"
	"github.com/go-i2p/sam3go/session"
	"github.com/go-i2p/sam3go/socket"
)

// VirtualStream is a TCP-like connection carried over I2P. Establishing one
// requires two TCP connections to the bridge: the session's control
// connection (held open for the session's lifetime) and a second "data"
// connection that a CONNECT/ACCEPT repurposes for the stream's raw byte
// traffic (spec.md §4.5).
type VirtualStream struct {
	session *session.Session
	data    *socket.StreamSocket
}

// NewVirtualStream brings up a VirtualStream session. The returned value
// has no data connection yet: call Connect, Accept, or Forward next.
func NewVirtualStream(options ...string) (*VirtualStream, error) {
	s, err := session.New(options...)
	if err != nil {
		return nil, err
	}
	return &VirtualStream{session: s}, nil
}

// Connect opens the second, data TCP connection, performs the HELLO
// handshake on it, and establishes a virtual stream to addr over it. On
// success, Read/Write operate on that connection.
func (v *VirtualStream) Connect(addr string) error {
	data, err := socket.DialControl()
	if err != nil {
		return err
	}
	if err := command.Hello(data); err != nil {
		data.Close()
		return err
	}
	if err := command.StreamConnect(data, v.session.Nick, addr, false); err != nil {
		data.Close()
		return err
	}
	v.data = data
	return nil
}

// Accept waits for a single inbound virtual stream connection over a new
// data TCP connection, then reads the connecting peer's destination line.
func (v *VirtualStream) Accept() (peerDest string, err error) {
	data, err := socket.DialControl()
	if err != nil {
		return "", err
	}
	if err := command.Hello(data); err != nil {
		data.Close()
		return "", err
	}
	if err := command.StreamAccept(data, v.session.Nick, false); err != nil {
		data.Close()
		return "", err
	}
	peerDest, err = data.ReadLine()
	if err != nil {
		data.Close()
		return "", err
	}
	v.data = data
	return peerDest, nil
}

// Forward tells the router to deliver inbound virtual stream connections to
// a local TCP listener on port instead of over a SAM data connection.
func (v *VirtualStream) Forward(port int, silent bool) error {
	data, err := socket.DialControl()
	if err != nil {
		return err
	}
	if err := command.Hello(data); err != nil {
		data.Close()
		return err
	}
	if err := command.StreamForward(data, v.session.Nick, port, silent); err != nil {
		data.Close()
		return err
	}
	v.data = data
	return nil
}

// GetLocalDest returns this session's own base64 destination.
func (v *VirtualStream) GetLocalDest() string { return v.session.Local.Base64() }

// GetNick returns this session's SAMv3 ID=.
func (v *VirtualStream) GetNick() string { return v.session.Nick }

// Write writes buf to the stream's data connection. An empty buf is
// rejected without touching the network (spec.md §8).
func (v *VirtualStream) Write(buf []byte) error {
	if len(buf) == 0 {
		return samerrors.New(samerrors.InvalidValue, nil, "write: empty buffer")
	}
	return v.data.Write(buf)
}

// Read reads up to len(buf) bytes from the stream's data connection.
func (v *VirtualStream) Read(buf []byte) (int, error) { return v.data.Read(buf) }

// ReadExact reads exactly len(buf) bytes from the stream's data connection.
func (v *VirtualStream) ReadExact(buf []byte) error { return v.data.ReadExact(buf) }

// ReadToString reads the stream's data connection to EOF as a string.
func (v *VirtualStream) ReadToString() (string, error) { return v.data.ReadToString() }

// Close closes both the data connection and the session's control connection.
func (v *VirtualStream) Close() error {
	var dataErr error
	if v.data != nil {
		dataErr = v.data.Close()
	}
	if err := v.session.Close(); err != nil {
		return err
	}
	return dataErr
}
