// Package session implements the bring-up algorithm shared by all three
// endpoint styles: open a control connection to the bridge, perform the
// HELLO handshake, pick a nickname, create a session under it, and resolve
// the session's own destination (spec.md §4.4). The returned Session's
// control connection is held open for the life of the endpoint: destroying
// it (closing the TCP connection) is what tears the session down router-side.
package session

import (
	"github.com/go-i2p/i2pkeys"
	"github.com/sirupsen/logrus"

	samerrors "github.com/go-i2p/sam3go/errors"

	"github.com/go-i2p/sam3go/command"
	"github.com/go-i2p/sam3go/nickname"
	"github.com/go-i2p/sam3go/socket"
)

// Style is the kind of endpoint a Session backs.
type Style int

const (
	VirtualStream Style = iota
	AnonymousDatagram
	RepliableDatagram
)

// Session is a live SAMv3 session: its control connection, its ID=
// nickname, and its own resolved destination.
type Session struct {
	Control *socket.StreamSocket
	Nick    string
	Local   i2pkeys.I2PAddr
}

// New brings up a VirtualStream session with a fresh, one-off destination
// against the bridge's default control port (127.0.0.1:7656).
func New(options ...string) (*Session, error) {
	return NewDestination(command.TransientDestination, options...)
}

// NewDestination brings up a VirtualStream session using dest as its
// DESTINATION=. Pass command.TransientDestination for a fresh one-off
// destination, or the private key returned by command.DestGenerate to
// reuse an existing destination across sessions (spec.md §4.9).
func NewDestination(dest string, options ...string) (*Session, error) {
	sock, err := socket.DialControl()
	if err != nil {
		return nil, err
	}

	s, err := bringUp(sock, func(nick string) error {
		return command.SessionCreateStream(sock, nick, dest, options...)
	})
	if err != nil {
		sock.Close()
		return nil, err
	}
	return s, nil
}

// NewDatagram brings up an AnonymousDatagram or RepliableDatagram session
// with a fresh, one-off destination, bound to the local UDP port its
// datagram socket will listen on.
func NewDatagram(style Style, port int, options ...string) (*Session, error) {
	return NewDatagramWithDestination(style, command.TransientDestination, port, options...)
}

// NewDatagramWithDestination brings up an AnonymousDatagram or
// RepliableDatagram session using dest as its DESTINATION= (see
// NewDestination), bound to the local UDP port its datagram socket will
// listen on.
func NewDatagramWithDestination(style Style, dest string, port int, options ...string) (*Session, error) {
	if style != AnonymousDatagram && style != RepliableDatagram {
		return nil, samerrors.New(samerrors.InvalidValue, nil, "NewDatagram called with non-datagram style")
	}

	sock, err := socket.DialControl()
	if err != nil {
		return nil, err
	}

	sessionStyle := command.StyleRaw
	if style == RepliableDatagram {
		sessionStyle = command.StyleDatagram
	}

	s, err := bringUp(sock, func(nick string) error {
		return command.SessionCreateDatagram(sock, sessionStyle, nick, dest, port, options...)
	})
	if err != nil {
		sock.Close()
		return nil, err
	}
	return s, nil
}

// bringUp runs the handshake/nickname/create/lookup sequence common to
// every style over an already-dialed control connection.
func bringUp(sock *socket.StreamSocket, create func(nick string) error) (*Session, error) {
	if err := command.Hello(sock); err != nil {
		log.WithError(err).Error("HELLO handshake failed")
		return nil, err
	}

	nick, err := nickname.Generate()
	if err != nil {
		return nil, samerrors.New(samerrors.Unknown, err, "generate nickname")
	}

	if err := create(nick); err != nil {
		log.WithError(err).WithField("nick", nick).Error("SESSION CREATE failed")
		return nil, err
	}

	_, destStr, err := command.NamingLookup(sock, "ME")
	if err != nil {
		log.WithError(err).Error("failed to resolve own destination")
		return nil, err
	}
	if destStr == "" {
		return nil, samerrors.New(samerrors.InvalidValue, nil, "router returned an empty destination for ME")
	}

	addr, err := i2pkeys.NewI2PAddrFromString(destStr)
	if err != nil {
		return nil, samerrors.New(samerrors.ParseError, err, "parse local destination")
	}

	log.WithFields(logrus.Fields{
		"nick": nick,
		"dest": addr.Base32(),
	}).Debug("session established")

	return &Session{Control: sock, Nick: nick, Local: addr}, nil
}

// Close tears the session down by closing its control connection.
func (s *Session) Close() error {
	return s.Control.Close()
}
