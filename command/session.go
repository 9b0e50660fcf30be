package command

import (
	"fmt"
	"strings"

	"github.com/go-i2p/sam3go/message"
	"github.com/go-i2p/sam3go/socket"
)

// Style is the SAMv3 SESSION CREATE STYLE= value.
type Style string

const (
	StyleStream   Style = "STREAM"
	StyleDatagram Style = "DATAGRAM"
	StyleRaw      Style = "RAW"
)

func sessionParser(line string) (*message.Message, error) {
	m, err := message.Parse(line, message.Session, message.Status)
	if err != nil {
		return nil, err
	}
	return m, checkResult(m)
}

// TransientDestination requests a fresh, one-off destination from the
// router instead of reusing an existing one.
const TransientDestination = "TRANSIENT"

// SessionCreateStream opens a new STREAM-style session under nick, using
// dest as the session's DESTINATION= (TransientDestination for a fresh
// one-off destination, or an existing private key returned by DestGenerate
// to reuse it across sessions).
func SessionCreateStream(sock *socket.StreamSocket, nick, dest string, options ...string) error {
	msg := fmt.Sprintf("SESSION CREATE STYLE=%s ID=%s DESTINATION=%s%s\n",
		StyleStream, nick, dest, optionTail(options))
	_, err := exchange(sock, msg, sessionParser)
	return err
}

// SessionCreateDatagram opens a new DATAGRAM- or RAW-style session bound to
// port for the local UDP socket that will carry the session's payloads,
// using dest as the session's DESTINATION= (see SessionCreateStream).
func SessionCreateDatagram(sock *socket.StreamSocket, style Style, nick, dest string, port int, options ...string) error {
	msg := fmt.Sprintf("SESSION CREATE STYLE=%s ID=%s PORT=%d DESTINATION=%s%s\n",
		style, nick, port, dest, optionTail(options))
	_, err := exchange(sock, msg, sessionParser)
	return err
}

// optionTail renders any caller-supplied free-form SESSION CREATE options
// (spec.md §4.3), passed through verbatim after the fixed fields.
func optionTail(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return " " + strings.Join(options, " ")
}
