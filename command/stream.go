package command

import (
	"fmt"

	"github.com/go-i2p/sam3go/message"
	"github.com/go-i2p/sam3go/socket"
)

func streamParser(line string) (*message.Message, error) {
	m, err := message.Parse(line, message.Stream, message.Status)
	if err != nil {
		return nil, err
	}
	return m, checkResult(m)
}

// StreamConnect opens a virtual stream from nick's session to dest over
// sock, which becomes the stream's data connection on success.
func StreamConnect(sock *socket.StreamSocket, nick, dest string, silent bool) error {
	msg := fmt.Sprintf("STREAM CONNECT ID=%s DESTINATION=%s SILENT=%s\n", nick, dest, boolStr(silent))
	_, err := exchange(sock, msg, streamParser)
	return err
}

// StreamAccept tells the router that sock should receive the next inbound
// virtual stream connection for nick's session. The caller must still read
// the peer's destination line that follows a successful reply.
func StreamAccept(sock *socket.StreamSocket, nick string, silent bool) error {
	msg := fmt.Sprintf("STREAM ACCEPT ID=%s SILENT=%s\n", nick, boolStr(silent))
	_, err := exchange(sock, msg, streamParser)
	return err
}

// StreamForward tells the router to forward inbound virtual stream
// connections for nick's session to a local TCP listener on port, instead
// of delivering them over a SAM control connection.
func StreamForward(sock *socket.StreamSocket, nick string, port int, silent bool) error {
	msg := fmt.Sprintf("STREAM FORWARD ID=%s PORT=%d SILENT=%s\n", nick, port, boolStr(silent))
	_, err := exchange(sock, msg, streamParser)
	return err
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
