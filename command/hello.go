package command

import (
	"fmt"

	"github.com/go-i2p/sam3go/message"
	"github.com/go-i2p/sam3go/socket"
)

const (
	minVersion = "3.1"
	maxVersion = "3.1"
)

// Hello performs the SAMv3 handshake that must precede every other command
// on a control connection (spec.md §4.4).
func Hello(sock *socket.StreamSocket) error {
	msg := fmt.Sprintf("HELLO VERSION MIN=%s MAX=%s\n", minVersion, maxVersion)
	_, err := exchange(sock, msg, func(line string) (*message.Message, error) {
		m, err := message.Parse(line, message.Hello, message.Reply)
		if err != nil {
			return nil, err
		}
		return m, checkResult(m)
	})
	return err
}
