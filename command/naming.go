package command

import (
	"fmt"

	"github.com/go-i2p/sam3go/message"
	"github.com/go-i2p/sam3go/socket"

	samerrors "github.com/go-i2p/sam3go/errors"
)

// NamingLookup resolves name (a hostname, "ME", or a b32/b64 address) to its
// base64 destination. name is echoed back as the first element so the
// caller can detect a router substituting a different canonical name.
func NamingLookup(sock *socket.StreamSocket, name string) (resolvedName, dest string, err error) {
	msg := fmt.Sprintf("NAMING LOOKUP NAME=%s\n", name)

	m, err := exchange(sock, msg, func(line string) (*message.Message, error) {
		m, err := message.Parse(line, message.Naming, message.Reply)
		if err != nil {
			return nil, err
		}
		return m, checkResult(m)
	})
	if err != nil {
		return "", "", err
	}

	resolvedName, ok := m.Get("NAME")
	if !ok {
		log.Error("router's NAMING LOOKUP reply did not contain NAME=")
		return "", "", samerrors.New(samerrors.InvalidValue, nil, "response did not contain NAME=")
	}
	dest, _ = m.Get("VALUE")
	if dest == "" {
		return "", "", samerrors.New(samerrors.InvalidValue, nil, "response did not contain a VALUE= destination")
	}
	return resolvedName, dest, nil
}
