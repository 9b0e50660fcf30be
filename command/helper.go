// Package command implements one function per SAMv3 verb this library
// speaks: it formats the request line, sends it over a control
// socket.StreamSocket, reads one reply line, and turns a non-OK RESULT=
// into the closed error taxonomy (spec.md §4.2, §4.3).
package command

import (
	"github.com/go-i2p/sam3go/message"
	"github.com/go-i2p/sam3go/socket"

	samerrors "github.com/go-i2p/sam3go/errors"
)

// exchange sends msg over sock and parses the single reply line the router
// sends back against a validating parse function.
func exchange(sock *socket.StreamSocket, msg string, parse func(string) (*message.Message, error)) (*message.Message, error) {
	if err := sock.WriteLine(msg); err != nil {
		return nil, err
	}
	line, err := sock.ReadLine()
	if err != nil {
		log.WithError(err).Error("failed to read response from the router")
		return nil, err
	}
	return parse(line)
}

// resultMessage returns the MESSAGE= value of a reply, or a fallback string
// when the router didn't include one.
func resultMessage(m *message.Message) string {
	if v, ok := m.Get("MESSAGE"); ok {
		return v
	}
	return "no message from router"
}

// checkResult maps a reply's RESULT= value onto the closed error taxonomy.
// A missing RESULT= is reported as DoesntExist.
func checkResult(m *message.Message) error {
	res, ok := m.Get("RESULT")
	if !ok {
		return samerrors.New(samerrors.DoesntExist, nil, "response did not contain RESULT=")
	}

	switch res {
	case "OK":
		return nil
	case "DUPLICATED_ID", "DUPLICATED_DEST":
		return samerrors.New(samerrors.Duplicate, nil, "%s", resultMessage(m))
	case "INVALID_KEY", "INVALID_ID", "NOVERSION":
		return samerrors.New(samerrors.InvalidValue, nil, "%s", resultMessage(m))
	case "KEY_NOT_FOUND":
		return samerrors.New(samerrors.DoesntExist, nil, "%s", resultMessage(m))
	case "I2P_ERROR", "CANT_REACH_PEER", "TIMEOUT":
		return samerrors.New(samerrors.RouterError, nil, "%s", resultMessage(m))
	default:
		log.WithField("result", res).Warn("unrecognized RESULT= from router")
		return samerrors.New(samerrors.Unknown, nil, "unrecognized result %s: %s", res, resultMessage(m))
	}
}
