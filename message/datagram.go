package message

import (
	"bytes"
	"strings"

	samerrors "github.com/go-i2p/sam3go/errors"
)

// DatagramHeader is the leading "<sender_destination>\n" line ahead of a
// repliable datagram's payload (spec.md §4.1, §4.6).
type DatagramHeader struct {
	Dest string
}

// ParseDatagramHeader reads characters up to the first newline in data as
// the sender destination, and returns the header plus the remaining bytes
// as the payload. Unlike Parse, this operates on raw bytes: the payload
// that follows the header is arbitrary application data, not SAMv3 text.
func ParseDatagramHeader(data []byte) (DatagramHeader, []byte, error) {
	idx := bytes.IndexByte(data, '\n')
	if idx < 0 {
		return DatagramHeader{}, nil, samerrors.New(samerrors.ParseError, nil,
			"no newline terminating datagram header in %d bytes", len(data))
	}
	destLine := string(data[:idx])
	if destLine == "" {
		return DatagramHeader{}, nil, samerrors.New(samerrors.ParseError, nil, "empty datagram header")
	}
	dest := destLine
	if sp := strings.IndexByte(destLine, ' '); sp >= 0 {
		// SAMv3.2+ may append " FROM_PORT=nnn TO_PORT=nnn" after the
		// destination; only the destination itself is observable here.
		dest = destLine[:sp]
	}
	return DatagramHeader{Dest: dest}, data[idx+1:], nil
}
