package command

import (
	"fmt"

	"github.com/go-i2p/sam3go/message"
	"github.com/go-i2p/sam3go/socket"

	samerrors "github.com/go-i2p/sam3go/errors"
)

// DefaultSignatureType is used by DestGenerate when the caller doesn't
// request a specific one.
const DefaultSignatureType = "EdDSA_SHA512_Ed25519"

// DestGenerate asks the router to generate a new destination keypair,
// independent of any session. sigType may be empty to use DefaultSignatureType.
func DestGenerate(sock *socket.StreamSocket, sigType string) (pub, priv string, err error) {
	if sigType == "" {
		sigType = DefaultSignatureType
	}
	msg := fmt.Sprintf("DEST GENERATE SIGNATURE_TYPE=%s\n", sigType)

	m, err := exchange(sock, msg, func(line string) (*message.Message, error) {
		return message.Parse(line, message.Dest, message.Reply)
	})
	if err != nil {
		return "", "", err
	}

	pub, ok := m.Get("PUB")
	if !ok {
		log.Error("router's DEST GENERATE reply did not contain PUB=")
		return "", "", samerrors.New(samerrors.InvalidValue, nil, "response did not contain PUB=")
	}
	priv, ok = m.Get("PRIV")
	if !ok {
		log.Error("router's DEST GENERATE reply did not contain PRIV=")
		return "", "", samerrors.New(samerrors.InvalidValue, nil, "response did not contain PRIV=")
	}
	return pub, priv, nil
}
