package command

import (
	"bufio"
	"testing"

	samerrors "github.com/go-i2p/sam3go/errors"
	"github.com/go-i2p/sam3go/internal/testsam"
	"github.com/go-i2p/sam3go/socket"
)

func dialTestSAM(t *testing.T, srv *testsam.Server) *socket.StreamSocket {
	t.Helper()
	host, port := srv.HostPort()
	sock, err := socket.Dial(host, port)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { sock.Close() })
	return sock
}

func TestHelloOK(t *testing.T) {
	srv := testsam.New(t, func(r *bufio.Reader, w *bufio.Writer) {
		testsam.ReplyOnce(r, w, "HELLO REPLY RESULT=OK VERSION=3.1")
	})
	sock := dialTestSAM(t, srv)

	if err := Hello(sock); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHelloNoVersion(t *testing.T) {
	srv := testsam.New(t, func(r *bufio.Reader, w *bufio.Writer) {
		testsam.ReplyOnce(r, w, "HELLO REPLY RESULT=NOVERSION")
	})
	sock := dialTestSAM(t, srv)

	err := Hello(sock)
	if samerrors.Of(err) != samerrors.InvalidValue {
		t.Fatalf("Of(err) = %v, want InvalidValue", samerrors.Of(err))
	}
}
