package command

import (
	"bufio"
	"strings"
	"testing"

	samerrors "github.com/go-i2p/sam3go/errors"
	"github.com/go-i2p/sam3go/internal/testsam"
)

func TestSessionCreateStreamOK(t *testing.T) {
	var sent string
	srv := testsam.New(t, func(r *bufio.Reader, w *bufio.Writer) {
		line, _ := testsam.ReplyOnce(r, w, "SESSION STATUS RESULT=OK DESTINATION=abc123")
		sent = line
	})
	sock := dialTestSAM(t, srv)

	if err := SessionCreateStream(sock, "nick1", TransientDestination); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sent, "STYLE=STREAM") || !strings.Contains(sent, "ID=nick1") ||
		!strings.Contains(sent, "DESTINATION=TRANSIENT") {
		t.Fatalf("unexpected request line: %q", sent)
	}
}

func TestSessionCreateStreamDuplicate(t *testing.T) {
	srv := testsam.New(t, func(r *bufio.Reader, w *bufio.Writer) {
		testsam.ReplyOnce(r, w, "SESSION STATUS RESULT=DUPLICATED_ID")
	})
	sock := dialTestSAM(t, srv)

	err := SessionCreateStream(sock, "nick2", TransientDestination)
	if samerrors.Of(err) != samerrors.Duplicate {
		t.Fatalf("Of(err) = %v, want Duplicate", samerrors.Of(err))
	}
}

func TestSessionCreateDatagramWithPort(t *testing.T) {
	var sent string
	srv := testsam.New(t, func(r *bufio.Reader, w *bufio.Writer) {
		line, _ := testsam.ReplyOnce(r, w, "SESSION STATUS RESULT=OK DESTINATION=abc123")
		sent = line
	})
	sock := dialTestSAM(t, srv)

	if err := SessionCreateDatagram(sock, StyleRaw, "nick3", TransientDestination, 9999); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sent, "STYLE=RAW") || !strings.Contains(sent, "PORT=9999") ||
		!strings.Contains(sent, "DESTINATION=TRANSIENT") {
		t.Fatalf("unexpected request line: %q", sent)
	}
}

func TestSessionCreatePassesOptionsThrough(t *testing.T) {
	var sent string
	srv := testsam.New(t, func(r *bufio.Reader, w *bufio.Writer) {
		line, _ := testsam.ReplyOnce(r, w, "SESSION STATUS RESULT=OK DESTINATION=abc123")
		sent = line
	})
	sock := dialTestSAM(t, srv)

	if err := SessionCreateStream(sock, "nick4", TransientDestination, "i2cp.leaseSetEncType=4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sent, "i2cp.leaseSetEncType=4") {
		t.Fatalf("options not passed through: %q", sent)
	}
}

func TestSessionCreateStreamReusesExistingDestination(t *testing.T) {
	var sent string
	srv := testsam.New(t, func(r *bufio.Reader, w *bufio.Writer) {
		line, _ := testsam.ReplyOnce(r, w, "SESSION STATUS RESULT=OK DESTINATION=abc123")
		sent = line
	})
	sock := dialTestSAM(t, srv)

	priv := "existing-private-key-data"
	if err := SessionCreateStream(sock, "nick5", priv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sent, "DESTINATION="+priv) {
		t.Fatalf("expected request to reuse existing destination, got: %q", sent)
	}
}
