package message

import (
	"bytes"
	"testing"

	samerrors "github.com/go-i2p/sam3go/errors"
)

func TestParseDatagramHeaderValid(t *testing.T) {
	dest := "abcdef123456.b32.i2p"
	payload := []byte("hello world")
	data := append([]byte(dest+"\n"), payload...)

	hdr, rest, err := ParseDatagramHeader(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hdr.Dest != dest {
		t.Errorf("Dest = %q, want %q", hdr.Dest, dest)
	}
	if !bytes.Equal(rest, payload) {
		t.Errorf("rest = %q, want %q", rest, payload)
	}
}

func TestParseDatagramHeaderWithPorts(t *testing.T) {
	dest := "abcdef123456.b32.i2p"
	data := []byte(dest + " FROM_PORT=1234 TO_PORT=5678\npayload")

	hdr, rest, err := ParseDatagramHeader(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hdr.Dest != dest {
		t.Errorf("Dest = %q, want %q", hdr.Dest, dest)
	}
	if string(rest) != "payload" {
		t.Errorf("rest = %q", rest)
	}
}

func TestParseDatagramHeaderEmptyPayload(t *testing.T) {
	data := []byte("dest.b32.i2p\n")
	hdr, rest, err := ParseDatagramHeader(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hdr.Dest != "dest.b32.i2p" {
		t.Errorf("Dest = %q", hdr.Dest)
	}
	if len(rest) != 0 {
		t.Errorf("expected empty rest, got %q", rest)
	}
}

func TestParseDatagramHeaderNoNewline(t *testing.T) {
	_, _, err := ParseDatagramHeader([]byte("no newline here"))
	if samerrors.Of(err) != samerrors.ParseError {
		t.Fatalf("Of(err) = %v, want ParseError", samerrors.Of(err))
	}
}

func TestParseDatagramHeaderEmptyHeader(t *testing.T) {
	_, _, err := ParseDatagramHeader([]byte("\npayload"))
	if samerrors.Of(err) != samerrors.ParseError {
		t.Fatalf("Of(err) = %v, want ParseError", samerrors.Of(err))
	}
}
