package command

import (
	"testing"

	samerrors "github.com/go-i2p/sam3go/errors"
	"github.com/go-i2p/sam3go/message"
)

func parseHello(t *testing.T, line string) *message.Message {
	t.Helper()
	m, err := message.Parse(line, message.Hello, message.Reply)
	if err != nil {
		t.Fatalf("parse(%q): %v", line, err)
	}
	return m
}

func TestCheckResultMissingResult(t *testing.T) {
	m := parseHello(t, "HELLO REPLY")
	if samerrors.Of(checkResult(m)) != samerrors.DoesntExist {
		t.Fatalf("got %v", samerrors.Of(checkResult(m)))
	}
}

func TestCheckResultOK(t *testing.T) {
	m := parseHello(t, "HELLO REPLY RESULT=OK")
	if err := checkResult(m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckResultDuplicate(t *testing.T) {
	for _, line := range []string{
		"HELLO REPLY RESULT=DUPLICATED_ID",
		`HELLO REPLY RESULT=DUPLICATED_DEST MESSAGE="DESTINATION ALREADY EXISTS"`,
	} {
		m := parseHello(t, line)
		if got := samerrors.Of(checkResult(m)); got != samerrors.Duplicate {
			t.Errorf("%q: got %v, want Duplicate", line, got)
		}
	}
}

func TestCheckResultInvalidValue(t *testing.T) {
	for _, line := range []string{
		"HELLO REPLY RESULT=INVALID_KEY",
		`HELLO REPLY RESULT=INVALID_ID MESSAGE="INVALID NICKNAME"`,
	} {
		m := parseHello(t, line)
		if got := samerrors.Of(checkResult(m)); got != samerrors.InvalidValue {
			t.Errorf("%q: got %v, want InvalidValue", line, got)
		}
	}
}

func TestCheckResultRouterError(t *testing.T) {
	for _, line := range []string{
		`HELLO REPLY RESULT=I2P_ERROR MESSAGE="ROUTER ERROR"`,
		"HELLO REPLY RESULT=CANT_REACH_PEER",
		"HELLO REPLY RESULT=TIMEOUT",
	} {
		m := parseHello(t, line)
		if got := samerrors.Of(checkResult(m)); got != samerrors.RouterError {
			t.Errorf("%q: got %v, want RouterError", line, got)
		}
	}
}

func TestCheckResultDoesntExist(t *testing.T) {
	m := parseHello(t, "HELLO REPLY RESULT=KEY_NOT_FOUND")
	if got := samerrors.Of(checkResult(m)); got != samerrors.DoesntExist {
		t.Fatalf("got %v, want DoesntExist", got)
	}
}

func TestCheckResultUnknown(t *testing.T) {
	m := parseHello(t, `HELLO REPLY RESULT=INVALID_RESULT MESSAGE="NEW STATUS CODE"`)
	if got := samerrors.Of(checkResult(m)); got != samerrors.Unknown {
		t.Fatalf("got %v, want Unknown", got)
	}
}
