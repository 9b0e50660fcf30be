package errors

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		TcpConnectionError: "TcpConnectionError",
		ParseError:         "ParseError",
		Duplicate:          "Duplicate",
		Kind(999):          "Unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestNewAndOf(t *testing.T) {
	cause := errors.New("boom")
	err := New(Duplicate, cause, "session id %s already in use", "N")

	if got := Of(err); got != Duplicate {
		t.Fatalf("Of(err) = %v, want Duplicate", got)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause to be reachable via errors.Is")
	}
	if Of(cause) != Unknown {
		t.Errorf("Of(plain error) = %v, want Unknown", Of(cause))
	}
}

func TestErrorIs(t *testing.T) {
	a := New(InvalidValue, nil, "bad key")
	b := New(InvalidValue, nil, "different message, same kind")
	c := New(RouterError, nil, "different kind")

	if !errors.Is(a, b) {
		t.Errorf("expected two InvalidValue errors to match via Is")
	}
	if errors.Is(a, c) {
		t.Errorf("expected InvalidValue and RouterError not to match")
	}
}

func TestNewWithoutCause(t *testing.T) {
	err := New(DoesntExist, nil, "name %s not found", "idk.i2p")
	if Of(err) != DoesntExist {
		t.Fatalf("Of(err) = %v, want DoesntExist", Of(err))
	}
	if err.Error() == "" {
		t.Errorf("expected non-empty error string")
	}
}
