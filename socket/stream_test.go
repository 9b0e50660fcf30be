package socket

import (
	"testing"

	samerrors "github.com/go-i2p/sam3go/errors"
)

func TestWriteRejectsEmptyBuffer(t *testing.T) {
	s := &StreamSocket{}
	err := s.Write(nil)
	if samerrors.Of(err) != samerrors.InvalidValue {
		t.Fatalf("Of(err) = %v, want InvalidValue", samerrors.Of(err))
	}
}
