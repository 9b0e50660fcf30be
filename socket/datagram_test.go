package socket

import (
	"testing"

	samerrors "github.com/go-i2p/sam3go/errors"
)

func TestSendToRejectsEmptyBuffer(t *testing.T) {
	d := &DatagramSocket{}
	err := d.SendTo(nil)
	if samerrors.Of(err) != samerrors.InvalidValue {
		t.Fatalf("Of(err) = %v, want InvalidValue", samerrors.Of(err))
	}
}
