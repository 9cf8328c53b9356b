package errcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestOfNil(t *testing.T) {
	if Of(nil) != OK {
		t.Fatal("nil must map to ok")
	}
}

func TestOfBareCode(t *testing.T) {
	if Of(ResourceMissing) != ResourceMissing {
		t.Fatal("bare code lost")
	}
}

func TestOfWrapped(t *testing.T) {
	cause := errors.New("nak")
	err := &E{C: TransportError, Op: "spb.read", Err: cause}
	if Of(err) != TransportError {
		t.Fatal("wrapper code lost")
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable through Unwrap")
	}

	// A further fmt.Errorf layer still resolves.
	outer := fmt.Errorf("attach: %w", err)
	if Of(outer) != TransportError {
		t.Fatal("code lost through %w")
	}
}

func TestOfUnknown(t *testing.T) {
	if Of(errors.New("anything")) != Error {
		t.Fatal("unknown error must map to the generic code")
	}
}

func TestEMessage(t *testing.T) {
	e := &E{C: BufferTooSmall, Msg: "want 64 bytes"}
	if e.Error() != "buffer_too_small: want 64 bytes" {
		t.Fatalf("got %q", e.Error())
	}
	if (&E{C: BufferTooSmall}).Error() != "buffer_too_small" {
		t.Fatal("bare wrapper must print the code")
	}
}
