package touch

import (
	"errors"
	"testing"

	"touchcore-go/errcode"
	"touchcore-go/types"
)

func attachedHarness(t *testing.T) *harness {
	t.Helper()
	h := newHarness(t, Config{})
	if err := h.d.OnAttach(nil, serialOnly()); err != nil {
		t.Fatalf("attach: %v", err)
	}
	return h
}

func TestPowerEntrySetsDeferredServicing(t *testing.T) {
	h := attachedHarness(t)

	if h.d.DeferredServicing() {
		t.Fatal("deferred flag set before power entry")
	}
	if err := h.d.OnPowerEntry(types.PowerOff); err != nil {
		t.Fatalf("entry: %v", err)
	}
	if !h.d.DeferredServicing() {
		t.Fatal("deferred flag not set")
	}
	if h.ctrl.idleCompletions != 1 {
		t.Fatalf("idle completions=%d", h.ctrl.idleCompletions)
	}
}

func TestPowerEntryWakeFailureStillSetsDeferred(t *testing.T) {
	h := attachedHarness(t)
	wakeErr := errors.New("wake nak")
	h.ctrl.wakeErr = wakeErr

	err := h.d.OnPowerEntry(types.PowerOff)
	if !errors.Is(err, wakeErr) {
		t.Fatalf("wake status not reported upward: %v", err)
	}
	// The transition itself completed: flag set, idle requests released.
	if !h.d.DeferredServicing() {
		t.Fatal("deferred flag must be set even when wake fails")
	}
	if h.ctrl.idleCompletions != 1 {
		t.Fatalf("idle completions=%d", h.ctrl.idleCompletions)
	}
}

func TestPowerExitReturnsStandbyStatus(t *testing.T) {
	h := attachedHarness(t)
	standbyErr := errors.New("standby nak")
	h.ctrl.standbyErr = standbyErr

	err := h.d.OnPowerExit(types.PowerOff)
	if !errors.Is(err, standbyErr) {
		t.Fatalf("standby status not reported upward: %v", err)
	}
	// Failure never marks the device failed; wake still works.
	h.ctrl.standbyErr = nil
	if err := h.d.OnPowerEntry(types.PowerOff); err != nil {
		t.Fatalf("entry after failed exit: %v", err)
	}
}

func TestPowerHooksRequireAttachedDevice(t *testing.T) {
	h := newHarness(t, Config{})
	if errcode.Of(h.d.OnPowerEntry(types.PowerOff)) != errcode.NotAttached {
		t.Fatal("entry on detached device")
	}
	if errcode.Of(h.d.OnPowerExit(types.PowerOff)) != errcode.NotAttached {
		t.Fatal("exit on detached device")
	}
}

func TestSuccessfulServicingClearsDeferredFlag(t *testing.T) {
	h := attachedHarness(t)
	if err := h.d.OnPowerEntry(types.PowerOff); err != nil {
		t.Fatalf("entry: %v", err)
	}

	// A failed pass leaves the debt in place.
	h.ctrl.svcErr = errors.New("glitch")
	h.d.OnInterrupt()
	if !h.d.DeferredServicing() {
		t.Fatal("failed servicing must not clear the deferred flag")
	}

	h.ctrl.svcErr = nil
	h.d.OnInterrupt()
	if h.d.DeferredServicing() {
		t.Fatal("successful servicing must clear the deferred flag")
	}
}
