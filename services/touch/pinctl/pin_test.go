package pinctl

import (
	"errors"
	"testing"
	"time"

	"touchcore-go/errcode"
)

// memPin records writes; failAt selects which write (1-based) fails.
type memPin struct {
	writes []byte
	failAt int
}

func (p *memPin) ReadPin() (byte, error) {
	if len(p.writes) == 0 {
		return 0, nil
	}
	return p.writes[len(p.writes)-1], nil
}

func (p *memPin) WritePin(v byte) error {
	if p.failAt == len(p.writes)+1 {
		return errors.New("pin write rejected")
	}
	p.writes = append(p.writes, v)
	return nil
}

func TestPulseSequence(t *testing.T) {
	pin := &memPin{}
	var slept []time.Duration
	cfg := PulseConfig{LowTime: 10 * time.Millisecond, SettleTime: 100 * time.Millisecond}

	err := pulse(pin, cfg, func(d time.Duration) { slept = append(slept, d) })
	if err != nil {
		t.Fatalf("pulse: %v", err)
	}
	if len(pin.writes) != 2 || pin.writes[0] != 0 || pin.writes[1] != 1 {
		t.Fatalf("expected writes [0 1], got %v", pin.writes)
	}
	if len(slept) != 2 || slept[0] != cfg.LowTime || slept[1] != cfg.SettleTime {
		t.Fatalf("expected sleeps [low settle], got %v", slept)
	}
}

func TestPulseAbortsOnAssertFailure(t *testing.T) {
	pin := &memPin{failAt: 1}
	err := pulse(pin, PulseConfig{}, func(time.Duration) {})
	if errcode.Of(err) != errcode.TransportError {
		t.Fatalf("expected transport_error, got %v", err)
	}
	if len(pin.writes) != 0 {
		t.Fatalf("no write should have landed, got %v", pin.writes)
	}
}

func TestPulseAbortsOnReleaseFailure(t *testing.T) {
	pin := &memPin{failAt: 2}
	err := pulse(pin, PulseConfig{}, func(time.Duration) {})
	if errcode.Of(err) != errcode.TransportError {
		t.Fatalf("expected transport_error, got %v", err)
	}
	// The line was left asserted; the caller treats this as fatal.
	if len(pin.writes) != 1 || pin.writes[0] != 0 {
		t.Fatalf("expected only the assert write, got %v", pin.writes)
	}
}
