// services/touch/pinctl/pin.go
package pinctl

import (
	"time"

	"touchcore-go/errcode"
	"touchcore-go/types"
)

// PinIO is the platform's generic single-pin control surface: one read and
// one write request against an opened pin resource.
type PinIO interface {
	ReadPin() (byte, error)
	WritePin(v byte) error
}

// Factory opens a pin resource by its connection id.
type Factory interface {
	ByID(id types.ConnectionID) (PinIO, bool)
}

// PulseConfig times the reset bring-up sequence.
type PulseConfig struct {
	LowTime    time.Duration // reset held low, power rail settle
	SettleTime time.Duration // chip boot before first bus transaction
}

// Pulse drives the line low, waits, raises it, and waits again. Any pin
// write failure aborts the sequence.
func Pulse(pin PinIO, cfg PulseConfig) error {
	return pulse(pin, cfg, time.Sleep)
}

func pulse(pin PinIO, cfg PulseConfig, sleep func(time.Duration)) error {
	if err := pin.WritePin(0); err != nil {
		return &errcode.E{C: errcode.TransportError, Op: "pin.pulse", Msg: "assert_reset", Err: err}
	}
	sleep(cfg.LowTime)
	if err := pin.WritePin(1); err != nil {
		return &errcode.E{C: errcode.TransportError, Op: "pin.pulse", Msg: "release_reset", Err: err}
	}
	sleep(cfg.SettleTime)
	return nil
}
