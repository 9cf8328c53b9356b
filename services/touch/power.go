// services/touch/power.go
package touch

import (
	"touchcore-go/errcode"
	"touchcore-go/types"
)

// OnPowerEntry runs when the device becomes fully powered. A wake failure
// is published and reported upward but never aborts the transition.
func (d *Driver) OnPowerEntry(prev types.PowerState) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	dev := d.dev
	if dev == nil || dev.sensing == nil {
		return errcode.NotAttached
	}

	err := d.ctrl.WakeDevice(dev.sensing, dev.session)
	if err != nil {
		d.pubEvent("wake_failed", err, map[string]any{"prev": prev.String()})
	}

	// An edge-triggered interrupt may have fired while powered down;
	// service the chip on the next pass regardless of the wake outcome.
	dev.deferred = true

	d.ctrl.CompleteIdleRequests(dev)
	return err
}

// OnPowerExit runs when the device leaves full power. The standby status is
// returned as-is; the transition itself always completes.
func (d *Driver) OnPowerExit(target types.PowerState) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	dev := d.dev
	if dev == nil || dev.sensing == nil {
		return errcode.NotAttached
	}

	err := d.ctrl.StandbyDevice(dev.sensing, dev.session)
	if err != nil {
		d.pubEvent("standby_failed", err, map[string]any{"target": target.String()})
	}
	return err
}
