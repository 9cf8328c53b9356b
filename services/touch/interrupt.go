// services/touch/interrupt.go
package touch

// OnInterrupt services one hardware interrupt signal. It runs in a
// non-suspending context: no waits, no blocking sends anywhere on this
// path. The interrupt is always reported recognized so the platform never
// reroutes or re-signals it.
func (d *Driver) OnInterrupt() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	dev := d.dev
	if dev == nil || !dev.started {
		return true
	}

	reports, err := d.ctrl.ServiceInterrupts(dev.sensing, dev.session, d.mode)
	if err != nil {
		// Contained: this interrupt produces nothing and there is no retry.
		d.pubEvent("servicing_error", err, nil)
		return true
	}

	_, dropped, rejected := d.reqs.Deliver(reports)
	if dropped > 0 {
		d.pubEvent("report_dropped", nil, map[string]any{"count": dropped})
	}
	if rejected > 0 {
		d.pubEvent("buffer_too_small", nil, map[string]any{"count": rejected})
	}

	dev.deferred = false
	return true
}
