// services/touch/service.go
package touch

import (
	"sync"

	"touchcore-go/bus"
	"touchcore-go/errcode"
	"touchcore-go/services/touch/pinctl"
	"touchcore-go/services/touch/spbio"
	"touchcore-go/types"
)

// Driver is the platform-facing runtime of one touch-controller device:
// it binds hardware resources at attach, bridges interrupts to client read
// requests, and tracks power transitions. One Driver per device instance.
type Driver struct {
	conn  *bus.Connection
	ctrl  Controller
	buses spbio.Factory
	pins  pinctl.Factory
	cfg   Config
	mode  types.InputMode

	// mu is the single mutual-exclusion domain for controller/session
	// calls: interrupt servicing, power transitions and attach/detach all
	// take it.
	mu  sync.Mutex
	dev *DeviceContext

	reqs *RequestQueue
}

func New(conn *bus.Connection, ctrl Controller, buses spbio.Factory, pins pinctl.Factory, cfg Config) *Driver {
	cfg = cfg.withDefaults()
	d := &Driver{
		conn:  conn,
		ctrl:  ctrl,
		buses: buses,
		pins:  pins,
		cfg:   cfg,
		mode:  cfg.mode(),
		reqs:  NewRequestQueue(),
	}
	d.publishState("idle", "awaiting_attach", nil)
	return d
}

// OnAttach binds the device to its hardware: resources, bus transport,
// sensing context, controller start. The first failing step aborts and its
// error propagates; nothing is unwound here — the platform calls OnDetach
// for symmetry even after a failed attach.
func (d *Driver) OnAttach(raw, translated []types.ResourceDescriptor) error {
	_ = raw // bindings come from the translated list only

	d.mu.Lock()
	defer d.mu.Unlock()

	bound, err := parseResources(translated)
	if err != nil {
		d.publishState("error", "resource_binding_failed", err)
		return err
	}
	dev := &DeviceContext{
		Conn:      bound.conn,
		ResetConn: bound.reset,
		HasReset:  bound.hasReset,
		session:   &spbio.Session{},
	}
	d.dev = dev

	if d.cfg.Reset.Enabled && dev.HasReset {
		pin, ok := d.pins.ByID(dev.ResetConn)
		if !ok {
			err := &errcode.E{C: errcode.TransportError, Op: "touch.attach", Msg: "unknown_reset_pin"}
			d.publishState("error", "reset_pulse_failed", err)
			return err
		}
		if err := pinctl.Pulse(pin, d.cfg.Reset.pulse()); err != nil {
			d.publishState("error", "reset_pulse_failed", err)
			return err
		}
	}

	if err := dev.session.Initialize(d.buses, dev.Conn, d.cfg.Address); err != nil {
		d.publishState("error", "transport_init_failed", err)
		return err
	}

	sens, err := d.ctrl.AllocateContext()
	if err != nil {
		d.publishState("error", "context_alloc_failed", err)
		return err
	}
	dev.sensing = sens

	if err := d.ctrl.StartDevice(dev.sensing, dev.session); err != nil {
		d.publishState("error", "start_failed", err)
		return err
	}
	dev.started = true

	d.publishState("ready", "attached", nil)
	return nil
}

// OnDetach releases everything attach bound. Teardown is best-effort: each
// step's failure is published but never skips later steps; the first error
// is returned.
func (d *Driver) OnDetach(translated []types.ResourceDescriptor) error {
	_ = translated

	d.mu.Lock()
	defer d.mu.Unlock()

	dev := d.dev
	if dev == nil {
		return nil
	}

	var first error
	capture := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}

	if dev.sensing != nil {
		if err := d.ctrl.StopDevice(dev.sensing, dev.session); err != nil {
			d.pubEvent("detach_stop_failed", err, nil)
			capture(err)
		}
		if err := d.ctrl.FreeContext(dev.sensing); err != nil {
			d.pubEvent("detach_free_failed", err, nil)
			capture(err)
		}
		dev.sensing = nil
	}
	dev.session.Deinitialize()
	dev.started = false
	d.dev = nil

	d.publishState("idle", "detached", first)
	return first
}

// Submit parks a client read request until the next produced record.
func (d *Driver) Submit(r *ReadRequest) { d.reqs.Submit(r) }

// Pending reports the parked read-request count.
func (d *Driver) Pending() int { return d.reqs.Len() }

// Drops reports records dropped for want of a waiting request.
func (d *Driver) Drops() uint32 { return d.reqs.Drops() }

// DeferredServicing reports whether a wake-time servicing pass is owed.
func (d *Driver) DeferredServicing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dev != nil && d.dev.deferred
}
