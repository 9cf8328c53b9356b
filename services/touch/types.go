// services/touch/types.go
package touch

import (
	"touchcore-go/services/touch/spbio"
	"touchcore-go/types"
)

// Session is the opaque sensing-context handle issued by a Controller.
// The runtime stores and passes it back; it never looks inside.
type Session interface{}

// Controller is the sensing collaborator: it owns the scanning protocol
// (register decoding, contact tracking) and produces finished report
// records. Controllers must not retain the bus session beyond a call and
// must not spawn goroutines on the interrupt path.
type Controller interface {
	// One-time context lifecycle, driven by attach/detach.
	AllocateContext() (Session, error)
	FreeContext(s Session) error

	// Device start/stop around the bound bus session.
	StartDevice(s Session, bus *spbio.Session) error
	StopDevice(s Session, bus *spbio.Session) error

	// Power transitions.
	WakeDevice(s Session, bus *spbio.Session) error
	StandbyDevice(s Session, bus *spbio.Session) error

	// ServiceInterrupts reads hardware status/data for one interrupt and
	// returns zero or more finished records. Must not block beyond the bus
	// transactions themselves.
	ServiceInterrupts(s Session, bus *spbio.Session, mode types.InputMode) ([]types.InputReport, error)

	// CompleteIdleRequests releases any requests the platform parked while
	// the device idled, once it is fully powered again.
	CompleteIdleRequests(dev *DeviceContext)
}

// DeviceContext is the per-device state, exclusively owned by one Driver.
// Created at attach, released at detach, never shared across devices.
type DeviceContext struct {
	Conn      types.ConnectionID // bound serial-bus connection
	ResetConn types.ConnectionID // optional reset line
	HasReset  bool

	session  *spbio.Session
	sensing  Session
	started  bool
	deferred bool // servicing owed after a power-up
}
