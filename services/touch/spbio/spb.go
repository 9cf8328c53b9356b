// services/touch/spbio/spb.go
package spbio

import (
	"touchcore-go/errcode"
	"touchcore-go/types"

	"tinygo.org/x/drivers"
)

// Factory resolves a platform connection id to a byte-level bus. The
// platform owns the wiring; the driver only ever sees the bound id.
type Factory interface {
	ByID(id types.ConnectionID) (drivers.I2C, bool)
}

// Session is the bus-transport binding for one device instance. It is
// created empty at attach, bound by Initialize, and unbound by
// Deinitialize. All reads and writes go through the bound bus.
type Session struct {
	id   types.ConnectionID
	addr uint16
	bus  drivers.I2C
}

// Initialize binds the session to the bus behind id. Failing to resolve the
// id is fatal to the caller's attach sequence.
func (s *Session) Initialize(f Factory, id types.ConnectionID, addr uint16) error {
	if s.bus != nil {
		return &errcode.E{C: errcode.TransportError, Op: "spb.initialize", Msg: "already_initialized"}
	}
	b, ok := f.ByID(id)
	if !ok {
		return &errcode.E{C: errcode.TransportError, Op: "spb.initialize", Msg: "unknown_connection"}
	}
	s.id = id
	s.addr = addr
	s.bus = b
	return nil
}

// Deinitialize drops the binding. Safe on an unbound session.
func (s *Session) Deinitialize() {
	s.bus = nil
}

// Ready reports whether the session is bound.
func (s *Session) Ready() bool { return s.bus != nil }

// ID returns the bound connection id.
func (s *Session) ID() types.ConnectionID { return s.id }

// Read issues a register read: one address byte out, len(buf) bytes in.
func (s *Session) Read(reg uint8, buf []byte) error {
	if s.bus == nil {
		return &errcode.E{C: errcode.TransportError, Op: "spb.read", Msg: "not_initialized"}
	}
	if err := s.bus.Tx(s.addr, []byte{reg}, buf); err != nil {
		return &errcode.E{C: errcode.TransportError, Op: "spb.read", Err: err}
	}
	return nil
}

// Write issues a register write: address byte followed by data.
func (s *Session) Write(reg uint8, data []byte) error {
	if s.bus == nil {
		return &errcode.E{C: errcode.TransportError, Op: "spb.write", Msg: "not_initialized"}
	}
	w := make([]byte, 0, 1+len(data))
	w = append(w, reg)
	w = append(w, data...)
	if err := s.bus.Tx(s.addr, w, nil); err != nil {
		return &errcode.E{C: errcode.TransportError, Op: "spb.write", Err: err}
	}
	return nil
}
