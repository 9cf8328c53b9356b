package types

// ------------------------
// Platform hardware resources
// ------------------------

// ConnectionID identifies a platform connection resource. The platform hands
// the 64-bit id over split low/high; both halves are kept as received.
type ConnectionID struct {
	Low  uint32 `json:"low"`
	High uint32 `json:"high"`
}

func (id ConnectionID) IsZero() bool { return id.Low == 0 && id.High == 0 }

// ResourceKind classifies one descriptor entry.
type ResourceKind uint8

const (
	ResourceMemory ResourceKind = iota
	ResourceInterrupt
	ResourceConnection
)

// ConnectionClass splits connection descriptors by wire class.
type ConnectionClass uint8

const (
	ConnectionSerial ConnectionClass = iota + 1
	ConnectionGPIO
)

// ConnectionType narrows the class to a concrete connection flavour.
type ConnectionType uint8

const (
	ConnectionTypeI2C ConnectionType = iota + 1
	ConnectionTypeSPI
	ConnectionTypeUART
	ConnectionTypeGPIOIO
	ConnectionTypeGPIOInt
)

// ResourceDescriptor is one read-only entry of the platform-owned resource
// list handed to the driver at attach. The list is consumed once and never
// retained.
type ResourceDescriptor struct {
	Kind  ResourceKind
	Class ConnectionClass
	Type  ConnectionType
	Conn  ConnectionID
}

// SerialConnection builds a serial-bus connection descriptor.
func SerialConnection(low, high uint32) ResourceDescriptor {
	return ResourceDescriptor{
		Kind:  ResourceConnection,
		Class: ConnectionSerial,
		Type:  ConnectionTypeI2C,
		Conn:  ConnectionID{Low: low, High: high},
	}
}

// GPIOConnection builds a GPIO IO connection descriptor.
func GPIOConnection(low, high uint32) ResourceDescriptor {
	return ResourceDescriptor{
		Kind:  ResourceConnection,
		Class: ConnectionGPIO,
		Type:  ConnectionTypeGPIOIO,
		Conn:  ConnectionID{Low: low, High: high},
	}
}
