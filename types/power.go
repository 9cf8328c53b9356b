package types

// ------------------------
// Device power states
// ------------------------

// PowerState names the platform device power states handed to the power
// entry/exit hooks. Only the fully-on/off distinction matters to the
// runtime; the intermediate states are carried through untouched.
type PowerState uint8

const (
	PowerUnspecified PowerState = iota
	PowerOn                     // fully powered (D0)
	PowerIdle1                  // D1
	PowerIdle2                  // D2
	PowerOff                    // powered down (D3)
)

func (p PowerState) String() string {
	switch p {
	case PowerOn:
		return "on"
	case PowerIdle1:
		return "idle1"
	case PowerIdle2:
		return "idle2"
	case PowerOff:
		return "off"
	default:
		return "unspecified"
	}
}
