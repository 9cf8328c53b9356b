package types

// ------------------------
// Input reports
// ------------------------

// ReportSize is the fixed wire size of one input report record, in bytes.
const ReportSize = 64

// InputReport is one fixed-format sensor snapshot destined for a client.
// The runtime never interprets its contents; records are copied verbatim
// into client buffers.
type InputReport [ReportSize]byte

// InputMode selects how the controller encodes its reports.
type InputMode uint8

const (
	ModeTouch InputMode = iota // absolute contact reports
	ModeMouse                  // legacy relative pointer reports
)

func (m InputMode) String() string {
	switch m {
	case ModeMouse:
		return "mouse"
	default:
		return "touch"
	}
}
