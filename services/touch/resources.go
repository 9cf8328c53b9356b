// services/touch/resources.go
package touch

import (
	"touchcore-go/errcode"
	"touchcore-go/types"
)

// boundResources is what one pass over the translated descriptor list yields.
type boundResources struct {
	conn     types.ConnectionID
	reset    types.ConnectionID
	hasReset bool
}

// parseResources scans the platform's translated resource list once. Serial
// connection entries bind the bus id (last match wins); a GPIO IO entry
// binds the optional reset line. No serial entry is fatal; a missing reset
// line is not.
func parseResources(list []types.ResourceDescriptor) (boundResources, error) {
	var b boundResources
	found := false

	for _, res := range list {
		if res.Kind != types.ResourceConnection {
			continue
		}
		switch {
		case res.Class == types.ConnectionSerial && res.Type == types.ConnectionTypeI2C:
			b.conn = res.Conn
			found = true
		case res.Class == types.ConnectionGPIO && res.Type == types.ConnectionTypeGPIOIO:
			b.reset = res.Conn
			b.hasReset = true
		}
	}

	if !found {
		return boundResources{}, &errcode.E{
			C:   errcode.ResourceMissing,
			Op:  "touch.parse_resources",
			Msg: "no serial connection descriptor",
		}
	}
	return b, nil
}
