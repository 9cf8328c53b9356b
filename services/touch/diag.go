// services/touch/diag.go
package touch

import (
	"time"

	"touchcore-go/bus"
	"touchcore-go/errcode"
)

// publishState updates the retained driver state document.
func (d *Driver) publishState(level, status string, err error) {
	payload := map[string]any{
		"level":  level,
		"status": status,
		"ts_ms":  time.Now().UnixMilli(),
	}
	if err != nil {
		payload["error"] = string(errcode.Of(err))
		payload["detail"] = err.Error()
	}
	d.conn.Publish(d.conn.NewMessage(bus.T("touch", "state"), payload, true))
}

// pubEvent emits a non-retained diagnostic event. Publish never blocks, so
// this is safe on the interrupt path.
func (d *Driver) pubEvent(code string, err error, extra map[string]any) {
	payload := map[string]any{"ts_ms": time.Now().UnixMilli()}
	for k, v := range extra {
		payload[k] = v
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	d.conn.Publish(d.conn.NewMessage(bus.T("touch", "event", code), payload, false))
}
