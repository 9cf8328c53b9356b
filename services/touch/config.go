// services/touch/config.go
package touch

import (
	"time"

	"touchcore-go/services/touch/pinctl"
	"touchcore-go/types"
	"touchcore-go/x/mathx"
)

// Config is the JSON-shaped driver configuration.
type Config struct {
	InputMode string           `json:"input_mode,omitempty"` // "touch" | "mouse"
	Address   uint16           `json:"addr,omitempty"`       // 7-bit bus address
	Reset     ResetPulseConfig `json:"reset_pulse,omitempty"`
}

// ResetPulseConfig controls the optional bring-up pulse on the reset line.
// Disabled by default: most platforms guarantee the chip is out of reset
// before attach.
type ResetPulseConfig struct {
	Enabled  bool `json:"enabled,omitempty"`
	LowMS    int  `json:"low_ms,omitempty"`    // reset held low
	SettleMS int  `json:"settle_ms,omitempty"` // boot time before first transaction
}

const (
	defaultAddr     = 0x20
	defaultLowMS    = 10
	defaultSettleMS = 100
)

func (c Config) withDefaults() Config {
	if c.Address == 0 {
		c.Address = defaultAddr
	}
	if c.Reset.LowMS == 0 {
		c.Reset.LowMS = defaultLowMS
	}
	if c.Reset.SettleMS == 0 {
		c.Reset.SettleMS = defaultSettleMS
	}
	c.Reset.LowMS = mathx.Clamp(c.Reset.LowMS, 1, 1000)
	c.Reset.SettleMS = mathx.Clamp(c.Reset.SettleMS, 1, 2000)
	return c
}

func (c Config) mode() types.InputMode {
	if c.InputMode == "mouse" {
		return types.ModeMouse
	}
	return types.ModeTouch
}

func (r ResetPulseConfig) pulse() pinctl.PulseConfig {
	return pinctl.PulseConfig{
		LowTime:    time.Duration(r.LowMS) * time.Millisecond,
		SettleTime: time.Duration(r.SettleMS) * time.Millisecond,
	}
}
