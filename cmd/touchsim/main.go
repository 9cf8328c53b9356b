// cmd/touchsim/main.go
//
// Host-side exercise of the touch runtime against fake hardware: an
// in-memory bus, a scripted controller, and a recorded reset pin. Useful
// for eyeballing the attach/power/interrupt flow without a board.
package main

import (
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"touchcore-go/bus"
	"touchcore-go/services/touch"
	"touchcore-go/services/touch/pinctl"
	"touchcore-go/services/touch/spbio"
	"touchcore-go/types"

	"tinygo.org/x/drivers"
)

// ---------- Fake hardware ----------

type memI2C struct{}

func (memI2C) Tx(addr uint16, w, r []byte) error {
	for i := range r {
		r[i] = byte(i)
	}
	return nil
}

type memBuses struct{ id types.ConnectionID }

func (m memBuses) ByID(id types.ConnectionID) (drivers.I2C, bool) {
	if id != m.id {
		return nil, false
	}
	return memI2C{}, true
}

type memPin struct{}

func (memPin) ReadPin() (byte, error) { return 1, nil }
func (memPin) WritePin(v byte) error {
	fmt.Printf("pin   <- %d\n", v)
	return nil
}

type memPins struct{ id types.ConnectionID }

func (m memPins) ByID(id types.ConnectionID) (pinctl.PinIO, bool) {
	if id != m.id {
		return nil, false
	}
	return memPin{}, true
}

// simController fabricates sequence-numbered reports.
type simController struct {
	perInterrupt int
	seq          byte
}

type simSession struct{}

func (c *simController) AllocateContext() (touch.Session, error) { return &simSession{}, nil }
func (c *simController) FreeContext(touch.Session) error         { return nil }

func (c *simController) StartDevice(touch.Session, *spbio.Session) error   { return nil }
func (c *simController) StopDevice(touch.Session, *spbio.Session) error    { return nil }
func (c *simController) WakeDevice(touch.Session, *spbio.Session) error    { return nil }
func (c *simController) StandbyDevice(touch.Session, *spbio.Session) error { return nil }

func (c *simController) ServiceInterrupts(_ touch.Session, _ *spbio.Session, _ types.InputMode) ([]types.InputReport, error) {
	out := make([]types.InputReport, c.perInterrupt)
	for i := range out {
		c.seq++
		out[i][0] = c.seq
	}
	return out, nil
}

func (c *simController) CompleteIdleRequests(*touch.DeviceContext) {}

// ---------- Main ----------

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "touchsim:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("touchsim", flag.ContinueOnError)
	interrupts := fs.IntP("interrupts", "i", 3, "Interrupts to fire")
	perInterrupt := fs.IntP("reports", "n", 2, "Records per interrupt")
	requests := fs.IntP("requests", "r", 4, "Read requests to park up front")
	resetPulse := fs.Bool("reset-pulse", false, "Enable the reset bring-up pulse")
	if err := fs.Parse(args); err != nil {
		return err
	}

	b := bus.NewBus(32)
	conn := b.NewConnection("touchsim")

	// Mirror driver diagnostics to stdout.
	events := conn.Subscribe(bus.T("touch", "event", "report_dropped"))
	state := conn.Subscribe(bus.T("touch", "state"))
	go func() {
		for {
			select {
			case m := <-events.Channel():
				fmt.Printf("event %v\n", m.Payload)
			case m := <-state.Channel():
				fmt.Printf("state %v\n", m.Payload)
			}
		}
	}()

	serial := types.ConnectionID{Low: 5}
	reset := types.ConnectionID{Low: 7}
	ctrl := &simController{perInterrupt: *perInterrupt}

	d := touch.New(conn, ctrl, memBuses{id: serial}, memPins{id: reset}, touch.Config{
		Reset: touch.ResetPulseConfig{Enabled: *resetPulse, LowMS: 1, SettleMS: 1},
	})

	resources := []types.ResourceDescriptor{
		types.GPIOConnection(7, 0),
		types.SerialConnection(5, 0),
	}
	if err := d.OnAttach(nil, resources); err != nil {
		return err
	}
	if err := d.OnPowerEntry(types.PowerOff); err != nil {
		return err
	}

	reqs := make([]*touch.ReadRequest, *requests)
	for i := range reqs {
		reqs[i] = touch.NewReadRequest(make([]byte, types.ReportSize))
		d.Submit(reqs[i])
	}

	for i := 0; i < *interrupts; i++ {
		d.OnInterrupt()
	}

	completed := 0
	for _, r := range reqs {
		select {
		case c := <-r.Done():
			completed++
			fmt.Printf("read  -> seq=%d bytes=%d err=%v\n", r.Buffer[0], c.BytesWritten, c.Err)
		default:
			fmt.Println("read  -> still pending")
		}
	}
	fmt.Printf("completed=%d pending=%d dropped=%d\n", completed, d.Pending(), d.Drops())

	if err := d.OnPowerExit(types.PowerOff); err != nil {
		return err
	}
	if err := d.OnDetach(nil); err != nil {
		return err
	}

	// Let the diagnostic mirror drain.
	time.Sleep(50 * time.Millisecond)
	return nil
}
