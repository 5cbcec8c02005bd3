// Package loopback implements the I2S callbacks of the clock-recovery demo:
// every received frame is sent back out on the following frame, and an
// optional software PLL is stepped once per frame.
package loopback

import (
	"fmt"
	"io"

	"github.com/tinygo-org/swpll/board"
	"github.com/tinygo-org/swpll/i2s"
	"github.com/tinygo-org/swpll/swpll"
)

// App is the state shared by the I2S callbacks. The zero value is ready to
// use: silent loopback buffer, Locked status, clock recovery disabled and
// per-frame tracing off.
//
// App is only touched from the goroutine running i2s.Slave and must not be
// shared with another one.
type App struct {
	// DidRestart is set by Init.
	DidRestart bool

	// Counter provides the MCLK timestamps consumed by PLL.
	Counter swpll.Timestamper
	// PLL, when set together with Counter, is stepped on every received
	// frame.
	PLL swpll.Controller

	// Log receives trace lines. Nil disables tracing.
	Log io.Writer
	// TraceFrames adds a "loop" trace line for every frame. It is off by
	// default since writing a line per frame at 48kHz stalls the bus.
	TraceFrames bool

	samples [board.NumChannels]int32
	lock    swpll.Monitor
}

var _ i2s.Handler = (*App)(nil)

func (a *App) Init(cfg *i2s.Config) {
	a.trace("I2S init")
	cfg.Mode = i2s.ModeI2S
	cfg.MclkBclkRatio = board.MclkBclkRatio

	a.DidRestart = true
}

// RestartCheck never asks for a restart.
func (a *App) RestartCheck() i2s.Restart {
	if a.TraceFrames {
		a.trace("loop")
	}
	return i2s.NoRestart
}

// Receive stores up to board.NumChannels samples for the next Send. Channels
// missing from a short frame keep their previous value.
func (a *App) Receive(samples []int32) {
	copy(a.samples[:], samples)
	a.recoverClock()
}

// Send writes the samples of the previous frame.
func (a *App) Send(samples []int32) {
	copy(samples, a.samples[:])
}

func (a *App) recoverClock() {
	if a.PLL == nil || a.Counter == nil {
		return
	}
	status := a.PLL.DoControl(a.Counter.Timestamp())
	if a.lock.Update(status) {
		a.trace(status.String())
	}
}

// LockStatus returns the last status reported by PLL.
func (a *App) LockStatus() swpll.LockStatus { return a.lock.Status() }

func (a *App) trace(msg string) {
	if a.Log != nil {
		fmt.Fprint(a.Log, msg, "\r\n")
	}
}
