// Package piolib implements the RP2040 side of the I2S slave demo on PIO
// state machines: the slave bus itself, a divided clock output and an MCLK
// edge counter for clock recovery.
package piolib

import (
	"errors"
	"runtime"
	"time"
)

var (
	errTimeout    = errors.New("piolib:timeout")
	errHalfPeriod = errors.New("piolib:zero half period")
)

func gosched() {
	runtime.Gosched()
}

type deadline struct {
	t time.Time
}

func (dl deadline) expired() bool {
	if dl.t.IsZero() {
		return false
	}
	return time.Since(dl.t) > 0
}

// deadliner hands out deadlines for FIFO polling loops. The timeout is stored
// as a power of two in nanoseconds, rounded up.
type deadliner struct {
	shift uint8
}

func (d deadliner) newDeadline() deadline {
	if d.shift == 0 {
		return deadline{}
	}
	return deadline{t: time.Now().Add(time.Duration(1) << d.shift)}
}

// setTimeout sets the timeout to the smallest power of two nanoseconds above
// timeout. A non-positive timeout disables it.
func (d *deadliner) setTimeout(timeout time.Duration) {
	d.shift = 0
	if timeout <= 0 {
		return
	}
	for i := uint8(1); i < 63; i++ {
		if time.Duration(1)<<i > timeout {
			d.shift = i
			return
		}
	}
	d.shift = 62
}

// edgeCount converts the down-counting X register into an up-counting
// 16-bit timestamp.
func edgeCount(x uint32) uint16 {
	return uint16(0 - x)
}
