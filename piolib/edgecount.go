//go:build rp2040

package piolib

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/swpll/swpll"
)

// EdgeCounter counts MCLK rising edges and latches the count on every word
// clock rising edge. It implements swpll.Timestamper.
type EdgeCounter struct {
	sm pio.StateMachine
}

var _ swpll.Timestamper = (*EdgeCounter)(nil)

// NewEdgeCounter starts counting edges of mclk, latched by lrclk.
func NewEdgeCounter(sm pio.StateMachine, mclk, lrclk machine.Pin) (*EdgeCounter, error) {
	sm.TryClaim() // SM should be claimed beforehand, we just guarantee it's claimed.
	Pio := sm.PIO()

	offset, err := Pio.AddProgram(edgeCountInstructions, edgeCountOrigin)
	if err != nil {
		return nil, err
	}
	pinCfg := machine.PinConfig{Mode: Pio.PinMode()}
	mclk.Configure(pinCfg)
	lrclk.Configure(pinCfg)

	cfg := pio.DefaultStateMachineConfig()
	cfg.SetWrap(offset+edgeCountWrapTarget, offset+edgeCountWrap)
	cfg.SetInPins(mclk)
	cfg.SetJmpPin(lrclk)
	cfg.SetInShift(false, false, 32)
	cfg.SetFIFOJoin(pio.FifoJoinRx)
	sm.Init(offset, cfg)
	sm.SetPindirsMasked(0, uint32(1<<mclk)|uint32(1<<lrclk))
	sm.Exec(pio.EncodeJmp(offset, pio.JmpAlways))
	sm.SetEnabled(true)
	return &EdgeCounter{sm: sm}, nil
}

// Timestamp blocks until the next word clock edge has been latched and
// returns the most recent count, discarding older ones.
func (c *EdgeCounter) Timestamp() uint16 {
	for c.sm.IsRxFIFOEmpty() {
		gosched()
	}
	x := c.sm.RxGet()
	for !c.sm.IsRxFIFOEmpty() {
		x = c.sm.RxGet()
	}
	return edgeCount(x)
}
