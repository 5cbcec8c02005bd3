//go:build rp2040

package piolib

import (
	"machine"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/swpll/clockout"
)

// RefClockOut outputs a source clock divided by an even ratio. It
// implements clockout.Divider.
type RefClockOut struct {
	sm     pio.StateMachine
	offset uint8
}

var _ clockout.Divider = (*RefClockOut)(nil)

// NewRefClockOut returns a stopped divider from source to out.
func NewRefClockOut(sm pio.StateMachine, source, out machine.Pin) (*RefClockOut, error) {
	sm.TryClaim() // SM should be claimed beforehand, we just guarantee it's claimed.
	Pio := sm.PIO()

	offset, err := Pio.AddProgram(refClkInstructions, refClkOrigin)
	if err != nil {
		return nil, err
	}
	pinCfg := machine.PinConfig{Mode: Pio.PinMode()}
	source.Configure(pinCfg)
	out.Configure(pinCfg)

	cfg := pio.DefaultStateMachineConfig()
	cfg.SetWrap(offset+refClkWrapTarget, offset+refClkWrap)
	cfg.SetSidesetParams(refClkSidesetBits, false, false)
	cfg.SetSidesetPins(out)
	cfg.SetInPins(source)
	sm.Init(offset, cfg)

	outMask := uint32(1 << out)
	sm.SetPindirsMasked(outMask, outMask|uint32(1<<source))
	sm.SetPinsMasked(0, outMask)
	return &RefClockOut{sm: sm, offset: offset}, nil
}

// SetHalfPeriod sets the number of source rising edges per output level.
// The divider is stopped and must be started again.
func (r *RefClockOut) SetHalfPeriod(edges uint32) error {
	if edges == 0 {
		return errHalfPeriod
	}
	r.sm.SetEnabled(false)
	r.sm.ClearFIFOs()
	r.sm.TxPut(edges - 1)
	r.sm.Exec(pio.EncodePull(false, true))
	r.sm.Exec(pio.EncodeOut(pio.SrcDestY, 32))
	r.sm.Exec(pio.EncodeJmp(r.offset, pio.JmpAlways))
	return nil
}

func (r *RefClockOut) Start() { r.sm.SetEnabled(true) }

// Stop halts the output at its current level.
func (r *RefClockOut) Stop() { r.sm.SetEnabled(false) }
