//go:build rp2040

package piolib

import (
	"machine"
	"time"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/swpll/i2s"
)

// I2SSlave is a stereo I2S slave on one PIO state machine. The bit and word
// clocks are driven by an external master. It implements i2s.Bus.
type I2SSlave struct {
	sm           pio.StateMachine
	offset       uint8
	progLen      uint8
	dataOut      machine.Pin
	dinAndClocks machine.Pin
	dl           deadliner
}

var _ i2s.Bus = (*I2SSlave)(nil)

// NewI2SSlave returns a slave bus sending on dataOut and receiving on
// dinAndClocks, with BCLK on dinAndClocks+1 and LRCLK on dinAndClocks+2.
// The bus does not run until Configure is called.
func NewI2SSlave(sm pio.StateMachine, dataOut, dinAndClocks machine.Pin) (*I2SSlave, error) {
	sm.TryClaim() // SM should be claimed beforehand, we just guarantee it's claimed.
	Pio := sm.PIO()

	pinCfg := machine.PinConfig{Mode: Pio.PinMode()}
	dataOut.Configure(pinCfg)
	dinAndClocks.Configure(pinCfg)
	(dinAndClocks + 1).Configure(pinCfg)
	(dinAndClocks + 2).Configure(pinCfg)

	return &I2SSlave{
		sm:           sm,
		dataOut:      dataOut,
		dinAndClocks: dinAndClocks,
	}, nil
}

// Configure (re)loads the slave program for cfg.Mode and starts following
// the bus clocks. One silent frame is queued for transmission.
func (s *I2SSlave) Configure(cfg i2s.Config) error {
	program, err := i2sSlaveInstructions(cfg.Mode)
	if err != nil {
		return err
	}
	Pio := s.sm.PIO()
	s.sm.SetEnabled(false)
	s.unload()

	offset, err := Pio.AddProgram(program, i2sSlaveOrigin)
	if err != nil {
		return err
	}
	s.offset, s.progLen = offset, uint8(len(program))

	smCfg := pio.DefaultStateMachineConfig()
	smCfg.SetWrap(offset+i2sSlaveWrapTarget, offset+i2sSlaveWrap)
	smCfg.SetInPins(s.dinAndClocks)
	smCfg.SetOutPins(s.dataOut, 1)
	smCfg.SetInShift(false, true, 32)
	smCfg.SetOutShift(false, true, 32)
	s.sm.Init(offset, smCfg)

	outMask := uint32(1 << s.dataOut)
	s.sm.SetPindirsMasked(outMask, outMask|uint32(0b111<<s.dinAndClocks))
	s.sm.SetPinsMasked(0, outMask)
	s.sm.Exec(pio.EncodeJmp(offset, pio.JmpAlways))

	// The bit loop must never stall on an empty OSR.
	for i := 0; i < i2sSlaveChannels; i++ {
		s.sm.TxPut(0)
	}
	s.sm.SetEnabled(true)
	return nil
}

// SetTimeout bounds how long ReadFrame and WriteFrame wait for the bus
// clocks. Zero waits forever.
func (s *I2SSlave) SetTimeout(timeout time.Duration) {
	s.dl.setTimeout(timeout)
}

// ReadFrame blocks until a left and right sample have been received.
func (s *I2SSlave) ReadFrame(samples []int32) error {
	if err := s.checkFrame(samples); err != nil {
		return err
	}
	dl := s.dl.newDeadline()
	for i := range samples {
		for s.sm.IsRxFIFOEmpty() {
			if dl.expired() {
				return errTimeout
			}
			gosched()
		}
		samples[i] = int32(s.sm.RxGet())
	}
	return nil
}

// WriteFrame queues a left and right sample for transmission, blocking while
// the TX FIFO is full.
func (s *I2SSlave) WriteFrame(samples []int32) error {
	if err := s.checkFrame(samples); err != nil {
		return err
	}
	dl := s.dl.newDeadline()
	for _, v := range samples {
		for s.sm.IsTxFIFOFull() {
			if dl.expired() {
				return errTimeout
			}
			gosched()
		}
		s.sm.TxPut(uint32(v))
	}
	return nil
}

// Stop halts the state machine and frees its program memory.
func (s *I2SSlave) Stop() {
	s.sm.SetEnabled(false)
	s.unload()
}

func (s *I2SSlave) checkFrame(samples []int32) error {
	if s.progLen == 0 {
		return i2s.ErrNotConfigured
	}
	if len(samples) != i2sSlaveChannels {
		return i2s.ErrFrameSize
	}
	return nil
}

func (s *I2SSlave) unload() {
	if s.progLen == 0 {
		return
	}
	s.sm.PIO().ClearProgramSection(s.offset, s.progLen)
	s.progLen = 0
}
