package board

import (
	"errors"
	"fmt"

	"tinygo.org/x/drivers"
)

var errNoBus = errors.New("board:nil I2C bus")

// RegWrite is a single codec register write.
type RegWrite struct {
	Reg uint8
	Val uint8
}

// InitCodec writes seq to the codec at addr in order. The codec masters BCLK
// and LRCLK, so it must be running before the I2S slave is started.
// The first failing write stops the sequence.
func InitCodec(bus drivers.I2C, addr uint16, seq []RegWrite) error {
	if len(seq) == 0 {
		return nil
	}
	if bus == nil {
		return errNoBus
	}
	var w [2]byte
	for _, rw := range seq {
		w[0], w[1] = rw.Reg, rw.Val
		if err := bus.Tx(addr, w[:], nil); err != nil {
			return fmt.Errorf("board:codec reg %#02x: %w", rw.Reg, err)
		}
	}
	return nil
}
