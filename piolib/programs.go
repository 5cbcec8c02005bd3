//go:build rp2040

package piolib

import (
	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/swpll/i2s"
)

// I2S slave. IN pins: 0 data in, 1 BCLK, 2 LRCLK. OUT pin: data out.
// One bit is shifted out on each BCLK falling edge and one in on each rising
// edge, 32-bit words MSB first through autopull/autopush.
const (
	i2sSlaveOrigin     = -1
	i2sSlaveWrapTarget = 3
	i2sSlaveWrap       = 6
	i2sSlaveOutBit     = 4

	i2sPinBCLK  = 1
	i2sPinLRCLK = 2

	// i2sSlaveChannels is the number of 32-bit slots per frame on one line.
	i2sSlaveChannels = 2
)

// i2sSlaveInstructions returns the slave program for mode. The program
// synchronises once on the word clock edge that starts the left channel and
// then follows the bit clock.
func i2sSlaveInstructions(mode i2s.Mode) ([]uint16, error) {
	var left bool // LRCLK level while the left channel is on the line.
	var align uint16
	switch mode {
	case i2s.ModeI2S:
		// Let the last bit of the previous word go by.
		align = pio.EncodeWaitPin(true, i2sPinBCLK)
	case i2s.ModeLeftJustified:
		left = true
		// MSB is already on the line.
		align = pio.EncodeJmp(i2sSlaveOutBit, pio.JmpAlways)
	default:
		return nil, i2s.ErrUnsupported
	}
	return []uint16{
		pio.EncodeWaitPin(!left, i2sPinLRCLK), //  0: wait !left pin 2
		pio.EncodeWaitPin(left, i2sPinLRCLK),  //  1: wait left pin 2
		align,                                 //  2: wait 1 pin 1 | jmp 4
		//     .wrap_target
		pio.EncodeWaitPin(false, i2sPinBCLK), //  3: wait 0 pin 1
		pio.EncodeOut(pio.SrcDestPins, 1),    //  4: out pins, 1
		pio.EncodeWaitPin(true, i2sPinBCLK),  //  5: wait 1 pin 1
		pio.EncodeIn(pio.SrcDestPins, 1),     //  6: in pins, 1
		//     .wrap
	}, nil
}

// Reference clock divider. IN pin 0 is the source clock, the single side-set
// pin is the output. Y holds the half period minus one.
const (
	refClkOrigin      = -1
	refClkWrapTarget  = 0
	refClkWrap        = 7
	refClkSidesetBits = 1
)

var refClkInstructions = []uint16{
	//     .wrap_target
	pio.EncodeMov(pio.SrcDestX, pio.SrcDestY) | refClkSide(1), //  0: mov x, y       side 1
	pio.EncodeWaitPin(false, 0) | refClkSide(1),               //  1: wait 0 pin 0   side 1
	pio.EncodeWaitPin(true, 0) | refClkSide(1),                //  2: wait 1 pin 0   side 1
	pio.EncodeJmp(1, pio.JmpXNZeroDec) | refClkSide(1),        //  3: jmp x--, 1     side 1
	pio.EncodeMov(pio.SrcDestX, pio.SrcDestY) | refClkSide(0), //  4: mov x, y       side 0
	pio.EncodeWaitPin(false, 0) | refClkSide(0),               //  5: wait 0 pin 0   side 0
	pio.EncodeWaitPin(true, 0) | refClkSide(0),                //  6: wait 1 pin 0   side 0
	pio.EncodeJmp(5, pio.JmpXNZeroDec) | refClkSide(0),        //  7: jmp x--, 5     side 0
	//     .wrap
}

func refClkSide(v uint8) uint16 { return pio.EncodeSideSet(refClkSidesetBits, v) }

// MCLK edge counter. IN pin 0 is MCLK, the JMP pin is LRCLK. X is decremented
// on every MCLK rising edge and pushed on every LRCLK rising edge.
const (
	edgeCountOrigin     = -1
	edgeCountWrapTarget = 0
	edgeCountWrap       = 10
)

var edgeCountInstructions = []uint16{
	//     .wrap_target
	pio.EncodeWaitPin(false, 0),         //  0: wait 0 pin 0
	pio.EncodeWaitPin(true, 0),          //  1: wait 1 pin 0
	pio.EncodeJmp(3, pio.JmpXNZeroDec),  //  2: jmp x--, 3
	pio.EncodeJmp(5, pio.JmpPinInput),   //  3: jmp pin, 5
	pio.EncodeJmp(0, pio.JmpAlways),     //  4: jmp 0
	pio.EncodeIn(pio.SrcDestX, 32),      //  5: in x, 32
	pio.EncodePush(false, false),        //  6: push noblock
	pio.EncodeWaitPin(false, 0),         //  7: wait 0 pin 0
	pio.EncodeWaitPin(true, 0),          //  8: wait 1 pin 0
	pio.EncodeJmp(10, pio.JmpXNZeroDec), //  9: jmp x--, 10
	pio.EncodeJmp(7, pio.JmpPinInput),   // 10: jmp pin, 7
	//     .wrap
}
