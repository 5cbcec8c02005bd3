//go:build rp2040

package board

import "machine"

// I2S pins. The PIO slave samples data-in, BCLK and LRCLK as three
// consecutive input pins.
const (
	I2SDataIn  = machine.GPIO2 // BCLK on GPIO3, LRCLK on GPIO4.
	I2SBCLK    = I2SDataIn + 1
	I2SLRCLK   = I2SDataIn + 2
	I2SDataOut = machine.GPIO6
)

// Clock recovery pins.
const (
	MCLK            = machine.GPIO8
	RecoveredRefClk = machine.GPIO9
)

// Codec control bus.
const (
	CodecSDA  = machine.GPIO0
	CodecSCL  = machine.GPIO1
	CodecAddr = 0x4a
)

// CodecSetup is written to the codec before the I2S slave starts. The
// reference board uses a pin-strapped codec that masters BCLK and LRCLK on its
// own, so the sequence is empty; I2C-configured codecs list their register
// writes here.
var CodecSetup []RegWrite
