// Package board holds the fixed hardware parameters of the I2S slave
// clock-recovery board and the bring-up of its external codec.
//
// All rates and PLL register values are compile-time constants; nothing here
// is configurable at run time.
package board

const (
	MclkFrequency = 12288000
	I2SFrequency  = 48000
	// RefFrequency is the frequency of the clock the software PLL locks to,
	// which is the I2S word clock.
	RefFrequency = I2SFrequency

	PLLRatio      = MclkFrequency / RefFrequency
	MclkBclkRatio = MclkFrequency / I2SFrequency

	// ControlLoopCount is the number of reference clock periods between PLL
	// control calls.
	ControlLoopCount = 512
	// PPMRange is the allowed deviation of the recovered clock.
	PPMRange = 150
)

// Application PLL register values for a 12.288MHz output from a 24MHz crystal.
//
//	IN 24.000MHz, OUT 12.288018MHz, VCO 3047.43MHz, RD 4, FD 507.905 (m = 19, n = 21), OD 2, FOD 31, ERR +1.50ppm
const (
	AppPLLCtl12288          = 0x0881FA03
	AppPLLDiv12288          = 0x8000001E
	AppPLLNominalIndex12288 = 35
)

const (
	NumChannels = 2
	// NumLines is the number of data lines needed to carry NumChannels,
	// two channels per line.
	NumLines = (NumChannels + 1) / 2
)
