package swpll

import "errors"

var (
	errEmptyLUT     = errors.New("swpll:empty fractional LUT")
	errNominalIndex = errors.New("swpll:nominal LUT index out of range")
	errLoopRate     = errors.New("swpll:zero loop rate count")
	errRatio        = errors.New("swpll:zero PLL ratio")
	errLUTOrder     = errors.New("swpll:fractional LUT not monotonic")
	errFracRange    = errors.New("swpll:fractional LUT entry f not below p")
)

// FracReg is one entry of a fractional-divider lookup table as written to the
// application PLL fractional register: f in the high byte, p in the low byte.
// The fraction it selects is (f+1)/(p+1), which the divider only supports
// below one, so f must be less than p.
type FracReg uint16

func (r FracReg) F() uint8 { return uint8(r >> 8) }
func (r FracReg) P() uint8 { return uint8(r) }

// Value returns the fraction selected by r.
func (r FracReg) Value() float32 {
	return float32(uint32(r.F())+1) / float32(uint32(r.P())+1)
}

// Config is handed to a PLL implementation when it is created.
type Config struct {
	// Proportional, integral and double-integral gains.
	Kp, Ki, Kii Int15_16
	// LoopRateCount is the number of reference clock periods per control
	// update.
	LoopRateCount uint32
	// PLLRatio is the expected number of MCLK periods per reference period.
	PLLRatio uint32
	// LUT holds fractional register settings in increasing frequency order.
	LUT []FracReg
	// Application PLL control and divider register values, and the LUT
	// index that yields the nominal frequency.
	AppPLLCtl       uint32
	AppPLLDiv       uint32
	NominalLUTIndex uint32
	// PPMRange is the allowed deviation from nominal in parts per million.
	PPMRange uint32
}

// Validate checks c for settings a PLL cannot run with.
func (c *Config) Validate() error {
	switch {
	case len(c.LUT) == 0:
		return errEmptyLUT
	case c.NominalLUTIndex >= uint32(len(c.LUT)):
		return errNominalIndex
	case c.LoopRateCount == 0:
		return errLoopRate
	case c.PLLRatio == 0:
		return errRatio
	}
	// The control loop relies on a monotonic transfer function.
	for i, r := range c.LUT {
		if r.F() >= r.P() {
			return errFracRange
		}
		if i > 0 && r.Value() <= c.LUT[i-1].Value() {
			return errLUTOrder
		}
	}
	return nil
}

// ExpectedMclkInc returns the number of MCLK edges expected between two
// control updates when the recovered clock runs at exactly PLLRatio times
// the reference.
func (c *Config) ExpectedMclkInc() uint32 {
	return c.PLLRatio * c.LoopRateCount
}
