package board

import "github.com/tinygo-org/swpll/swpll"

// PLLConfig returns the software PLL settings for this board around the
// 12.288MHz application PLL setting, with lut as the fractional-divider table.
// The gains are left zero for the caller to tune.
func PLLConfig(lut []swpll.FracReg) swpll.Config {
	return swpll.Config{
		LoopRateCount:   ControlLoopCount,
		PLLRatio:        PLLRatio,
		LUT:             lut,
		AppPLLCtl:       AppPLLCtl12288,
		AppPLLDiv:       AppPLLDiv12288,
		NominalLUTIndex: AppPLLNominalIndex12288,
		PPMRange:        PPMRange,
	}
}
