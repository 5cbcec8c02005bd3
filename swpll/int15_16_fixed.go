package swpll

import "fmt"

// Int15_16 is a signed fixed-point number with 16 fractional bits, the format
// of the PLL gains.
type Int15_16 int32

func Int15_16U(i int) Int15_16     { return Int15_16(i << 16) }
func Int15_16F(f float32) Int15_16 { return Int15_16(f * (1 << 16)) }

func (x Int15_16) Floor() int               { return int(x >> 16) }
func (x Int15_16) Ceil() int                { return int((int64(x) + (1<<16 - 1)) >> 16) }
func (x Int15_16) Mul(y Int15_16) Int15_16 { return Int15_16((int64(x) * int64(y)) >> 16) }
func (x Int15_16) Div(y Int15_16) Int15_16 { return Int15_16(int64(x) << 16 / int64(y)) }

func (x Int15_16) String() string {
	const shift, mask = 16, 1<<16 - 1
	return fmt.Sprintf("%d:%05d", int64(x>>shift), int64(x&mask))
}
