// Package clockout drives a divided copy of a source clock onto an output pin,
// used to observe the recovered MCLK divided down to the reference frequency.
package clockout

import (
	"errors"
	"fmt"
	"io"
)

// ErrDivider is returned for a divider that cannot be split into two equal
// half periods.
var ErrDivider = errors.New("clockout: divider must be even and non-zero")

// Divider is a hardware block that toggles an output after a fixed number of
// source clock rising edges, so that the output runs at
//
//	f_out = f_src / (2 * edges)
type Divider interface {
	SetHalfPeriod(edges uint32) error
	Start()
	Stop()
}

// HalfDivider returns the number of source edges per output half period for
// an overall division ratio of divider.
func HalfDivider(divider uint32) (uint32, error) {
	if divider == 0 || divider%2 != 0 {
		return 0, ErrDivider
	}
	return divider / 2, nil
}

// Setup configures d to output its source clock divided by divider and starts
// it. The divider is traced to log unless log is nil. The returned stop
// function halts the output again.
func Setup(d Divider, divider uint32, log io.Writer) (stop func(), err error) {
	half, err := HalfDivider(divider)
	if err != nil {
		return nil, err
	}
	if err = d.SetHalfPeriod(half); err != nil {
		return nil, err
	}
	if log != nil {
		fmt.Fprintf(log, "Divider: %d\r\n", divider)
	}
	d.Start()
	return d.Stop, nil
}
