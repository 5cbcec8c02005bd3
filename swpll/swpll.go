// Package swpll describes how the I2S application drives a software PLL that
// recovers MCLK from the I2S word clock.
//
// Only the call-site contract lives here: the configuration handed to a PLL
// implementation, the lock status it reports and the timestamps it consumes.
// The loop filter and the lookup-table search belong to the implementation.
package swpll

// Timestamper is a free-running 16-bit count of MCLK rising edges, latched on
// the rising edge of the reference clock.
type Timestamper interface {
	Timestamp() uint16
}

// Controller is a running software PLL. DoControl is called once per
// reference clock period with the latest MCLK timestamp; the controller
// decides internally when LoopRateCount periods have elapsed and the
// fractional divider must be updated.
type Controller interface {
	DoControl(mclkTimestamp uint16) LockStatus
}
