// Package i2s defines the contract between an I2S slave bus driver and the
// application callbacks it services once per audio frame.
//
// For more info about I2S, see: https://en.wikipedia.org/wiki/I%C2%B2S
package i2s

import "errors"

// Mode is the data framing relative to the word clock.
type Mode uint8

const (
	// ModeI2S delays the MSB of each word by one bit clock after the word
	// clock edge. The left channel is sent while the word clock is low.
	ModeI2S Mode = iota
	// ModeLeftJustified puts the MSB on the word clock edge. The left channel
	// is sent while the word clock is high.
	ModeLeftJustified
)

func (m Mode) String() string {
	switch m {
	case ModeI2S:
		return "I2S"
	case ModeLeftJustified:
		return "left-justified"
	}
	return "unknown"
}

// Restart is the answer of Handler.RestartCheck.
type Restart uint8

const (
	NoRestart Restart = iota
	// RestartNow reinitialises the bus with a fresh Init call.
	RestartNow
	// Shutdown stops the driver.
	Shutdown
)

var (
	ErrChannels      = errors.New("i2s: channel count must be positive")
	ErrUnsupported   = errors.New("i2s: unsupported mode")
	ErrFrameSize     = errors.New("i2s: frame size mismatch")
	ErrNotConfigured = errors.New("i2s: bus not configured")
)

// Config is filled in by Handler.Init before streaming starts.
type Config struct {
	Mode Mode
	// MclkBclkRatio is the number of master clock periods per bit clock
	// period.
	MclkBclkRatio uint32
}

// Handler is the set of callbacks the driver invokes. None of them can fail.
type Handler interface {
	// Init is called once before streaming starts and again after every
	// restart.
	Init(cfg *Config)
	// RestartCheck is called once per frame.
	RestartCheck() Restart
	// Receive is called once per frame with the samples read from the bus.
	Receive(samples []int32)
	// Send is called once per frame to fill the samples written to the bus.
	Send(samples []int32)
}

// Bus is the hardware side of an I2S slave. ReadFrame and WriteFrame block
// until a whole frame has been transferred.
type Bus interface {
	Configure(cfg Config) error
	ReadFrame(samples []int32) error
	WriteFrame(samples []int32) error
}
