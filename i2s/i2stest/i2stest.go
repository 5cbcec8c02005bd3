// Package i2stest provides a simulated I2S bus for testing i2s.Handler
// implementations without hardware.
package i2stest

import (
	"io"

	"github.com/tinygo-org/swpll/i2s"
)

// Bus plays In frame by frame and records every frame written to it.
// ReadFrame returns io.EOF once In is exhausted.
type Bus struct {
	// In holds the frames returned by successive ReadFrame calls.
	In [][]int32
	// Out receives a copy of every written frame.
	Out [][]int32
	// Configs records every configuration applied to the bus.
	Configs []i2s.Config
	// ConfigureErr, when set, is returned by Configure.
	ConfigureErr error

	next       int
	configured bool
}

var _ i2s.Bus = (*Bus)(nil)

func (b *Bus) Configure(cfg i2s.Config) error {
	if b.ConfigureErr != nil {
		return b.ConfigureErr
	}
	b.Configs = append(b.Configs, cfg)
	b.configured = true
	return nil
}

func (b *Bus) ReadFrame(samples []int32) error {
	if !b.configured {
		return i2s.ErrNotConfigured
	}
	if b.next >= len(b.In) {
		return io.EOF
	}
	frame := b.In[b.next]
	if len(frame) != len(samples) {
		return i2s.ErrFrameSize
	}
	b.next++
	copy(samples, frame)
	return nil
}

func (b *Bus) WriteFrame(samples []int32) error {
	if !b.configured {
		return i2s.ErrNotConfigured
	}
	b.Out = append(b.Out, append([]int32(nil), samples...))
	return nil
}

// Frames returns the number of frames read so far.
func (b *Bus) Frames() int { return b.next }
