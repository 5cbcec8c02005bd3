package i2s

// Slave runs h against bus until h asks for Shutdown or the bus fails.
// Frames carry channels samples in each direction.
//
// Each frame is sent before it is received, so samples returned by Receive
// reach the bus one frame later. Slave returns nil on Shutdown and the bus
// error otherwise.
func Slave(h Handler, bus Bus, channels int) error {
	if channels <= 0 {
		return ErrChannels
	}
	in := make([]int32, channels)
	out := make([]int32, channels)
	for {
		var cfg Config
		h.Init(&cfg)
		if err := bus.Configure(cfg); err != nil {
			return err
		}
		restart, err := stream(h, bus, in, out)
		if err != nil {
			return err
		}
		if restart == Shutdown {
			return nil
		}
	}
}

func stream(h Handler, bus Bus, in, out []int32) (Restart, error) {
	for {
		h.Send(out)
		if err := bus.WriteFrame(out); err != nil {
			return NoRestart, err
		}
		if err := bus.ReadFrame(in); err != nil {
			return NoRestart, err
		}
		h.Receive(in)
		if r := h.RestartCheck(); r != NoRestart {
			return r, nil
		}
	}
}
