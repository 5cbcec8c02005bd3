package swpll

import "testing"

func TestInt15_16(t *testing.T) {
	if got := Int15_16F(1.0); got != 1<<16 {
		t.Errorf("1.0 got!=expected: %#x != %#x", int32(got), 1<<16)
	}
	if got := Int15_16F(0.01); got != 655 {
		t.Errorf("0.01 got!=expected: %d != 655", int32(got))
	}
	if got := Int15_16U(3).Mul(Int15_16F(0.5)); got != Int15_16F(1.5) {
		t.Errorf("3*0.5 got!=expected: %v != %v", got, Int15_16F(1.5))
	}
	if got := Int15_16U(3).Div(Int15_16U(2)); got != Int15_16F(1.5) {
		t.Errorf("3/2 got!=expected: %v != %v", got, Int15_16F(1.5))
	}
	x := Int15_16F(1.5)
	if x.Floor() != 1 || x.Ceil() != 2 {
		t.Errorf("1.5 floor/ceil got %d/%d", x.Floor(), x.Ceil())
	}
	if y := Int15_16U(2); y.Ceil() != 2 {
		t.Errorf("2 ceil got %d", y.Ceil())
	}
	if got := Int15_16F(-1.5).Floor(); got != -2 {
		t.Errorf("-1.5 floor got!=expected: %d != -2", got)
	}
	if s := Int15_16F(1.5).String(); s != "1:32768" {
		t.Errorf("String got!=expected: %q != %q", s, "1:32768")
	}
}

func TestLockStatusString(t *testing.T) {
	for s, want := range map[LockStatus]string{
		UnlockedLow:   "UNLOCKED LOW",
		Locked:        "LOCKED",
		UnlockedHigh:  "UNLOCKED HIGH",
		LockStatus(7): "UNKNOWN",
	} {
		if got := s.String(); got != want {
			t.Errorf("%d got!=expected: %q != %q", s, got, want)
		}
	}
}

func TestMonitor(t *testing.T) {
	var m Monitor
	if m.Status() != Locked {
		t.Fatalf("zero Monitor not Locked: %v", m.Status())
	}
	steps := []struct {
		in      LockStatus
		changed bool
	}{
		{Locked, false},
		{UnlockedLow, true},
		{UnlockedLow, false},
		{Locked, true},
		{UnlockedHigh, true},
		{UnlockedHigh, false},
	}
	for i, st := range steps {
		if got := m.Update(st.in); got != st.changed {
			t.Errorf("step %d (%v) changed got!=expected: %v != %v", i, st.in, got, st.changed)
		}
		if m.Status() != st.in {
			t.Errorf("step %d status got!=expected: %v != %v", i, m.Status(), st.in)
		}
	}
}

func TestFracReg(t *testing.T) {
	r := FracReg(0x0F13)
	if r.F() != 15 || r.P() != 19 {
		t.Fatalf("fields got f=%d p=%d", r.F(), r.P())
	}
	if v := r.Value(); v != 0.8 {
		t.Errorf("value got!=expected: %v != 0.8", v)
	}
}

func validConfig() Config {
	return Config{
		Kp:              Int15_16F(0.0),
		Ki:              Int15_16F(1.0),
		Kii:             Int15_16F(0.01),
		LoopRateCount:   512,
		PLLRatio:        256,
		LUT:             []FracReg{0x0304, 0x0405, 0x0506},
		AppPLLCtl:       0x0881FA03,
		AppPLLDiv:       0x8000001E,
		NominalLUTIndex: 1,
		PPMRange:        150,
	}
}

func TestConfigValidate(t *testing.T) {
	c := validConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("valid config: %v", err)
	}
	if c.ExpectedMclkInc() != 256*512 {
		t.Errorf("ExpectedMclkInc got %d", c.ExpectedMclkInc())
	}

	bad := []struct {
		name   string
		mutate func(*Config)
		err    error
	}{
		{"empty LUT", func(c *Config) { c.LUT = nil }, errEmptyLUT},
		{"index", func(c *Config) { c.NominalLUTIndex = 3 }, errNominalIndex},
		{"loop rate", func(c *Config) { c.LoopRateCount = 0 }, errLoopRate},
		{"ratio", func(c *Config) { c.PLLRatio = 0 }, errRatio},
		{"order", func(c *Config) { c.LUT = []FracReg{0x0405, 0x0304} }, errLUTOrder},
		{"repeat", func(c *Config) { c.LUT = []FracReg{0x0304, 0x0304}; c.NominalLUTIndex = 0 }, errLUTOrder},
		{"f above p", func(c *Config) { c.LUT = []FracReg{0x0304, 0x0405, 0x0506, 0x0805} }, errFracRange},
		{"f equals p", func(c *Config) { c.LUT = []FracReg{0x0304, 0x0405, 0x0606} }, errFracRange},
		{"first entry", func(c *Config) { c.LUT = []FracReg{0x0100, 0x0405} }, errFracRange},
	}
	for _, b := range bad {
		c := validConfig()
		b.mutate(&c)
		if err := c.Validate(); err != b.err {
			t.Errorf("%s got!=expected: %v != %v", b.name, err, b.err)
		}
	}
}
