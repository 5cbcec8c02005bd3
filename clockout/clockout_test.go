package clockout

import (
	"bytes"
	"errors"
	"testing"
)

type fakeDivider struct {
	half    uint32
	running bool
	err     error
}

func (d *fakeDivider) SetHalfPeriod(edges uint32) error {
	if d.err != nil {
		return d.err
	}
	d.half = edges
	return nil
}

func (d *fakeDivider) Start() { d.running = true }
func (d *fakeDivider) Stop()  { d.running = false }

func TestHalfDivider(t *testing.T) {
	for _, tc := range []struct {
		divider, half uint32
		err           error
	}{
		{62, 31, nil},
		{256, 128, nil},
		{2, 1, nil},
		{0, 0, ErrDivider},
		{1, 0, ErrDivider},
		{63, 0, ErrDivider},
	} {
		half, err := HalfDivider(tc.divider)
		if err != tc.err || half != tc.half {
			t.Errorf("divider %d got!=expected: (%d, %v) != (%d, %v)", tc.divider, half, err, tc.half, tc.err)
		}
	}
}

func TestSetup(t *testing.T) {
	d := &fakeDivider{}
	var log bytes.Buffer
	stop, err := Setup(d, 62, &log)
	if err != nil {
		t.Fatal(err)
	}
	if got := log.String(); got != "Divider: 62\r\n" {
		t.Errorf("trace got!=expected: %q != %q", got, "Divider: 62\r\n")
	}
	if d.half != 31 {
		t.Errorf("half period got!=expected: %d != 31", d.half)
	}
	if !d.running {
		t.Error("divider not started")
	}
	stop()
	if d.running {
		t.Error("divider not stopped")
	}
}

func TestSetupRejects(t *testing.T) {
	d := &fakeDivider{}
	var log bytes.Buffer
	if _, err := Setup(d, 31, &log); err != ErrDivider {
		t.Errorf("odd divider got!=expected: %v != %v", err, ErrDivider)
	}
	if d.running {
		t.Error("divider started with odd ratio")
	}

	hwErr := errors.New("too slow")
	d = &fakeDivider{err: hwErr}
	if _, err := Setup(d, 62, &log); err != hwErr {
		t.Errorf("hardware error got!=expected: %v != %v", err, hwErr)
	}
	if d.running {
		t.Error("divider started after failed configuration")
	}
	if log.Len() != 0 {
		t.Errorf("failed setup traced %q", log.String())
	}
}

func TestSetupSilent(t *testing.T) {
	d := &fakeDivider{}
	if _, err := Setup(d, 256, nil); err != nil {
		t.Fatal(err)
	}
	if d.half != 128 || !d.running {
		t.Errorf("got half=%d running=%v", d.half, d.running)
	}
}
