package piolib

import (
	"testing"
	"time"
)

func TestEdgeCount(t *testing.T) {
	// X starts at zero and wraps on the first decrement.
	if got := edgeCount(0); got != 0 {
		t.Errorf("got!=expected: %d != 0", got)
	}
	if got := edgeCount(0xffffffff); got != 1 {
		t.Errorf("got!=expected: %d != 1", got)
	}
	const ratio = 256
	a, b := edgeCount(0xffffffff-1000), edgeCount(0xffffffff-1000-ratio)
	if b-a != ratio {
		t.Errorf("increment got!=expected: %d != %d", b-a, ratio)
	}
	// 16-bit wraparound keeps differences valid.
	a, b = edgeCount(0xffff0000+100), edgeCount(0xffff0000-100)
	if b-a != 200 {
		t.Errorf("wrapped increment got!=expected: %d != 200", b-a)
	}
}

func TestDeadliner(t *testing.T) {
	var d deadliner
	if d.newDeadline().expired() {
		t.Error("deadline without timeout expired")
	}
	d.setTimeout(time.Millisecond)
	if d.shift != 20 {
		t.Errorf("shift got!=expected: %d != 20", d.shift)
	}
	d.setTimeout(time.Nanosecond)
	if d.shift != 1 {
		t.Errorf("shift got!=expected: %d != 1", d.shift)
	}
	dl := d.newDeadline()
	time.Sleep(time.Millisecond)
	if !dl.expired() {
		t.Error("2ns deadline not expired after 1ms")
	}
	d.setTimeout(-1)
	if d.shift != 0 {
		t.Errorf("negative timeout not disabled: %d", d.shift)
	}
}
