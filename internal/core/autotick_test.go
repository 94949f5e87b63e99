package core

import (
	"testing"
	"time"
)

func TestAutoTickFiresOnInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	a := NewAutoTick(50 * time.Millisecond)
	a.now = func() time.Time { return clock }

	if !a.Due() {
		t.Fatal("first Due should fire immediately")
	}
	if a.Due() {
		t.Fatal("Due fired again without the interval elapsing")
	}

	clock = clock.Add(49 * time.Millisecond)
	if a.Due() {
		t.Fatal("Due fired before the interval elapsed")
	}

	clock = clock.Add(1 * time.Millisecond)
	if !a.Due() {
		t.Fatal("Due should fire once the interval elapsed")
	}
	if a.Due() {
		t.Fatal("Due fired twice for one interval")
	}
}

func TestAutoTickReset(t *testing.T) {
	clock := time.Unix(0, 0)
	a := NewAutoTick(time.Second)
	a.now = func() time.Time { return clock }

	if !a.Due() {
		t.Fatal("first Due should fire")
	}
	a.Reset()
	if !a.Due() {
		t.Fatal("Due after Reset should fire immediately")
	}
}

func TestAutoTickDefaultsNonPositiveInterval(t *testing.T) {
	a := NewAutoTick(0)
	if a.interval != 50*time.Millisecond {
		t.Fatalf("interval = %v, expected 50ms default", a.interval)
	}
}
