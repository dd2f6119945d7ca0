package timing

import (
	"testing"
	"time"
)

func TestTick(t *testing.T) {
	start := time.Unix(100, 0)
	c := NewClock(start)

	tests := []struct {
		after time.Duration
		want  float32
	}{
		{16 * time.Millisecond, 0.016},
		{16 * time.Millisecond, 0},
		{500 * time.Millisecond, 0.484},
		{400 * time.Millisecond, 0},
	}
	for i, tt := range tests {
		got := c.Tick(start.Add(tt.after))
		if d := got - tt.want; d > 1e-6 || d < -1e-6 {
			t.Errorf("tick %d: delta = %v, want %v", i, got, tt.want)
		}
		if c.Delta() != got {
			t.Errorf("tick %d: Delta() = %v, want %v", i, c.Delta(), got)
		}
	}
}

func TestCountFrame(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewClock(start)

	for i := 1; i < 60; i++ {
		if _, ok := c.CountFrame(start.Add(time.Duration(i) * 10 * time.Millisecond)); ok {
			t.Fatalf("frame %d reported before a second had passed", i)
		}
	}
	fps, ok := c.CountFrame(start.Add(1200 * time.Millisecond))
	if !ok {
		t.Fatal("no report after 1.2s")
	}
	if fps != 50 {
		t.Errorf("fps = %v, want 50", fps)
	}

	// window restarts
	if _, ok := c.CountFrame(start.Add(1300 * time.Millisecond)); ok {
		t.Error("reported again within the new window")
	}
}
