package core

import "testing"

func TestInputBufferLatestPressWins(t *testing.T) {
	b := NewInputBuffer()
	b.Press(ActionLeft)
	b.Press(ActionUp)
	b.Press(ActionRight)
	b.Press(ActionFire)

	f := b.Drain()
	if f.Has(ActionLeft) {
		t.Error("earlier horizontal press should be replaced")
	}
	if !f.Has(ActionRight) || !f.Has(ActionUp) || !f.Has(ActionFire) {
		t.Errorf("drained frame missing actions: %v", f.Actions)
	}
	if b.Pending() {
		t.Error("buffer should be empty after Drain")
	}
	if !b.Drain().Empty() {
		t.Error("second Drain should be empty")
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		actions []Action
		want    Action
	}{
		{nil, ActionNone},
		{[]Action{ActionFire}, ActionNone},
		{[]Action{ActionLeft}, ActionLeft},
		{[]Action{ActionRight, ActionDown}, ActionDown},
	}

	for _, tt := range tests {
		if got := FrameOf(tt.actions...).Direction(); got != tt.want {
			t.Errorf("FrameOf(%v).Direction() = %v, expected %v", tt.actions, got, tt.want)
		}
	}
}

func TestInputFrameClone(t *testing.T) {
	f := FrameOf(ActionFire)
	c := f.Clone()
	f.Clear()

	if !c.Has(ActionFire) {
		t.Error("clone should not share storage")
	}
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
}

func TestParseAction(t *testing.T) {
	for a := ActionNone; a <= ActionQuit; a++ {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if _, ok := ParseAction("Jump"); ok {
		t.Error("ParseAction(\"Jump\") should fail")
	}
}
