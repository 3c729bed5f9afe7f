package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionPause) {
		t.Fatal("zero frame should have no actions")
	}

	f.Set(ActionPause)
	f.Set(ActionHard)
	if !f.Has(ActionPause) || !f.Has(ActionHard) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionEasy) {
		t.Error("unset action reported as present")
	}

	f.Clear()
	if f.Has(ActionPause) || f.Has(ActionHard) {
		t.Error("Clear should drop all actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionRallyLog.String() != "RallyLog" {
		t.Errorf("ActionRallyLog.String() = %q", ActionRallyLog.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected Unknown", Action(99).String())
	}
}
