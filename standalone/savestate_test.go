package standalone

import "testing"

func TestSlotManagerSaturates(t *testing.T) {
	var m SlotManager

	if m.Current() != 0 {
		t.Fatalf("initial slot = %d, want 0", m.Current())
	}
	if m.Decrease() {
		t.Error("Decrease at slot 0 reported a change")
	}
	if m.Current() != 0 {
		t.Errorf("slot = %d after Decrease at floor", m.Current())
	}

	for i := 0; i < 300; i++ {
		m.Increase()
	}
	if m.Current() != 255 {
		t.Errorf("slot = %d after 300 increases, want 255", m.Current())
	}
	if m.Increase() {
		t.Error("Increase at slot 255 reported a change")
	}

	if !m.Decrease() || m.Current() != 254 {
		t.Errorf("slot = %d after Decrease, want 254", m.Current())
	}
}
