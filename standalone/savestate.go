package standalone

// SlotManager tracks the active save-state slot. Slots run 0 through
// 255 and the hotkeys saturate at the ends rather than wrapping.
type SlotManager struct {
	slot int
}

func (m *SlotManager) Current() int { return m.slot }

// Increase moves to the next slot. Reports whether the slot changed.
func (m *SlotManager) Increase() bool {
	if m.slot >= 255 {
		return false
	}
	m.slot++
	return true
}

// Decrease moves to the previous slot. Reports whether the slot
// changed.
func (m *SlotManager) Decrease() bool {
	if m.slot <= 0 {
		return false
	}
	m.slot--
	return true
}
