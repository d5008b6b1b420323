package standalone

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/RetroGameDeveloper/rustro-arch/config"
	"github.com/RetroGameDeveloper/rustro-arch/libretro"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
		ok   bool
	}{
		{"a", ebiten.KeyA, true},
		{"z", ebiten.KeyZ, true},
		{"f2", ebiten.KeyF2, true},
		{"f12", ebiten.KeyF12, true},
		{"up", ebiten.KeyArrowUp, true},
		{"space", ebiten.KeySpace, true},
		{"enter", ebiten.KeyEnter, true},
		{"key5", ebiten.Key5, true},
		{"notakey", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseKey(tt.name)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseKey(%q) = %v, %v", tt.name, got, ok)
		}
	}
}

func TestBuildKeymapDefaults(t *testing.T) {
	cfg := config.Config{
		"input_player1_a": "a", "input_player1_b": "s",
		"input_player1_x": "z", "input_player1_y": "x",
		"input_player1_l": "q", "input_player1_r": "w",
		"input_player1_up": "up", "input_player1_down": "down",
		"input_player1_left": "left", "input_player1_right": "right",
		"input_player1_select": "space", "input_player1_start": "enter",
	}
	m := BuildKeymap(cfg)

	tests := []struct {
		key ebiten.Key
		id  int
	}{
		{ebiten.KeyA, libretro.JoypadA},
		{ebiten.KeyS, libretro.JoypadB},
		{ebiten.KeyZ, libretro.JoypadX},
		{ebiten.KeyX, libretro.JoypadY},
		{ebiten.KeyQ, libretro.JoypadL},
		{ebiten.KeyW, libretro.JoypadR},
		{ebiten.KeyArrowUp, libretro.JoypadUp},
		{ebiten.KeyArrowDown, libretro.JoypadDown},
		{ebiten.KeyArrowLeft, libretro.JoypadLeft},
		{ebiten.KeyArrowRight, libretro.JoypadRight},
		{ebiten.KeySpace, libretro.JoypadSelect},
		{ebiten.KeyEnter, libretro.JoypadStart},
	}
	for _, tt := range tests {
		id, ok := m[tt.key]
		if !ok || id != tt.id {
			t.Errorf("keymap[%v] = %d, %v; want %d", tt.key, id, ok, tt.id)
		}
	}
}

func TestBuildKeymapOverride(t *testing.T) {
	cfg := config.Config{"input_player1_a": "j", "input_player1_b": "notakey"}
	m := BuildKeymap(cfg)

	if id, ok := m[ebiten.KeyJ]; !ok || id != libretro.JoypadA {
		t.Errorf("override binding missing: %d, %v", id, ok)
	}
	for key, id := range m {
		if id == libretro.JoypadB {
			t.Errorf("invalid key name produced binding %v", key)
		}
	}
}

func TestPadButtonsCoverAllIds(t *testing.T) {
	seen := make(map[int]bool)
	for _, id := range padButtons {
		if seen[id] {
			t.Errorf("retropad id %d mapped twice", id)
		}
		seen[id] = true
	}
	if len(seen) != libretro.JoypadButtons {
		t.Errorf("gamepad mapping covers %d ids, want %d", len(seen), libretro.JoypadButtons)
	}
}

func TestHotkeyFromConfigFallback(t *testing.T) {
	cfg := config.Config{"input_save_state": "bogus"}
	if k := hotkeyFromConfig(cfg, "input_save_state", "f2"); k != ebiten.KeyF2 {
		t.Errorf("fallback key = %v, want F2", k)
	}
	cfg = config.Config{"input_save_state": "f5"}
	if k := hotkeyFromConfig(cfg, "input_save_state", "f2"); k != ebiten.KeyF5 {
		t.Errorf("configured key = %v, want F5", k)
	}
}
