package standalone

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/RetroGameDeveloper/rustro-arch/config"
	"github.com/RetroGameDeveloper/rustro-arch/libretro"
)

// keyNames maps the lowercase key names used in RetroArch-style config
// values to ebiten keys.
var keyNames = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,
	"key0": ebiten.Key0, "key1": ebiten.Key1, "key2": ebiten.Key2,
	"key3": ebiten.Key3, "key4": ebiten.Key4, "key5": ebiten.Key5,
	"key6": ebiten.Key6, "key7": ebiten.Key7, "key8": ebiten.Key8,
	"key9": ebiten.Key9,
	"f1": ebiten.KeyF1, "f2": ebiten.KeyF2, "f3": ebiten.KeyF3,
	"f4": ebiten.KeyF4, "f5": ebiten.KeyF5, "f6": ebiten.KeyF6,
	"f7": ebiten.KeyF7, "f8": ebiten.KeyF8, "f9": ebiten.KeyF9,
	"f10": ebiten.KeyF10, "f11": ebiten.KeyF11, "f12": ebiten.KeyF12,
	"up": ebiten.KeyArrowUp, "down": ebiten.KeyArrowDown,
	"left": ebiten.KeyArrowLeft, "right": ebiten.KeyArrowRight,
	"space": ebiten.KeySpace, "enter": ebiten.KeyEnter,
	"tab": ebiten.KeyTab, "backspace": ebiten.KeyBackspace,
	"escape": ebiten.KeyEscape, "shift": ebiten.KeyShift,
	"comma": ebiten.KeyComma, "period": ebiten.KeyPeriod,
	"slash": ebiten.KeySlash, "semicolon": ebiten.KeySemicolon,
}

// padButtons maps the standard gamepad layout onto retropad ids.
var padButtons = map[ebiten.StandardGamepadButton]int{
	ebiten.StandardGamepadButtonRightBottom:     libretro.JoypadB,
	ebiten.StandardGamepadButtonRightRight:      libretro.JoypadA,
	ebiten.StandardGamepadButtonRightLeft:       libretro.JoypadY,
	ebiten.StandardGamepadButtonRightTop:        libretro.JoypadX,
	ebiten.StandardGamepadButtonCenterLeft:      libretro.JoypadSelect,
	ebiten.StandardGamepadButtonCenterRight:     libretro.JoypadStart,
	ebiten.StandardGamepadButtonLeftTop:         libretro.JoypadUp,
	ebiten.StandardGamepadButtonLeftBottom:      libretro.JoypadDown,
	ebiten.StandardGamepadButtonLeftLeft:        libretro.JoypadLeft,
	ebiten.StandardGamepadButtonLeftRight:       libretro.JoypadRight,
	ebiten.StandardGamepadButtonFrontTopLeft:    libretro.JoypadL,
	ebiten.StandardGamepadButtonFrontTopRight:   libretro.JoypadR,
	ebiten.StandardGamepadButtonFrontBottomLeft: libretro.JoypadL2,
	ebiten.StandardGamepadButtonFrontBottomRight: libretro.JoypadR2,
	ebiten.StandardGamepadButtonLeftStick:       libretro.JoypadL3,
	ebiten.StandardGamepadButtonRightStick:      libretro.JoypadR3,
}

// retropadConfigKeys pairs each configurable player-1 binding with its
// retropad id.
var retropadConfigKeys = []struct {
	configKey string
	id        int
}{
	{"input_player1_a", libretro.JoypadA},
	{"input_player1_b", libretro.JoypadB},
	{"input_player1_x", libretro.JoypadX},
	{"input_player1_y", libretro.JoypadY},
	{"input_player1_l", libretro.JoypadL},
	{"input_player1_r", libretro.JoypadR},
	{"input_player1_up", libretro.JoypadUp},
	{"input_player1_down", libretro.JoypadDown},
	{"input_player1_left", libretro.JoypadLeft},
	{"input_player1_right", libretro.JoypadRight},
	{"input_player1_select", libretro.JoypadSelect},
	{"input_player1_start", libretro.JoypadStart},
}

// ParseKey resolves a config key name to an ebiten key.
func ParseKey(name string) (ebiten.Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}

// BuildKeymap turns the input_player1_* config bindings into a
// keyboard-to-retropad map. Unknown key names are logged and skipped.
func BuildKeymap(cfg config.Config) map[ebiten.Key]int {
	m := make(map[ebiten.Key]int, len(retropadConfigKeys))
	for _, b := range retropadConfigKeys {
		name := cfg.Get(b.configKey, "")
		if name == "" {
			continue
		}
		k, ok := ParseKey(name)
		if !ok {
			log.Printf("unknown key name %q for %s", name, b.configKey)
			continue
		}
		m[k] = b.id
	}
	return m
}

// PollButtons reads the keyboard map plus the first connected gamepad
// and returns the pressed-button vector for the session.
func PollButtons(keymap map[ebiten.Key]int) [libretro.JoypadButtons]int16 {
	var buttons [libretro.JoypadButtons]int16

	for key, id := range keymap {
		if ebiten.IsKeyPressed(key) {
			buttons[id] = 1
		}
	}

	ids := ebiten.AppendGamepadIDs(nil)
	if len(ids) == 0 {
		return buttons
	}
	pad := ids[0]
	for btn, id := range padButtons {
		if ebiten.IsStandardGamepadButtonPressed(pad, btn) {
			buttons[id] = 1
		}
	}

	// Left stick mirrors the d-pad.
	axisX := ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickHorizontal)
	axisY := ebiten.StandardGamepadAxisValue(pad, ebiten.StandardGamepadAxisLeftStickVertical)
	if axisX < -0.25 {
		buttons[libretro.JoypadLeft] = 1
	}
	if axisX > 0.25 {
		buttons[libretro.JoypadRight] = 1
	}
	if axisY < -0.25 {
		buttons[libretro.JoypadUp] = 1
	}
	if axisY > 0.25 {
		buttons[libretro.JoypadDown] = 1
	}

	return buttons
}
