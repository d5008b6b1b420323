package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	c := defaults()
	tests := []struct{ key, want string }{
		{"input_player1_a", "a"},
		{"input_player1_start", "enter"},
		{"input_save_state", "f2"},
		{"input_load_state", "f4"},
		{"input_state_slot_increase", "f7"},
		{"savestate_directory", "./states"},
	}
	for _, tt := range tests {
		if got := c.Get(tt.key, ""); got != tt.want {
			t.Errorf("default %s = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "retroarch.cfg")
	content := `
input_player1_a = "j"
savestate_directory = "/tmp/states"
  spaced_key   =   spaced value
not a config line
video_fullscreen = "false"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := parseFile(path)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct{ key, want string }{
		{"input_player1_a", "j"},
		{"savestate_directory", "/tmp/states"},
		{"spaced_key", "spaced value"},
		{"video_fullscreen", "false"},
	}
	for _, tt := range tests {
		if got := c.Get(tt.key, ""); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
		}
	}
	if _, ok := c["not a config line"]; ok {
		t.Error("line without '=' should be skipped")
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := parseFile(filepath.Join(t.TempDir(), "nope.cfg")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetFallback(t *testing.T) {
	c := Config{"present": "yes"}
	if got := c.Get("present", "no"); got != "yes" {
		t.Errorf("Get(present) = %q", got)
	}
	if got := c.Get("absent", "fallback"); got != "fallback" {
		t.Errorf("Get(absent) = %q", got)
	}
}

func TestBool(t *testing.T) {
	c := Config{"on": "true", "one": "1", "off": "false"}
	if !c.Bool("on", false) || !c.Bool("one", false) {
		t.Error("truthy values not recognized")
	}
	if c.Bool("off", true) {
		t.Error("\"false\" treated as true")
	}
	if !c.Bool("missing", true) {
		t.Error("default not honored for missing key")
	}
}
