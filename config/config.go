// Package config holds the flat key/value settings the frontend runs
// with: built-in defaults overlaid with the user's RetroArch config and
// a local rustroarch.cfg, in that order.
package config

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Config is a flat string map. All lookups go through Get so missing
// keys degrade to a caller-supplied default instead of a panic.
type Config map[string]string

func defaults() Config {
	return Config{
		"input_player1_a":           "a",
		"input_player1_b":           "s",
		"input_player1_x":           "z",
		"input_player1_y":           "x",
		"input_player1_l":           "q",
		"input_player1_r":           "w",
		"input_player1_down":        "down",
		"input_player1_up":          "up",
		"input_player1_left":        "left",
		"input_player1_right":       "right",
		"input_player1_select":      "space",
		"input_player1_start":       "enter",
		"input_reset":               "h",
		"input_save_state":          "f2",
		"input_load_state":          "f4",
		"input_screenshot":          "f8",
		"input_state_slot_decrease": "f6",
		"input_state_slot_increase": "f7",
		"savestate_directory":       "./states",
		"audio_enable":              "true",
	}
}

// retroarchConfigDir locates the per-user RetroArch directory for the
// current platform.
func retroarchConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "retroarch")
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library/Application Support/RetroArch")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "retroarch")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "retroarch")
	}
}

// parseFile reads key = "value" lines. Quotes around the value are
// stripped, whitespace trimmed, lines without '=' skipped.
func parseFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := Config{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		key, value, found := strings.Cut(sc.Text(), "=")
		if !found {
			continue
		}
		out[strings.TrimSpace(key)] = strings.ReplaceAll(strings.TrimSpace(value), "\"", "")
	}
	return out, sc.Err()
}

// Load builds the effective config: defaults, then the user's
// retroarch.cfg, then ./rustroarch.cfg. Missing files are fine.
func Load() Config {
	merged := defaults()

	raPath := filepath.Join(retroarchConfigDir(), "config", "retroarch.cfg")
	if ra, err := parseFile(raPath); err == nil {
		for k, v := range ra {
			merged[k] = v
		}
	} else {
		log.Printf("no RetroArch config at %s", raPath)
	}

	if local, err := parseFile("./rustroarch.cfg"); err == nil {
		for k, v := range local {
			merged[k] = v
		}
	}

	return merged
}

// Get returns the value for key, or def when the key is absent.
func (c Config) Get(key, def string) string {
	if v, ok := c[key]; ok {
		return v
	}
	return def
}

// Bool reports whether key is set to a truthy value ("true" or "1").
func (c Config) Bool(key string, def bool) bool {
	v, ok := c[key]
	if !ok {
		return def
	}
	return v == "true" || v == "1"
}
