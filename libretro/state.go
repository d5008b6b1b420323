package libretro

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func dirOf(p string) string {
	return filepath.Dir(p)
}

func extOf(p string) string {
	return strings.TrimPrefix(filepath.Ext(p), ".")
}

func baseNameNoExt(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// StatePath derives the snapshot file for a ROM and slot. The name is
// the ROM's base name with its extension dropped and spaces replaced by
// underscores, then "_<slot>.state".
func StatePath(dir, romPath string, slot int) string {
	name := strings.ReplaceAll(baseNameNoExt(romPath), " ", "_")
	return filepath.Join(dir, fmt.Sprintf("%s_%d.state", name, slot))
}

// SaveState snapshots the core into the slot's file under dir, creating
// the directory if needed. Failures are recoverable: the session keeps
// running on error.
func (c *Core) SaveState(dir, romPath string, slot int) (string, error) {
	data, err := c.Serialize()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create state directory %s: %w", dir, err)
	}
	path := StatePath(dir, romPath, slot)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write state %s: %w", path, err)
	}
	return path, nil
}

// LoadState restores the slot's snapshot. A missing file, a read error
// or a rejection by the core all leave the running state untouched.
func (c *Core) LoadState(dir, romPath string, slot int) (string, error) {
	path := StatePath(dir, romPath, slot)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read state %s: %w", path, err)
	}
	if err := c.Unserialize(data); err != nil {
		return "", fmt.Errorf("restore state %s: %w", path, err)
	}
	return path, nil
}
