package romloader

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var gbaExts = []string{".gba"}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeZip(t *testing.T, entries map[string][]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.zip")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	w := zip.NewWriter(f)
	for name, data := range entries {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRawFile(t *testing.T) {
	want := []byte{0x01, 0x02, 0x03, 0x04}
	path := writeTemp(t, "game.gba", want)

	data, name, err := Load(path, gbaExts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, want) {
		t.Errorf("data = %v, want %v", data, want)
	}
	if name != "game.gba" {
		t.Errorf("name = %q, want game.gba", name)
	}
}

func TestLoadRawFileUnlistedExtension(t *testing.T) {
	// A bare file loads whole even when its extension is not one the
	// core advertises.
	want := []byte{0xde, 0xad}
	path := writeTemp(t, "game.xyz", want)

	data, _, err := Load(path, gbaExts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, want) {
		t.Errorf("data = %v, want %v", data, want)
	}
}

func TestLoadZip(t *testing.T) {
	want := []byte{0xaa, 0xbb, 0xcc}
	path := writeZip(t, map[string][]byte{"roms/sub/game.gba": want})

	data, name, err := Load(path, gbaExts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, want) {
		t.Errorf("data = %v, want %v", data, want)
	}
	if name != "game.gba" {
		t.Errorf("name = %q, want base name of entry", name)
	}
}

func TestLoadZipNoMatch(t *testing.T) {
	path := writeZip(t, map[string][]byte{"readme.txt": []byte("hi")})
	if _, _, err := Load(path, gbaExts); !errors.Is(err, ErrNoContent) {
		t.Errorf("err = %v, want ErrNoContent", err)
	}
}

func TestLoadGzip(t *testing.T) {
	want := []byte{0x11, 0x22, 0x33}
	path := filepath.Join(t.TempDir(), "game.gba.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := gzip.NewWriter(f)
	w.Write(want)
	w.Close()
	f.Close()

	data, name, err := Load(path, gbaExts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, want) {
		t.Errorf("data = %v, want %v", data, want)
	}
	if name != "game.gba" {
		t.Errorf("name = %q, want game.gba", name)
	}
}

func TestLoadTarGz(t *testing.T) {
	want := []byte{0x42, 0x43}
	path := filepath.Join(t.TempDir(), "bundle.tar.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(f)
	tw := tar.NewWriter(gw)
	tw.WriteHeader(&tar.Header{Name: "game.gba", Mode: 0o644, Size: int64(len(want)), Typeflag: tar.TypeReg})
	tw.Write(want)
	tw.Close()
	gw.Close()
	f.Close()

	data, name, err := Load(path, gbaExts)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, want) {
		t.Errorf("data = %v, want %v", data, want)
	}
	if name != "game.gba" {
		t.Errorf("name = %q, want game.gba", name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load("/no/such/game.gba", gbaExts); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSniff(t *testing.T) {
	tests := []struct {
		header []byte
		path   string
		want   archiveKind
	}{
		{[]byte{0x50, 0x4B, 0x03, 0x04, 0, 0, 0, 0}, "x.dat", kindZip},
		{[]byte{0x50, 0x4B, 0x05, 0x06, 0, 0, 0, 0}, "x.dat", kindZip},
		{[]byte{0x52, 0x61, 0x72, 0x21, 0x1a, 0x07, 0, 0}, "x.dat", kindRar},
		{[]byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C, 0, 0}, "x.dat", kind7z},
		{[]byte{0x1F, 0x8B, 0x08, 0, 0, 0, 0, 0}, "x.dat", kindGzip},
		{nil, "x.zip", kindZip},
		{nil, "x.7z", kind7z},
		{nil, "x.tgz", kindGzip},
		{nil, "x.tar.gz", kindGzip},
		{nil, "x.RAR", kindRar},
		{nil, "x.gba", notArchive},
		{[]byte{0x00, 0x01}, "x.bin", notArchive},
	}
	for _, tt := range tests {
		if got := sniff(tt.header, tt.path); got != tt.want {
			t.Errorf("sniff(%v, %q) = %d, want %d", tt.header, tt.path, got, tt.want)
		}
	}
}

func TestWantedEntry(t *testing.T) {
	exts := []string{".gba", ".bin"}
	tests := []struct {
		name string
		want bool
	}{
		{"game.gba", true},
		{"GAME.GBA", true},
		{"dir/game.bin", true},
		{"game.txt", false},
		{"game.gba.bak", false},
		{"game", false},
	}
	for _, tt := range tests {
		if got := wantedEntry(tt.name, exts); got != tt.want {
			t.Errorf("wantedEntry(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	if !wantedEntry("anything.xyz", nil) {
		t.Error("empty accept list should take any entry")
	}
}

func TestReadCappedRejectsOversize(t *testing.T) {
	big := bytes.NewReader(make([]byte, maxContentSize+1))
	if _, err := readCapped(big); !errors.Is(err, ErrContentTooBig) {
		t.Errorf("err = %v, want ErrContentTooBig", err)
	}
}
