// Package romloader reads game content off disk. Plain files are
// returned as-is; ZIP, 7z, gzip, tar.gz and RAR archives are opened and
// the first entry with a recognized content extension is extracted.
package romloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Cores routinely ship 32MB cartridge images; 64MB leaves headroom
// without letting a hostile archive exhaust memory.
const maxContentSize = 64 * 1024 * 1024

var (
	ErrNoContent     = errors.New("no matching content in archive")
	ErrContentTooBig = errors.New("content exceeds size limit")
)

type archiveKind int

const (
	notArchive archiveKind = iota
	kindZip
	kind7z
	kindGzip
	kindRar
)

var archiveMagics = []struct {
	prefix []byte
	kind   archiveKind
}{
	{[]byte{0x50, 0x4B, 0x03, 0x04}, kindZip},
	{[]byte{0x50, 0x4B, 0x05, 0x06}, kindZip}, // empty zip
	{[]byte{0x52, 0x61, 0x72, 0x21}, kindRar},
	{[]byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C}, kind7z},
	{[]byte{0x1F, 0x8B}, kindGzip},
}

// Load reads content from path. extensions are the lowercase dotted
// extensions the core accepts (e.g. ".gba"); inside archives they pick
// the entry to extract. A plain file is returned whole whatever its
// extension, matching how the frontend treats bare ROM paths.
// The returned name is the extracted entry's base name.
func Load(path string, extensions []string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open content: %w", err)
	}

	header := make([]byte, 8)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		f.Close()
		return nil, "", fmt.Errorf("read content header: %w", err)
	}

	switch sniff(header[:n], path) {
	case kindZip:
		f.Close()
		return fromZip(path, extensions)
	case kind7z:
		f.Close()
		return fromSevenZip(path, extensions)
	case kindGzip:
		f.Close()
		return fromGzip(path, extensions)
	case kindRar:
		f.Close()
		return fromRar(path, extensions)
	}

	defer f.Close()
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, "", fmt.Errorf("rewind content: %w", err)
	}
	data, err := readCapped(f)
	if err != nil {
		return nil, "", fmt.Errorf("read content %s: %w", path, err)
	}
	return data, filepath.Base(path), nil
}

// sniff classifies the file by its leading bytes, falling back to the
// archive extensions for truncated or oddball headers.
func sniff(header []byte, path string) archiveKind {
	for _, m := range archiveMagics {
		if bytes.HasPrefix(header, m.prefix) {
			return m.kind
		}
	}
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".zip"):
		return kindZip
	case strings.HasSuffix(lower, ".7z"):
		return kind7z
	case strings.HasSuffix(lower, ".gz"), strings.HasSuffix(lower, ".tgz"):
		return kindGzip
	case strings.HasSuffix(lower, ".rar"):
		return kindRar
	}
	return notArchive
}

// wantedEntry reports whether an archive member name carries one of the
// accepted extensions. An empty accept list takes anything, so archives
// still work before the core has been asked what it supports.
func wantedEntry(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

func readCapped(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxContentSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxContentSize {
		return nil, ErrContentTooBig
	}
	return data, nil
}
