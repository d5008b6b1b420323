package romloader

import (
	"fmt"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

func fromSevenZip(path string, extensions []string) ([]byte, string, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("open 7z %s: %w", path, err)
	}
	defer r.Close()

	for _, entry := range r.File {
		if entry.FileInfo().IsDir() || !wantedEntry(entry.Name, extensions) {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, "", fmt.Errorf("open 7z entry %s: %w", entry.Name, err)
		}
		data, err := readCapped(rc)
		rc.Close()
		if err != nil {
			return nil, "", fmt.Errorf("extract %s: %w", entry.Name, err)
		}
		return data, filepath.Base(entry.Name), nil
	}
	return nil, "", ErrNoContent
}
