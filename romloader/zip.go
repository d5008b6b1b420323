package romloader

import (
	"archive/zip"
	"fmt"
	"path/filepath"
)

func fromZip(path string, extensions []string) ([]byte, string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("open zip %s: %w", path, err)
	}
	defer r.Close()

	for _, entry := range r.File {
		if entry.FileInfo().IsDir() || !wantedEntry(entry.Name, extensions) {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, "", fmt.Errorf("open zip entry %s: %w", entry.Name, err)
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
