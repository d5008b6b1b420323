package romloader

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/nwaples/rardecode/v2"
)

func fromRar(path string, extensions []string) ([]byte, string, error) {
	r, err := rardecode.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("open rar %s: %w", path, err)
	}
	defer r.Close()

	for {
		hdr, err := r.Next()
		if err == io.EOF {
			return nil, "", ErrNoContent
		}
		if err != nil {
			return nil, "", fmt.Errorf("read rar entry: %w", err)
		}
		if hdr.IsDir || !wantedEntry(hdr.Name, extensions) {
			continue
		}
		data, err := readCapped(r)
		if err != nil {
			return nil, "", fmt.Errorf("extract %s: %w", hdr.Name, err)
		}
		return data, filepath.Base(hdr.Name), nil
	}
}
