package romloader

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// fromGzip handles both bare .gz files and .tar.gz/.tgz bundles. A bare
// gzip stream is assumed to be the content itself under the name with
// the .gz suffix dropped.
func fromGzip(path string, extensions []string) ([]byte, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open gzip %s: %w", path, err)
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode gzip %s: %w", path, err)
	}
	defer gr.Close()

	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz") {
		return fromTar(gr, extensions)
	}

	data, err := readCapped(gr)
	if err != nil {
		return nil, "", fmt.Errorf("decompress %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return data, name, nil
}

func fromTar(r io.Reader, extensions []string) ([]byte, string, error) {
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, "", ErrNoContent
		}
		if err != nil {
			return nil, "", fmt.Errorf("read tar entry: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg || !wantedEntry(hdr.Name, extensions) {
			continue
		}
		data, err := readCapped(tr)
		if err != nil {
			return nil, "", fmt.Errorf("extract %s: %w", hdr.Name, err)
		}
		return data, filepath.Base(hdr.Name), nil
	}
}
