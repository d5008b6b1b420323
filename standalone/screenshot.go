package standalone

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	xdraw "golang.org/x/image/draw"
)

// screenshotScale is the integer upscale applied before encoding, so
// low-resolution frames come out at a viewable size.
const screenshotScale = 2

// WriteScreenshot encodes the frame as a PNG under dir, named by Unix
// timestamp. rgba is in the SharedFrame byte layout.
func WriteScreenshot(dir string, rgba []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 || len(rgba) < width*height*4 {
		return "", fmt.Errorf("no frame to capture")
	}

	src := &image.RGBA{
		Pix:    rgba[:width*height*4],
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	dst := image.NewRGBA(image.Rect(0, 0, width*screenshotScale, height*screenshotScale))
	xdraw.NearestNeighbor.Scale(dst, dst.Rect, src, src.Rect, xdraw.Src, nil)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%d.png", time.Now().Unix()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create screenshot %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, dst); err != nil {
		return "", fmt.Errorf("encode screenshot: %w", err)
	}
	return path, nil
}
