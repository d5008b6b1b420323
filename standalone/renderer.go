package standalone

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FrameRenderer owns the offscreen image the core's frames are written
// to and draws it scaled to the window, preserving aspect ratio with
// nearest-neighbor filtering.
type FrameRenderer struct {
	offscreen *ebiten.Image
	drawOpts  ebiten.DrawImageOptions
}

func NewFrameRenderer() *FrameRenderer {
	return &FrameRenderer{}
}

// Draw uploads the RGBA frame and blits it centered into screen.
func (r *FrameRenderer) Draw(screen *ebiten.Image, rgba []byte, width, height int) {
	if width <= 0 || height <= 0 || len(rgba) < width*height*4 {
		return
	}

	if r.offscreen == nil || r.offscreen.Bounds().Dx() != width || r.offscreen.Bounds().Dy() != height {
		r.offscreen = ebiten.NewImage(width, height)
	}
	r.offscreen.WritePixels(rgba[:width*height*4])

	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()
	scaleX := float64(screenW) / float64(width)
	scaleY := float64(screenH) / float64(height)
	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}

	offsetX := (float64(screenW) - float64(width)*scale) / 2
	offsetY := (float64(screenH) - float64(height)*scale) / 2

	r.drawOpts = ebiten.DrawImageOptions{}
	r.drawOpts.GeoM.Scale(scale, scale)
	r.drawOpts.GeoM.Translate(offsetX, offsetY)
	r.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(r.offscreen, &r.drawOpts)
}
