package standalone

import (
	"sync"
	"time"

	"github.com/RetroGameDeveloper/rustro-arch/libretro"
)

// fillColor marks padding pixels when a core hands over a frame shorter
// than its reported geometry.
const fillColor = 0x0000FFFF

// SharedPad holds the retropad buttons written by the ebiten thread and
// read by the stepping goroutine.
type SharedPad struct {
	mu      sync.Mutex
	buttons [libretro.JoypadButtons]int16
}

func (p *SharedPad) Set(buttons [libretro.JoypadButtons]int16) {
	p.mu.Lock()
	p.buttons = buttons
	p.mu.Unlock()
}

func (p *SharedPad) Read() [libretro.JoypadButtons]int16 {
	p.mu.Lock()
	b := p.buttons
	p.mu.Unlock()
	return b
}

// SharedFrame double-buffers the video frame between the stepping
// goroutine and ebiten's Draw. Publish converts XRGB pixels to the RGBA
// byte layout ebiten wants; Snapshot copies the latest frame out under
// the lock so Draw never holds up emulation.
type SharedFrame struct {
	mu     sync.Mutex
	write  []byte
	read   []byte
	width  int
	height int
}

// Publish stores one frame. pixels is stride-sized rows of packed
// 0x00RRGGBB values; rows beyond len(pixels) are painted with the fill
// color so a short buffer still shows at full geometry.
func (f *SharedFrame) Publish(pixels []uint32, width, height, stride int) {
	if width <= 0 || height <= 0 {
		return
	}

	f.mu.Lock()
	need := width * height * 4
	if cap(f.write) < need {
		f.write = make([]byte, need)
	}
	f.write = f.write[:need]

	for y := 0; y < height; y++ {
		row := y * stride
		for x := 0; x < width; x++ {
			px := uint32(fillColor)
			if idx := row + x; idx < len(pixels) {
				px = pixels[idx]
			}
			o := (y*width + x) * 4
			f.write[o] = byte(px >> 16)
			f.write[o+1] = byte(px >> 8)
			f.write[o+2] = byte(px)
			f.write[o+3] = 0xff
		}
	}
	f.width = width
	f.height = height
	f.mu.Unlock()
}

// Snapshot returns the most recent frame as RGBA bytes. The returned
// slice stays valid until the next Snapshot call.
func (f *SharedFrame) Snapshot() (pixels []byte, width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.width == 0 {
		return nil, 0, 0
	}
	if cap(f.read) < len(f.write) {
		f.read = make([]byte, len(f.write))
	}
	f.read = f.read[:len(f.write)]
	copy(f.read, f.write)
	return f.read, f.width, f.height
}

// EmuControl coordinates pause and stop between the ebiten thread and
// the stepping goroutine. Core entry points are not thread safe, so the
// ebiten thread pauses the stepper before touching the core directly
// (save states, reset).
type EmuControl struct {
	mu       sync.Mutex
	pauseReq bool
	paused   bool
	stopped  bool
	ackCh    chan struct{}
}

func NewEmuControl() *EmuControl {
	return &EmuControl{ackCh: make(chan struct{}, 1)}
}

// RequestPause asks the stepper to pause and waits for the
// acknowledgment.
func (ec *EmuControl) RequestPause() {
	ec.mu.Lock()
	if ec.paused || ec.pauseReq || ec.stopped {
		ec.mu.Unlock()
		return
	}
	ec.pauseReq = true
	ec.mu.Unlock()
	<-ec.ackCh
}

func (ec *EmuControl) RequestResume() {
	ec.mu.Lock()
	ec.pauseReq = false
	ec.paused = false
	ec.mu.Unlock()
}

// CheckPause is called by the stepper between frames. It acknowledges a
// pending pause request and parks until resumed. Returns false when the
// stepper should exit.
func (ec *EmuControl) CheckPause() bool {
	ec.mu.Lock()
	if ec.stopped {
		ec.mu.Unlock()
		return false
	}
	if !ec.pauseReq {
		ec.mu.Unlock()
		return true
	}
	ec.paused = true
	ec.mu.Unlock()

	select {
	case ec.ackCh <- struct{}{}:
	default:
	}

	for {
		ec.mu.Lock()
		if ec.stopped {
			ec.mu.Unlock()
			return false
		}
		if !ec.pauseReq {
			ec.paused = false
			ec.mu.Unlock()
			return true
		}
		ec.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
	}
}

// Stop tells the stepper to exit; it also clears any pending pause so
// CheckPause unblocks.
func (ec *EmuControl) Stop() {
	ec.mu.Lock()
	ec.stopped = true
	ec.pauseReq = false
	ec.mu.Unlock()
	// A RequestPause may be parked on the ack.
	select {
	case ec.ackCh <- struct{}{}:
	default:
	}
}

func (ec *EmuControl) Stopped() bool {
	ec.mu.Lock()
	s := ec.stopped
	ec.mu.Unlock()
	return s
}
