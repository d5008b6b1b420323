package libretro

import (
	"fmt"
	"log"
)

// Session is the shared record every callback reads and writes. One
// instance exists per process. It is mutated only from the goroutine
// driving Core.Run — the core invokes callbacks synchronously on that
// same thread — so no locking is needed as long as mutation stays
// confined to the run loop's call graph.
type Session struct {
	ROMPath  string
	CorePath string

	// Variables answers GET_VARIABLE queries, keyed by option name.
	Variables map[string]string

	pixelFormat   PixelFormat
	bytesPerPixel int

	frame       []uint32
	frameWidth  int
	frameHeight int
	framePitch  int // bytes per scanline as reported by the core

	input    [JoypadButtons]int16
	inputSet bool

	audio []int16

	shutdown bool
	fatal    error

	// seenEnv records unhandled environment codes already logged, so
	// per-frame queries do not flood diagnostics.
	seenEnv map[uint32]bool
}

// NewSession builds the session record for one ROM/core pairing.
func NewSession(romPath, corePath string, vars map[string]string) *Session {
	return &Session{
		ROMPath:   romPath,
		CorePath:  corePath,
		Variables: vars,
		// XRGB8888 until the core negotiates otherwise, matching the
		// protocol default of 0RGB1555 being deprecated in practice.
		pixelFormat:   PixelFormatXRGB8888,
		bytesPerPixel: 4,
		seenEnv:       make(map[uint32]bool),
	}
}

// PixelFormat returns the negotiated source pixel format.
func (s *Session) PixelFormat() PixelFormat { return s.pixelFormat }

// setPixelFormat applies a SET_PIXEL_FORMAT negotiation. An
// unrecognized tag is fatal: frame decoding would be undefined.
func (s *Session) setPixelFormat(tag uint32) error {
	switch PixelFormat(tag) {
	case PixelFormat0RGB1555, PixelFormatXRGB8888, PixelFormatRGB565:
	default:
		err := fmt.Errorf("%w: tag %d", ErrUnknownPixelFormat, tag)
		s.fatal = err
		return err
	}
	s.pixelFormat = PixelFormat(tag)
	s.bytesPerPixel = s.pixelFormat.BytesPerPixel()
	return nil
}

// updateFrame normalizes a raw frame and replaces the frame buffer
// wholesale. pitch is the byte stride between scanlines and may exceed
// width*bytesPerPixel; the stored buffer covers pitch/bpp pixels per
// row, never fewer than width.
//
// Compatibility note: pitch already counts bytes, so pitch*height is
// the raw frame length for every format. Earlier frontends multiplied
// by bytes-per-pixel again for 16-bit formats and then divided 32-bit
// frames back down; both reads are wrong and neither is reproduced.
func (s *Session) updateFrame(raw []byte, width, height, pitch int) error {
	pixels, err := NormalizeFrame(s.pixelFormat, raw)
	if err != nil {
		return err
	}
	s.frame = pixels
	s.frameWidth = width
	s.frameHeight = height
	s.framePitch = pitch
	return nil
}

// Frame returns the most recently normalized frame, or ok=false before
// the first video refresh. stridePixels is the pixel count per stored
// scanline (>= width when the core pads its rows).
func (s *Session) Frame() (pixels []uint32, width, height, stridePixels int, ok bool) {
	if s.frame == nil {
		return nil, 0, 0, 0, false
	}
	stride := s.frameWidth
	if s.bytesPerPixel > 0 && s.framePitch > 0 {
		stride = s.framePitch / s.bytesPerPixel
	}
	if stride < s.frameWidth {
		stride = s.frameWidth
	}
	return s.frame, s.frameWidth, s.frameHeight, stride, true
}

// SetButtons writes this frame's pressed-button vector. Called once per
// run-loop iteration before stepping the core.
func (s *Session) SetButtons(buttons [JoypadButtons]int16) {
	s.input = buttons
	s.inputSet = true
}

// InputState answers the core's input-state callback. Out-of-range ids
// and queries before any input has been written degrade to 0, never an
// error.
func (s *Session) InputState(port, device, index, id uint32) int16 {
	if !s.inputSet || id >= JoypadButtons {
		return 0
	}
	if port != 0 || device != deviceJoypad || index != 0 {
		return 0
	}
	return s.input[id]
}

// pushAudio appends interleaved samples to the pending batch. A core
// may call the sample callbacks any number of times within one step;
// everything accumulates until DrainAudio clears it between steps.
func (s *Session) pushAudio(samples []int16) {
	s.audio = append(s.audio, samples...)
}

// DrainAudio returns the pending batch and clears it, or nil when the
// core produced no audio this step.
func (s *Session) DrainAudio() []int16 {
	if len(s.audio) == 0 {
		return nil
	}
	out := make([]int16, len(s.audio))
	copy(out, s.audio)
	s.audio = s.audio[:0]
	return out
}

// Err reports a fatal condition raised inside a callback, such as an
// unknown pixel format negotiated during load.
func (s *Session) Err() error { return s.fatal }

// ShutdownRequested reports whether the core asked the frontend to
// exit via ENVIRONMENT_SHUTDOWN.
func (s *Session) ShutdownRequested() bool { return s.shutdown }

// logEnvOnce records and logs the first occurrence of an unhandled
// environment command code.
func (s *Session) logEnvOnce(cmd uint32) {
	if s.seenEnv[cmd] {
		return
	}
	s.seenEnv[cmd] = true
	log.Printf("environment: unhandled command %d (%s)", cmd, envName(cmd))
}

const deviceJoypad = 1 // RETRO_DEVICE_JOYPAD
