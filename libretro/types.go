package libretro

// PixelFormat is the source encoding of frames the core pushes through
// the video refresh callback. Values match the libretro enumeration.
type PixelFormat uint32

const (
	PixelFormat0RGB1555 PixelFormat = 0
	PixelFormatXRGB8888 PixelFormat = 1
	PixelFormatRGB565   PixelFormat = 2
)

// BytesPerPixel returns the byte width of one pixel in this source
// encoding.
func (f PixelFormat) BytesPerPixel() int {
	if f == PixelFormatXRGB8888 {
		return 4
	}
	return 2
}

func (f PixelFormat) String() string {
	switch f {
	case PixelFormat0RGB1555:
		return "0RGB1555"
	case PixelFormatXRGB8888:
		return "XRGB8888"
	case PixelFormatRGB565:
		return "RGB565"
	}
	return "unknown"
}

// Joypad button ids, indices into the pressed-button vector.
const (
	JoypadB = iota
	JoypadY
	JoypadSelect
	JoypadStart
	JoypadUp
	JoypadDown
	JoypadLeft
	JoypadRight
	JoypadA
	JoypadX
	JoypadL
	JoypadR
	JoypadL2
	JoypadR2
	JoypadL3
	JoypadR3

	// JoypadButtons is the size of the pressed-button vector. Ids at or
	// beyond this read as "not pressed".
	JoypadButtons = 16
)

// SystemInfo is the core's static self-description.
type SystemInfo struct {
	LibraryName     string
	LibraryVersion  string
	ValidExtensions []string // lower-case, dot-prefixed
	NeedFullpath    bool
	BlockExtract    bool
}

// AVInfo is the core's reported geometry and timing for the loaded
// content.
type AVInfo struct {
	BaseWidth   int
	BaseHeight  int
	MaxWidth    int
	MaxHeight   int
	AspectRatio float64
	FPS         float64
	SampleRate  float64
}

// Region values returned by the core.
const (
	RegionNTSC = 0
	RegionPAL  = 1
)
