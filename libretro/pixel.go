package libretro

import (
	"encoding/binary"
	"fmt"
)

// Frames are normalized to 32-bit XRGB8888 pixels: red in bits 16-23,
// green in bits 8-15, blue in bits 0-7. Narrow channels are widened by
// bit replication rather than zero fill so full-intensity source values
// map to full-intensity output and gradients stay smooth.

// expand5 widens a 5-bit channel to 8 bits.
func expand5(c uint32) uint32 { return (c << 3) | (c >> 2) }

// expand6 widens a 6-bit channel to 8 bits.
func expand6(c uint32) uint32 { return (c << 2) | (c >> 4) }

// XRGB8888FromRGB565 converts little-endian 16-bit 5/6/5 pixels.
func XRGB8888FromRGB565(src []byte) ([]uint32, error) {
	if len(src)%2 != 0 {
		return nil, fmt.Errorf("RGB565 buffer length %d is not a multiple of 2", len(src))
	}
	out := make([]uint32, len(src)/2)
	for i := range out {
		p := uint32(binary.LittleEndian.Uint16(src[i*2:]))
		r := expand5(p >> 11 & 0x1f)
		g := expand6(p >> 5 & 0x3f)
		b := expand5(p & 0x1f)
		out[i] = r<<16 | g<<8 | b
	}
	return out, nil
}

// XRGB8888From0RGB1555 converts little-endian 16-bit 1/5/5/5 pixels.
// The top bit is ignored.
func XRGB8888From0RGB1555(src []byte) ([]uint32, error) {
	if len(src)%2 != 0 {
		return nil, fmt.Errorf("0RGB1555 buffer length %d is not a multiple of 2", len(src))
	}
	out := make([]uint32, len(src)/2)
	for i := range out {
		p := uint32(binary.LittleEndian.Uint16(src[i*2:]))
		r := expand5(p >> 10 & 0x1f)
		g := expand5(p >> 5 & 0x1f)
		b := expand5(p & 0x1f)
		out[i] = r<<16 | g<<8 | b
	}
	return out, nil
}

// XRGB8888FromBytes reinterprets raw 32-bit pixels: every 4 input bytes
// become exactly one output pixel, no conversion.
func XRGB8888FromBytes(src []byte) ([]uint32, error) {
	if len(src)%4 != 0 {
		return nil, fmt.Errorf("XRGB8888 buffer length %d is not a multiple of 4", len(src))
	}
	out := make([]uint32, len(src)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(src[i*4:])
	}
	return out, nil
}

// NormalizeFrame converts a raw scanline buffer in the given source
// format to canonical XRGB8888 pixels.
func NormalizeFrame(format PixelFormat, src []byte) ([]uint32, error) {
	switch format {
	case PixelFormatRGB565:
		return XRGB8888FromRGB565(src)
	case PixelFormat0RGB1555:
		return XRGB8888From0RGB1555(src)
	case PixelFormatXRGB8888:
		return XRGB8888FromBytes(src)
	}
	return nil, ErrUnknownPixelFormat
}
