package standalone

import (
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// ringBufferCapacity is a few hundred milliseconds of 16-bit stereo at
// typical core sample rates.
const ringBufferCapacity = 32768

// AudioPlayer plays 16-bit stereo samples through oto. Samples go into
// a drop-oldest ring buffer that oto's player pulls from.
type AudioPlayer struct {
	player     *oto.Player
	ringBuffer *AudioRingBuffer
	byteBuf    []byte
}

// oto allows one context per process; the sample rate is fixed by
// whichever core starts first.
var (
	otoCtx      *oto.Context
	otoInitOnce sync.Once
	otoInitErr  error
)

func ensureOtoContext(sampleRate int) (*oto.Context, error) {
	otoInitOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   50 * time.Millisecond,
		}
		var ready chan struct{}
		otoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr != nil {
			return
		}
		<-ready
	})
	return otoCtx, otoInitErr
}

// NewAudioPlayer opens playback at the core's reported sample rate.
func NewAudioPlayer(sampleRate int) (*AudioPlayer, error) {
	ctx, err := ensureOtoContext(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("oto audio not available: %w", err)
	}

	rb := NewAudioRingBuffer(ringBufferCapacity)
	player := ctx.NewPlayer(rb)
	// Shrink oto's internal buffer from its half-second default so the
	// buffer level tracks playback closely enough to pace frames with.
	player.SetBufferSize(19200)
	player.Play()

	return &AudioPlayer{
		player:     player,
		ringBuffer: rb,
		byteBuf:    make([]byte, 0, 4096),
	}, nil
}

// QueueSamples converts interleaved L/R samples to little-endian bytes
// and hands them to the ring buffer.
func (a *AudioPlayer) QueueSamples(samples []int16) {
	if len(samples) == 0 {
		return
	}
	if cap(a.byteBuf) < len(samples)*2 {
		a.byteBuf = make([]byte, 0, len(samples)*2)
	}
	a.byteBuf = a.byteBuf[:0]
	for _, s := range samples {
		a.byteBuf = append(a.byteBuf, byte(s), byte(s>>8))
	}
	a.ringBuffer.Write(a.byteBuf)
}

// BufferLevel reports total bytes queued between the ring buffer and
// oto's internal buffer.
func (a *AudioPlayer) BufferLevel() int {
	return a.ringBuffer.Buffered() + a.player.BufferedSize()
}

func (a *AudioPlayer) Close() {
	if a.ringBuffer != nil {
		a.ringBuffer.Close()
	}
	if a.player != nil {
		a.player.Close()
	}
}
