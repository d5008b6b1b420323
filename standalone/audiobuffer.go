package standalone

import (
	"io"
	"sync"
)

// AudioRingBuffer is the byte buffer between the emulation side and
// oto's pull-model player. Writes never block: when the buffer is full
// the oldest bytes are dropped so playback stays near real time. Reads
// block until data arrives or the buffer is closed.
type AudioRingBuffer struct {
	mu      sync.Mutex
	cond    *sync.Cond
	buf     []byte
	readPos int
	count   int
	closed  bool
}

func NewAudioRingBuffer(capacity int) *AudioRingBuffer {
	rb := &AudioRingBuffer{buf: make([]byte, capacity)}
	rb.cond = sync.NewCond(&rb.mu)
	return rb
}

// Write appends p, dropping the oldest buffered bytes on overflow.
// Writes to a closed buffer are discarded.
func (rb *AudioRingBuffer) Write(p []byte) {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	if rb.closed || len(rb.buf) == 0 {
		return
	}

	if len(p) >= len(rb.buf) {
		// Larger than the whole buffer: keep only the newest bytes.
		p = p[len(p)-len(rb.buf):]
		rb.readPos = 0
		rb.count = len(p)
		copy(rb.buf, p)
		rb.cond.Broadcast()
		return
	}

	if excess := rb.count + len(p) - len(rb.buf); excess > 0 {
		rb.readPos = (rb.readPos + excess) % len(rb.buf)
		rb.count -= excess
	}

	writePos := (rb.readPos + rb.count) % len(rb.buf)
	n := copy(rb.buf[writePos:], p)
	if n < len(p) {
		copy(rb.buf, p[n:])
	}
	rb.count += len(p)
	rb.cond.Broadcast()
}

// Read blocks until data is available. After Close it drains what is
// left and then reports io.EOF.
func (rb *AudioRingBuffer) Read(p []byte) (int, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	for rb.count == 0 && !rb.closed {
		rb.cond.Wait()
	}
	if rb.count == 0 {
		return 0, io.EOF
	}

	n := len(p)
	if n > rb.count {
		n = rb.count
	}
	m := copy(p[:n], rb.buf[rb.readPos:])
	if m < n {
		copy(p[m:n], rb.buf)
	}
	rb.readPos = (rb.readPos + n) % len(rb.buf)
	rb.count -= n
	return n, nil
}

// Buffered reports how many bytes are queued.
func (rb *AudioRingBuffer) Buffered() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.count
}

// Clear drops everything queued.
func (rb *AudioRingBuffer) Clear() {
	rb.mu.Lock()
	rb.count = 0
	rb.readPos = 0
	rb.mu.Unlock()
}

// Close marks the buffer finished and unblocks any waiting reader.
func (rb *AudioRingBuffer) Close() {
	rb.mu.Lock()
	rb.closed = true
	rb.cond.Broadcast()
	rb.mu.Unlock()
}
