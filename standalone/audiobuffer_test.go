package standalone

import (
	"bytes"
	"io"
	"sync"
	"testing"
)

func TestAudioRingBufferWriteRead(t *testing.T) {
	rb := NewAudioRingBuffer(16)
	rb.Write([]byte{1, 2, 3, 4, 5})

	if rb.Buffered() != 5 {
		t.Fatalf("Buffered = %d, want 5", rb.Buffered())
	}

	out := make([]byte, 5)
	n, err := rb.Read(out)
	if err != nil || n != 5 {
		t.Fatalf("Read = %d, %v", n, err)
	}
	if !bytes.Equal(out, []byte{1, 2, 3, 4, 5}) {
		t.Fatalf("read %v", out)
	}
}

func TestAudioRingBufferOverflowDropsOldest(t *testing.T) {
	rb := NewAudioRingBuffer(8)
	rb.Write([]byte{1, 2, 3, 4, 5, 6})
	rb.Write([]byte{7, 8, 9, 10, 11})

	if rb.Buffered() != 8 {
		t.Fatalf("Buffered = %d, want 8", rb.Buffered())
	}
	out := make([]byte, 8)
	rb.Read(out)
	if !bytes.Equal(out, []byte{4, 5, 6, 7, 8, 9, 10, 11}) {
		t.Fatalf("read %v, want newest 8 bytes", out)
	}
}

func TestAudioRingBufferWriteLargerThanCapacity(t *testing.T) {
	rb := NewAudioRingBuffer(4)
	rb.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	if rb.Buffered() != 4 {
		t.Fatalf("Buffered = %d, want 4", rb.Buffered())
	}
	out := make([]byte, 4)
	rb.Read(out)
	if !bytes.Equal(out, []byte{5, 6, 7, 8}) {
		t.Fatalf("read %v, want last 4 bytes", out)
	}
}

func TestAudioRingBufferWrapAround(t *testing.T) {
	rb := NewAudioRingBuffer(8)
	rb.Write([]byte{1, 2, 3, 4, 5, 6})
	out := make([]byte, 4)
	rb.Read(out)
	rb.Write([]byte{7, 8, 9, 10, 11})

	if rb.Buffered() != 7 {
		t.Fatalf("Buffered = %d, want 7", rb.Buffered())
	}
	out = make([]byte, 7)
	n, _ := rb.Read(out)
	if n != 7 || !bytes.Equal(out, []byte{5, 6, 7, 8, 9, 10, 11}) {
		t.Fatalf("read %d bytes %v", n, out)
	}
}

func TestAudioRingBufferPartialRead(t *testing.T) {
	rb := NewAudioRingBuffer(16)
	rb.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	out := make([]byte, 3)
	n, err := rb.Read(out)
	if err != nil || n != 3 {
		t.Fatalf("Read = %d, %v", n, err)
	}
	if rb.Buffered() != 5 {
		t.Fatalf("Buffered = %d, want 5", rb.Buffered())
	}
}

func TestAudioRingBufferClear(t *testing.T) {
	rb := NewAudioRingBuffer(16)
	rb.Write([]byte{1, 2, 3, 4})
	rb.Clear()
	if rb.Buffered() != 0 {
		t.Fatalf("Buffered = %d after Clear", rb.Buffered())
	}
}

func TestAudioRingBufferCloseDrainsThenEOF(t *testing.T) {
	rb := NewAudioRingBuffer(16)
	rb.Write([]byte{1, 2})
	rb.Close()

	out := make([]byte, 2)
	n, err := rb.Read(out)
	if err != nil || n != 2 {
		t.Fatalf("Read after Close = %d, %v, want remaining data", n, err)
	}
	if _, err := rb.Read(out); err != io.EOF {
		t.Fatalf("err = %v, want io.EOF once drained", err)
	}
}

func TestAudioRingBufferCloseUnblocksReader(t *testing.T) {
	rb := NewAudioRingBuffer(16)

	done := make(chan error, 1)
	go func() {
		buf := make([]byte, 4)
		_, err := rb.Read(buf)
		done <- err
	}()

	rb.Close()
	if err := <-done; err != io.EOF {
		t.Fatalf("blocked reader got %v, want io.EOF", err)
	}
}

func TestAudioRingBufferWriteAfterClose(t *testing.T) {
	rb := NewAudioRingBuffer(16)
	rb.Close()
	rb.Write([]byte{1, 2, 3})
	if rb.Buffered() != 0 {
		t.Fatalf("Buffered = %d after write to closed buffer", rb.Buffered())
	}
}

func TestAudioRingBufferConcurrent(t *testing.T) {
	rb := NewAudioRingBuffer(1024)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		chunk := make([]byte, 100)
		for i := 0; i < 100; i++ {
			rb.Write(chunk)
		}
		rb.Close()
	}()

	received := 0
	go func() {
		defer wg.Done()
		buf := make([]byte, 64)
		for {
			n, err := rb.Read(buf)
			received += n
			if err == io.EOF {
				return
			}
		}
	}()
	wg.Wait()

	if received == 0 {
		t.Fatal("reader received nothing")
	}
	if received > 100*100 {
		t.Fatalf("received %d bytes, more than written", received)
	}
}
