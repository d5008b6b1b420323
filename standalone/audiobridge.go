package standalone

import "sync"

// sampleSink is the consumer side of the bridge. *AudioPlayer is the
// real implementation.
type sampleSink interface {
	QueueSamples(samples []int16)
}

// AudioBridge carries one audio batch at a time from the stepping
// goroutine to the playback sink. Submit blocks while the consumer
// still holds the previous batch, so the producer can never race ahead
// of playback by more than one hand-off. With a nil sink the bridge
// accepts and discards everything.
type AudioBridge struct {
	sink sampleSink
	ch   chan []int16

	closeOnce sync.Once
	quit      chan struct{}
	done      chan struct{}
}

func NewAudioBridge(sink sampleSink) *AudioBridge {
	b := &AudioBridge{
		sink: sink,
		ch:   make(chan []int16, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go b.consume()
	return b
}

func (b *AudioBridge) consume() {
	defer close(b.done)
	for {
		select {
		case batch := <-b.ch:
			if b.sink != nil {
				b.sink.QueueSamples(batch)
			}
		case <-b.quit:
			return
		}
	}
}

// Submit hands a batch to the consumer. The caller must not reuse the
// slice afterward. Submit after Close is a no-op.
func (b *AudioBridge) Submit(batch []int16) {
	if len(batch) == 0 {
		return
	}
	select {
	case b.ch <- batch:
	case <-b.quit:
	}
}

// Close stops the consumer; a batch in flight may go unplayed.
func (b *AudioBridge) Close() {
	b.closeOnce.Do(func() { close(b.quit) })
	<-b.done
}
