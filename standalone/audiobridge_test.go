package standalone

import (
	"sync"
	"testing"
	"time"
)

type collectSink struct {
	mu      sync.Mutex
	batches [][]int16
	block   chan struct{}
}

func (c *collectSink) QueueSamples(samples []int16) {
	if c.block != nil {
		<-c.block
	}
	c.mu.Lock()
	c.batches = append(c.batches, samples)
	c.mu.Unlock()
}

func (c *collectSink) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.batches)
}

func TestAudioBridgeDeliversBatches(t *testing.T) {
	sink := &collectSink{}
	b := NewAudioBridge(sink)

	b.Submit([]int16{1, 2})
	b.Submit([]int16{3, 4})
	b.Close()

	// Close guarantees the consumer exited; everything submitted before
	// the last hand-off completed was delivered.
	if sink.count() < 1 {
		t.Fatalf("delivered %d batches, want at least 1", sink.count())
	}
	sink.mu.Lock()
	defer sink.mu.Unlock()
	if sink.batches[0][0] != 1 || sink.batches[0][1] != 2 {
		t.Errorf("first batch = %v", sink.batches[0])
	}
}

func TestAudioBridgeSubmitBlocksOnBusyConsumer(t *testing.T) {
	sink := &collectSink{block: make(chan struct{})}
	b := NewAudioBridge(sink)
	defer b.Close()
	defer close(sink.block) // unblock the consumer before Close waits on it

	b.Submit([]int16{1, 2}) // consumer takes this and blocks in the sink
	b.Submit([]int16{3, 4}) // parks in the hand-off slot

	third := make(chan struct{})
	go func() {
		b.Submit([]int16{5, 6})
		close(third)
	}()

	select {
	case <-third:
		t.Fatal("third Submit returned while consumer was stalled")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAudioBridgeNilSinkDiscards(t *testing.T) {
	b := NewAudioBridge(nil)
	for i := 0; i < 100; i++ {
		b.Submit([]int16{int16(i)})
	}
	b.Close()
}

func TestAudioBridgeSubmitAfterClose(t *testing.T) {
	b := NewAudioBridge(&collectSink{})
	b.Close()
	b.Submit([]int16{1, 2}) // must not block or panic
}

func TestAudioBridgeEmptyBatchIgnored(t *testing.T) {
	sink := &collectSink{}
	b := NewAudioBridge(sink)
	b.Submit(nil)
	b.Submit([]int16{})
	b.Close()
	if sink.count() != 0 {
		t.Fatalf("empty batches delivered: %d", sink.count())
	}
}
