package standalone

import (
	"testing"
	"time"

	"github.com/RetroGameDeveloper/rustro-arch/libretro"
)

func TestSharedPadRoundTrip(t *testing.T) {
	var pad SharedPad
	var buttons [libretro.JoypadButtons]int16
	buttons[libretro.JoypadA] = 1
	buttons[libretro.JoypadStart] = 1
	pad.Set(buttons)

	got := pad.Read()
	if got != buttons {
		t.Errorf("Read = %v, want %v", got, buttons)
	}
}

func TestSharedFramePublishSnapshot(t *testing.T) {
	var f SharedFrame

	// 2x2 frame with a 3-pixel stride (one padding pixel per row).
	pixels := []uint32{
		0x00FF0000, 0x0000FF00, 0xdead,
		0x000000FF, 0x00FFFFFF, 0xbeef,
	}
	f.Publish(pixels, 2, 2, 3)

	rgba, w, h := f.Snapshot()
	if w != 2 || h != 2 {
		t.Fatalf("geometry = %dx%d, want 2x2", w, h)
	}
	if len(rgba) != 2*2*4 {
		t.Fatalf("len = %d, want 16", len(rgba))
	}
	want := []byte{
		0xff, 0, 0, 0xff, 0, 0xff, 0, 0xff,
		0, 0, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}
	for i := range want {
		if rgba[i] != want[i] {
			t.Fatalf("byte %d = %#02x, want %#02x", i, rgba[i], want[i])
		}
	}
}

func TestSharedFrameShortBufferPadsWithFill(t *testing.T) {
	var f SharedFrame
	// Only 2 of 4 pixels provided for a 2x2 frame.
	f.Publish([]uint32{0x00101010, 0x00202020}, 2, 2, 2)

	rgba, _, _ := f.Snapshot()
	// Third pixel comes from the buffer's end padding.
	r, g, b := rgba[8], rgba[9], rgba[10]
	if r != byte(fillColor>>16) || g != byte(fillColor>>8) || b != byte(fillColor&0xff) {
		t.Errorf("padding pixel = %02x%02x%02x, want fill color", r, g, b)
	}
}

func TestSharedFrameSnapshotBeforePublish(t *testing.T) {
	var f SharedFrame
	if px, w, h := f.Snapshot(); px != nil || w != 0 || h != 0 {
		t.Errorf("Snapshot before any Publish = %v, %d, %d", px, w, h)
	}
}

func TestEmuControlPauseResume(t *testing.T) {
	ec := NewEmuControl()

	stepped := make(chan struct{}, 64)
	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for ec.CheckPause() {
			stepped <- struct{}{}
			time.Sleep(time.Millisecond)
		}
	}()

	<-stepped
	ec.RequestPause() // returns only once the stepper acknowledged

	// Drain anything stepped before the ack; nothing new should arrive.
	for len(stepped) > 0 {
		<-stepped
	}
	select {
	case <-stepped:
		t.Fatal("stepper advanced while paused")
	case <-time.After(30 * time.Millisecond):
	}

	ec.RequestResume()
	select {
	case <-stepped:
	case <-time.After(time.Second):
		t.Fatal("stepper did not resume")
	}

	ec.Stop()
	select {
	case <-quit:
	case <-time.After(time.Second):
		t.Fatal("stepper did not stop")
	}
}

func TestEmuControlStopWhilePaused(t *testing.T) {
	ec := NewEmuControl()
	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for ec.CheckPause() {
		}
	}()

	ec.RequestPause()
	ec.Stop()
	select {
	case <-quit:
	case <-time.After(time.Second):
		t.Fatal("paused stepper did not exit on Stop")
	}
}

func TestEmuControlPauseAfterStop(t *testing.T) {
	ec := NewEmuControl()
	ec.Stop()
	ec.RequestPause() // must not block
	if !ec.Stopped() {
		t.Error("Stopped() = false after Stop")
	}
}
