package standalone

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/RetroGameDeveloper/rustro-arch/config"
	"github.com/RetroGameDeveloper/rustro-arch/libretro"
)

// hotkeys are the frontend-level key bindings resolved from config.
type hotkeys struct {
	reset        ebiten.Key
	saveState    ebiten.Key
	loadState    ebiten.Key
	screenshot   ebiten.Key
	slotIncrease ebiten.Key
	slotDecrease ebiten.Key
}

func hotkeyFromConfig(cfg config.Config, key, fallback string) ebiten.Key {
	name := cfg.Get(key, fallback)
	if k, ok := ParseKey(name); ok {
		return k
	}
	log.Printf("unknown key name %q for %s, using %s", name, key, fallback)
	k, _ := ParseKey(fallback)
	return k
}

// App is the ebiten side of the frontend. It polls input, dispatches
// hotkeys and presents frames; the core itself runs on the stepping
// goroutine (see stepLoop).
type App struct {
	core    *libretro.Core
	session *libretro.Session
	av      libretro.AVInfo

	romPath       string
	stateDir      string
	screenshotDir string

	keymap map[ebiten.Key]int
	keys   hotkeys
	slots  SlotManager

	pad      *SharedPad
	frame    *SharedFrame
	control  *EmuControl
	bridge   *AudioBridge
	renderer *FrameRenderer

	done chan struct{}

	// stepped frame counter for the title readout
	frames    atomic.Uint64
	fpsMark   time.Time
	fpsFrames uint64
}

func (a *App) Update() error {
	if a.control.Stopped() || a.session.ShutdownRequested() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	a.handleHotkeys()
	a.pad.Set(PollButtons(a.keymap))
	a.updateTitle()
	return nil
}

// handleHotkeys dispatches the frontend key bindings. Operations that
// call into the core pause the stepping goroutine first.
func (a *App) handleHotkeys() {
	if inpututil.IsKeyJustPressed(a.keys.reset) {
		a.withPausedCore(func() { a.core.Reset() })
		log.Printf("reset")
	}

	if inpututil.IsKeyJustPressed(a.keys.saveState) {
		a.withPausedCore(func() {
			path, err := a.core.SaveState(a.stateDir, a.romPath, a.slots.Current())
			if err != nil {
				log.Printf("save state: %v", err)
				return
			}
			log.Printf("state saved to %s", path)
		})
	}

	if inpututil.IsKeyJustPressed(a.keys.loadState) {
		a.withPausedCore(func() {
			path, err := a.core.LoadState(a.stateDir, a.romPath, a.slots.Current())
			if err != nil {
				log.Printf("load state: %v", err)
				return
			}
			log.Printf("state loaded from %s", path)
		})
	}

	if inpututil.IsKeyJustPressed(a.keys.slotIncrease) {
		if a.slots.Increase() {
			log.Printf("save slot increased to %d", a.slots.Current())
		}
	}
	if inpututil.IsKeyJustPressed(a.keys.slotDecrease) {
		if a.slots.Decrease() {
			log.Printf("save slot decreased to %d", a.slots.Current())
		}
	}

	if inpututil.IsKeyJustPressed(a.keys.screenshot) {
		rgba, w, h := a.frame.Snapshot()
		path, err := WriteScreenshot(a.screenshotDir, rgba, w, h)
		if err != nil {
			log.Printf("screenshot: %v", err)
		} else {
			log.Printf("screenshot saved to %s", path)
		}
	}
}

// withPausedCore runs fn while the stepping goroutine is parked, since
// core entry points must not be entered concurrently.
func (a *App) withPausedCore(fn func()) {
	a.control.RequestPause()
	if !a.control.Stopped() {
		fn()
	}
	a.control.RequestResume()
}

func (a *App) updateTitle() {
	now := time.Now()
	elapsed := now.Sub(a.fpsMark)
	if elapsed < time.Second {
		return
	}
	stepped := a.frames.Load()
	fps := float64(stepped-a.fpsFrames) / elapsed.Seconds()
	ebiten.SetWindowTitle(fmt.Sprintf("RustroArch (FPS: %.2f)", fps))
	a.fpsMark = now
	a.fpsFrames = stepped
}

func (a *App) Draw(screen *ebiten.Image) {
	rgba, w, h := a.frame.Snapshot()
	if w == 0 {
		return
	}
	a.renderer.Draw(screen, rgba, w, h)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
