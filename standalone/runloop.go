package standalone

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/RetroGameDeveloper/rustro-arch/config"
	"github.com/RetroGameDeveloper/rustro-arch/libretro"
)

// Run drives a loaded core until the window closes, Escape is pressed
// or the core requests shutdown. It owns the window, the audio
// pipeline and the stepping goroutine.
func Run(core *libretro.Core, session *libretro.Session, cfg config.Config) error {
	av := core.AVInfo()
	if av.FPS <= 0 {
		av.FPS = 60
	}

	var player *AudioPlayer
	if cfg.Bool("audio_enable", true) && av.SampleRate > 0 {
		p, err := NewAudioPlayer(int(av.SampleRate))
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			player = p
		}
	}

	app := &App{
		core:          core,
		session:       session,
		av:            av,
		romPath:       session.ROMPath,
		stateDir:      cfg.Get("savestate_directory", "./states"),
		screenshotDir: cfg.Get("screenshot_directory", "./screenshots"),
		keymap:        BuildKeymap(cfg),
		keys: hotkeys{
			reset:        hotkeyFromConfig(cfg, "input_reset", "h"),
			saveState:    hotkeyFromConfig(cfg, "input_save_state", "f2"),
			loadState:    hotkeyFromConfig(cfg, "input_load_state", "f4"),
			screenshot:   hotkeyFromConfig(cfg, "input_screenshot", "f8"),
			slotIncrease: hotkeyFromConfig(cfg, "input_state_slot_increase", "f7"),
			slotDecrease: hotkeyFromConfig(cfg, "input_state_slot_decrease", "f6"),
		},
		pad:      &SharedPad{},
		frame:    &SharedFrame{},
		control:  NewEmuControl(),
		bridge:   nil,
		renderer: NewFrameRenderer(),
		done:     make(chan struct{}),
		fpsMark:  time.Now(),
	}
	if player != nil {
		app.bridge = NewAudioBridge(player)
	} else {
		app.bridge = NewAudioBridge(nil)
	}

	ebiten.SetWindowTitle("RustroArch")
	ebiten.SetWindowSize(av.BaseWidth*2, av.BaseHeight*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	go app.stepLoop(player)

	err := ebiten.RunGame(app)

	app.control.Stop()
	<-app.done
	app.bridge.Close()
	if player != nil {
		player.Close()
	}
	core.Close()

	if err != nil && err != ebiten.Termination {
		return fmt.Errorf("run loop: %w", err)
	}
	return nil
}

// stepLoop is the stepping goroutine: the only place the core runs
// frames and the only writer of the session once started. It paces
// itself against wall clock with a correction from the audio buffer
// level, so playback neither starves nor drifts behind.
func (a *App) stepLoop(player *AudioPlayer) {
	defer close(a.done)

	frameTime := time.Duration(float64(time.Second) / a.av.FPS)

	// Buffer thresholds in bytes: stereo 16-bit at the core's rate.
	bytesPerFrame := int(a.av.SampleRate/a.av.FPS) * 4
	minBuffer := 3 * bytesPerFrame
	maxBuffer := 6 * bytesPerFrame

	last := time.Now()
	for a.control.CheckPause() {
		a.session.SetButtons(a.pad.Read())
		a.core.Run()
		a.frames.Add(1)

		if a.session.ShutdownRequested() {
			a.control.Stop()
			return
		}

		if batch := a.session.DrainAudio(); batch != nil {
			a.bridge.Submit(batch)
		}

		if pixels, w, h, stride, ok := a.session.Frame(); ok {
			a.frame.Publish(pixels, w, h, stride)
		}

		sleep := frameTime - time.Since(last)
		if player != nil && bytesPerFrame > 0 {
			level := player.BufferLevel()
			if level < minBuffer {
				sleep = time.Duration(float64(sleep) * 0.9)
			} else if level > maxBuffer {
				sleep = time.Duration(float64(sleep) * 1.1)
			}
		}
		if sleep > time.Millisecond {
			time.Sleep(sleep)
		}
		last = time.Now()
	}
}
