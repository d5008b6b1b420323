package main

import (
	"flag"
	"log"
	"os"

	"github.com/sqweek/dialog"

	"github.com/RetroGameDeveloper/rustro-arch/config"
	"github.com/RetroGameDeveloper/rustro-arch/libretro"
	"github.com/RetroGameDeveloper/rustro-arch/romloader"
	"github.com/RetroGameDeveloper/rustro-arch/standalone"
)

func main() {
	corePath := flag.String("L", "", "path to the libretro core (.so/.dll/.dylib)")
	flag.Parse()

	if *corePath == "" {
		log.Fatalf("no core given; use -L <core path>")
	}

	romPath := flag.Arg(0)
	if romPath == "" {
		picked, err := dialog.File().Title("Select a ROM").Load()
		if err != nil {
			log.Fatalf("no ROM given and no file picked: %v", err)
		}
		romPath = picked
	}

	cfg := config.Load()

	// Core options (GET_VARIABLE) answer from the merged config map.
	session := libretro.NewSession(romPath, *corePath, map[string]string(cfg))
	core, err := libretro.Load(*corePath, session)
	if err != nil {
		log.Fatalf("load core %s: %v", *corePath, err)
	}

	info := core.SystemInfo()
	log.Printf("core: %s %s (extensions %v)", info.LibraryName, info.LibraryVersion, info.ValidExtensions)

	sysDir := cfg.Get("system_directory", "./system")
	core.SetDirectories(sysDir, sysDir, "rustro-arch")

	data, name, err := romloader.Load(romPath, info.ValidExtensions)
	if err != nil {
		log.Fatalf("load ROM %s: %v", romPath, err)
	}
	log.Printf("loaded %s (%d bytes)", name, len(data))

	if err := core.LoadGame(romPath, data); err != nil {
		log.Fatalf("core rejected content: %v", err)
	}

	av := core.AVInfo()
	log.Printf("geometry %dx%d, %.2f fps, %.0f Hz audio", av.BaseWidth, av.BaseHeight, av.FPS, av.SampleRate)

	if err := standalone.Run(core, session, cfg); err != nil {
		log.Printf("frontend: %v", err)
		os.Exit(1)
	}
}
