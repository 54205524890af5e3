package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"

	"github.com/younwookim/framekit/internal/application/game"
	"github.com/younwookim/framekit/internal/application/replay"
	"github.com/younwookim/framekit/internal/infrastructure/config"
	"github.com/younwookim/framekit/internal/infrastructure/host"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load game.json from this directory instead of the embedded copy")
	showFPS := flag.Bool("fps", false, "Show the FPS overlay regardless of config")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back input from a recording")
	debug := flag.Bool("debug", false, "Log resize and projection events")
	flag.Parse()

	// Load configuration, embedded by default
	var loader *config.Loader
	if *configDir != "" {
		loader = config.NewLoader(*configDir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			log.Fatalf("Failed to get config subfs: %v", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loopCfg := cfg.ToLoopConfig()
	loopCfg.Resources = configFS
	if *showFPS {
		loopCfg.ShowFPS = true
	}

	opts := host.Options{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Resizable:  cfg.Window.Resizable,
		Fullscreen: cfg.Window.Fullscreen,
		TPS:        cfg.TPS,
		Debug:      *debug,
	}
	if *replayFlag != "" {
		data, err := replay.LoadFile(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		rp := replay.NewReplayer(*data)
		if rp.TPS() > 0 {
			opts.TPS = rp.TPS()
		}
		opts.Replay = rp
		log.Printf("Replaying %s (%d frames)", *replayFlag, rp.TotalFrames())
	}

	window := host.NewWindow(opts)
	loop, err := game.New(window, loopCfg, &demo{})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	window.Bind(loop)

	var recorder *replay.Recorder
	if *recordFlag != "" {
		recorder = replay.NewRecorder(opts.TPS, loopCfg.VirtualWidth, loopCfg.VirtualHeight)
		window.Attach(recorder)
		log.Printf("Recording enabled: %s", *recordFlag)
	}

	// Run game
	if err := window.Run(); err != nil {
		log.Fatal(err)
	}

	if recorder != nil {
		recorder.Stop()
		if err := recorder.SaveFile(*recordFlag); err != nil {
			log.Fatalf("Failed to save replay: %v", err)
		}
		log.Printf("Saved %d frames to %s", recorder.FrameCount(), *recordFlag)
	}
}
