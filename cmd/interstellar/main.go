package main

import (
	"errors"
	"flag"
	"os"
	"runtime"

	"interstellar/internal/logger"
	"interstellar/pkg/config"
	"interstellar/pkg/engine"
	"interstellar/pkg/render"
	"interstellar/pkg/shader"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	bodyName := flag.String("body", "", "Body to show: rocky, gas-giant, ice, accretion-disk, black-hole")
	snapshot := flag.Bool("snapshot", false, "Render one PNG into render.output_dir and exit")
	snapshotTime := flag.Float64("time", 0, "Shading time for -snapshot")
	logLevel := flag.String("log-level", "", "Override log.level (debug, info, warn, error)")
	writeConfig := flag.String("write-config", "", "Write the default configuration to this path and exit")
	flag.Parse()

	log := logger.NewLogger("info")

	if *writeConfig != "" {
		if err := config.SaveConfig(config.DefaultConfig(), *writeConfig); err != nil {
			log.Fatalf("Failed to write configuration: %v", err)
		}
		log.Infof("Wrote default configuration to %s", *writeConfig)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Warnf("No configuration at %s, using defaults", *configPath)
	case err != nil:
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		log.Warnf("%v, using info", err)
	}
	log.SetLevel(cfg.Log.Level)

	if cfg.Log.File != "" {
		fileLog, err := logger.NewMultiLogger(cfg.Log.Level, cfg.Log.File)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer fileLog.Close()
		log = fileLog
	}

	if *bodyName != "" {
		body, err := shader.ParseBody(*bodyName)
		if err != nil {
			log.Fatalf("Invalid -body: %v", err)
		}
		cfg.Render.Body = body
	}

	if *snapshot {
		log.Infof("Rendering %s at t=%.2f (%dx%d)", cfg.Render.Body, *snapshotTime, cfg.Render.Width, cfg.Render.Height)
		img := render.RenderSnapshot(cfg, cfg.Render.Body, float32(*snapshotTime))
		path, err := render.SavePNG(img, cfg.Render.OutputDir, cfg.Render.Body)
		if err != nil {
			log.Fatalf("Failed to save snapshot: %v", err)
		}
		log.Infof("Saved %s", path)
		return
	}

	viewer, err := engine.NewEngine(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize viewer: %v", err)
	}

	log.Info("Viewer initialized: 1-5 bodies, arrows pan, +/- zoom, A/D/W/S spin, space pause, P snapshot, R reset, Esc quit")
	viewer.Run()
}
