package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"interstellar/internal/util"
	"interstellar/pkg/config"
	"interstellar/pkg/shader"
)

// RenderSnapshot renders a single frame of body at time t with the
// configured camera, without opening a window
func RenderSnapshot(cfg *config.Config, body shader.Body, t float32) *image.RGBA {
	tracer := NewTracer(cfg, NewCamera(cfg.Camera))
	return tracer.RenderFrame(body, t).Image()
}

// SavePNG writes img to <dir>/<body>_<timestamp>.png and returns the path
func SavePNG(img image.Image, dir string, body shader.Body) (string, error) {
	if err := util.CreateDirIfNotExist(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, util.TimestampedName(body.String(), ".png", time.Now()))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create snapshot: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	return path, nil
}
