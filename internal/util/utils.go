package util

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// DirExists checks if a directory exists
func DirExists(dirname string) bool {
	info, err := os.Stat(dirname)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CreateDirIfNotExist creates a directory if it doesn't exist
func CreateDirIfNotExist(dir string) error {
	if DirExists(dir) {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// TimestampedName builds "<prefix>_<yyyymmdd-hhmmss.mmm><ext>"
func TimestampedName(prefix, ext string, at time.Time) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("%s_%s%s", prefix, at.Format("20060102-150405.000"), ext)
}

// RollingAverage keeps the mean of the last N samples
type RollingAverage struct {
	samples []float64
	next    int
	full    bool
	sum     float64
}

// NewRollingAverage creates a window of the given size (at least 1)
func NewRollingAverage(windowSize int) *RollingAverage {
	if windowSize < 1 {
		windowSize = 1
	}
	return &RollingAverage{samples: make([]float64, windowSize)}
}

// Add pushes a sample, evicting the oldest once the window is full
func (r *RollingAverage) Add(v float64) {
	r.sum += v - r.samples[r.next]
	r.samples[r.next] = v
	r.next++
	if r.next == len(r.samples) {
		r.next = 0
		r.full = true
	}
}

// Count returns the number of samples in the window
func (r *RollingAverage) Count() int {
	if r.full {
		return len(r.samples)
	}
	return r.next
}

// Mean returns the window average, 0 when empty
func (r *RollingAverage) Mean() float64 {
	n := r.Count()
	if n == 0 {
		return 0
	}
	return r.sum / float64(n)
}
