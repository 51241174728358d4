package plot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fuelstat/internal/analysis"
	"fuelstat/pkg/log"

	"go.uber.org/zap"
)

// ErrInsufficientData is returned when a chart would have too few points.
var ErrInsufficientData = errors.New("not enough data to draw chart")

const (
	FileYearly        = "yearly_averages.png"
	FileBest          = "best_mpg.png"
	FileWorst         = "worst_mpg.png"
	FileLeastEmission = "least_emissions.png"

	DefaultWidth  = 1024
	DefaultHeight = 768
)

type Options struct {
	Width  int
	Height int
}

// Renderer draws report charts as PNG images.
type Renderer struct {
	width  int
	height int
}

func NewRenderer(opts Options) *Renderer {
	r := &Renderer{width: opts.Width, height: opts.Height}
	if r.width <= 0 {
		r.width = DefaultWidth
	}
	if r.height <= 0 {
		r.height = DefaultHeight
	}
	return r
}

// RenderAll writes every chart of the report into dir and returns the paths
// written. Charts without enough data are skipped with a warning.
func (r *Renderer) RenderAll(rep *analysis.Report, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	charts := []struct {
		file string
		draw func(io.Writer, *analysis.Report) error
	}{
		{FileYearly, r.Yearly},
		{FileBest, r.Best},
		{FileWorst, r.Worst},
		{FileLeastEmission, r.LeastEmissions},
	}

	var written []string
	for _, c := range charts {
		var buf bytes.Buffer
		err := c.draw(&buf, rep)
		if errors.Is(err, ErrInsufficientData) {
			log.Warn("Skipping chart", zap.String("chart", c.file), zap.Error(err))
			continue
		}
		if err != nil {
			return written, fmt.Errorf("error while rendering %s: %w", c.file, err)
		}

		path := filepath.Join(dir, c.file)
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		log.Info("Chart written", zap.String("path", path))
		written = append(written, path)
	}
	return written, nil
}
