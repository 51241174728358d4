package csvfile

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"fuelstat/internal/dataset"
	"fuelstat/internal/source"
	"fuelstat/pkg/log"

	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileProvider reads the vehicle table from a CSV file on disk.
type FileProvider struct {
	path string
}

func New(path string) source.Provider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Load(ctx context.Context) (dataframe.DataFrame, error) {
	if err := ctx.Err(); err != nil {
		return dataframe.DataFrame{}, err
	}

	f, err := os.Open(p.path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error while opening vehicle table: %w", err)
	}
	defer f.Close()

	log.Info("Reading vehicle table", zap.String("path", p.path))

	df := Read(f)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error while parsing %s: %w", p.path, df.Err)
	}

	log.Info("Vehicle table loaded",
		zap.String("path", p.path),
		zap.Int("rows", df.Nrow()),
		zap.Int("columns", df.Ncol()))
	return df, nil
}

// Read parses CSV content, skipping a leading UTF-8 byte order mark.
func Read(r io.Reader) dataframe.DataFrame {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}
	return dataframe.ReadCSV(br, dataset.LoadOptions()...)
}
