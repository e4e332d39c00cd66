package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/callirhoe/pkg/errors"
	"github.com/matzehuels/callirhoe/pkg/render/sink"
)

// Render renders the calendar described by opts to outputPath with caching
// disabled. It returns the paths written.
func Render(ctx context.Context, outputPath string, opts Options) ([]string, error) {
	paths, _, err := NewRunner(nil, nil, opts.Logger).RenderFile(ctx, outputPath, opts)
	return paths, err
}

// FormatOf returns the output format selected by the extension of path.
func FormatOf(path string) (string, error) {
	if err := errors.ValidateOutputPath(path, sink.Formats); err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")), nil
}

// OutputPaths returns the file names for n output files. A single file keeps
// path; several files get a two-digit page suffix before the extension,
// e.g. cal.svg becomes cal_01.svg, cal_02.svg.
func OutputPaths(path string, n int) []string {
	if n == 1 {
		return []string{path}
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	paths := make([]string, n)
	for i := range n {
		paths[i] = fmt.Sprintf("%s_%02d%s", base, i+1, ext)
	}
	return paths
}

// WriteFiles writes files under the names OutputPaths gives for path.
func WriteFiles(path string, files [][]byte) ([]string, error) {
	paths := OutputPaths(path, len(files))
	for i, data := range files {
		if err := os.WriteFile(paths[i], data, 0644); err != nil {
			return paths[:i], fmt.Errorf("write %s: %w", paths[i], err)
		}
	}
	return paths, nil
}
