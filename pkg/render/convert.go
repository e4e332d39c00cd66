package render

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/matzehuels/callirhoe/pkg/errors"
)

// ToPDF converts SVG pages to one PDF, one page per input, using
// rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(pages ...[]byte) ([]byte, error) {
	switch len(pages) {
	case 0:
		return nil, errors.New(errors.ErrCodeInternal, "pdf export: no pages")
	case 1:
		return rsvgConvert(pages[0], "pdf")
	}

	// rsvg-convert reads a single document from stdin, so multi-page
	// output goes through files
	dir, err := os.MkdirTemp("", "callirhoe-pdf-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	args := []string{"-f", "pdf"}
	for i, page := range pages {
		path := filepath.Join(dir, fmt.Sprintf("page_%03d.svg", i+1))
		if err := os.WriteFile(path, page, 0644); err != nil {
			return nil, err
		}
		args = append(args, path)
	}
	return rsvg(nil, "pdf", args...)
}

// rsvgConvert shells out to rsvg-convert for format conversion of a single
// document.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	args := append([]string{"-f", format}, extraArgs...)
	return rsvg(bytes.NewReader(svg), format, args...)
}

func rsvg(stdin *bytes.Reader, format string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath("rsvg-convert"); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	cmd := exec.Command("rsvg-convert", args...)
	if stdin != nil {
		cmd.Stdin = stdin
	}

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}
