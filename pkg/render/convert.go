package render

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// ErrConverterMissing indicates the rsvg-convert binary was not found on PATH.
var ErrConverterMissing = errors.New("rsvg-convert not found (install librsvg)")

// ToPDF converts SVG bytes to PDF using rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "--format=pdf")
}

// ToPNG converts SVG bytes to PNG using rsvg-convert. The scale factor
// multiplies the SVG's intrinsic dimensions; 2.0 produces a 2x resolution
// image suitable for high-DPI displays.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1.0
	}
	return convert(svg, "--format=png", "--zoom="+strconv.FormatFloat(scale, 'f', -1, 64))
}

func convert(svg []byte, args ...string) ([]byte, error) {
	bin, err := exec.LookPath("rsvg-convert")
	if err != nil {
		return nil, ErrConverterMissing
	}

	cmd := exec.Command(bin, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := stderr.String(); msg != "" {
			return nil, fmt.Errorf("rsvg-convert: %s: %w", msg, err)
		}
		return nil, fmt.Errorf("rsvg-convert: %w", err)
	}
	return out.Bytes(), nil
}
