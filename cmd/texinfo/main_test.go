package main

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/texfmt"
)

func TestDescribeCompressed(t *testing.T) {
	var buf bytes.Buffer
	p := message.NewPrinter(language.English)
	if err := describe(p, &buf, texfmt.BC1RGBUnorm, 64, 64, 4); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"format:   bc1-rgb-unorm",
		"4x4 blocks of 8 bytes",
		"not allowed",
		"COMPRESSED_RGB_S3TC_DXT1_EXT texStorage=true",
		"4 of 7 levels",
		"total: 2,720 bytes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDescribeNoLegacyBinding(t *testing.T) {
	var buf bytes.Buffer
	p := message.NewPrinter(language.English)
	if err := describe(p, &buf, texfmt.BGRA8Unorm, 4, 4, 1); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "legacy:   unsupported") {
		t.Errorf("expected unsupported legacy binding:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "modern:   bgra8unorm") {
		t.Errorf("expected modern token:\n%s", buf.String())
	}
}

func TestDescribeErrors(t *testing.T) {
	p := message.NewPrinter(language.English)
	if err := describe(p, &bytes.Buffer{}, "nope", 4, 4, 0); !errors.Is(err, texfmt.ErrUnknownFormat) {
		t.Errorf("unknown format error = %v", err)
	}
	if err := describe(p, &bytes.Buffer{}, texfmt.RGBA8Unorm, 0, 4, 0); !errors.Is(err, texfmt.ErrInvalidExtent) {
		t.Errorf("invalid extent error = %v", err)
	}
}

func TestListFormats(t *testing.T) {
	var buf bytes.Buffer
	if err := listFormats(message.NewPrinter(language.English), &buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(texfmt.Formats())+1 {
		t.Errorf("got %d lines, want %d", len(lines), len(texfmt.Formats())+1)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWriteFailed }

var errWriteFailed = errors.New("write failed")

func TestListFormatsReportsWriteError(t *testing.T) {
	err := listFormats(message.NewPrinter(language.English), failingWriter{})
	if !errors.Is(err, errWriteFailed) {
		t.Errorf("listFormats error = %v, want %v", err, errWriteFailed)
	}
}

func TestImageExtent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 37, 19))); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	w, h, err := imageExtent(path)
	if err != nil {
		t.Fatal(err)
	}
	if w != 37 || h != 19 {
		t.Errorf("imageExtent = %dx%d, want 37x19", w, h)
	}

	if _, _, err := imageExtent(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("imageExtent of a missing file succeeded")
	}
}
