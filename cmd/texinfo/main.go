// Command texinfo prints the registry entry, backend bindings and mip-chain
// footprint of a texture format.
//
// Usage:
//
//	texinfo -format bc7-rgba-unorm -width 1000 -height 700
//	texinfo -format etc2-rgba8unorm -image albedo.png -levels 4
//	texinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/texfmt"
)

func main() {
	var (
		format  = flag.String("format", texfmt.RGBA8Unorm, "canonical format identifier")
		width   = flag.Int("width", 256, "base texture width")
		height  = flag.Int("height", 256, "base texture height")
		imgPath = flag.String("image", "", "read the base extent from an image header (png, jpeg, bmp, tiff, webp)")
		levels  = flag.Int("levels", 0, "mip levels to report (0 = full chain)")
		list    = flag.Bool("list", false, "list all registered formats")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		texfmt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	p := message.NewPrinter(language.English)

	if *list {
		if err := listFormats(p, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	w, h := *width, *height
	if *imgPath != "" {
		var err error
		w, h, err = imageExtent(*imgPath)
		if err != nil {
			log.Fatalf("Failed to read image: %v", err)
		}
	}

	if err := describe(p, os.Stdout, *format, w, h, *levels); err != nil {
		log.Fatal(err)
	}
}

// imageExtent decodes only the image header.
func imageExtent(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

func listFormats(p *message.Printer, out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	p.Fprintf(tw, "FORMAT\tKIND\tLEGACY\tMIPMAPS\n")
	for _, id := range texfmt.Formats() {
		d := texfmt.MustLookup(id)
		kind := p.Sprintf("%d B/texel", d.BytesPerTexel())
		if c := d.Compressed; c != nil {
			kind = p.Sprintf("%dx%d block, %d B", c.BlockWidth, c.BlockHeight, c.BlockBytes)
		}
		legacy := "-"
		if b, err := texfmt.ResolveDescriptor(d, texfmt.BackendLegacy); err == nil {
			legacy = b.SizedInternalFormat.String()
		}
		p.Fprintf(tw, "%s\t%s\t%s\t%t\n", id, kind, legacy, d.CanGenerateMipmaps)
	}
	return tw.Flush()
}

func describe(p *message.Printer, out io.Writer, id string, width, height, levels int) error {
	d, err := texfmt.Lookup(id)
	if err != nil {
		return err
	}

	p.Fprintf(out, "format:   %s\n", d.ID)
	if c := d.Compressed; c != nil {
		p.Fprintf(out, "encoding: %dx%d blocks of %d bytes (%d bpp)\n", c.BlockWidth, c.BlockHeight, c.BlockBytes, c.BitsPerPixel)
	} else {
		p.Fprintf(out, "encoding: %d bytes per texel\n", d.BytesPerTexel())
	}
	p.Fprintf(out, "mipmaps:  runtime generation %s\n", map[bool]string{true: "allowed", false: "not allowed"}[d.CanGenerateMipmaps])

	legacy, err := texfmt.ResolveDescriptor(d, texfmt.BackendLegacy)
	switch {
	case errors.Is(err, texfmt.ErrUnsupportedOnBackend):
		p.Fprintf(out, "legacy:   unsupported, substitute another format\n")
	case err != nil:
		return err
	case legacy.Compressed:
		p.Fprintf(out, "legacy:   %s texStorage=%t\n", legacy.SizedInternalFormat, legacy.TexStorage)
	default:
		p.Fprintf(out, "legacy:   %s / %s -> %s\n", legacy.UploadFormat, legacy.UploadType, legacy.SizedInternalFormat)
	}

	modern, err := texfmt.ResolveDescriptor(d, texfmt.BackendModern)
	if err != nil {
		return err
	}
	p.Fprintf(out, "modern:   %s\n", modern.Token)

	chain, err := texfmt.MipChain(d, width, height, levels)
	if err != nil {
		return err
	}
	p.Fprintf(out, "\nextent %dx%d, %d of %d levels\n", width, height, len(chain), texfmt.MipLevelCount(width, height))

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	p.Fprintf(tw, "level\textent\tpadded\trow bytes\trows\tbytes\t\n")
	for level, f := range chain {
		p.Fprintf(tw, "%d\t%dx%d\t%dx%d\t%d\t%d\t%d\t\n",
			level, f.Width, f.Height, f.PaddedWidth, f.PaddedHeight, f.RowBytes, f.Rows, f.TotalBytes)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	p.Fprintf(out, "total: %d bytes\n", texfmt.ChainBytes(chain))
	return nil
}
