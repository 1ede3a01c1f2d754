// Command glassdemo renders lines of text into a texture with the glass
// monospace font renderer and writes the result as PNG or BMP.
//
// Usage:
//
//	glassdemo [-config frame.toml] [-output out.png] [-width N] [-height N] [-v]
//
// The config file is TOML:
//
//	width = 320
//	height = 96
//	output = "frame.bmp"
//	background = "#1e1e2e"
//	foreground = "gold"
//	font = "/usr/share/fonts/TTF/DejaVuSansMono.ttf"
//	size = 14
//	encoding = "cp437"
//
//	[[line]]
//	x = 8
//	y = 8
//	text = "hello"
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/gogpu/glass"
	"github.com/gogpu/glass/atlas"
	"github.com/gogpu/glass/bitmap"
	"github.com/gogpu/glass/text"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML frame description")
		output     = flag.String("output", "", "output file (.png or .bmp), overrides config")
		width      = flag.Int("width", 0, "canvas width, overrides config")
		height     = flag.Int("height", 0, "canvas height, overrides config")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	glass.SetLogger(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.override(*output, *width, *height)
	if err := cfg.validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	canvas, err := render(cfg)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := save(canvas, cfg.Output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	logger.Info("frame saved", "path", cfg.Output, "width", cfg.Width, "height", cfg.Height)
}

// render builds the atlas and font described by cfg and writes every line
// into a fresh canvas.
func render(cfg Config) (*glass.RGBATexture, error) {
	bg, err := bitmap.ParseColor(cfg.Background)
	if err != nil {
		return nil, err
	}
	fg, err := bitmap.ParseColor(cfg.Foreground)
	if err != nil {
		return nil, err
	}
	cm, err := cfg.charmap()
	if err != nil {
		return nil, err
	}

	opts := []atlas.Option{atlas.WithColors(fg, bg)}
	var fontOpts []text.FontOption
	if cm != nil {
		opts = append(opts, atlas.WithEncoding(cm))
		fontOpts = append(fontOpts, text.WithEncoding(cm))
	}

	var (
		atlasTex *glass.RGBATexture
		cw, ch   int
	)
	if cfg.Font == "" {
		atlasTex = atlas.Builtin(opts...)
		cw, ch = atlas.BuiltinCellSize()
	} else {
		data, err := os.ReadFile(cfg.Font) //nolint:gosec // path is user-provided intentionally
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		if cw, ch, err = atlas.TTFCellSize(data, cfg.Size); err != nil {
			return nil, err
		}
		if atlasTex, err = atlas.FromTTF(data, cfg.Size, opts...); err != nil {
			return nil, err
		}
	}

	atlases := glass.NewRegistry[glass.RGBATexture]()
	h := atlases.Insert(atlasTex)
	defer atlases.Release(h)

	font, err := text.NewMonospaceFont(atlases.Weak(h), cw, ch, fontOpts...)
	if err != nil {
		return nil, err
	}

	canvas := glass.NewRGBATexture(cfg.Width, cfg.Height)
	canvas.Bitmap().(*bitmap.RGBA8).Fill(bg)
	for _, line := range cfg.Lines {
		if err := font.WriteString(line.Text, canvas, line.X, line.Y); err != nil {
			return nil, err
		}
	}
	return canvas, nil
}

// save encodes the canvas according to the file extension.
func save(canvas *glass.RGBATexture, path string) error {
	img := canvas.Bitmap().(*bitmap.RGBA8).ToImage()

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return encode(f, img, path)
}

// encode writes img to w in the format named by path's extension.
func encode(w io.Writer, img image.Image, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", "":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}
