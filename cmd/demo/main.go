// Command demo renders a styled cell grid through a buffered full-color
// backend and, when stdout is a terminal, presents the framebuffer as a
// sixel image. It stands in for the hardware bring-up an embedded target
// would do
package main

import (
	"flag"
	"image"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-sixel"
	"golang.org/x/exp/slog"
	"golang.org/x/term"

	"git.sr.ht/~rockorager/pixelterm"
	"git.sr.ht/~rockorager/pixelterm/pixel"
	"git.sr.ht/~rockorager/pixelterm/pixelfont"
)

func main() {
	themeName := flag.String("theme", "ansi", "color theme: ansi or tokyo-night")
	width := flag.Int("width", 280, "display width in pixels")
	height := flag.Int("height", 130, "display height in pixels")
	flag.Parse()

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "15:04:05.000",
	})
	log := slog.New(handler)

	theme := pixelterm.ThemeANSI()
	if *themeName == "tokyo-night" {
		theme = pixelterm.ThemeTokyoNight()
	}

	model := pixel.RGBModel{}
	// the framebuffer doubles as a mock display panel
	display := pixelterm.NewFrameBuffer[pixel.RGB](image.Rect(0, 0, *width, *height), model)

	presented := 0
	backend, err := pixelterm.New[pixel.RGB](display, model, pixelterm.Config[pixel.RGB]{
		FontRegular:         pixelfont.Basic[pixel.RGB](model),
		HorizontalAlignment: pixelterm.AlignCenter,
		VerticalAlignment:   pixelterm.AlignCenter,
		Theme:               &theme,
		Cursor: pixelterm.CursorConfig{
			Style: pixelterm.CursorOutline,
			Color: pixel.NewRGB(255, 255, 255),
		},
		OnFlush: func(pixel.Surface[pixel.RGB]) {
			presented += 1
		},
		Logger: log,
	})
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	if err := backend.Clear(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	updates := pixelterm.CellsForString(1, 1, "pixelterm", pixelterm.ColorLightCyan, pixelterm.ColorDefault, pixelterm.AttrBold)
	updates = append(updates, pixelterm.CellsForString(1, 3, "red green yellow", pixelterm.ColorRed, pixelterm.ColorDefault, pixelterm.AttrNone)...)
	updates = append(updates, pixelterm.CellsForString(1, 4, "reverse", pixelterm.ColorDefault, pixelterm.ColorDefault, pixelterm.AttrReverse)...)
	updates = append(updates, pixelterm.CellsForString(1, 5, "underline", pixelterm.ColorGreen, pixelterm.ColorDefault, pixelterm.AttrUnderline)...)
	updates = append(updates, pixelterm.CellsForString(1, 6, "struck", pixelterm.ColorYellow, pixelterm.ColorDefault, pixelterm.AttrStrikethrough)...)
	updates = append(updates, pixelterm.CellsForString(1, 7, "dim", pixelterm.ColorWhite, pixelterm.ColorDefault, pixelterm.AttrDim)...)
	if err := backend.Draw(updates); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}

	backend.SetCursorPosition(11, 1)
	backend.ShowCursor()

	if err := backend.Flush(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	log.Debug("frame presented", "flushes", presented)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Warn("stdout is not a terminal, skipping sixel output")
		return
	}
	if err := sixel.NewEncoder(os.Stdout).Encode(display); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
