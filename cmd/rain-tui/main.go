package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"rainfall/internal/core"
	"rainfall/internal/rain"
	"rainfall/internal/scene"
)

func main() {
	tps := flag.Int("tps", 30, "ticks per second")
	seed := flag.Int64("seed", 1337, "seed for simulation reset")
	scenePath := flag.String("scene", "", "baked scene file (empty = procedural)")
	flag.Parse()

	cfg := rain.DefaultConfig()
	cfg.Seed = *seed
	if *scenePath != "" {
		sc, err := scene.Load(*scenePath)
		if err != nil {
			log.Fatalf("load scene: %v", err)
		}
		cfg.Scene = sc
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()
	screen.Clear()

	cfg.Width, cfg.Height = screen.Size()
	world := rain.NewWithConfig(cfg)
	world.Reset(*seed)

	styles := buildStyles(world)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	fixed := core.NewFixedStep(*tps)
	frame := time.NewTicker(4 * time.Millisecond)
	defer frame.Stop()

	paused := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				switch {
				case e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC || e.Rune() == 'q':
					return
				case e.Rune() == ' ':
					paused = !paused
				case e.Rune() == 'r':
					world.Reset(time.Now().UnixNano())
				}
			case *tcell.EventResize:
				nw, nh := e.Size()
				world.Resize(nw, nh)
				screen.Sync()
			}
		case <-frame.C:
			if paused || !fixed.ShouldStep() {
				continue
			}
			world.Tick()
			draw(screen, world, styles)
		}
	}
}

// buildStyles precomputes a tcell style per frame-buffer value from the
// simulation palette.
func buildStyles(w *rain.World) []tcell.Style {
	palette := w.Palette()
	styles := make([]tcell.Style, len(palette))
	for v, c := range palette {
		styles[v] = tcell.StyleDefault.
			Background(tcell.ColorBlack).
			Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	}
	return styles
}

func draw(screen tcell.Screen, w *rain.World, styles []tcell.Style) {
	cells := w.Frame()
	width, height := w.Width(), w.Height()
	sc := w.Scene()
	backdrop := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.NewRGBColor(40, 44, 52))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := cells[y*width+x]
			if v == 0 || int(v) >= len(styles) {
				screen.SetContent(x, y, backdropGlyph(sc, x, y, width, height), nil, backdrop)
				continue
			}
			kind, _, variant := rain.DecodeCell(v)
			screen.SetContent(x, y, rain.Glyph(kind, variant), nil, styles[v])
		}
	}
	screen.Show()
}

// backdropGlyph shades empty cells by the scene depth underneath so the
// terrain silhouette stays visible between drops.
func backdropGlyph(sc *scene.Scene, x, y, width, height int) rune {
	if sc == nil || width <= 0 || height <= 0 {
		return ' '
	}
	bx := x * sc.W / width
	by := y * sc.H / height
	d := sc.Depth[by*sc.W+bx]
	switch {
	case d <= 30:
		return ' '
	case d < 140:
		return '░'
	default:
		return '▒'
	}
}
