// Command skychart-live renders the sky chart on a raw tcell screen,
// redrawing as the sky turns.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/litescript/skychart/internal/astro"
	"github.com/litescript/skychart/internal/catalog"
	"github.com/litescript/skychart/internal/surface"
)

func main() {
	refDecDeg := flag.Float64("ref-dec", 45, "Reference declination at the chart center, degrees")
	lonDeg := flag.Float64("lon", 0, "Observer longitude for sidereal rotation, degrees east")
	fps := flag.Float64("fps", 30, "Redraw rate cap, frames per second")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	backend := surface.NewScreen(screen)
	opts := []surface.Option{}
	if *fps > 0 {
		opts = append(opts, surface.WithRedrawLimit(*fps))
	}
	binding := surface.New(backend, catalog.Default(), opts...)

	width, height := screen.Size()
	view := binding.ViewState()
	view.WidthPx = width
	view.HeightPx = height
	view.RefDec = astro.DegToRad(astro.ClampDec(*refDecDeg))
	view.Rotation = astro.RotationAt(time.Now(), *lonDeg)
	binding.SetViewState(view)
	screen.Show()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	sidereal := true
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				binding.Resize(w, h)
				screen.Sync()

			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
					return
				case ev.Key() == tcell.KeyLeft:
					sidereal = false
					binding.SetRotation(binding.ViewState().Rotation - astro.DegToRad(2))
				case ev.Key() == tcell.KeyRight:
					sidereal = false
					binding.SetRotation(binding.ViewState().Rotation + astro.DegToRad(2))
				case ev.Key() == tcell.KeyUp:
					adjustRefDec(binding, 2)
				case ev.Key() == tcell.KeyDown:
					adjustRefDec(binding, -2)
				case ev.Rune() == 'v':
					binding.SetVisible(!binding.ViewState().Visible)
				case ev.Rune() == 't':
					sidereal = !sidereal
				}
				screen.Show()
			}

		case <-ticker.C:
			if sidereal {
				binding.SetRotation(astro.RotationAt(time.Now(), *lonDeg))
			} else {
				binding.Redraw()
			}
			screen.Show()
		}
	}
}

func adjustRefDec(binding *surface.Binding, stepDeg float64) {
	dec := astro.RadToDeg(binding.ViewState().RefDec) + stepDeg
	binding.SetRefDec(astro.DegToRad(astro.ClampDec(dec)))
}
