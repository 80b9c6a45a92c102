// Command skychart renders a planetarium-style star chart in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/skychart/internal/astro"
	"github.com/litescript/skychart/internal/catalog"
	"github.com/litescript/skychart/internal/config"
	"github.com/litescript/skychart/internal/logging"
	"github.com/litescript/skychart/internal/projection"
	"github.com/litescript/skychart/internal/render"
	"github.com/litescript/skychart/internal/surface"
	"github.com/litescript/skychart/internal/ui"
)

// CLI flags for headless mode
var (
	frameMode    bool
	commandsPath string
	widthPx      int
	heightPx     int
	rotationDeg  float64
	refDecDeg    float64
	atTime       string
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	starsPath := flag.String("stars", "", "Path to star catalog JSON (default: embedded)")
	linesPath := flag.String("constellations", "", "Path to constellation catalog JSON (default: embedded)")
	flag.BoolVar(&frameMode, "frame", false, "Render one frame as text and exit")
	flag.StringVar(&commandsPath, "commands-path", "", "Export the frame's draw commands as JSON (use - for stdout)")
	flag.IntVar(&widthPx, "width", 80, "Headless viewport width")
	flag.IntVar(&heightPx, "height", 24, "Headless viewport height")
	flag.Float64Var(&rotationDeg, "rotation", 0, "Sky rotation in degrees (overrides sidereal time)")
	flag.Float64Var(&refDecDeg, "ref-dec", 45, "Reference declination at the chart center, degrees")
	flag.StringVar(&atTime, "at", "", "Compute sidereal rotation for this RFC3339 time instead of now")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	col, err := loadCatalog(cfg, *starsPath, *linesPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("Catalog loaded: %d stars, %d line features, %d vertices",
		len(col.Stars), len(col.Lines), col.VertexCount())

	style := render.Style{
		Opacity:     1,
		StrokeWidth: cfg.Style.StrokeWidth,
		MarkerSize:  cfg.Style.MarkerSize,
		LineColor:   catalog.RGB{R: cfg.Style.LineColor.R, G: cfg.Style.LineColor.G, B: cfg.Style.LineColor.B},
		Visible:     true,
	}

	// Headless modes: no TUI
	if frameMode || commandsPath != "" {
		if err := runHeadless(cfg, col, style); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	grid := surface.NewCellGrid(0, 0)
	opts := []surface.Option{
		surface.WithLogger(logger),
		surface.WithStyle(style),
	}
	if cfg.FPSLimit > 0 {
		opts = append(opts, surface.WithRedrawLimit(cfg.FPSLimit))
	}
	binding := surface.New(grid, col, opts...)
	binding.SetViewState(initialView(cfg, 0, 0))

	model := ui.New(binding, grid, cfg.View.Sidereal, cfg.View.ObserverLonDeg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// initialView builds the starting ViewState from config and flags.
func initialView(cfg *config.Config, width, height int) projection.ViewState {
	rotation := astro.DegToRad(cfg.View.RotationDeg)
	refDec := astro.DegToRad(astro.ClampDec(cfg.View.RefDecDeg))

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["rotation"] {
		rotation = astro.DegToRad(rotationDeg)
	} else if cfg.View.Sidereal {
		t := time.Now()
		if atTime != "" {
			if parsed, err := time.Parse(time.RFC3339, atTime); err == nil {
				t = parsed
			}
		}
		rotation = astro.RotationAt(t, cfg.View.ObserverLonDeg)
	}
	if set["ref-dec"] {
		refDec = astro.DegToRad(astro.ClampDec(refDecDeg))
	}

	return projection.ViewState{
		WidthPx:  width,
		HeightPx: height,
		Rotation: rotation,
		RefDec:   refDec,
		Opacity:  cfg.View.Opacity,
		Visible:  true,
	}
}

// runHeadless renders a single frame without starting the TUI.
func runHeadless(cfg *config.Config, col *catalog.Collection, style render.Style) error {
	view := initialView(cfg, widthPx, heightPx)

	if commandsPath != "" {
		frame := render.ProjectCollection(col, view)
		passStyle := style
		passStyle.Opacity *= view.Opacity
		commands := render.BuildCommands(frame, passStyle)
		export := render.ExportFrame(view, commands)

		if commandsPath == "-" {
			return export.WriteJSON(os.Stdout)
		}
		f, err := os.Create(commandsPath)
		if err != nil {
			return fmt.Errorf("create commands file: %w", err)
		}
		defer f.Close()
		return export.WriteJSON(f)
	}

	grid := surface.NewCellGrid(widthPx, heightPx)
	binding := surface.New(grid, col, surface.WithStyle(style))
	binding.SetViewState(view)

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(grid.String())
	} else {
		fmt.Println(grid.Plain())
	}
	return nil
}

// loadCatalog assembles the collection from external files when configured,
// falling back to the embedded defaults.
func loadCatalog(cfg *config.Config, starsFlag, linesFlag string, logger *logging.Logger) (*catalog.Collection, error) {
	col := catalog.Default()

	starsPath := cfg.Catalog.StarsPath
	if starsFlag != "" {
		starsPath = starsFlag
	}
	linesPath := cfg.Catalog.ConstellationsPath
	if linesFlag != "" {
		linesPath = linesFlag
	}

	if starsPath != "" {
		stars, err := catalog.LoadStars(starsPath)
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded %d stars from %s", len(stars), starsPath)
		col.Stars = stars
	}
	if linesPath != "" {
		lines, err := catalog.LoadLines(linesPath)
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded %d constellation features from %s", len(lines), linesPath)
		col.Lines = lines
	}

	return col, nil
}
