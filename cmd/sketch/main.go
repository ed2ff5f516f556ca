// Command sketch is the desktop frontend for mathpad: a window hosting
// the ink-capture surface. Draw a math problem with the mouse or a
// touchscreen, press S to solve it, C to clear.
//
// The solver needs OPENAI_API_KEY (and optionally OPENAI_BASE_URL,
// SOLVER_MODEL) in the environment or a .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"mathpad/core"
	"mathpad/ink"
	"mathpad/solver"
)

type solveResult struct {
	solution *core.Solution
	err      error
}

// game hosts the ink surface in an ebiten window. It is also the
// surface's ink.Host: the window client area is the container, so the
// bounding-box origin is (0,0) and window resizes feed the surface's
// resize observation.
type game struct {
	surface *ink.Surface
	mouse   *ink.MouseAdapter
	touch   *ink.TouchAdapter
	solver  solver.Solver
	scheme  ink.ColorScheme

	resizeFn      func(width, height int)
	width, height int

	canvas  *ebiten.Image
	scratch *image.RGBA

	touchIDs []ebiten.TouchID
	solving  bool
	results  chan solveResult
	status   string
}

// ObserveResize implements ink.Host. The window delivers the first
// notification on the first update tick.
func (g *game) ObserveResize(fn func(width, height int)) (release func()) {
	g.resizeFn = fn
	return func() { g.resizeFn = nil }
}

// Origin implements ink.Host. The surface fills the window, so
// viewport and surface-local coordinates coincide.
func (g *game) Origin() ink.Point {
	return ink.Point{}
}

// ColorScheme implements ink.Host.
func (g *game) ColorScheme() ink.ColorScheme {
	return g.scheme
}

func (g *game) Update() error {
	if w, h := ebiten.WindowSize(); (w != g.width || h != g.height) && w > 0 && h > 0 {
		g.width, g.height = w, h
		if g.resizeFn != nil {
			g.resizeFn(w, h)
		}
	}

	g.handleInput()

	select {
	case res := <-g.results:
		g.solving = false
		if res.err != nil {
			logrus.WithField("error", res.err).Error("Solve failed")
			g.status = "solve failed: " + res.err.Error()
		} else {
			g.status = formatSolution(res.solution)
		}
	default:
	}

	return nil
}

func (g *game) handleInput() {
	// Mouse.
	cx, cy := ebiten.CursorPosition()
	pos := ink.Pt(float64(cx), float64(cy))
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.mouse.Down(pos)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.mouse.Up()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.mouse.Move(pos)
	}

	// Touch. The adapter keeps only the first contact.
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.touch.Down(int64(id), ink.Pt(float64(x), float64(y)))
	}
	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		g.touch.Up(int64(id))
	}
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.touch.Move(int64(id), ink.Pt(float64(x), float64(y)))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.surface.Clear()
		g.status = ""
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.solve()
	}
}

// solve snapshots the surface synchronously, then hands the encoded
// image to the solver on a background goroutine. Only one solve runs
// at a time.
func (g *game) solve() {
	if g.solving {
		return
	}

	snapshot, err := g.surface.Snapshot()
	if err != nil {
		logrus.WithField("error", err).Error("Snapshot failed")
		g.status = "snapshot failed: " + err.Error()
		return
	}
	if snapshot == nil {
		g.status = "nothing to solve"
		return
	}

	g.solving = true
	g.status = "solving..."
	go func() {
		solution, err := g.solver.Solve(context.Background(), core.Problem{ImagePNG: snapshot})
		g.results <- solveResult{solution: solution, err: err}
	}()
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.scheme == ink.SchemeDark {
		screen.Fill(color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xFF})
	} else {
		screen.Fill(color.RGBA{R: 0xFA, G: 0xFA, B: 0xF7, A: 0xFF})
	}

	g.drawSurface(screen)

	if !g.surface.HasInk() && g.status == "" {
		w, h := g.surface.Size()
		ebitenutil.DebugPrintAt(screen, "Draw a math problem here", w/2-72, h/2-8)
	}
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, 8, 8)
	}
}

// drawSurface blits the surface pixmap. WritePixels wants
// premultiplied RGBA, so the straight-alpha snapshot of the raster is
// converted through a scratch image first.
func (g *game) drawSurface(screen *ebiten.Image) {
	w, h := g.surface.Size()
	if w == 0 || h == 0 {
		return
	}

	if g.canvas == nil || g.canvas.Bounds().Dx() != w || g.canvas.Bounds().Dy() != h {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(w, h)
		g.scratch = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	src := g.surface.Raster()
	for i := range g.scratch.Pix {
		g.scratch.Pix[i] = 0
	}
	draw.Draw(g.scratch, g.scratch.Bounds(), src, image.Point{}, draw.Src)

	g.canvas.WritePixels(g.scratch.Pix)
	screen.DrawImage(g.canvas, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// formatSolution renders a solution for the status line.
func formatSolution(s *core.Solution) string {
	if s.Result == core.ResultError {
		return "could not solve: " + s.Explanation
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s = %s", s.Expression, s.Result)
	if s.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(s.Explanation)
	}
	return b.String()
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	dark := flag.Bool("dark", false, "use the dark presentation mode")
	width := flag.Int("width", 800, "initial window width")
	height := flag.Int("height", 600, "initial window height")
	flag.Parse()

	scheme := ink.SchemeLight
	if *dark {
		scheme = ink.SchemeDark
	}

	g := &game{
		solver:  solver.NewClient(solver.ConfigFromEnv()),
		scheme:  scheme,
		results: make(chan solveResult, 1),
	}
	g.surface = ink.New(g)
	defer g.surface.Close()
	g.mouse = ink.NewMouseAdapter(g.surface)
	g.touch = ink.NewTouchAdapter(g.surface)

	ebiten.SetWindowTitle("mathpad sketch")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		logrus.Fatal(err)
	}
}
