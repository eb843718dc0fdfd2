package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pathview/pathview/assets"
	"github.com/pathview/pathview/internal/game"
	"github.com/pathview/pathview/internal/render"
	"github.com/pathview/pathview/internal/route"
	"github.com/pathview/pathview/internal/world"
)

const (
	title = "Interactive Pathfinding"

	statusRows   = 5  // hover, selection, and recent log lines
	logRows      = 3  // log lines shown in the status panel
	minPanelCols = 48 // status panel never narrower than this
	embedPrefix  = "embed:"
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All selection state lives in session.
type Game struct {
	session *game.Session
	painter *render.MapPainter
	text    *render.TextRenderer
	buffer  *render.CellBuffer

	screenW, screenH int
}

func NewGame(grid *world.TerrainGrid, cellSize int, verbose bool) (*Game, error) {
	mapW := grid.Width * cellSize
	mapH := grid.Height * cellSize
	cols := max(mapW/render.GlyphWidth, minPanelCols)

	session, err := game.NewSession(grid, route.NewOracle(grid, verbose), cols-2)
	if err != nil {
		return nil, err
	}

	return &Game{
		session: session,
		painter: render.NewMapPainter(cellSize),
		text:    render.NewTextRenderer(render.NewFontAtlas(), 0, mapH),
		buffer:  render.NewCellBuffer(cols, statusRows),
		screenW: max(mapW, cols*render.GlyphWidth),
		screenH: mapH + statusRows*render.GlyphHeight,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}

	mx, my := ebiten.CursorPosition()
	cell, onMap := g.painter.CellAt(g.session.Grid, mx, my)
	if onMap && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.session.Pick(cell)
	}

	g.drawStatus(cell, onMap)
	return nil
}

func (g *Game) drawStatus(hover world.Coord, onMap bool) {
	buf := g.buffer
	buf.Clear()

	if onMap {
		clr := uint8(render.ColorYellow)
		if !g.session.Pickable(hover) {
			clr = render.ColorDarkGray
		}
		buf.WriteString(1, 0, g.session.Describe(hover), clr, render.ColorBlack)
	} else {
		buf.WriteString(1, 0, "Click: pick  R: reset  ESC: quit", render.ColorDarkGray, render.ColorBlack)
	}

	buf.WriteString(1, 1, g.session.Status(), render.ColorWhite, render.ColorBlack)

	for i, msg := range g.session.Log.Recent(logRows) {
		buf.WriteString(1, 2+i, msg.Text, msgColor(msg.Priority), render.ColorBlack)
	}
}

func msgColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgWarning:
		return render.ColorYellow
	case game.MsgRoute:
		return render.ColorLightGreen
	default:
		return render.ColorLightGray
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.session.Grid, g.session.Overlay)
	g.text.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// loadGrid reads the map named by -map, falling back to the embedded default.
func loadGrid(name string) (*world.TerrainGrid, error) {
	if name == "" {
		name = embedPrefix + path.Base(assets.DefaultMap)
	}
	if !strings.HasPrefix(name, embedPrefix) {
		return world.LoadMapFile(name)
	}

	file := path.Join("maps", strings.TrimPrefix(name, embedPrefix))
	data, err := assets.Maps.ReadFile(file)
	if err != nil {
		return nil, &world.MapLoadError{Source: name, Reason: "no such embedded map", Err: err}
	}
	return world.LoadMapBytes(file, data)
}

func listMaps() error {
	entries, err := fs.ReadDir(assets.Maps, "maps")
	if err != nil {
		return fmt.Errorf("list embedded maps: %w", err)
	}
	for _, e := range entries {
		fmt.Println(embedPrefix + e.Name())
	}
	return nil
}

func main() {
	flag.Parse()

	if *listMapsFlag {
		if err := listMaps(); err != nil {
			log.Fatal(err)
		}
		return
	}
	if *cellFlag < 3 {
		log.Fatalf("cell size %d too small", *cellFlag)
	}

	grid, err := loadGrid(*mapFlag)
	if err != nil {
		log.Fatalf("Failed to read map: %v", err)
	}

	g, err := NewGame(grid, *cellFlag, *verboseFlag)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	ebiten.SetWindowSize(g.screenW, g.screenH)
	ebiten.SetWindowTitle(title)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
