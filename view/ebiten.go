//go:build ebiten

package view

import (
	"context"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-mesh/model"
)

// meshGame adapts a Simulation to the ebiten.Game interface
type meshGame struct {
	ctx  context.Context
	sim  Simulation
	opts WindowOptions

	src      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newMeshGame(ctx context.Context, sim Simulation, opts WindowOptions) *meshGame {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &meshGame{
		ctx:  ctx,
		sim:  sim,
		opts: opts,
		src:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Update advances the simulation once per tick
func (g *meshGame) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if done(g.sim, g.opts.MaxGenerations) {
		return ebiten.Termination
	}
	g.sim.Advance()
	return nil
}

// Draw uploads the current mesh as triangles
func (g *meshGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{
		R: uint8(background[0] * 255),
		G: uint8(background[1] * 255),
		B: uint8(background[2] * 255),
		A: 0xff,
	})

	mesh := g.sim.EmitMesh()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cells := len(mesh) / model.FloatsPerCell

	for _, b := range batches(cells) {
		g.vertices = g.vertices[:0]
		g.indices = g.indices[:0]
		for i := b[0] * model.VerticesPerCell; i < b[1]*model.VerticesPerCell; i++ {
			x, y := toScreen(mesh[i*model.FloatsPerVertex], mesh[i*model.FloatsPerVertex+1], w, h)
			g.indices = append(g.indices, uint16(len(g.vertices)))
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX: x, DstY: y,
				SrcX: 1, SrcY: 1,
				ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
			})
		}
		screen.DrawTriangles(g.vertices, g.indices, g.src, &ebiten.DrawTrianglesOptions{})
	}
}

// Layout keeps a square logical screen
func (g *meshGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Size, g.opts.Size
}

// RunEbiten opens a window and drives sim at opts.GenerationsPerSecond until
// the window closes, Q/Esc is pressed, ctx is cancelled or the generation
// limit is reached.
func RunEbiten(ctx context.Context, sim Simulation, opts WindowOptions) error {
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Size, opts.Size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.GenerationsPerSecond)

	if err := ebiten.RunGame(newMeshGame(ctx, sim, opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[RunEbiten] game loop failed")
	}
	return nil
}
