package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spacehole-rogue/nameinput/internal/input"
	"github.com/spacehole-rogue/nameinput/internal/nameinput"
	"github.com/spacehole-rogue/nameinput/internal/render"
)

// binding maps a naming screen command to the keys that issue it.
type binding struct {
	cmd  nameinput.Command
	keys []ebiten.Key
}

var bindings = []binding{
	{nameinput.CmdUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{nameinput.CmdDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{nameinput.CmdLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{nameinput.CmdRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{nameinput.CmdBack, []ebiten.Key{ebiten.KeyBackspace, ebiten.KeyX}},
	{nameinput.CmdJump, []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight}},
	{nameinput.CmdConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyZ}},
	{nameinput.CmdCancel, []ebiten.Key{ebiten.KeyEscape}},
}

// Game is the Ebitengine game struct. It owns rendering and input.
// All naming state lives in scene.
type Game struct {
	cfg    nameinput.Config
	scene  *nameinput.Scene
	canvas *render.Canvas
}

func NewGame(cfg nameinput.Config, scene *nameinput.Scene, canvas *render.Canvas) *Game {
	return &Game{cfg: cfg, scene: scene, canvas: canvas}
}

// heldFrames returns the longest any of keys has been held.
func heldFrames(keys []ebiten.Key) int {
	held := 0
	for _, k := range keys {
		held = max(held, inpututil.KeyPressDuration(k))
	}
	return held
}

func (g *Game) Update() error {
	for _, b := range bindings {
		in, ok := input.Resolve(b.cmd, heldFrames(b.keys))
		if !ok {
			continue
		}
		if err := g.scene.Handle(in); err != nil {
			return err
		}
	}
	if g.scene.Result() != nameinput.Pending {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Palette[render.ColorBlack])
	g.canvas.Begin(screen)
	g.scene.Draw(g.canvas)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
