package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"icosphere-renderer/internal/mesh"
	"icosphere-renderer/internal/postprocess"
	"icosphere-renderer/internal/raster"
	"icosphere-renderer/internal/scene"
	"icosphere-renderer/internal/viewer"
)

func main() {
	shapeName := flag.String("shape", "icosphere", "Initial shape: icosphere or cube")
	quality := flag.Int("quality", 3, "Initial subdivision depth")
	width := flag.Int("width", 640, "Window width")
	height := flag.Int("height", 480, "Window height")
	flag.Parse()

	shape, err := mesh.ParseShape(*shapeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	sc, err := scene.New(scene.Config{Shape: shape, Quality: *quality, Width: *width, Height: *height})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctl := viewer.NewController(sc)
	defer ctl.Close()

	g := &game{sc: sc, ctl: ctl, width: *width, height: *height, last: time.Now()}
	ebiten.SetWindowTitle("Icosphere (I/C shape, +/- quality, arrows spin, W/S zoom)")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Keys that fire once per press.
var pressKeys = []struct {
	keys   []ebiten.Key
	action viewer.Action
}{
	{[]ebiten.Key{ebiten.KeyI}, viewer.SelectIcosphere},
	{[]ebiten.Key{ebiten.KeyC}, viewer.SelectCube},
	{[]ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}, viewer.QualityUp},
	{[]ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}, viewer.QualityDown},
}

// Keys that repeat while held.
var holdKeys = []struct {
	key    ebiten.Key
	action viewer.Action
}{
	{ebiten.KeyArrowLeft, viewer.SpinLeft},
	{ebiten.KeyArrowRight, viewer.SpinRight},
	{ebiten.KeyArrowUp, viewer.SpinUp},
	{ebiten.KeyArrowDown, viewer.SpinDown},
	{ebiten.KeyW, viewer.ZoomIn},
	{ebiten.KeyS, viewer.ZoomOut},
}

type game struct {
	sc     *scene.Scene
	ctl    *viewer.Controller
	width  int
	height int
	last   time.Time
	fbImg  *ebiten.Image
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, k := range pressKeys {
		for _, key := range k.keys {
			if inpututil.IsKeyJustPressed(key) {
				g.ctl.Apply(k.action)
				break
			}
		}
	}
	for _, k := range holdKeys {
		if ebiten.IsKeyPressed(k.key) {
			if err := g.ctl.Apply(k.action); err != nil {
				return err
			}
		}
	}

	now := time.Now()
	g.sc.Tick(now.Sub(g.last))
	g.last = now
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	img, _ := raster.Render(g.sc.Frame(), raster.Options{
		Width:    g.width,
		Height:   g.height,
		Color:    raster.DefaultColor,
		CullBack: true,
	})
	img = postprocess.Flatten(img, postprocess.ClearColor)

	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(g.width, g.height)
	}
	g.fbImg.WritePixels(img.Pix)
	screen.DrawImage(g.fbImg, nil)
	ebitenutil.DebugPrint(screen, g.ctl.Status())
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
