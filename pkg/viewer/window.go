//go:build cgo

package viewer

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Show opens a window displaying img and blocks until it is closed or Escape is pressed
func Show(img *image.RGBA, title string) error {
	if img == nil {
		return errors.New("no image to show")
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scale := windowScale(w, h)

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	return ebiten.RunGame(&imageGame{img: img})
}

type imageGame struct {
	img   *image.RGBA
	ebImg *ebiten.Image
}

func (g *imageGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *imageGame) Draw(screen *ebiten.Image) {
	if g.ebImg == nil {
		g.ebImg = ebiten.NewImageFromImage(g.img)
	}
	screen.DrawImage(g.ebImg, nil)
}

func (g *imageGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.img.Bounds().Dx(), g.img.Bounds().Dy()
}
