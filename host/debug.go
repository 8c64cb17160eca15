package host

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"uxngo/varvara"
)

func fixedPoint(x, y int) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
}

// DrawHUD renders text into the top-left corner of fb using a fixed
// bitmap font, for the optional debug overlay (§10.1/§11). It draws
// directly onto the background plane so it composites under any
// foreground sprites, matching how the rest of the background plane
// is painted.
func DrawHUD(fb *varvara.Framebuffer, text string) {
	d := &font.Drawer{
		Dst:  fb,
		Src:  image.NewUniform(color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}),
		Face: basicfont.Face7x13,
		Dot:  fixedPoint(4, 12),
	}
	d.DrawString(text)
}
