package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"uxngo/varvara"
)

// buttonKeys maps each Varvara button bit (§4.F) to the ebiten key
// that drives it, in the same order and the same poll-by-index idiom
// gintendo's console/controller.go uses for the NES pad.
var buttonKeys = []struct {
	bit byte
	key ebiten.Key
}{
	{varvara.ButtonA, ebiten.KeyA},
	{varvara.ButtonB, ebiten.KeyB},
	{varvara.ButtonSelect, ebiten.KeySpace},
	{varvara.ButtonStart, ebiten.KeyEnter},
	{varvara.ButtonUp, ebiten.KeyUp},
	{varvara.ButtonDown, ebiten.KeyDown},
	{varvara.ButtonLeft, ebiten.KeyLeft},
	{varvara.ButtonRight, ebiten.KeyRight},
}

// pollButtons reads the current ebiten key state into a Varvara
// button bitmask.
func pollButtons() byte {
	var mask byte
	for _, bk := range buttonKeys {
		if ebiten.IsKeyPressed(bk.key) {
			mask |= bk.bit
		}
	}
	return mask
}

// pollKey returns the first ASCII character typed this frame, or 0 if
// none was typed (or the first is not ASCII). Later characters of the
// same frame are dropped; Varvara's key port holds one byte at a time.
func pollKey() byte {
	chars := ebiten.AppendInputChars(nil)
	if len(chars) == 0 {
		return 0
	}
	r := chars[0]
	if r > 0x7F {
		return 0
	}
	return byte(r)
}
