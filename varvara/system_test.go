package varvara

import "testing"

func TestPaletteNybbleReplication(t *testing.T) {
	sys := &System{redHi: 0x5A, greenHi: 0x0F, blueHi: 0xF0}

	got := sys.Palette(0)
	want := [4]byte{0x55, 0x00, 0xFF, 0xFF}
	if got != want {
		t.Errorf("Palette(0) = %v, want %v", got, want)
	}
}

func TestPaletteHiLoPairing(t *testing.T) {
	sys := &System{redHi: 0xAB, redLo: 0xCD}

	if got, want := sys.Palette(0)[0], byte(0xAA); got != want {
		t.Errorf("color0 red = %#x, want %#x", got, want)
	}
	if got, want := sys.Palette(1)[0], byte(0xBB); got != want {
		t.Errorf("color1 red = %#x, want %#x", got, want)
	}
	if got, want := sys.Palette(2)[0], byte(0xCC); got != want {
		t.Errorf("color2 red = %#x, want %#x", got, want)
	}
	if got, want := sys.Palette(3)[0], byte(0xDD); got != want {
		t.Errorf("color3 red = %#x, want %#x", got, want)
	}
}

func TestPaletteOutOfRangeIsZero(t *testing.T) {
	sys := &System{redHi: 0xFF}
	if got := sys.Palette(4); got != [4]byte{} {
		t.Errorf("Palette(4) = %v, want zero value", got)
	}
}
