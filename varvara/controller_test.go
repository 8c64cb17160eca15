package varvara

import "testing"

func TestControllerVectorRoundTrip(t *testing.T) {
	c := &Controller{}
	c.setVectorHi(0x12)
	c.setVectorLo(0x34)
	if got, want := c.Vector(), uint16(0x1234); got != want {
		t.Errorf("Vector() = %#x, want %#x", got, want)
	}
}

func TestControllerButtonsAndKey(t *testing.T) {
	c := &Controller{}
	c.SetButtons(ButtonA | ButtonStart)
	c.SetKey('q')

	if got, want := c.Buttons(), byte(ButtonA|ButtonStart); got != want {
		t.Errorf("Buttons() = %#x, want %#x", got, want)
	}
	if got, want := c.Key(), byte('q'); got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
}
