package varvara

// System is the Varvara system device: the six colour registers that
// make up the 4-entry display palette (§4.E). Each register packs two
// of the palette's four colours' components, one per nybble.
type System struct {
	redHi, redLo     byte
	greenHi, greenLo byte
	blueHi, blueLo   byte
}

// nybbleByte selects the high or low nybble of b and replicates it
// into both nybbles of the result, e.g. a high nybble of 0x5
// becomes 0x55.
func nybbleByte(hi bool, b byte) byte {
	var n byte
	if hi {
		n = b >> 4
	} else {
		n = b & 0x0F
	}
	return n | n<<4
}

// Palette returns the opaque RGBA colour for palette index k (0..3).
// Indices 0 and 1 are read from each channel's high register, 2 and 3
// from its low register — this pairing (not a 1-nybble-per-index
// spread across all six registers) is the reference layout, carried
// over from original_source/src/devices.rs's get_color0..get_color3.
func (s *System) Palette(k uint8) [4]byte {
	var r, g, b byte
	switch k {
	case 0:
		r, g, b = nybbleByte(true, s.redHi), nybbleByte(true, s.greenHi), nybbleByte(true, s.blueHi)
	case 1:
		r, g, b = nybbleByte(false, s.redHi), nybbleByte(false, s.greenHi), nybbleByte(false, s.blueHi)
	case 2:
		r, g, b = nybbleByte(true, s.redLo), nybbleByte(true, s.greenLo), nybbleByte(true, s.blueLo)
	case 3:
		r, g, b = nybbleByte(false, s.redLo), nybbleByte(false, s.greenLo), nybbleByte(false, s.blueLo)
	default:
		return [4]byte{}
	}
	return [4]byte{r, g, b, 0xFF}
}
