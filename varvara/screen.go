package varvara

import (
	"image"
	"image/color"
)

// DefaultWidth and DefaultHeight are the Varvara reference
// resolution (§6); the host may request a different size at
// construction.
const (
	DefaultWidth  = 512
	DefaultHeight = 312
)

// spriteSource is the subset of uxn.Memory the screen device needs to
// read sprite data from; satisfied by *uxn.Memory without an import
// cycle (uxn never imports varvara).
type spriteSource interface {
	Read(addr uint16) byte
}

// Framebuffer is a row-major RGBA8888 raster: base = (x + y*w) * 4
// (§3). Two of these, background and foreground, make up a screen.
type Framebuffer struct {
	Pix           []byte
	Width, Height int
}

func newFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{Pix: make([]byte, w*h*4), Width: w, Height: h}
}

func (f *Framebuffer) set(x, y int, c [4]byte) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	base := (x + y*f.Width) * 4
	copy(f.Pix[base:base+4], c[:])
}

// Framebuffer implements image.Image and draw.Image so it can be a
// render target for the standard font-drawing machinery (the debug
// HUD text uses this, see the host package).
func (f *Framebuffer) ColorModel() color.Model { return color.RGBAModel }

func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

func (f *Framebuffer) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return color.RGBA{}
	}
	base := (x + y*f.Width) * 4
	return color.RGBA{f.Pix[base], f.Pix[base+1], f.Pix[base+2], f.Pix[base+3]}
}

func (f *Framebuffer) Set(x, y int, c color.Color) {
	r, g, b, a := c.RGBA()
	f.set(x, y, [4]byte{byte(r >> 8), byte(g >> 8), byte(b >> 8), byte(a >> 8)})
}

// blendTable maps a sprite's 4-bit blend-mode nybble to the four
// palette indices used for (for 1bpp) the 0/1 source bit or (for
// 2bpp) the 0..3 bit pair. -1 marks a transparent slot: leave the
// destination pixel untouched. Transcribed from
// original_source/src/devices.rs's get_sprite_color, the definitive
// reference for this table (spec.md describes it only abstractly).
var blendTable = [16][4]int8{
	{0, 0, 1, 2},
	{0, 1, 2, 3},
	{0, 2, 3, 1},
	{0, 3, 1, 2},
	{1, 0, 1, 2},
	{-1, 1, 2, 3},
	{1, 2, 3, 1},
	{1, 3, 1, 2},
	{2, 0, 1, 2},
	{2, 1, 2, 3},
	{-1, 2, 3, 1},
	{2, 3, 1, 2},
	{3, 0, 1, 2},
	{3, 1, 2, 3},
	{3, 2, 3, 1},
	{-1, 3, 1, 2},
}

// Screen is the Varvara screen device: position/address registers
// plus the pixel and sprite draw ports (§4.E).
type Screen struct {
	sys *System

	vector uint16
	x, y   uint16
	addr   uint16
	auto   byte

	BG *Framebuffer
	FG *Framebuffer
}

// NewScreen builds a screen of the given resolution, backed by sys
// for palette lookups.
func NewScreen(sys *System, width, height int) *Screen {
	return &Screen{
		sys: sys,
		BG:  newFramebuffer(width, height),
		FG:  newFramebuffer(width, height),
	}
}

func (s *Screen) Width() int  { return s.BG.Width }
func (s *Screen) Height() int { return s.BG.Height }

func (s *Screen) Vector() uint16 { return s.vector }
func (s *Screen) X() uint16      { return s.x }
func (s *Screen) Y() uint16      { return s.y }
func (s *Screen) Addr() uint16   { return s.addr }
func (s *Screen) Auto() byte     { return s.auto }

func (s *Screen) setVectorHi(v byte) { s.vector = s.vector&0x00FF | uint16(v)<<8 }
func (s *Screen) setVectorLo(v byte) { s.vector = s.vector&0xFF00 | uint16(v) }
func (s *Screen) setXHi(v byte)      { s.x = s.x&0x00FF | uint16(v)<<8 }
func (s *Screen) setXLo(v byte)      { s.x = s.x&0xFF00 | uint16(v) }
func (s *Screen) setYHi(v byte)      { s.y = s.y&0x00FF | uint16(v)<<8 }
func (s *Screen) setYLo(v byte)      { s.y = s.y&0xFF00 | uint16(v) }
func (s *Screen) setAddrHi(v byte)   { s.addr = s.addr&0x00FF | uint16(v)<<8 }
func (s *Screen) setAddrLo(v byte)   { s.addr = s.addr&0xFF00 | uint16(v) }
func (s *Screen) setAuto(v byte)     { s.auto = v }

// Pixel implements a write to the pixel port (§4.E). Values 0x00-0x03
// paint the background plane with palette colour 0-3; 0x40-0x43 paint
// the foreground; anything else is ignored.
func (s *Screen) Pixel(val byte) {
	switch {
	case val <= 0x03:
		s.BG.set(int(s.x), int(s.y), s.sys.Palette(val))
	case val >= 0x40 && val <= 0x43:
		s.FG.set(int(s.x), int(s.y), s.sys.Palette(val-0x40))
	}
}

// spriteColor resolves blend mode m's palette slot for position pos
// (0 or 1 for 1bpp, 0..3 for 2bpp). ok is false for a transparent
// slot, meaning "do not write".
func (s *Screen) spriteColor(mode byte, pos int) (c [4]byte, ok bool) {
	idx := blendTable[mode][pos]
	if idx < 0 {
		return c, false
	}
	return s.sys.Palette(uint8(idx)), true
}

// Sprite implements a write to the sprite port (§4.E). The low nybble
// of val selects the blend mode; the high bit selects 1bpp (<0x80) or
// 2bpp (>=0x80). Sprites always draw to the foreground plane, reading
// 8 (1bpp) or 16 (2bpp) bytes of source data from mem at Addr.
func (s *Screen) Sprite(val byte, mem spriteSource) {
	mode := val & 0x0F
	twoBPP := val&0x80 != 0
	x, y, addr := int(s.x), int(s.y), s.addr

	for row := 0; row < 8; row++ {
		line1 := mem.Read(addr + uint16(row))
		var line2 byte
		if twoBPP {
			line2 = mem.Read(addr + uint16(row) + 8)
		}

		mask := byte(0x80)
		for col := 0; col < 8; col++ {
			bit1 := line1&mask != 0

			switch {
			case twoBPP:
				bit2 := line2&mask != 0
				pos := 0
				switch {
				case bit1 && bit2:
					pos = 3
				case bit1:
					pos = 2
				case bit2:
					pos = 1
				}
				if c, ok := s.spriteColor(mode, pos); ok {
					s.FG.set(x+col, y+row, c)
				}
			case mode == 0:
				// Reference behaviour: mode 0 in 1bpp always
				// writes a fully transparent pixel, regardless
				// of the source bit.
				s.FG.set(x+col, y+row, [4]byte{0, 0, 0, 0})
			default:
				pos := 0
				if bit1 {
					pos = 1
				}
				if c, ok := s.spriteColor(mode, pos); ok {
					s.FG.set(x+col, y+row, c)
				}
			}

			mask >>= 1
		}
	}
}
