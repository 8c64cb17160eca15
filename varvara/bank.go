package varvara

import "uxngo/uxn"

// Bank is the 256-byte memory-mapped device bank: it owns every
// Varvara device and dispatches DEI/DEO by port address (§4.D-§4.G).
// It implements uxn.Ports, so a *Bank is what a CPU is built with.
type Bank struct {
	Sys  *System
	Con  *Console
	Scr  *Screen
	Ctrl *Controller
	Mem  *uxn.Memory
}

// NewBank builds a device bank of the given screen resolution, backed
// by mem for sprite reads.
func NewBank(mem *uxn.Memory, width, height int) *Bank {
	sys := &System{}
	return &Bank{
		Sys:  sys,
		Con:  &Console{},
		Scr:  NewScreen(sys, width, height),
		Ctrl: &Controller{},
		Mem:  mem,
	}
}

// ScreenVector and ControllerVector report the two devices' event
// vectors, used by the host's event loop to decide whether and where
// to re-enter the interpreter (§4.G).
func (b *Bank) ScreenVector() uint16     { return b.Scr.Vector() }
func (b *Bank) ControllerVector() uint16 { return b.Ctrl.Vector() }

// DEI implements uxn.Ports. Unhandled ports read back as zero, the
// same default the bank applies to DEO's unhandled ports (§7).
func (b *Bank) DEI(port byte) byte {
	switch port {
	case portSysRedHi:
		return b.Sys.redHi
	case portSysRedLo:
		return b.Sys.redLo
	case portSysGreenHi:
		return b.Sys.greenHi
	case portSysGreenLo:
		return b.Sys.greenLo
	case portSysBlueHi:
		return b.Sys.blueHi
	case portSysBlueLo:
		return b.Sys.blueLo

	case portScreenVectorHi:
		return byte(b.Scr.Vector() >> 8)
	case portScreenVectorLo:
		return byte(b.Scr.Vector())
	case portScreenWidthHi:
		return byte(b.Scr.Width() >> 8)
	case portScreenWidthLo:
		return byte(b.Scr.Width())
	case portScreenHeightHi:
		return byte(b.Scr.Height() >> 8)
	case portScreenHeightLo:
		return byte(b.Scr.Height())
	case portScreenAuto:
		return b.Scr.Auto()
	case portScreenXHi:
		return byte(b.Scr.X() >> 8)
	case portScreenXLo:
		return byte(b.Scr.X())
	case portScreenYHi:
		return byte(b.Scr.Y() >> 8)
	case portScreenYLo:
		return byte(b.Scr.Y())
	case portScreenAddrHi:
		return byte(b.Scr.Addr() >> 8)
	case portScreenAddrLo:
		return byte(b.Scr.Addr())

	case portCtrlVectorHi:
		return byte(b.Ctrl.Vector() >> 8)
	case portCtrlVectorLo:
		return byte(b.Ctrl.Vector())
	case portCtrlButton:
		return b.Ctrl.Buttons()
	case portCtrlKey:
		return b.Ctrl.Key()

	default:
		return 0
	}
}

// DEO implements uxn.Ports.
func (b *Bank) DEO(port byte, val byte) {
	switch port {
	case portSysRedHi:
		b.Sys.redHi = val
	case portSysRedLo:
		b.Sys.redLo = val
	case portSysGreenHi:
		b.Sys.greenHi = val
	case portSysGreenLo:
		b.Sys.greenLo = val
	case portSysBlueHi:
		b.Sys.blueHi = val
	case portSysBlueLo:
		b.Sys.blueLo = val

	case portConsoleWrite:
		b.Con.Write(val)

	case portScreenVectorHi:
		b.Scr.setVectorHi(val)
	case portScreenVectorLo:
		b.Scr.setVectorLo(val)
	case portScreenAuto:
		b.Scr.setAuto(val)
	case portScreenXHi:
		b.Scr.setXHi(val)
	case portScreenXLo:
		b.Scr.setXLo(val)
	case portScreenYHi:
		b.Scr.setYHi(val)
	case portScreenYLo:
		b.Scr.setYLo(val)
	case portScreenAddrHi:
		b.Scr.setAddrHi(val)
	case portScreenAddrLo:
		b.Scr.setAddrLo(val)
	case portScreenPixel:
		b.Scr.Pixel(val)
	case portScreenSprite:
		b.Scr.Sprite(val, b.Mem)

	case portCtrlVectorHi:
		b.Ctrl.setVectorHi(val)
	case portCtrlVectorLo:
		b.Ctrl.setVectorLo(val)
	}
}
