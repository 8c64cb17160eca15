// Package varvara implements the Varvara peripheral environment: the
// 256-byte memory-mapped device bank and the system, console, screen
// and controller devices that sit behind it (§4.D-§4.G).
package varvara

// Port addresses within the 256-byte device bank (§6). Each device
// occupies a 16-byte slice of the bank; only the ports this
// implementation uses are named here.
const (
	portSysRedHi   = 0x08
	portSysRedLo   = 0x09
	portSysGreenHi = 0x0A
	portSysGreenLo = 0x0B
	portSysBlueHi  = 0x0C
	portSysBlueLo  = 0x0D

	portConsoleWrite = 0x18

	portScreenVectorHi = 0x20
	portScreenVectorLo = 0x21
	portScreenWidthHi  = 0x22
	portScreenWidthLo  = 0x23
	portScreenHeightHi = 0x24
	portScreenHeightLo = 0x25
	portScreenAuto     = 0x26
	portScreenXHi      = 0x28
	portScreenXLo      = 0x29
	portScreenYHi      = 0x2A
	portScreenYLo      = 0x2B
	portScreenAddrHi   = 0x2C
	portScreenAddrLo   = 0x2D
	portScreenPixel    = 0x2E
	portScreenSprite   = 0x2F

	portCtrlVectorHi = 0x80
	portCtrlVectorLo = 0x81
	portCtrlButton   = 0x82
	portCtrlKey      = 0x83
)
