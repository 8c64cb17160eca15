package uxn

import (
	"reflect"
	"testing"
)

// fakePorts is a minimal Ports implementation for exercising DEI/DEO
// without pulling in the varvara device bank.
type fakePorts struct {
	regs [256]byte
}

func (f *fakePorts) DEI(port byte) byte      { return f.regs[port] }
func (f *fakePorts) DEO(port byte, val byte) { f.regs[port] = val }

func newCPU() *CPU {
	return New(&fakePorts{})
}

// TestSeedScenarios runs the literal scenarios from spec.md §8: a ROM, and the
// expected stack contents after it runs to BRK (or falls off the end
// of a fragment with no trailing BRK, which step() also treats as
// halting once it hits an unknown/zero opcode byte).
func TestSeedScenarios(t *testing.T) {
	cases := []struct {
		name    string
		rom     []byte
		wantW   []byte
		wantR   []byte
		checkMem func(t *testing.T, c *CPU)
	}{
		{
			name:  "LIT",
			rom:   []byte{0x80, 0x05, 0x00},
			wantW: []byte{0x05},
		},
		{
			name:  "LIT INC",
			rom:   []byte{0x80, 0x05, 0x01, 0x00},
			wantW: []byte{0x06},
		},
		{
			name:  "LIT INCk",
			rom:   []byte{0x80, 0x05, 0x81, 0x00},
			wantW: []byte{0x05, 0x06},
		},
		{
			name:  "LITr INCr",
			rom:   []byte{0xC0, 0x05, 0x41, 0x00},
			wantW: []byte{},
			wantR: []byte{0x06},
		},
		{
			name:  "LIT2 SWP",
			rom:   []byte{0xA0, 0x12, 0x34, 0x04, 0x00},
			wantW: []byte{0x34, 0x12},
		},
		{
			name:  "ADD2",
			rom:   []byte{0xA0, 0x00, 0x04, 0xA0, 0x00, 0x08, 0x38, 0x00},
			wantW: []byte{0x00, 0x0C},
		},
		{
			name:  "AND",
			rom:   []byte{0xA0, 0xF0, 0x0F, 0x1C, 0x00},
			wantW: []byte{0x00},
		},
		{
			name:  "SFT",
			rom:   []byte{0xA0, 0x34, 0x10, 0x1F, 0x00},
			wantW: []byte{0x68},
		},
		{
			name:  "STZ LDZ",
			rom:   []byte{0xA0, 0x50, 0x00, 0x11, 0x80, 0x00, 0x10, 0x00},
			wantW: []byte{0x50},
			checkMem: func(t *testing.T, c *CPU) {
				if got := c.Mem.Read(0x00); got != 0x50 {
					t.Errorf("M[0x00] = %#02x, want 0x50", got)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newCPU()
			c.LoadROM(tc.rom)
			c.Run()

			if got, want := c.Work.Bytes(), tc.wantW; !reflect.DeepEqual(got, orEmpty(want)) {
				t.Errorf("W = %v, want %v", got, want)
			}
			if got, want := c.Ret.Bytes(), tc.wantR; !reflect.DeepEqual(got, orEmpty(want)) {
				t.Errorf("R = %v, want %v", got, want)
			}
			if tc.checkMem != nil {
				tc.checkMem(t, c)
			}
		})
	}
}

func orEmpty(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}

func TestDivisionByZeroPushesZero(t *testing.T) {
	// LIT2 0x00 0x05, LIT2 0x00 0x00, DIV2, BRK
	c := newCPU()
	c.LoadROM([]byte{0xA0, 0x00, 0x05, 0xA0, 0x00, 0x00, 0x3B, 0x00})
	c.Run()

	if got, want := c.Work.Bytes(), []byte{0x00, 0x00}; !reflect.DeepEqual(got, want) {
		t.Fatalf("DIV2 by zero: W = %v, want %v", got, want)
	}
}

func TestJSRPushesReturnOffsetAndJumps(t *testing.T) {
	// At 0x0100: LIT 0x02 (pc -> 0x0102), JSR (pc -> 0x0102+2=0x0104),
	// at 0x0104: BRK.
	c := newCPU()
	c.LoadROM([]byte{0x80, 0x02, 0x0E, 0x00})
	c.Run()

	if got, want := c.Ret.Bytes(), []byte{0x02}; !reflect.DeepEqual(got, want) {
		t.Fatalf("JSR return stack = %v, want %v", got, want)
	}
	if c.PC != ResetVector+0x04 {
		t.Fatalf("PC after JSR+BRK = %#04x, want %#04x", c.PC, ResetVector+0x04)
	}
}

func TestUnknownOpcodeHaltsLikeBRK(t *testing.T) {
	c := newCPU()
	// 0x14 is not a defined base opcode in this instruction set.
	c.LoadROM([]byte{0x80, 0x01, 0x14})
	c.Run() // must return, not loop forever or panic
}

func TestDEIDEORoundTrip(t *testing.T) {
	c := newCPU()
	// LIT 0x07 (value), LIT 0x2A (port), DEO: DEO pops the port first,
	// then the value. LIT 0x2A, DEI then reads the port back.
	c.LoadROM([]byte{0x80, 0x07, 0x80, 0x2A, 0x17, 0x80, 0x2A, 0x16, 0x00})
	c.Run()

	if got := c.Work.Bytes(); len(got) != 1 || got[0] != 0x07 {
		t.Fatalf("DEI after DEO round trip = %v, want [0x07]", got)
	}
}
