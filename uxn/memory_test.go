package uxn

import "testing"

func TestMemoryLoadAtResetVector(t *testing.T) {
	var m Memory
	rom := []byte{0x80, 0x05, 0x00}
	m.Load(rom)

	for i, b := range rom {
		if got := m.Read(ResetVector + uint16(i)); got != b {
			t.Errorf("Read(%#04x) = %#02x, want %#02x", ResetVector+uint16(i), got, b)
		}
	}
}

func TestMemoryShortRoundTrip(t *testing.T) {
	var m Memory
	m.WriteShort(0x1000, 0xBEEF)
	if got := m.ReadShort(0x1000); got != 0xBEEF {
		t.Fatalf("ReadShort(WriteShort(0xBEEF)) = %#04x, want 0xbeef", got)
	}
	if got := m.Read(0x1000); got != 0xBE {
		t.Errorf("high byte at addr = %#02x, want 0xbe", got)
	}
	if got := m.Read(0x1001); got != 0xEF {
		t.Errorf("low byte at addr+1 = %#02x, want 0xef", got)
	}
}

func TestMemoryLoadPanicsWhenROMTooBig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Load with an oversized ROM did not panic")
		}
	}()
	var m Memory
	m.Load(make([]byte, MaxROMSize+1))
}
