package varvara

import "testing"

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

// A tiny ROM that writes 'A' to the console port then halts: #41 #18 DEO BRK.
func consoleROM() []byte {
	return []byte{0x80, 0x41, 0x80, 0x18, 0x17, 0x00}
}

func TestMachineBootRunsToFirstBRK(t *testing.T) {
	m := New(consoleROM(), 4, 4)
	var out []byte
	m.Bank.Con.Out = writerFunc(func(p []byte) (int, error) {
		out = append(out, p...)
		return len(p), nil
	})

	m.Boot()

	if string(out) != "A" {
		t.Errorf("console output = %q, want %q", out, "A")
	}
}

func TestMachineFireControllerReentersAtVector(t *testing.T) {
	m := New(consoleROM(), 4, 4)
	m.Boot()

	// Program at 0x0200: DEI button port, DEO to console, BRK.
	handler := []byte{0x80, portCtrlButton, 0x16, 0x80, portConsoleWrite, 0x17, 0x00}
	for i, b := range handler {
		m.CPU.Mem.Write(uint16(0x0200+i), b)
	}
	m.Bank.DEO(portCtrlVectorHi, 0x02)
	m.Bank.DEO(portCtrlVectorLo, 0x00)

	var out []byte
	m.Bank.Con.Out = writerFunc(func(p []byte) (int, error) {
		out = append(out, p...)
		return len(p), nil
	})

	m.FireController(ButtonA, 0)

	if len(out) != 1 || out[0] != ButtonA {
		t.Errorf("handler output = %v, want [%d]", out, ButtonA)
	}
}

func TestMachineFireScreenNoopWhenVectorZero(t *testing.T) {
	m := New(consoleROM(), 4, 4)
	m.Boot()

	before := m.CPU.PC
	m.FireScreen()
	if m.CPU.PC != before {
		t.Errorf("PC changed on zero-vector event: %#x -> %#x", before, m.CPU.PC)
	}
}
