package varvara

import "uxngo/uxn"

// Machine ties a uxn.CPU to its Varvara device bank and implements
// the §4.G event driver: boot, then re-entry at a device vector on
// each host event, serialized one at a time (§5).
type Machine struct {
	CPU  *uxn.CPU
	Bank *Bank
}

// New builds a machine with a screen of the given resolution and
// loads rom at the fixed entry address.
func New(rom []byte, width, height int) *Machine {
	cpu := uxn.New(nil)
	cpu.LoadROM(rom)
	bank := NewBank(&cpu.Mem, width, height)
	cpu.Dev = bank
	return &Machine{CPU: cpu, Bank: bank}
}

// Boot runs the ROM from its entry point to the first BRK. Call this
// once before any event is delivered.
func (m *Machine) Boot() {
	m.CPU.Run()
}

// Screen and Controller give the host direct access to framebuffers
// and input registers between events.
func (m *Machine) Screen() *Screen         { return m.Bank.Scr }
func (m *Machine) Controller() *Controller { return m.Bank.Ctrl }
func (m *Machine) System() *System         { return m.Bank.Sys }

// FireController updates the controller's button mask and key byte,
// then re-enters the interpreter at its vector, per §4.G steps 1-3.
func (m *Machine) FireController(buttons, key byte) {
	m.Bank.Ctrl.SetButtons(buttons)
	m.Bank.Ctrl.SetKey(key)
	m.CPU.RunAt(m.Bank.ControllerVector())
}

// FireScreen re-enters the interpreter at the screen device's vector,
// used to drive the guest's per-frame redraw logic. The screen device
// has no input registers to update first; the vector read is the
// entire event.
func (m *Machine) FireScreen() {
	m.CPU.RunAt(m.Bank.ScreenVector())
}
