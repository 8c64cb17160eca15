// Package uxn implements the UXN dual-stack CPU: its two stacks, its
// flat 64KiB memory, and the fetch/decode/dispatch loop over the
// opcode-mode matrix described by the Varvara reference.
package uxn

import "fmt"

// Ports is the device I/O surface the CPU drives via DEI/DEO. A
// Varvara device bank implements this; the CPU never knows what's on
// the other end of a port.
type Ports interface {
	DEI(port byte) byte
	DEO(port byte, val byte)
}

// CPU is the whole machine: both stacks, memory, the program counter,
// and the device ports it talks to.
type CPU struct {
	Work Stack
	Ret  Stack
	Mem  Memory
	PC   uint16
	Dev  Ports
}

// New builds a CPU wired to the given device ports, with PC set to
// the fixed entry address.
func New(dev Ports) *CPU {
	return &CPU{PC: ResetVector, Dev: dev}
}

// LoadROM copies rom into memory at the entry offset.
func (c *CPU) LoadROM(rom []byte) {
	c.Mem.Load(rom)
}

// selectStacks picks (primary, secondary) for the instruction at op.
// Return mode (bit 0x40) swaps the roles of Work and Ret; this swap is
// the instruction's only interaction with return mode; every opFunc
// just operates on whichever pair it's handed.
func (c *CPU) selectStacks(op byte) (primary, secondary *Stack) {
	if op&0x40 != 0 {
		return &c.Ret, &c.Work
	}
	return &c.Work, &c.Ret
}

// Step executes exactly one instruction and reports whether it was
// BRK (or an unknown opcode). Exported for the interactive debugger,
// which single-steps instead of running to halt.
func (c *CPU) Step() (halted bool) {
	return c.step()
}

// SetPC sets the program counter directly, used by the debugger's
// "set PC" command.
func (c *CPU) SetPC(addr uint16) {
	c.PC = addr
}

// step executes one instruction and reports whether it was BRK (or an
// unknown opcode, which decodes as BRK per §7).
func (c *CPU) step() (halted bool) {
	op := c.Mem.Read(c.PC)
	primary, secondary := c.selectStacks(op)
	primary.SetCurrentOpcode(op)

	switch op {
	case 0x00:
		return true
	case 0x80, 0xC0: // LIT, LITr
		primary.Push(c.Mem.Read(c.PC + 1))
		c.PC += 2
		return false
	case 0xA0, 0xE0: // LIT2, LIT2r
		primary.Push(c.Mem.Read(c.PC + 1))
		primary.Push(c.Mem.Read(c.PC + 2))
		c.PC += 3
		return false
	}

	base := op & 0x1F
	if base == 0 {
		// Any other mode combination landing on BRK's base slot
		// (0x20, 0x40, 0x60) is not a defined instruction.
		return true
	}

	fn := baseOps[base]
	if fn == nil {
		return true
	}

	short := op&0x20 != 0

	// JMP/JCN/JSR compute PC themselves from the opcode's own
	// address (the formulas in §9 already account for the
	// instruction occupying one byte); every other op is a flat
	// single-byte instruction and just advances past it.
	switch base {
	case opJMP, opJCN, opJSR:
		fn(c, primary, secondary, short)
	default:
		fn(c, primary, secondary, short)
		c.PC++
	}
	return false
}

// Run executes from the current PC until BRK (or an unknown opcode).
// This is the "run-to-halt" call the event driver and the boot
// sequence both use; it carries no other state across invocations
// besides what's already on the CPU.
func (c *CPU) Run() {
	for !c.step() {
	}
}

// RunAt sets PC to vector and runs to the next BRK. Used by the event
// driver (§4.G) to re-enter the interpreter at a device vector while
// leaving stacks, memory and the device bank exactly as they were.
func (c *CPU) RunAt(vector uint16) {
	if vector == 0 {
		return
	}
	c.PC = vector
	c.Run()
}

func (c *CPU) String() string {
	return fmt.Sprintf("PC=%04x W=%s R=%s", c.PC, &c.Work, &c.Ret)
}
