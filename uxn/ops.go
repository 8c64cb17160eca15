package uxn

// Base operation codes: the low 5 bits of an opcode byte. These match
// the reference uxntal numbering. LDR, STR, LDA and STA (0x12-0x15)
// are not implemented; their opcodes decode as BRK.
const (
	opBRK = 0x00
	opINC = 0x01
	opPOP = 0x02
	opNIP = 0x03
	opSWP = 0x04
	opROT = 0x05
	opDUP = 0x06
	opOVR = 0x07
	opEQU = 0x08
	opNEQ = 0x09
	opGTH = 0x0A
	opLTH = 0x0B
	opJMP = 0x0C
	opJCN = 0x0D
	opJSR = 0x0E
	opSTH = 0x0F
	opLDZ = 0x10
	opSTZ = 0x11
	opDEI = 0x16
	opDEO = 0x17
	opADD = 0x18
	opSUB = 0x19
	opMUL = 0x1A
	opDIV = 0x1B
	opAND = 0x1C
	opORA = 0x1D
	opEOR = 0x1E
	opSFT = 0x1F
)

// opFunc implements one base operation. primary/secondary are already
// selected for return-mode (see selectStacks); primary has already had
// SetCurrentOpcode called on it for this instruction. short reports
// whether the opcode's short-mode bit (0x20) is set.
type opFunc func(c *CPU, primary, secondary *Stack, short bool)

// baseOps is indexed by the 5-bit base operation. A nil entry is an
// opcode this machine does not implement; the decode loop treats it
// like BRK (§7 decode error).
var baseOps = [32]opFunc{
	opINC: opInc,
	opPOP: opPop,
	opNIP: opNip,
	opSWP: opSwp,
	opROT: opRot,
	opDUP: opDup,
	opOVR: opOvr,
	opEQU: opEqu,
	opNEQ: opNeq,
	opGTH: opGth,
	opLTH: opLth,
	opJMP: opJmp,
	opJCN: opJcn,
	opJSR: opJsr,
	opSTH: opSth,
	opLDZ: opLdz,
	opSTZ: opStz,
	opDEI: opDei,
	opDEO: opDeo,
	opADD: opArith(func(a, b uint16) uint16 { return a + b }),
	opSUB: opArith(func(a, b uint16) uint16 { return a - b }),
	opMUL: opArith(func(a, b uint16) uint16 { return a * b }),
	opDIV: opArith(opDivWrap),
	opAND: opArith(func(a, b uint16) uint16 { return a & b }),
	opORA: opArith(func(a, b uint16) uint16 { return a | b }),
	opEOR: opArith(func(a, b uint16) uint16 { return a ^ b }),
	opSFT: opSft,
}

// popVal/pushVal read or write one stack operand, sized by the
// opcode's short-mode bit. Representing both widths as uint16 lets a
// single helper drive every arithmetic/logical op; truncation back to
// a byte happens in pushVal's byte conversion for the non-short case.
func popVal(s *Stack, short bool) uint16 {
	if short {
		return s.PopShort()
	}
	return uint16(s.Pop())
}

func pushVal(s *Stack, short bool, v uint16) {
	if short {
		s.PushShort(v)
	} else {
		s.Push(byte(v))
	}
}

func opInc(c *CPU, p, _ *Stack, short bool) {
	a := popVal(p, short)
	pushVal(p, short, a+1)
}

func opPop(c *CPU, p, _ *Stack, short bool) {
	popVal(p, short)
}

func opNip(c *CPU, p, _ *Stack, short bool) {
	b := popVal(p, short)
	popVal(p, short)
	pushVal(p, short, b)
}

func opSwp(c *CPU, p, _ *Stack, short bool) {
	b := popVal(p, short)
	a := popVal(p, short)
	pushVal(p, short, b)
	pushVal(p, short, a)
}

func opRot(c *CPU, p, _ *Stack, short bool) {
	cc := popVal(p, short)
	b := popVal(p, short)
	a := popVal(p, short)
	pushVal(p, short, b)
	pushVal(p, short, cc)
	pushVal(p, short, a)
}

func opDup(c *CPU, p, _ *Stack, short bool) {
	a := popVal(p, short)
	pushVal(p, short, a)
	pushVal(p, short, a)
}

func opOvr(c *CPU, p, _ *Stack, short bool) {
	b := popVal(p, short)
	a := popVal(p, short)
	pushVal(p, short, a)
	pushVal(p, short, b)
	pushVal(p, short, a)
}

// boolByte pushes a single byte result for comparisons: the result of
// a comparison is always one byte, even in short mode (only its
// operands are widened).
func boolByte(p *Stack, v bool) {
	if v {
		p.Push(0x01)
	} else {
		p.Push(0x00)
	}
}

func opEqu(c *CPU, p, _ *Stack, short bool) {
	b := popVal(p, short)
	a := popVal(p, short)
	boolByte(p, a == b)
}

func opNeq(c *CPU, p, _ *Stack, short bool) {
	b := popVal(p, short)
	a := popVal(p, short)
	boolByte(p, a != b)
}

func opGth(c *CPU, p, _ *Stack, short bool) {
	b := popVal(p, short)
	a := popVal(p, short)
	boolByte(p, a > b)
}

func opLth(c *CPU, p, _ *Stack, short bool) {
	b := popVal(p, short)
	a := popVal(p, short)
	boolByte(p, a < b)
}

// opJmp/opJcn/opJsr generalize short mode the way the rest of the
// base ops do: non-short reads a signed one-byte relative offset;
// short reads an
// absolute 16-bit target, mirroring how every other op widens its
// stack operand under the short-mode bit.
func opJmp(c *CPU, p, _ *Stack, short bool) {
	if short {
		c.PC = p.PopShort()
		return
	}
	off := int8(p.Pop())
	c.PC = uint16(int32(c.PC) + 1 + int32(off))
}

func opJcn(c *CPU, p, _ *Stack, short bool) {
	if short {
		addr := p.PopShort()
		cond := p.Pop()
		if cond != 0 {
			c.PC = addr
			return
		}
		c.PC++
		return
	}
	off := int8(p.Pop())
	cond := p.Pop()
	if cond != 0 {
		c.PC = uint16(int32(c.PC) + 1 + int32(off))
		return
	}
	c.PC++
}

func opJsr(c *CPU, p, secondary *Stack, short bool) {
	if short {
		addr := p.PopShort()
		secondary.Push(byte(c.PC - ResetVector))
		c.PC = addr
		return
	}
	off := int8(p.Pop())
	secondary.Push(byte(c.PC - ResetVector))
	c.PC = uint16(int32(c.PC) + int32(off))
}

func opSth(c *CPU, p, secondary *Stack, short bool) {
	a := popVal(p, short)
	pushVal(secondary, short, a)
}

func opLdz(c *CPU, p, _ *Stack, short bool) {
	addr := uint16(p.Pop())
	if short {
		p.PushShort(c.Mem.ReadShort(addr))
		return
	}
	p.Push(c.Mem.Read(addr))
}

func opStz(c *CPU, p, _ *Stack, short bool) {
	addr := uint16(p.Pop())
	if short {
		c.Mem.WriteShort(addr, p.PopShort())
		return
	}
	c.Mem.Write(addr, p.Pop())
}

func opDei(c *CPU, p, _ *Stack, short bool) {
	d := p.Pop()
	if short {
		p.Push(c.Dev.DEI(d))
		p.Push(c.Dev.DEI(d + 1))
		return
	}
	p.Push(c.Dev.DEI(d))
}

func opDeo(c *CPU, p, _ *Stack, short bool) {
	d := p.Pop()
	if short {
		v := p.PopShort()
		c.Dev.DEO(d, byte(v>>8))
		c.Dev.DEO(d+1, byte(v))
		return
	}
	c.Dev.DEO(d, p.Pop())
}

// opArith builds a two-operand arithmetic/logical opFunc from a plain
// uint16 reducer; wraparound for both 8-bit and 16-bit widths falls
// out of pushVal's truncation, so the reducer itself never needs to
// know which width it's running at.
func opArith(f func(a, b uint16) uint16) opFunc {
	return func(c *CPU, p, _ *Stack, short bool) {
		b := popVal(p, short)
		a := popVal(p, short)
		pushVal(p, short, f(a, b))
	}
}

// opDivWrap implements documented UXN behaviour: division by zero
// pushes zero rather than trapping.
func opDivWrap(a, b uint16) uint16 {
	if b == 0 {
		return 0
	}
	return a / b
}

func opSft(c *CPU, p, _ *Stack, short bool) {
	s := p.Pop()
	a := popVal(p, short)
	right := uint(s & 0x0F)
	left := uint(s>>4) & 0x0F
	pushVal(p, short, (a>>right)<<left)
}
