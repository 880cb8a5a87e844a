// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/logger"
)

// CPU implements the Intel 8080. Register logic and arithmetic is implemented
// in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	SP     registers.StackPointer
	A      registers.Register
	B      registers.Register
	C      registers.Register
	D      registers.Register
	E      registers.Register
	H      registers.Register
	L      registers.Register
	Status registers.StatusRegister

	// the interrupt enable flip-flop. set by EI and cleared by DI and by the
	// acceptance of an interrupt
	InterruptsEnabled bool

	// the CPU has executed a HLT instruction. calls to ExecuteInstruction()
	// will do nothing until an interrupt is accepted or the CPU is reset
	Halted bool

	// the result of the most recent instruction. if ExecuteInstruction()
	// returned an error then the Final field will be false but the Address
	// field will still indicate where the instruction began
	LastResult execution.Result

	// TraceHook is called once for every instruction after it has been decoded
	// and before it is executed. The Result is a copy and changing it will
	// have no effect on the CPU.
	TraceHook func(execution.Result)

	// NoUndocumented causes undocumented opcodes to be treated as
	// unimplemented instructions rather than as the documented instruction
	// they alias
	NoUndocumented bool

	// suppress log entries made by the CPU
	NoLogging bool

	mem          cpubus.Memory
	ports        ports.Bus
	instructions []*instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU structure. A
// nil ports argument is the same as ports.Null.
//
// The CPU is returned in the reset state with PC and SP both zero. Use Reset()
// to set a different origin and stack.
func NewCPU(mem cpubus.Memory, bus ports.Bus) *CPU {
	mc := &CPU{
		A:            registers.NewRegister(0, "A"),
		B:            registers.NewRegister(0, "B"),
		C:            registers.NewRegister(0, "C"),
		D:            registers.NewRegister(0, "D"),
		E:            registers.NewRegister(0, "E"),
		H:            registers.NewRegister(0, "H"),
		L:            registers.NewRegister(0, "L"),
		Status:       registers.NewStatusRegister(),
		instructions: instructions.GetDefinitions(),
	}
	mc.Plumb(mem, bus)
	return mc
}

// Plumb new memory and ports into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory, bus ports.Bus) {
	if bus == nil {
		bus = ports.Null{}
	}
	mc.mem = mem
	mc.ports = bus
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the memory and ports of the original until Plumb() is called. The TraceHook
// is not copied.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.TraceHook = nil
	return &n
}

// AllowLogging implements the logger.Permission interface.
func (mc *CPU) AllowLogging() bool {
	return !mc.NoLogging
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.SP.Label(), mc.SP,
		mc.A.Label(), mc.A, mc.B.Label(), mc.B, mc.C.Label(), mc.C,
		mc.D.Label(), mc.D, mc.E.Label(), mc.E, mc.H.Label(), mc.H,
		mc.L.Label(), mc.L, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers. The PC is loaded with the origin and the
// SP with the top of the stack. Interrupts are disabled.
func (mc *CPU) Reset(origin uint16, stackTop uint16) {
	mc.LastResult.Reset()
	mc.PC.Load(origin)
	mc.SP.Load(stackTop)
	mc.A.Load(0)
	mc.B.Load(0)
	mc.C.Load(0)
	mc.D.Load(0)
	mc.E.Load(0)
	mc.H.Load(0)
	mc.L.Load(0)
	mc.Status.Reset()
	mc.InterruptsEnabled = false
	mc.Halted = false
}

// read8Bit returns the 8 bit value from the specified address.
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

// write8Bit writes 8 bits to the specified address.
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	return mc.mem.Write(address, value)
}

// read16Bit returns the 16 bit value from the specified address. The low
// byte is at the lower address. The address of the high byte can not wrap
// around to zero.
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	if address == 0xffff {
		return 0, curated.Errorf(memory.WrapError, address)
	}

	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}

	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// write16Bit writes the 16 bit value to the specified address. The low byte
// is written to the lower address.
func (mc *CPU) write16Bit(address uint16, value uint16) error {
	if address == 0xffff {
		return curated.Errorf(memory.WrapError, address)
	}

	err := mc.mem.Write(address, uint8(value))
	if err != nil {
		return err
	}

	return mc.mem.Write(address+1, uint8(value>>8))
}

// read 8bits from the PC location has different side-effects depending on
// context.
type read8BitPCeffect int

const (
	newOpcode read8BitPCeffect = iota
	loByte
	hiByte
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) error {
	// the bytes of an instruction can not straddle the top of the address
	// space. the only way for the PC to be zero when reading an operand is
	// for the opcode to have been at 0xffff
	if effect != newOpcode && mc.PC.Address() == 0x0000 {
		return curated.Errorf(memory.WrapError, mc.LastResult.Address)
	}

	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return err
	}

	// a PC that cycles after the final byte of an instruction is not an
	// error. the next fetch will be from address zero
	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	switch effect {
	case newOpcode:
		// look up definition
		mc.LastResult.Defn = mc.instructions[v]

		// all opcodes are defined but we'll leave this error check in just in
		// case something goes wrong with the definitions table
		if mc.LastResult.Defn == nil {
			return curated.Errorf(UnimplementedOpcode, v, mc.LastResult.Address)
		}

	case loByte:
		mc.LastResult.InstructionData = uint16(v)

	case hiByte:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read the 8 or 16 bit value following the opcode, if the instruction has one
//  3. using the operator as a guide, perform the instruction on the data
//
// An error is returned if the instruction could not be completed. Errors are
// always fatal to the program being run. See the errors.go file for the
// patterns that can be expected.
//
// If the CPU is halted, ExecuteInstruction() does nothing. HLT itself does
// not return an error.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Halted {
		return nil
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	err := mc.read8BitPC(newOpcode)
	if err != nil {
		return err
	}

	defn := mc.LastResult.Defn

	if defn.Undocumented {
		if mc.NoUndocumented {
			return curated.Errorf(UnimplementedOpcode, defn.OpCode, mc.LastResult.Address)
		}
		logger.Logf(mc, "cpu", "undocumented opcode %#02x at %#04x executed as %s", defn.OpCode, mc.LastResult.Address, defn.Mnemonic)
	}

	// read any data that follows the opcode. the length of the instruction
	// is determined entirely by the addressing mode
	switch defn.Bytes {
	case 2:
		err = mc.read8BitPC(loByte)
	case 3:
		err = mc.read8BitPC(loByte)
		if err == nil {
			err = mc.read8BitPC(hiByte)
		}
	}
	if err != nil {
		return err
	}

	if mc.TraceHook != nil {
		mc.TraceHook(mc.LastResult)
	}

	err = mc.execute(defn, mc.LastResult.InstructionData)
	if err != nil {
		return err
	}

	// finalise result
	mc.LastResult.Final = true

	return nil
}

// execute the decoded instruction. the data argument is the value that
// followed the opcode in memory, if any.
func (mc *CPU) execute(defn *instructions.Definition, data uint16) error {
	var err error

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Hlt:
		mc.Halted = true

	case instructions.Mov:
		var v uint8
		v, err = mc.readRegister(defn.Src)
		if err == nil {
			err = mc.writeRegister(defn.Dst, v)
		}

	case instructions.Mvi:
		err = mc.writeRegister(defn.Dst, uint8(data))

	case instructions.Lxi:
		mc.setPair(defn.Pair, data)

	case instructions.Lda:
		var v uint8
		v, err = mc.read8Bit(data)
		if err == nil {
			mc.A.Load(v)
		}

	case instructions.Sta:
		err = mc.write8Bit(data, mc.A.Value())

	case instructions.Lhld:
		var v uint16
		v, err = mc.read16Bit(data)
		if err == nil {
			mc.setPair(instructions.HL, v)
		}

	case instructions.Shld:
		err = mc.write16Bit(data, mc.HL())

	case instructions.Ldax:
		var v uint8
		v, err = mc.read8Bit(mc.pair(defn.Pair))
		if err == nil {
			mc.A.Load(v)
		}

	case instructions.Stax:
		err = mc.write8Bit(mc.pair(defn.Pair), mc.A.Value())

	case instructions.Xchg:
		de := mc.DE()
		mc.setPair(instructions.DE, mc.HL())
		mc.setPair(instructions.HL, de)

	case instructions.Add, instructions.Adc, instructions.Sub, instructions.Sbb,
		instructions.Ana, instructions.Xra, instructions.Ora, instructions.Cmp:
		var v uint8
		v, err = mc.readRegister(defn.Src)
		if err == nil {
			mc.alu(defn.Operator, v)
		}

	case instructions.Adi, instructions.Aci, instructions.Sui, instructions.Sbi,
		instructions.Ani, instructions.Xri, instructions.Ori, instructions.Cpi:
		mc.alu(defn.Operator, uint8(data))

	case instructions.Inr:
		var v uint8
		v, err = mc.readRegister(defn.Dst)
		if err == nil {
			v, mc.Status = registers.Increment(v, mc.Status)
			err = mc.writeRegister(defn.Dst, v)
		}

	case instructions.Dcr:
		var v uint8
		v, err = mc.readRegister(defn.Dst)
		if err == nil {
			v, mc.Status = registers.Decrement(v, mc.Status)
			err = mc.writeRegister(defn.Dst, v)
		}

	case instructions.Inx:
		mc.setPair(defn.Pair, mc.pair(defn.Pair)+1)

	case instructions.Dcx:
		mc.setPair(defn.Pair, mc.pair(defn.Pair)-1)

	case instructions.Dad:
		v, carry := registers.Add16(mc.HL(), mc.pair(defn.Pair))
		mc.setPair(instructions.HL, v)
		mc.Status.Carry = carry

	case instructions.Daa:
		var v uint8
		v, mc.Status = registers.DecimalAdjust(mc.A.Value(), mc.Status)
		mc.A.Load(v)

	case instructions.Rlc:
		v, carry := registers.RotateLeft(mc.A.Value())
		mc.A.Load(v)
		mc.Status.Carry = carry

	case instructions.Rrc:
		v, carry := registers.RotateRight(mc.A.Value())
		mc.A.Load(v)
		mc.Status.Carry = carry

	case instructions.Ral:
		v, carry := registers.RotateLeftCarry(mc.A.Value(), mc.Status.Carry)
		mc.A.Load(v)
		mc.Status.Carry = carry

	case instructions.Rar:
		v, carry := registers.RotateRightCarry(mc.A.Value(), mc.Status.Carry)
		mc.A.Load(v)
		mc.Status.Carry = carry

	case instructions.Cma:
		mc.A.Load(^mc.A.Value())

	case instructions.Stc:
		mc.Status.Carry = true

	case instructions.Cmc:
		mc.Status.Carry = !mc.Status.Carry

	case instructions.Jmp:
		mc.jump(data)

	case instructions.Jcc:
		if defn.Condition.Test(mc.Status) {
			mc.jump(data)
		}

	case instructions.Call:
		err = mc.call(data)

	case instructions.Ccc:
		if defn.Condition.Test(mc.Status) {
			err = mc.call(data)
		}

	case instructions.Ret:
		err = mc.ret()

	case instructions.Rcc:
		if defn.Condition.Test(mc.Status) {
			err = mc.ret()
		}

	case instructions.Rst:
		err = mc.call(uint16(defn.Vector) * 8)

	case instructions.Pchl:
		mc.jump(mc.HL())

	case instructions.Push:
		err = mc.push16(mc.pair(defn.Pair))

	case instructions.Pop:
		var v uint16
		v, err = mc.pop16()
		if err == nil {
			mc.setPair(defn.Pair, v)
		}

	case instructions.Xthl:
		var v uint16
		v, err = mc.peek16()
		if err == nil {
			err = mc.poke16(mc.HL())
			if err == nil {
				mc.setPair(instructions.HL, v)
			}
		}

	case instructions.Sphl:
		mc.SP.Load(mc.HL())

	case instructions.In:
		mc.A.Load(mc.ports.In(uint8(data)))

	case instructions.Out:
		mc.ports.Out(uint8(data), mc.A.Value())

	case instructions.Ei:
		mc.InterruptsEnabled = true

	case instructions.Di:
		mc.InterruptsEnabled = false

	default:
		return curated.Errorf(UnimplementedOpcode, defn.OpCode, mc.LastResult.Address)
	}

	return err
}

// alu performs the arithmetic or logical operation on the accumulator. The
// operator can be the register or the immediate form of the instruction.
func (mc *CPU) alu(operator instructions.Operator, v uint8) {
	a := mc.A.Value()

	var r uint8
	var sr registers.StatusRegister

	switch operator {
	case instructions.Add, instructions.Adi:
		r, sr = registers.Add(a, v, false)
	case instructions.Adc, instructions.Aci:
		r, sr = registers.Add(a, v, mc.Status.Carry)
	case instructions.Sub, instructions.Sui:
		r, sr = registers.Subtract(a, v, false)
	case instructions.Sbb, instructions.Sbi:
		r, sr = registers.Subtract(a, v, mc.Status.Carry)
	case instructions.Ana, instructions.Ani:
		r, sr = registers.And(a, v)
	case instructions.Xra, instructions.Xri:
		r, sr = registers.Xor(a, v)
	case instructions.Ora, instructions.Ori:
		r, sr = registers.Or(a, v)
	case instructions.Cmp, instructions.Cpi:
		// compare is a subtraction that only keeps the flags
		_, sr = registers.Subtract(a, v, false)
		r = a
	}

	mc.A.Load(r)
	mc.Status = sr
}

// jump loads the PC with the address.
func (mc *CPU) jump(address uint16) {
	mc.PC.Load(address)
	mc.LastResult.BranchSuccess = true
}

// call pushes the PC, which is the address of the next instruction, and
// jumps to the address.
func (mc *CPU) call(address uint16) error {
	err := mc.push16(mc.PC.Address())
	if err != nil {
		return err
	}
	mc.jump(address)
	return nil
}

// ret pops the return address into the PC.
func (mc *CPU) ret() error {
	address, err := mc.pop16()
	if err != nil {
		return err
	}
	mc.jump(address)
	return nil
}

// Interrupt requests a hardware interrupt. The vector is the RST number (0 to
// 7) that the interrupting device places on the data bus.
//
// If interrupts are enabled the request is accepted. Interrupts are disabled,
// the PC is pushed to the stack and the CPU continues at the vector address.
// A halted CPU is woken. Returns false if the request was not accepted.
//
// Interrupt must not be called from inside the TraceHook.
func (mc *CPU) Interrupt(vector uint8) (bool, error) {
	if vector > 7 {
		return false, curated.Errorf(InterruptVector, vector)
	}

	if !mc.InterruptsEnabled {
		return false, nil
	}

	mc.InterruptsEnabled = false
	mc.Halted = false

	err := mc.push16(mc.PC.Address())
	if err != nil {
		return true, err
	}
	mc.PC.Load(uint16(vector) * 8)

	return true, nil
}
