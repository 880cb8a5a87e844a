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

package instructions

// GetDefinitions returns the table of instruction definitions for the 8080.
// The table has one entry for every possible opcode value.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 256)
	for i := range defs {
		defs[i] = decode(uint8(i))
	}
	return defs
}

// decode classifies an opcode by extracting the bit fields of the 8080
// encoding. The opcode is split like this:
//
//	bits 7-6   group
//	bits 5-3   destination register, condition, ALU operation or RST vector
//	bits 5-4   register pair
//	bit  3     selects between instructions sharing a register pair encoding
//	bits 2-0   source register or operation within the group
func decode(opcode uint8) *Definition {
	defn := &Definition{OpCode: opcode}

	group := opcode >> 6
	ddd := (opcode >> 3) & 0x07
	sss := opcode & 0x07
	rp := Pair((opcode >> 4) & 0x03)
	q := opcode&0x08 == 0x08

	switch group {
	case 0b00:
		decodeGroup0(defn, ddd, sss, rp, q)

	case 0b01:
		if opcode == 0x76 {
			defn.Operator = Hlt
			break
		}
		defn.Operator = Mov
		defn.Dst = Register(ddd)
		defn.Src = Register(sss)

	case 0b10:
		defn.Operator = aluRegister[ddd]
		defn.Src = Register(sss)

	case 0b11:
		decodeGroup3(defn, ddd, sss, rp, q)
	}

	finalise(defn)

	return defn
}

func decodeGroup0(defn *Definition, ddd uint8, sss uint8, rp Pair, q bool) {
	switch sss {
	case 0b000:
		defn.Operator = Nop
		defn.Undocumented = ddd != 0

	case 0b001:
		defn.Pair = rp
		if q {
			defn.Operator = Dad
		} else {
			defn.Operator = Lxi
		}

	case 0b010:
		switch ddd {
		case 0b000, 0b010:
			defn.Operator = Stax
			defn.Pair = rp
		case 0b001, 0b011:
			defn.Operator = Ldax
			defn.Pair = rp
		case 0b100:
			defn.Operator = Shld
		case 0b101:
			defn.Operator = Lhld
		case 0b110:
			defn.Operator = Sta
		case 0b111:
			defn.Operator = Lda
		}

	case 0b011:
		defn.Pair = rp
		if q {
			defn.Operator = Dcx
		} else {
			defn.Operator = Inx
		}

	case 0b100:
		defn.Operator = Inr
		defn.Dst = Register(ddd)

	case 0b101:
		defn.Operator = Dcr
		defn.Dst = Register(ddd)

	case 0b110:
		defn.Operator = Mvi
		defn.Dst = Register(ddd)

	case 0b111:
		defn.Operator = [8]Operator{Rlc, Rrc, Ral, Rar, Daa, Cma, Stc, Cmc}[ddd]
	}
}

func decodeGroup3(defn *Definition, ddd uint8, sss uint8, rp Pair, q bool) {
	switch sss {
	case 0b000:
		defn.Operator = Rcc
		defn.Condition = Condition(ddd)

	case 0b001:
		if !q {
			defn.Operator = Pop
			defn.Pair = rp
			if rp == SP {
				defn.Pair = PSW
			}
			break
		}
		switch rp {
		case 0b00:
			defn.Operator = Ret
		case 0b01:
			defn.Operator = Ret
			defn.Undocumented = true
		case 0b10:
			defn.Operator = Pchl
		case 0b11:
			defn.Operator = Sphl
		}

	case 0b010:
		defn.Operator = Jcc
		defn.Condition = Condition(ddd)

	case 0b011:
		switch ddd {
		case 0b000:
			defn.Operator = Jmp
		case 0b001:
			defn.Operator = Jmp
			defn.Undocumented = true
		case 0b010:
			defn.Operator = Out
		case 0b011:
			defn.Operator = In
		case 0b100:
			defn.Operator = Xthl
		case 0b101:
			defn.Operator = Xchg
		case 0b110:
			defn.Operator = Di
		case 0b111:
			defn.Operator = Ei
		}

	case 0b100:
		defn.Operator = Ccc
		defn.Condition = Condition(ddd)

	case 0b101:
		if !q {
			defn.Operator = Push
			defn.Pair = rp
			if rp == SP {
				defn.Pair = PSW
			}
			break
		}
		defn.Operator = Call
		defn.Undocumented = rp != 0b00

	case 0b110:
		defn.Operator = aluImmediate[ddd]

	case 0b111:
		defn.Operator = Rst
		defn.Vector = ddd
	}
}

// finalise fills in the fields of the definition that follow from the
// operator and operands.
func finalise(defn *Definition) {
	switch defn.Operator {
	case Jcc, Ccc, Rcc:
		defn.Mnemonic = defn.Operator.String() + defn.Condition.String()
	default:
		defn.Mnemonic = defn.Operator.String()
	}

	switch defn.Operator {
	case Mvi, Adi, Aci, Sui, Sbi, Ani, Xri, Ori, Cpi, In, Out:
		defn.AddressingMode = Immediate
	case Lxi:
		defn.AddressingMode = ImmediateExtended
	case Lda, Sta, Lhld, Shld, Jmp, Jcc, Call, Ccc:
		defn.AddressingMode = Direct
	case Ldax, Stax:
		defn.AddressingMode = RegisterIndirect
	case Mov, Inr, Dcr, Add, Adc, Sub, Sbb, Ana, Xra, Ora, Cmp:
		if defn.UsesMemoryRegister() {
			defn.AddressingMode = RegisterIndirect
		} else {
			defn.AddressingMode = RegisterDirect
		}
	case Inx, Dcx, Dad, Push, Pop:
		defn.AddressingMode = RegisterDirect
	default:
		defn.AddressingMode = Implied
	}
	defn.Bytes = defn.AddressingMode.Bytes()

	switch defn.Operator {
	case Mov, Mvi:
		if defn.Dst == M {
			defn.Effect = Write
		} else {
			defn.Effect = Read
		}
	case Sta, Shld, Stax, Push:
		defn.Effect = Write
	case Add, Adc, Sub, Sbb, Ana, Xra, Ora, Cmp,
		Adi, Aci, Sui, Sbi, Ani, Xri, Ori, Cpi,
		Inr, Dcr, Inx, Dcx, Dad, Daa,
		Rlc, Rrc, Ral, Rar, Cma, Stc, Cmc,
		Xchg, Xthl, Sphl:
		defn.Effect = Modify
	case Jmp, Jcc, Pchl:
		defn.Effect = Flow
	case Call, Ccc, Ret, Rcc, Rst:
		defn.Effect = Subroutine
	case Ei, Di, Hlt:
		defn.Effect = Interrupt
	case In, Out:
		defn.Effect = IO
	default:
		defn.Effect = Read
	}
}
