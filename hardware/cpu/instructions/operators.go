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

// Operator identifies the operation performed by an instruction. Many
// opcodes share an operator and differ only in their operands.
type Operator int

// List of operators. The conditional forms of jump, call and return are
// separate operators (Jcc, Ccc and Rcc) and the condition is in the
// Definition.
const (
	Nop Operator = iota
	Hlt

	// data transfer
	Mov
	Mvi
	Lxi
	Lda
	Sta
	Lhld
	Shld
	Ldax
	Stax
	Xchg

	// arithmetic and logic with register or memory operand
	Add
	Adc
	Sub
	Sbb
	Ana
	Xra
	Ora
	Cmp

	// arithmetic and logic with immediate operand
	Adi
	Aci
	Sui
	Sbi
	Ani
	Xri
	Ori
	Cpi

	Inr
	Dcr
	Inx
	Dcx
	Dad
	Daa

	// accumulator and carry
	Rlc
	Rrc
	Ral
	Rar
	Cma
	Stc
	Cmc

	// branch
	Jmp
	Jcc
	Call
	Ccc
	Ret
	Rcc
	Rst
	Pchl

	// stack
	Push
	Pop
	Xthl
	Sphl

	// input/output and machine control
	In
	Out
	Ei
	Di
)

// the ALU groups are in encoding order
var aluRegister = [8]Operator{Add, Adc, Sub, Sbb, Ana, Xra, Ora, Cmp}
var aluImmediate = [8]Operator{Adi, Aci, Sui, Sbi, Ani, Xri, Ori, Cpi}

var mnemonics = map[Operator]string{
	Nop: "NOP", Hlt: "HLT",
	Mov: "MOV", Mvi: "MVI", Lxi: "LXI", Lda: "LDA", Sta: "STA",
	Lhld: "LHLD", Shld: "SHLD", Ldax: "LDAX", Stax: "STAX", Xchg: "XCHG",
	Add: "ADD", Adc: "ADC", Sub: "SUB", Sbb: "SBB",
	Ana: "ANA", Xra: "XRA", Ora: "ORA", Cmp: "CMP",
	Adi: "ADI", Aci: "ACI", Sui: "SUI", Sbi: "SBI",
	Ani: "ANI", Xri: "XRI", Ori: "ORI", Cpi: "CPI",
	Inr: "INR", Dcr: "DCR", Inx: "INX", Dcx: "DCX", Dad: "DAD", Daa: "DAA",
	Rlc: "RLC", Rrc: "RRC", Ral: "RAL", Rar: "RAR",
	Cma: "CMA", Stc: "STC", Cmc: "CMC",
	Jmp: "JMP", Jcc: "J", Call: "CALL", Ccc: "C", Ret: "RET", Rcc: "R",
	Rst: "RST", Pchl: "PCHL",
	Push: "PUSH", Pop: "POP", Xthl: "XTHL", Sphl: "SPHL",
	In: "IN", Out: "OUT", Ei: "EI", Di: "DI",
}

func (o Operator) String() string {
	if m, ok := mnemonics[o]; ok {
		return m
	}
	return "unknown operator"
}
