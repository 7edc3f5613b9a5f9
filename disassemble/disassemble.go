// Package disassemble implements a disassembler for TMS1000-family
// opcodes, grounded on the teacher's disassemble.Step shape: given a
// ROM and an address, produce a mnemonic and the byte width consumed.
//
// Unlike the 6502, every TMS1000 opcode is exactly one byte; any operand
// is a bitfield of that same byte, so Step's byte count is always 1. The
// mnemonic table here is independent of any loaded instruction PLA
// (tms1000.Chip never bakes in a mnemonic map, see tms1000/fixedops.go);
// this is the complete, self-designed canonical table the spec's
// disassembler/assembler pair is built against.
package disassemble

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jmchacon/tms1000/bits"
	"github.com/jmchacon/tms1000/rom"
	"github.com/jmchacon/tms1000/tms1000"
)

// Mirrors the fixed-opcode ranges of tms1000/fixedops.go; kept as an
// independent table here the same way the teacher's disassemble.go keeps
// its own opcode switch separate from cpu.go's execution tables.
const (
	opTDO  = 0x01
	opSETR = 0x06
	opRSTR = 0x0C
	opRETN = 0x0F

	opCOMX1000 = 0x00
	opCOMX1100 = 0x09
	opCLO1000  = 0x0B
	opCOMC1100 = 0x0B

	opLDP1000Lo, opLDP1000Hi = 0x20, 0x2F
	opLDP1100Lo, opLDP1100Hi = 0x20, 0x27
	opLDX1100Lo, opLDX1100Hi = 0x28, 0x2F
	opLDX1000Lo, opLDX1000Hi = 0x3C, 0x3F

	opRBITLo, opRBITHi = 0x30, 0x33
	opSBITLo, opSBITHi = 0x34, 0x37

	opBRLo, opBRHi     = 0x80, 0xBF
	opCALLLo, opCALLHi = 0xC0, 0xFF
)

// Decode returns the canonical mnemonic for op under family v, the
// decimal operand value if the mnemonic carries one, and whether it
// carries one at all.
func Decode(op byte, v tms1000.Version) (name string, operand int, hasOperand bool) {
	chaptered := v.HasChapters()
	switch {
	case op == opTDO:
		return "TDO", 0, false
	case op == opSETR:
		return "SETR", 0, false
	case op == opRSTR:
		return "RSTR", 0, false
	case op == opRETN:
		return "RETN", 0, false
	case op == opCLO1000 && !chaptered:
		return "CLO", 0, false
	case op == opCOMC1100 && chaptered:
		return "COMC", 0, false
	case op == opCOMX1000 && !chaptered:
		return "COMX", 0, false
	case op == opCOMX1100 && chaptered:
		return "COMX", 0, false
	case !chaptered && op >= opLDP1000Lo && op <= opLDP1000Hi:
		return "LDP", int(op & 0x0F), true
	case chaptered && op >= opLDP1100Lo && op <= opLDP1100Hi:
		return "LDP", int(op & 0x07), true
	case chaptered && op >= opLDX1100Lo && op <= opLDX1100Hi:
		return "LDX", int(op & 0x07), true
	case !chaptered && op >= opLDX1000Lo && op <= opLDX1000Hi:
		return "LDX", int(op & 0x03), true
	case op >= opRBITLo && op <= opRBITHi:
		return "RBIT", int(bits.Reverse(op&0x03, 2)), true
	case op >= opSBITLo && op <= opSBITHi:
		return "SBIT", int(bits.Reverse(op&0x03, 2)), true
	case op >= opBRLo && op <= opBRHi:
		return "BR", int(op & 0x3F), true
	case op >= opCALLLo && op <= opCALLHi:
		return "CALL", int(op & 0x3F), true
	default:
		return fmt.Sprintf("OP%02X", op), 0, false
	}
}

// Encode is the inverse of Decode: given a mnemonic and operand, it
// recovers the opcode byte, or reports ok=false if the mnemonic is
// unrecognized or the operand is out of range for this family.
func Encode(name string, operand int, v tms1000.Version) (op byte, ok bool) {
	chaptered := v.HasChapters()
	switch strings.ToUpper(name) {
	case "TDO":
		return opTDO, true
	case "SETR":
		return opSETR, true
	case "RSTR":
		return opRSTR, true
	case "RETN":
		return opRETN, true
	case "CLO":
		if chaptered {
			return 0, false
		}
		return opCLO1000, true
	case "COMC":
		if !chaptered {
			return 0, false
		}
		return opCOMC1100, true
	case "COMX":
		if chaptered {
			return opCOMX1100, true
		}
		return opCOMX1000, true
	case "LDP":
		if chaptered {
			if operand < 0 || operand > 0x07 {
				return 0, false
			}
			return byte(opLDP1100Lo | operand), true
		}
		if operand < 0 || operand > 0x0F {
			return 0, false
		}
		return byte(opLDP1000Lo | operand), true
	case "LDX":
		if chaptered {
			if operand < 0 || operand > 0x07 {
				return 0, false
			}
			return byte(opLDX1100Lo | operand), true
		}
		if operand < 0 || operand > 0x03 {
			return 0, false
		}
		return byte(opLDX1000Lo | operand), true
	case "RBIT":
		if operand < 0 || operand > 3 {
			return 0, false
		}
		return opRBITLo | bits.Reverse(byte(operand), 2), true
	case "SBIT":
		if operand < 0 || operand > 3 {
			return 0, false
		}
		return opSBITLo | bits.Reverse(byte(operand), 2), true
	case "BR":
		if operand < 0 || operand > 0x3F {
			return 0, false
		}
		return byte(opBRLo | operand), true
	case "CALL":
		if operand < 0 || operand > 0x3F {
			return 0, false
		}
		return byte(opCALLLo | operand), true
	default:
		if !strings.HasPrefix(strings.ToUpper(name), "OP") {
			return 0, false
		}
		v, err := strconv.ParseUint(strings.ToUpper(name)[2:], 16, 8)
		if err != nil {
			return 0, false
		}
		return byte(v), true
	}
}

// Step disassembles the instruction stored at (chapter, page, pc) and
// returns the rendered "MNEMONIC operand" text plus the byte width
// consumed, which is always 1 on this architecture: every opcode,
// including its operand bitfield, lives in a single ROM byte.
func Step(chapter, page, pc byte, r *rom.Image, v tms1000.Version) (string, int) {
	op := r.Read(chapter, page, pc)
	name, operand, hasOperand := Decode(op, v)
	if !hasOperand {
		return name, 1
	}
	return fmt.Sprintf("%s %d", name, operand), 1
}

// Listing renders the full ROM image grouped by (chapter, page) and, in
// execution order within each page (the position of the PRPC storage
// value within the PRPC sequence, per spec.md §4.9), one line per word:
// "<chapter> <page> <pc> (<execorder>) : <MNEMONIC>[ <operand>]".
func Listing(r *rom.Image, v tms1000.Version) string {
	chapters := []byte{0}
	if v.HasChapters() {
		chapters = []byte{0, 1}
	}
	order := tms1000.PRPCSequence()
	var b strings.Builder
	for _, ch := range chapters {
		for page := byte(0); page < 16; page++ {
			for idx, pc := range order {
				text, _ := Step(ch, page, pc, r, v)
				fmt.Fprintf(&b, "%d %d %d (%d) : %s\n", ch, page, pc, idx, text)
			}
		}
	}
	return b.String()
}

// SortedMnemonics returns the fixed mnemonic set (excluding the OPxx
// fallback family) in a stable order, useful for help text and tests.
func SortedMnemonics() []string {
	m := []string{"TDO", "SETR", "RSTR", "RETN", "CLO", "COMC", "COMX", "LDP", "LDX", "RBIT", "SBIT", "BR", "CALL"}
	sort.Strings(m)
	return m
}
