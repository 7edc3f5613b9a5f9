package tms1000

import "github.com/jmchacon/tms1000/bits"

// cki computes the CKI data bus value for the given opcode and sampled
// K input, per spec.md §4.3. Opcodes outside the documented ranges
// return 0: the hardware bus floats there but no legal micro-op ever
// selects it into the adder, so an unobservable zero is safe and
// matches the spec's resolution of the source's inconsistent 0/255
// sentinel (spec.md §9 Open questions).
func cki(opcode byte, k byte) byte {
	switch {
	case opcode <= 0x07:
		return bits.Reverse(opcode, 4)
	case opcode >= 0x08 && opcode <= 0x0F:
		return bits.Truncate(k, 4)
	case opcode >= 0x30 && opcode <= 0x3A:
		return 15 - bits.Reverse(opcode&0x03, 2)
	case opcode >= 0x40 && opcode <= 0x7F:
		return bits.Reverse(opcode, 4)
	default:
		return 0
	}
}

// sbitMask returns the one-hot bit selector used by SBIT/RBIT to set or
// clear a single bit of RAM[X][Y]. The low 2 bits of the opcode select
// which of the 4 bits of the nibble is addressed, bit-reversed to match
// the CKI orientation used elsewhere in the same opcode range.
func sbitMask(opcode byte) byte {
	return 1 << bits.Reverse(opcode&0x03, 2)
}
