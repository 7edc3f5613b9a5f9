package tms1000

// uop is a single bit position within the 16-bit decoded micro-
// instruction mask produced by the instruction PLA (spec.md §4.4). Each
// bit is an independent primitive the cycle engine may or may not fire
// for a given opcode; the PLA's job is only to decide which bits are
// set, never to encode control flow itself.
type uop uint16

const (
	// P-MUX source selects (spec.md §4.4: "P-MUX sources: {Y, CKI, RAM[X][Y]}").
	uYTP uop = 1 << iota // Y -> P-MUX
	uMTP                 // RAM[X][Y] -> P-MUX
	uCKP                 // CKI -> P-MUX

	// N-MUX source selects (spec.md §4.4: "N-MUX sources: {RAM[X][Y], CKI, A, (~A+1) mod 16, 15}").
	uMTN  // RAM[X][Y] -> N-MUX
	uCKN  // CKI -> N-MUX
	uATN  // A -> N-MUX
	uNATN // (~A+1) mod 16 -> N-MUX
	u15TN // 15 -> N-MUX

	uCIN // adder carry-in for this cycle

	// Memory write ops (spec.md §4.5 Phase B: "execute STO/CKM from the mask").
	uSTO // A -> RAM[X][Y]
	uCKM // CKI -> RAM[X][Y]

	// Result store ops (spec.md §4.4: "AUTA writes the result into A; AUTY writes the result into Y").
	uAUTA // adder sum -> A
	uAUTY // adder sum -> Y

	uSTSL // S -> SL (status latch store)

	// Status-emitting ops (spec.md §4.4: "C8 writes the carry into S; NE sets S to 0 iff P==N").
	uC8
	uNE
)

// muxP returns the value latched onto the P-MUX bus for the given mask
// and register snapshot, per spec.md §4.4's P-MUX source list. Multiple
// simultaneous selects are not legal PLA output and the first matching
// bit (in declaration order) wins; missing selects latch 0, matching
// the "clear P/N latches" reset at the top of Phase A.
func muxP(mask uint16, y, ramVal, ck byte) byte {
	switch {
	case uop(mask)&uYTP != 0:
		return y
	case uop(mask)&uMTP != 0:
		return ramVal
	case uop(mask)&uCKP != 0:
		return ck
	default:
		return 0
	}
}

// muxN returns the value latched onto the N-MUX bus, per spec.md §4.4's
// N-MUX source list.
func muxN(mask uint16, ramVal, ck, a byte) byte {
	switch {
	case uop(mask)&uMTN != 0:
		return ramVal
	case uop(mask)&uCKN != 0:
		return ck
	case uop(mask)&uATN != 0:
		return a
	case uop(mask)&uNATN != 0:
		return ((^a) + 1) & 0x0F
	case uop(mask)&u15TN != 0:
		return 15
	default:
		return 0
	}
}
