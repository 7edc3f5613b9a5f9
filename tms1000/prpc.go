package tms1000

// prpcSequence is the TMS1000's pseudo-random program counter: a
// maximal-length 6-bit LFSR permutation of {0..63}. The PC register
// never increments; each cycle it advances to the next element of this
// fixed sequence. Per spec.md §9 "Design notes", implementers must keep
// both the raw PC value and its index in this sequence as coupled
// state rather than re-deriving one from the other at use, since the
// sequence has no closed-form inverse available without a table.
var prpcSequence = [64]byte{
	0x00, 0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x3E,
	0x3D, 0x3B, 0x37, 0x2F, 0x1E, 0x3C, 0x39, 0x33,
	0x27, 0x0E, 0x1D, 0x3A, 0x35, 0x2B, 0x16, 0x2C,
	0x18, 0x30, 0x21, 0x02, 0x05, 0x0B, 0x17, 0x2E,
	0x1C, 0x38, 0x31, 0x23, 0x06, 0x0D, 0x1B, 0x36,
	0x2D, 0x1A, 0x34, 0x29, 0x12, 0x24, 0x08, 0x11,
	0x22, 0x04, 0x09, 0x13, 0x26, 0x0C, 0x19, 0x32,
	0x25, 0x0A, 0x15, 0x2A, 0x14, 0x28, 0x10, 0x20,
}

// prpcIndex is the inverse of prpcSequence: value -> index. Built once
// at init time rather than linearly scanned on every lookup.
var prpcIndex [64]byte

func init() {
	for i, v := range prpcSequence {
		prpcIndex[v] = byte(i)
	}
}

// prpcNext returns the PRPC value and index that follow index i.
func prpcNext(i byte) (value byte, index byte) {
	index = (i + 1) % 64
	value = prpcSequence[index]
	return value, index
}

// PRPCSequence returns a copy of the 64-entry PRPC permutation in
// execution order, for callers outside this package (the disassembler's
// listing ordering, spec.md §4.9) that need the same order the engine
// steps through without reaching into Chip internals.
func PRPCSequence() []byte {
	out := make([]byte, len(prpcSequence))
	copy(out, prpcSequence[:])
	return out
}
