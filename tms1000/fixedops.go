package tms1000

// Fixed opcode assignments that are decoded directly from the opcode
// byte rather than through the instruction PLA's micro-op mask. These
// operate on registers (X, the page/chapter registers, the R/O output
// latches) the generic adder/mux datapath never touches, so the PLA
// mask is irrelevant to them; the instruction PLA file only needs to
// supply the micro-mask for every other opcode (spec.md §4.8: "the
// decoder must not bake in mnemonic maps beyond what the PLA encodes"
// — which is why these specific few are carved out by the engine
// itself instead of left to a data file).
//
// The exact byte values below are an implementer's choice made to
// satisfy every range spec.md states explicitly (RSTR at 0x0C, RETN at
// 0x0F, BR/CALL ranges, the family-specific COMX/LDX/0x0B mapping, and
// the SBIT/RBIT sub-range of the documented CKI 0x30-0x3A window); see
// DESIGN.md for the full rationale.
const (
	opTDO  = 0x01
	opSETR = 0x06
	opCLO  = 0x0B // 1000/1200/1270
	opCOMC = 0x0B // 1100/1300
	opRSTR = 0x0C
	opRETN = 0x0F

	opCOMX1000 = 0x00
	opCOMX1100 = 0x09

	opLDP1000Lo = 0x20
	opLDP1000Hi = 0x2F
	opLDP1100Lo = 0x20
	opLDP1100Hi = 0x27

	opLDX1100Lo = 0x28
	opLDX1100Hi = 0x2F
	opLDX1000Lo = 0x3C
	opLDX1000Hi = 0x3F
)

// runFixedOps executes the opcode-specific fixed micro-ops of Phase C
// (SETR, TDO, CLO-or-COMC, LDP, LDX, COMX), dispatched per spec.md
// §4.8's family table.
func (p *Chip) runFixedOps(op byte) {
	chaptered := p.version.hasChapters()

	switch {
	case op == opTDO:
		p.tdo()
	case op == opSETR:
		p.setr(p.y)
	case op == 0x0B:
		if chaptered {
			p.comc()
		} else {
			p.clo()
		}
	case !chaptered && op == opCOMX1000:
		p.comx1000()
	case chaptered && op == opCOMX1100:
		p.comx1100()
	case !chaptered && op >= opLDP1000Lo && op <= opLDP1000Hi:
		p.pb = op & 0x0F
	case chaptered && op >= opLDP1100Lo && op <= opLDP1100Hi:
		p.pb = op & 0x07
	case chaptered && op >= opLDX1100Lo && op <= opLDX1100Hi:
		p.x = op & 0x07
	case !chaptered && op >= opLDX1000Lo && op <= opLDX1000Hi:
		p.x = op & 0x03
	}
}

// tdo transfers the latched status and accumulator to the O output
// composite {SL, A}, routed through the output PLA (spec.md §2).
func (p *Chip) tdo() {
	var in byte
	if p.sl {
		in = 0x10
	}
	in |= p.a & 0x0F
	p.oOut = byte(p.opla.Lookup(in))
}

// clo clears the O output composite (TMS1000/1200/1270 opcode 0x0B).
func (p *Chip) clo() {
	p.oOut = 0
}

// comc toggles the chapter buffer CB (TMS1100/1300 opcode 0x0B). The
// source's `(x+1) % 1` always evaluated to 0; spec.md's Open Questions
// resolve this as a genuine XOR-with-1 toggle.
func (p *Chip) comc() {
	p.cb = (p.cb + 1) & 0x01
}

// comx1000 one's-complements X (TMS1000/1200/1270 opcode 0x00).
func (p *Chip) comx1000() {
	width := p.version.xWidth()
	mask := byte(1<<uint(width)) - 1
	p.x = (^p.x) & mask
}

// comx1100 flips only bit 2 of X (TMS1100/1300 opcode 0x09).
func (p *Chip) comx1100() {
	p.x ^= 0x04
}
