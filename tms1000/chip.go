// Package tms1000 implements the cycle-accurate core of a TMS1000
// family 4-bit microcontroller: the register file, the four-phase
// instruction cycle, the PLA-driven micro-instruction decoder, and the
// branch/call/return state machine laid over the pseudo-random program
// counter. Family divergences (TMS1000/1100/1200/1270/1300) are
// selected by Version at construction time.
//
// Adapted from the teacher repo's cpu.Chip: the tick/phase split, the
// ChipDef construction shape, and the named-error-struct convention all
// follow cpu/cpu.go, generalized from the 6502's single-opcode Tick to
// this chip's four explicit, spec-named phases.
package tms1000

import (
	"fmt"

	"github.com/jmchacon/tms1000/pla"
	"github.com/jmchacon/tms1000/rom"
)

// Chip is the register file and execution state of one TMS1000-family
// core (spec.md §3).
type Chip struct {
	version Version

	romImg *rom.Image
	ipla   *pla.Table
	opla   *pla.Table

	// Register file.
	a        byte
	aDefined bool
	x        byte
	y        byte
	pa, pb   byte
	pc       byte
	pcIndex  byte
	sr       byte
	ca, cb   byte
	csl      byte
	cl       bool
	s        bool
	sl       bool
	statusLifetime int

	// RAM: up to 8 files of 16 four-bit words. ramDefined tracks which
	// cells have been written since power-on so reads before first
	// write can be diagnosed per spec.md §3 Lifecycle, without letting
	// an out-of-width sentinel violate the "every register value <=
	// declared width" invariant (spec.md §8 property 1), which is why
	// this is a defined-bit per cell rather than a literal 255 sentinel.
	ram        [8][16]byte
	ramDefined [8][16]bool

	// Intra-cycle latches, reset at the top of each Phase A.
	pMux, nMux byte
	adderInc   byte
	ckVal      byte
	sum        byte
	carry      bool

	kIn byte
	rOut uint16
	oOut byte

	currentOpcode byte
	currentMask   uint16

	phase int

	logging bool
	logBuf  []string
}

// ChipDef defines a TMS1000-family core to construct.
type ChipDef struct {
	// Version selects the family variant.
	Version Version
	// ROM is the program image; required.
	ROM *rom.Image
	// InstructionPLA decodes opcodes into the micro-op mask; required.
	InstructionPLA *pla.Table
	// OutputPLA maps the {SL,A} composite to the O output; required.
	OutputPLA *pla.Table
}

// Init constructs a Chip in power-on state: control registers are
// reset (as INITIALIZE/the INIT pin would do) and A and RAM are left
// undefined, so reading either as an operand before its first write
// raises an ALERT. X and Y start at 0 and are not tracked; reading them
// raises no diagnostic. Returns InvalidState if any required
// input is missing or Version is out of range.
func Init(def *ChipDef) (*Chip, error) {
	if def.Version <= VERSION_UNIMPLEMENTED || def.Version >= VERSION_MAX {
		return nil, InvalidState{Reason: fmt.Sprintf("version %d is invalid", def.Version)}
	}
	if def.ROM == nil {
		return nil, InvalidState{Reason: "ROM image is required"}
	}
	if def.InstructionPLA == nil {
		return nil, InvalidState{Reason: "instruction PLA is required"}
	}
	if def.OutputPLA == nil {
		return nil, InvalidState{Reason: "output PLA is required"}
	}
	p := &Chip{
		version: def.Version,
		romImg:  def.ROM,
		ipla:    def.InstructionPLA,
		opla:    def.OutputPLA,
	}
	p.Initialize()
	return p, nil
}

// Initialize models the INIT pin: control registers (PA, PB, chapter
// registers, CL, S, SL, status lifetime, PC/PCIndex, the intra-cycle
// latches) are reset to their power-on values. RAM and the A/X/Y data
// registers are left untouched, matching the physical chip (spec.md §3
// Lifecycle).
func (p *Chip) Initialize() {
	p.pa = 15
	p.pb = 15
	p.ca, p.cb, p.csl = 0, 0, 0
	p.cl = false
	p.s = true
	p.sl = false
	p.statusLifetime = 0
	// The element immediately before index 0 in the PRPC sequence, so
	// that the first cycle's Phase C advance lands PC on index 0 (value
	// 0x00) -- see spec.md §8 scenario S1.
	p.pcIndex = 63
	p.pc = prpcSequence[p.pcIndex]
	p.sr = p.pc
	p.pMux, p.nMux = 0, 0
	p.adderInc = 0
	p.kIn = 0
	p.phase = 0
	p.fetchNext()
}

// fetchNext reads the opcode at the current (chapter, page, pc) address
// and decodes it through the instruction PLA, staging it for the next
// Phase A. This mirrors the real Phase D fetch (spec.md §4.5); it is
// also called directly by Initialize to pre-stage the very first
// instruction, matching the hardware's INIT-time address reset.
func (p *Chip) fetchNext() {
	op := p.romImg.Read(p.ca, p.pa, p.pc)
	p.currentOpcode = op
	p.currentMask = p.ipla.Lookup(op)
}

// Clone returns an independent deep copy of the Chip. Per spec.md §5,
// cloning yields an independent copy rather than sharing any mutable
// state (ROM and the PLA tables are immutable and safely shared).
func (p *Chip) Clone() *Chip {
	c := *p
	c.logBuf = append([]string(nil), p.logBuf...)
	return &c
}

// Version returns the family variant this Chip emulates.
func (p *Chip) Version() Version { return p.version }

// A returns the accumulator.
func (p *Chip) A() byte { return p.a }

// X returns the RAM file index register.
func (p *Chip) X() byte { return p.x }

// Y returns the RAM word index register.
func (p *Chip) Y() byte { return p.y }

// PA returns the current ROM page register.
func (p *Chip) PA() byte { return p.pa }

// PB returns the pending ROM page register.
func (p *Chip) PB() byte { return p.pb }

// PC returns the current PRPC value.
func (p *Chip) PC() byte { return p.pc }

// PCIndex returns the current PC's position within the PRPC sequence.
func (p *Chip) PCIndex() byte { return p.pcIndex }

// SR returns the saved-PC register used for subroutine return. While
// CL==0, SR tracks PC continuously (spec.md §3 invariant); this getter
// reflects that directly rather than caching a stale value.
func (p *Chip) SR() byte {
	if !p.cl {
		return p.pc
	}
	return p.sr
}

// CA returns the chapter address register (always 0 on 1000/1200/1270).
func (p *Chip) CA() byte { return p.ca }

// CB returns the chapter buffer register (always 0 on 1000/1200/1270).
func (p *Chip) CB() byte { return p.cb }

// CSL returns the chapter subroutine latch (always 0 on 1000/1200/1270).
func (p *Chip) CSL() byte { return p.csl }

// CL returns the call-active latch.
func (p *Chip) CL() bool { return p.cl }

// S returns the branch-enable status flag.
func (p *Chip) S() bool { return p.s }

// SL returns the latched status flag (captured for TDO).
func (p *Chip) SL() bool { return p.sl }

// StatusLifetime returns the countdown that keeps S==0 observable for
// exactly one cycle (spec.md §4.7); always 0 or 1.
func (p *Chip) StatusLifetime() int { return p.statusLifetime }

// RAM returns the value stored at RAM[file][word], truncated to 4
// bits. Reading a cell that has never been written logs an ALERT (via
// the same path Phase A uses) and returns the chip's current
// fallback-zero convention.
func (p *Chip) RAM(file, word byte) byte {
	return p.readRAM(file, word)
}

// ROut returns the latched R output register, width depending on
// Version (spec.md §3).
func (p *Chip) ROut() uint16 {
	return p.rOut & ((1 << uint(p.version.rWidth())) - 1)
}

// OOut returns the O output register as produced by routing {SL,A}
// through the output PLA (spec.md §2 "Data flow").
func (p *Chip) OOut() byte {
	return p.oOut
}

// Phase returns the current intra-cycle phase, 0..3.
func (p *Chip) Phase() int { return p.phase }

// ROM returns the program image this Chip executes, for external
// collaborators (the disassembler driving a debugger's "seenext") that
// need to read ahead of the staged opcode without duplicating storage.
func (p *Chip) ROM() *rom.Image { return p.romImg }

// SetLogging enables or disables ALERT/diagnostic log accumulation.
// The log is never a correctness dependency (spec.md §5); this only
// controls whether entries are retained.
func (p *Chip) SetLogging(on bool) { p.logging = on }

// Log drains and returns the accumulated diagnostic entries.
func (p *Chip) Log() []string {
	out := p.logBuf
	p.logBuf = nil
	return out
}

func (p *Chip) alert(err error) {
	if !p.logging {
		return
	}
	p.logBuf = append(p.logBuf, err.Error())
}

func (p *Chip) readA() byte {
	p.checkA()
	return p.a
}

// peekA returns A without raising an ALERT, for callers (Phase A's mux
// feed) that read the register speculatively and only actually consume
// it as an operand if the decoded mask selects it.
func (p *Chip) peekA() byte {
	return p.a
}

// checkA raises an ALERT if A is being consumed as an operand while
// still undefined (spec.md §7).
func (p *Chip) checkA() {
	if !p.aDefined {
		p.alert(UndefinedRead{Register: "A"})
	}
}

func (p *Chip) writeA(v byte) {
	p.a = v & 0x0F
	p.aDefined = true
}

func (p *Chip) readRAM(x, y byte) byte {
	p.checkRAM(x, y)
	return p.peekRAM(x, y)
}

// peekRAM returns RAM[x][y] without raising an ALERT, for callers
// (Phase A's mux feed) that read the cell speculatively and only
// actually consume it as an operand if the decoded mask selects it.
func (p *Chip) peekRAM(x, y byte) byte {
	x &= byte(p.version.ramFiles() - 1)
	y &= 0x0F
	return p.ram[x][y]
}

// checkRAM raises an ALERT if RAM[x][y] is being consumed as an
// operand while still undefined (spec.md §7).
func (p *Chip) checkRAM(x, y byte) {
	x &= byte(p.version.ramFiles() - 1)
	y &= 0x0F
	if !p.ramDefined[x][y] {
		p.alert(UndefinedRead{Register: fmt.Sprintf("RAM[%d][%d]", x, y)})
	}
}

func (p *Chip) writeRAM(x, y, v byte) {
	x &= byte(p.version.ramFiles() - 1)
	y &= 0x0F
	p.ram[x][y] = v & 0x0F
	p.ramDefined[x][y] = true
}
