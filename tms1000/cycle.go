package tms1000

import "github.com/jmchacon/tms1000/bits"

// Step advances the Chip by exactly one of the four phases of spec.md
// §4.5, sampling k as the K input for this phase. Never blocks.
func (p *Chip) Step(k byte) error {
	p.kIn = bits.Truncate(k, 4)
	var err error
	switch p.phase {
	case 0:
		err = p.phaseA()
	case 1:
		err = p.phaseB()
	case 2:
		err = p.phaseC()
	case 3:
		err = p.phaseD()
	}
	p.phase = (p.phase + 1) % 4
	return err
}

// Cycle advances the Chip through all four phases of one instruction
// cycle, sampling k once as this cycle's K input (spec.md §5: "K inputs
// are sampled at the start of each cycle by the caller").
func (p *Chip) Cycle(k byte) error {
	for i := 0; i < 4; i++ {
		if err := p.Step(k); err != nil {
			return err
		}
	}
	return nil
}

// adderSum computes the TMS1000 adder: a 4-bit sum with carry-out, per
// spec.md §4.4.
func adderSum(pVal, nVal, cin byte) (sum byte, carry bool) {
	total := uint16(pVal) + uint16(nVal) + uint16(cin)
	return byte(total & 0x0F), total >= 16
}

// phaseA is "Rom-address / Read-RAM / ALU-input / K-input": mux selects
// are latched, the adder runs, status-emitting ops apply immediately,
// and RSTR fires for opcode 0x0C (spec.md §4.5).
func (p *Chip) phaseA() error {
	p.adderInc = 0
	p.pMux, p.nMux = 0, 0

	op := p.currentOpcode
	mask := p.currentMask

	ramVal := p.peekRAM(p.x, p.y)
	p.ckVal = cki(op, p.kIn)
	a := p.peekA()
	if uop(mask)&(uMTP|uMTN) != 0 {
		p.checkRAM(p.x, p.y)
	}
	if uop(mask)&(uATN|uNATN) != 0 {
		p.checkA()
	}

	p.pMux = muxP(mask, p.y, ramVal, p.ckVal)
	p.nMux = muxN(mask, ramVal, p.ckVal, a)
	if uop(mask)&uCIN != 0 {
		p.adderInc = 1
	}
	p.sum, p.carry = adderSum(p.pMux, p.nMux, p.adderInc)

	if uop(mask)&uC8 != 0 {
		p.setStatus(p.carry)
	}
	if uop(mask)&uNE != 0 {
		p.setStatus(p.pMux != p.nMux)
	}

	if op == 0x0C {
		p.rstr(p.y)
	}
	return nil
}

// phaseB is "Write-RAM": SBIT/RBIT fire for their fixed opcode ranges,
// then STO/CKM fire from the decoded mask (spec.md §4.5).
func (p *Chip) phaseB() error {
	op := p.currentOpcode
	mask := p.currentMask

	switch {
	case op >= 0x30 && op <= 0x33:
		m := sbitMask(op)
		p.writeRAM(p.x, p.y, p.readRAM(p.x, p.y)&^m)
	case op >= 0x34 && op <= 0x37:
		m := sbitMask(op)
		p.writeRAM(p.x, p.y, p.readRAM(p.x, p.y)|m)
	}

	if uop(mask)&uSTO != 0 {
		p.writeRAM(p.x, p.y, p.readA())
	}
	if uop(mask)&uCKM != 0 {
		p.writeRAM(p.x, p.y, p.ckVal)
	}
	return nil
}

// phaseC is "Register-store / Update-PC / RAM-address / R-output-
// address": the fixed per-opcode micro-ops run, then the ALU result is
// committed to A/Y/SL, then the PC advances by one PRPC step (spec.md
// §4.5).
func (p *Chip) phaseC() error {
	op := p.currentOpcode
	mask := p.currentMask

	p.runFixedOps(op)

	if uop(mask)&uAUTA != 0 {
		p.writeA(p.sum)
	}
	if uop(mask)&uAUTY != 0 {
		p.y = p.sum & 0x0F
	}
	if uop(mask)&uSTSL != 0 {
		p.sl = p.s
	}

	next, idx := prpcNext(p.pcIndex)
	p.pc, p.pcIndex = next, idx
	return nil
}

// phaseD is "Instruction-decode / Execute BR/CALL/RETN / Fetch next":
// the branch/call/return state machine runs, status decays, and the
// next opcode is fetched and decoded (spec.md §4.5).
func (p *Chip) phaseD() error {
	op := p.currentOpcode
	var err error
	switch {
	case op >= 0x80 && op <= 0xBF:
		p.branch(op)
	case op >= 0xC0 && op <= 0xFF:
		err = p.call(op)
	case op == 0x0F:
		p.retn()
	}
	p.decayStatus()
	p.fetchNext()
	return err
}

// setStatus drives S to newS, starting the one-cycle-of-persistence
// countdown if newS is false (spec.md §4.7).
func (p *Chip) setStatus(newS bool) {
	p.s = newS
	if !newS {
		p.statusLifetime = 1
	}
}

// decayStatus implements spec.md §4.7: once S is driven to 0, it
// returns to 1 exactly one cycle later regardless of intervening
// micro-operations.
func (p *Chip) decayStatus() {
	if !p.s {
		if p.statusLifetime == 0 {
			p.s = true
		} else {
			p.statusLifetime--
		}
	}
}

// rstr resets (de-asserts) the R output line at address y. Out-of-
// range y is a silent no-op per spec.md §7.
func (p *Chip) rstr(y byte) {
	if int(y) >= p.version.rWidth() {
		return
	}
	p.rOut &^= 1 << y
}

// setr asserts the R output line at address y. Out-of-range y is a
// silent no-op per spec.md §7.
func (p *Chip) setr(y byte) {
	if int(y) >= p.version.rWidth() {
		return
	}
	p.rOut |= 1 << y
}
