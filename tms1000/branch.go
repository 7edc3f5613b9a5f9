package tms1000

// setPCValue installs a PRPC value set directly by BR/CALL/RETN (as
// opposed to the per-cycle single-step advance in Phase C), recovering
// the matching sequence index via the precomputed inverse table so the
// PC/PCIndex coherence invariant (spec.md §8 property 2) holds
// immediately.
func (p *Chip) setPCValue(v byte) {
	p.pc = v & 0x3F
	p.pcIndex = prpcIndex[p.pc]
}

// branch implements the BR state transition of spec.md §4.6. Only
// fires when the opcode decoded to a BR range; the caller is
// responsible for that range check.
func (p *Chip) branch(op byte) {
	if !p.s {
		return
	}
	if !p.cl {
		p.pa = p.pb
	}
	p.ca = p.cb
	p.setPCValue(op)
}

// call implements the CALL state transition of spec.md §4.6, including
// the documented hardware-undefined nested-CALL case.
func (p *Chip) call(op byte) error {
	if !p.s {
		return nil
	}
	var err error
	if !p.cl {
		p.sr = p.pc
		p.pa, p.pb = p.pb, p.pa
		p.csl = p.ca
		p.ca = p.cb
		p.cl = true
	} else {
		p.ca = p.cb
		p.pb = p.pa
		p.alert(NestedCall{})
		err = NestedCall{}
	}
	p.setPCValue(op)
	return err
}

// retn implements the RETN state transition of spec.md §4.6.
func (p *Chip) retn() {
	p.pa = p.pb
	if p.cl {
		p.setPCValue(p.sr)
		p.ca = p.csl
		p.cl = false
	}
}
