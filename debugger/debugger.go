// Package debugger implements an interactive command shell over a
// *tms1000.Chip: a bufio.Scanner-driven REPL with command-table
// dispatch, one verb per spec.md §6's CLI surface. Breakpoint and
// trigger state lives here, not on the Chip, matching the external
// interface boundary of spec.md §4.10 ("driver loop ... may toggle
// breakpoints on R/O values").
//
// Grounded on the teacher's plain flag-based command-line tools
// (disassembler/disassembler.go, hand_asm/hand_asm.go) for argument
// parsing conventions, and structurally on the verb/alias grouping a
// retro-CPU debugger shell needs (cross-referenced against
// other_examples' Gopher2600 debugger command help text; no code or
// text from that file is reused here).
package debugger

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmchacon/tms1000/disassemble"
	"github.com/jmchacon/tms1000/tms1000"
)

// Command is one verb the shell dispatches, with its accepted aliases.
type Command struct {
	Name    string
	Aliases []string
	Help    string
	Run     func(d *Debugger, args []string) (quit bool, err error)
}

// Debugger owns the REPL loop, the K input latch, and breakpoint/
// trigger state layered over a *tms1000.Chip.
type Debugger struct {
	chip *tms1000.Chip
	out  io.Writer

	k byte

	haltOnAlert bool
	breakpoints map[byte]bool
	oTriggers   map[byte]bool
	rTriggers   map[uint16]bool

	commands map[string]*Command
}

// New constructs a Debugger wrapping chip, writing shell output to out.
func New(chip *tms1000.Chip, out io.Writer) *Debugger {
	d := &Debugger{
		chip:        chip,
		out:         out,
		breakpoints: make(map[byte]bool),
		oTriggers:   make(map[byte]bool),
		rTriggers:   make(map[uint16]bool),
	}
	d.commands = buildCommands()
	return d
}

var autoCounts = map[string]int{
	"a100":      100,
	"a1000":     1000,
	"a10000":    10000,
	"a100000":   100000,
	"a1000000":  1000000,
	"a10000000": 10000000,
}

func buildCommands() map[string]*Command {
	cmds := []*Command{
		{Name: "step", Aliases: []string{"s"}, Help: "advance one phase", Run: cmdStep},
		{Name: "cycle", Aliases: []string{"c"}, Help: "advance one full instruction cycle", Run: cmdCycle},
		{Name: "setk", Aliases: []string{"sk"}, Help: "setk <0-15>: set the K input latch", Run: cmdSetK},
		{Name: "seenext", Aliases: []string{"next", "n"}, Help: "disassemble the next staged instruction", Run: cmdSeeNext},
		{Name: "setbreak", Aliases: []string{"setb", "sb"}, Help: "setbreak <pc>: break when PC reaches pc", Run: cmdSetBreak},
		{Name: "sethalt", Aliases: []string{"seth"}, Help: "sethalt <0|1>: halt on ALERT log entries", Run: cmdSetHalt},
		{Name: "printram", Aliases: []string{"pr"}, Help: "dump all RAM files", Run: cmdPrintRAM},
		{Name: "clearotriggers", Aliases: []string{"cot"}, Help: "clear O-output triggers", Run: cmdClearOTriggers},
		{Name: "clearrtriggers", Aliases: []string{"crt"}, Help: "clear R-output triggers", Run: cmdClearRTriggers},
		{Name: "setotrigger", Aliases: []string{"sot"}, Help: "setotrigger <val>: break when O==val", Run: cmdSetOTrigger},
		{Name: "setrtrigger", Aliases: []string{"srt"}, Help: "setrtrigger <val>: break when R==val", Run: cmdSetRTrigger},
		{Name: "settings", Aliases: []string{"ps"}, Help: "print K, breakpoints, triggers, halt flag", Run: cmdSettings},
		{Name: "registers", Aliases: []string{"pn"}, Help: "print the register file", Run: cmdRegisters},
		{Name: "setlog", Aliases: []string{"lo"}, Help: "setlog <0|1>: toggle ALERT log accumulation", Run: cmdSetLog},
		{Name: "init", Aliases: []string{"initialize"}, Help: "reset control registers (the INIT pin)", Run: cmdInit},
		{Name: "quit", Aliases: []string{"q"}, Help: "exit the shell", Run: cmdQuit},
	}
	m := make(map[string]*Command)
	for _, c := range cmds {
		m[c.Name] = c
		for _, a := range c.Aliases {
			m[a] = c
		}
	}
	for name, n := range autoCounts {
		n := n
		m[name] = &Command{
			Name: name,
			Help: fmt.Sprintf("run %d cycles, stopping early on a breakpoint or trigger", n),
			Run: func(d *Debugger, args []string) (bool, error) {
				return false, d.autoRun(n)
			},
		}
	}
	return m
}

// Run reads commands from in until EOF or a quit command, writing
// prompts and responses to d.out. It returns nil on a normal quit or
// EOF; a non-nil error indicates an I/O failure reading in.
func (d *Debugger) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(d.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, ok := d.commands[strings.ToLower(fields[0])]
		if !ok {
			fmt.Fprintf(d.out, "unrecognized command %q\n", fields[0])
			continue
		}
		quit, err := cmd.Run(d, fields[1:])
		if err != nil {
			fmt.Fprintf(d.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func cmdStep(d *Debugger, args []string) (bool, error) {
	err := d.chip.Step(d.k)
	d.reportAlerts()
	return false, err
}

func cmdCycle(d *Debugger, args []string) (bool, error) {
	err := d.chip.Cycle(d.k)
	d.reportAlerts()
	return false, err
}

func cmdSetK(d *Debugger, args []string) (bool, error) {
	v, err := parseArg(args, 0)
	if err != nil {
		return false, err
	}
	d.k = byte(v) & 0x0F
	return false, nil
}

func cmdSeeNext(d *Debugger, args []string) (bool, error) {
	text, _ := disassemble.Step(d.chip.CA(), d.chip.PA(), d.chip.PC(), d.chip.ROM(), d.chip.Version())
	fmt.Fprintf(d.out, "%d %d %d : %s\n", d.chip.CA(), d.chip.PA(), d.chip.PC(), text)
	return false, nil
}

func cmdSetBreak(d *Debugger, args []string) (bool, error) {
	v, err := parseArg(args, 0)
	if err != nil {
		return false, err
	}
	d.breakpoints[byte(v)&0x3F] = true
	return false, nil
}

func cmdSetHalt(d *Debugger, args []string) (bool, error) {
	v, err := parseArg(args, 0)
	if err != nil {
		return false, err
	}
	d.haltOnAlert = v != 0
	return false, nil
}

func cmdPrintRAM(d *Debugger, args []string) (bool, error) {
	for file := byte(0); file < byte(d.chip.Version().RAMFiles()); file++ {
		fmt.Fprintf(d.out, "file %d:", file)
		for word := byte(0); word < 16; word++ {
			fmt.Fprintf(d.out, " %X", d.chip.RAM(file, word))
		}
		fmt.Fprintln(d.out)
	}
	return false, nil
}

func cmdClearOTriggers(d *Debugger, args []string) (bool, error) {
	d.oTriggers = make(map[byte]bool)
	return false, nil
}

func cmdClearRTriggers(d *Debugger, args []string) (bool, error) {
	d.rTriggers = make(map[uint16]bool)
	return false, nil
}

func cmdSetOTrigger(d *Debugger, args []string) (bool, error) {
	v, err := parseArg(args, 0)
	if err != nil {
		return false, err
	}
	d.oTriggers[byte(v)] = true
	return false, nil
}

func cmdSetRTrigger(d *Debugger, args []string) (bool, error) {
	v, err := parseArg(args, 0)
	if err != nil {
		return false, err
	}
	d.rTriggers[uint16(v)] = true
	return false, nil
}

func cmdSettings(d *Debugger, args []string) (bool, error) {
	fmt.Fprintf(d.out, "k=%d haltOnAlert=%v\n", d.k, d.haltOnAlert)
	fmt.Fprintf(d.out, "breakpoints=%v\n", sortedByteKeys(d.breakpoints))
	fmt.Fprintf(d.out, "oTriggers=%v\n", sortedByteKeys(d.oTriggers))
	fmt.Fprintf(d.out, "rTriggers=%v\n", sortedUint16Keys(d.rTriggers))
	return false, nil
}

func cmdRegisters(d *Debugger, args []string) (bool, error) {
	c := d.chip
	fmt.Fprintf(d.out, "A=%X X=%X Y=%X PA=%X PB=%X PC=%X(idx %d) SR=%X\n",
		c.A(), c.X(), c.Y(), c.PA(), c.PB(), c.PC(), c.PCIndex(), c.SR())
	fmt.Fprintf(d.out, "CA=%X CB=%X CSL=%X CL=%v S=%v SL=%v\n",
		c.CA(), c.CB(), c.CSL(), c.CL(), c.S(), c.SL())
	fmt.Fprintf(d.out, "R=%X O=%X phase=%d\n", c.ROut(), c.OOut(), c.Phase())
	return false, nil
}

func cmdSetLog(d *Debugger, args []string) (bool, error) {
	v, err := parseArg(args, 0)
	if err != nil {
		return false, err
	}
	d.chip.SetLogging(v != 0)
	return false, nil
}

func cmdInit(d *Debugger, args []string) (bool, error) {
	d.chip.Initialize()
	return false, nil
}

func cmdQuit(d *Debugger, args []string) (bool, error) {
	return true, nil
}

// autoRun executes up to n cycles, stopping early on a breakpoint, an
// R/O trigger match, or (if haltOnAlert) a freshly logged ALERT.
func (d *Debugger) autoRun(n int) error {
	for i := 0; i < n; i++ {
		if err := d.chip.Cycle(d.k); err != nil {
			fmt.Fprintf(d.out, "error: %v\n", err)
		}
		if d.reportAlerts() {
			return nil
		}
		if d.breakpoints[d.chip.PC()] {
			fmt.Fprintf(d.out, "breakpoint hit at PC=%X after %d cycles\n", d.chip.PC(), i+1)
			return nil
		}
		if d.oTriggers[d.chip.OOut()] {
			fmt.Fprintf(d.out, "O trigger hit (O=%X) after %d cycles\n", d.chip.OOut(), i+1)
			return nil
		}
		if d.rTriggers[d.chip.ROut()] {
			fmt.Fprintf(d.out, "R trigger hit (R=%X) after %d cycles\n", d.chip.ROut(), i+1)
			return nil
		}
	}
	return nil
}

// reportAlerts prints and drains the chip's log, returning true when
// haltOnAlert is set and at least one entry was printed.
func (d *Debugger) reportAlerts() bool {
	log := d.chip.Log()
	for _, l := range log {
		fmt.Fprintln(d.out, l)
	}
	if d.haltOnAlert && len(log) > 0 {
		fmt.Fprintln(d.out, "halted on ALERT")
		return true
	}
	return false
}

func parseArg(args []string, i int) (int64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing argument %d", i)
	}
	return strconv.ParseInt(args[i], 0, 64)
}

func sortedByteKeys(m map[byte]bool) []byte {
	out := make([]byte, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func sortedUint16Keys(m map[uint16]bool) []uint16 {
	out := make([]uint16, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
