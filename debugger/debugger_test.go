package debugger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jmchacon/tms1000/pla"
	"github.com/jmchacon/tms1000/rom"
	"github.com/jmchacon/tms1000/tms1000"
)

func newTestChip(t *testing.T) *tms1000.Chip {
	t.Helper()
	img := rom.New()
	img.Write(0, 15, 0x20, 0x01) // first staged opcode: TDO (fixed op, ignores ipla)
	img.Write(0, 15, 0x00, 0x06) // SETR

	ipla, err := pla.Parse(strings.NewReader("11111111 1\n"))
	if err != nil {
		t.Fatalf("pla.Parse(ipla): %v", err)
	}
	opla, err := pla.Parse(strings.NewReader("11111 1\n"))
	if err != nil {
		t.Fatalf("pla.Parse(opla): %v", err)
	}
	c, err := tms1000.Init(&tms1000.ChipDef{
		Version:        tms1000.VERSION_1000,
		ROM:            img,
		InstructionPLA: ipla,
		OutputPLA:      opla,
	})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return c
}

func runShell(t *testing.T, c *tms1000.Chip, script string) string {
	t.Helper()
	var out bytes.Buffer
	d := New(c, &out)
	if err := d.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestCycleAndRegistersReportState(t *testing.T) {
	c := newTestChip(t)
	out := runShell(t, c, "cycle\nregisters\nquit\n")
	if !strings.Contains(out, "PC=0") {
		t.Errorf("output missing PC report: %q", out)
	}
}

func TestSetKIsLatchedAcrossCommands(t *testing.T) {
	c := newTestChip(t)
	d := New(c, &bytes.Buffer{})
	if _, err := d.commands["setk"].Run(d, []string{"9"}); err != nil {
		t.Fatalf("setk: %v", err)
	}
	if d.k != 9 {
		t.Errorf("k = %d, want 9", d.k)
	}
}

func TestQuitStopsTheLoopWithoutReadingFurtherCommands(t *testing.T) {
	c := newTestChip(t)
	var out bytes.Buffer
	d := New(c, &out)
	// "bogus" after quit must never be read: if quit failed to stop
	// iteration, Run would go on to report it as an unrecognized command.
	err := d.Run(strings.NewReader("quit\nbogus\n"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(out.String(), "unrecognized") {
		t.Errorf("shell kept processing input after quit: %q", out.String())
	}
}

func TestUnrecognizedCommandReportsAndContinues(t *testing.T) {
	c := newTestChip(t)
	out := runShell(t, c, "bogus\nquit\n")
	if !strings.Contains(out, `unrecognized command "bogus"`) {
		t.Errorf("output = %q, want an unrecognized-command message", out)
	}
}

func TestSetBreakStopsAutoRun(t *testing.T) {
	c := newTestChip(t)
	d := New(c, &bytes.Buffer{})
	// PC steps through the PRPC sequence starting at 0x00; breaking on
	// the third value (0x03) should stop autoRun well short of 100.
	d.breakpoints[0x03] = true
	if err := d.autoRun(100); err != nil {
		t.Fatalf("autoRun: %v", err)
	}
	if got := c.PC(); got != 0x03 {
		t.Errorf("PC after autoRun = %#02x, want 0x03 (stopped at breakpoint)", got)
	}
}

func TestPrintRAMListsEveryFile(t *testing.T) {
	c := newTestChip(t)
	out := runShell(t, c, "printram\nquit\n")
	count := strings.Count(out, "file ")
	if count != c.Version().RAMFiles() {
		t.Errorf("printram emitted %d file lines, want %d", count, c.Version().RAMFiles())
	}
}

func TestSetLogToggleReachesChip(t *testing.T) {
	c := newTestChip(t)
	c.SetLogging(false)
	d := New(c, &bytes.Buffer{})
	if _, err := d.commands["setlog"].Run(d, []string{"1"}); err != nil {
		t.Fatalf("setlog: %v", err)
	}
	c.RAM(0, 0) // undefined read: only logged if logging is now on
	if len(c.Log()) == 0 {
		t.Errorf("setlog 1 did not enable ALERT logging on the chip")
	}
}
