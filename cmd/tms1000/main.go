// tms1000 loads a ROM image and the pair of PLA files that define a
// TMS1000-family instruction set, then drops into an interactive
// debugger shell reading commands from stdin.
//
// Grounded on the teacher's vcs/vcs_main.go: flag-parsed positional
// arguments, log.Fatalf on any load failure, a single long-running
// driver loop. That file's SDL2 video setup and frame-done callback
// have no analog here since this chip has no display (see DESIGN.md).
package main

import (
	"flag"
	"log"
	"os"

	"github.com/jmchacon/tms1000/debugger"
	"github.com/jmchacon/tms1000/pla"
	"github.com/jmchacon/tms1000/rom"
	"github.com/jmchacon/tms1000/tms1000"
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 4 {
		log.Fatalf("Usage: %s <version> <rom file> <instruction pla file> <output pla file>", os.Args[0])
	}
	v, ok := tms1000.ParseVersion(args[0])
	if !ok {
		log.Fatalf("Unknown version %q", args[0])
	}

	romImg := loadROM(args[1])
	ipla := loadPLA(args[2])
	opla := loadPLA(args[3])

	chip, err := tms1000.Init(&tms1000.ChipDef{
		Version:        v,
		ROM:            romImg,
		InstructionPLA: ipla,
		OutputPLA:      opla,
	})
	if err != nil {
		log.Fatalf("Can't initialize %s: %v", v, err)
	}
	chip.SetLogging(true)

	d := debugger.New(chip, os.Stdout)
	if err := d.Run(os.Stdin); err != nil {
		log.Fatalf("Debugger shell error: %v", err)
	}
}

func loadROM(fn string) *rom.Image {
	f, err := os.Open(fn)
	if err != nil {
		log.Fatalf("Can't open %s: %v", fn, err)
	}
	defer f.Close()
	img, err := rom.Load(f)
	if err != nil {
		log.Fatalf("Can't load ROM %s: %v", fn, err)
	}
	return img
}

func loadPLA(fn string) *pla.Table {
	f, err := os.Open(fn)
	if err != nil {
		log.Fatalf("Can't open %s: %v", fn, err)
	}
	defer f.Close()
	t, err := pla.Parse(f)
	if err != nil {
		log.Fatalf("Can't parse PLA %s: %v", fn, err)
	}
	return t
}
