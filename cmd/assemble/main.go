// assemble reads a textual listing (the format disassemble.Listing
// produces) and writes the resulting raw ROM image.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/jmchacon/tms1000/assemble"
	"github.com/jmchacon/tms1000/tms1000"
)

var (
	version = flag.String("version", "TMS1000", "TMS1000 family variant: TMS1000, TMS1100, TMS1200, TMS1270, or TMS1300")
	out     = flag.String("out", "a.rom", "output ROM image filename")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Usage: %s [-version TMS1000] [-out a.rom] <listing file>", os.Args[0])
	}
	v, ok := tms1000.ParseVersion(*version)
	if !ok {
		log.Fatalf("Unknown version %q", *version)
	}
	f, err := os.Open(flag.Args()[0])
	if err != nil {
		log.Fatalf("Can't open %s: %v", flag.Args()[0], err)
	}
	defer f.Close()
	img, errs := assemble.Assemble(f, v)
	for _, e := range errs {
		log.Printf("%v", e)
	}
	if len(errs) > 0 {
		log.Fatalf("%d error(s); not writing %s", len(errs), *out)
	}
	if err := os.WriteFile(*out, img.Bytes(), 0644); err != nil {
		log.Fatalf("Can't write %s: %v", *out, err)
	}
}
