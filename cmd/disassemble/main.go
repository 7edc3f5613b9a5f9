// disassemble loads a raw TMS1000-family ROM image and prints its full
// listing to stdout, one line per ROM word in PRPC execution order.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmchacon/tms1000/disassemble"
	"github.com/jmchacon/tms1000/rom"
	"github.com/jmchacon/tms1000/tms1000"
)

var version = flag.String("version", "TMS1000", "TMS1000 family variant: TMS1000, TMS1100, TMS1200, TMS1270, or TMS1300")

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Usage: %s [-version TMS1000] <rom file>", os.Args[0])
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
	img, err := rom.Load(f)
	if err != nil {
		log.Fatalf("Can't load ROM: %v", err)
	}
	fmt.Print(disassemble.Listing(img, v))
}
