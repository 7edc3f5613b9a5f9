package tms1000

import (
	"fmt"
	"strings"
)

// Version is an enumeration of the TMS1000-family variants this engine
// emulates. Mirrors the teacher's CPUType enum shape (cpu.CPUType).
type Version int

const (
	VERSION_UNIMPLEMENTED Version = iota // Start of valid version enumerations.
	VERSION_1000                         // TMS1000: 4 RAM files, 2-bit X, no chapters.
	VERSION_1100                         // TMS1100: 8 RAM files, 3-bit X, chapters.
	VERSION_1200                         // TMS1200: same datapath as TMS1000, different R width.
	VERSION_1270                         // TMS1270: same datapath as TMS1000, different R width.
	VERSION_1300                         // TMS1300: same datapath as TMS1100, different R width.
	VERSION_MAX                          // End of version enumerations.
)

// family bundles the datapath-width divergences of spec.md §4.8.
type family struct {
	xWidth     int  // width of the X (RAM file index) register.
	ramFiles   int  // number of 16-word RAM files.
	rWidth     int  // width of the R output register.
	hasChapter bool // whether CA/CB/CSL participate (1100/1300 only).
}

var families = map[Version]family{
	VERSION_1000: {xWidth: 2, ramFiles: 4, rWidth: 11, hasChapter: false},
	VERSION_1100: {xWidth: 3, ramFiles: 8, rWidth: 11, hasChapter: true},
	VERSION_1200: {xWidth: 2, ramFiles: 4, rWidth: 13, hasChapter: false},
	VERSION_1270: {xWidth: 2, ramFiles: 4, rWidth: 13, hasChapter: false},
	VERSION_1300: {xWidth: 3, ramFiles: 8, rWidth: 16, hasChapter: true},
}

// String implements fmt.Stringer for diagnostic output.
func (v Version) String() string {
	switch v {
	case VERSION_1000:
		return "TMS1000"
	case VERSION_1100:
		return "TMS1100"
	case VERSION_1200:
		return "TMS1200"
	case VERSION_1270:
		return "TMS1270"
	case VERSION_1300:
		return "TMS1300"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// ParseVersion maps a family name ("TMS1000", case-insensitive, with or
// without the "TMS" prefix) to its Version, for CLI flag parsing. It
// returns VERSION_UNIMPLEMENTED and ok=false for anything else.
func ParseVersion(s string) (Version, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "TMS")
	switch s {
	case "1000":
		return VERSION_1000, true
	case "1100":
		return VERSION_1100, true
	case "1200":
		return VERSION_1200, true
	case "1270":
		return VERSION_1270, true
	case "1300":
		return VERSION_1300, true
	default:
		return VERSION_UNIMPLEMENTED, false
	}
}

// hasChapters reports whether this family addresses ROM with a chapter
// bit and maintains CA/CB/CSL (TMS1100/TMS1300 only).
func (v Version) hasChapters() bool {
	return families[v].hasChapter
}

// HasChapters is the exported form of hasChapters, for callers outside
// this package (the disassembler/assembler, the debugger) that need to
// branch on family shape without duplicating the family table.
func (v Version) HasChapters() bool {
	return v.hasChapters()
}

// XWidth is the exported form of xWidth.
func (v Version) XWidth() int { return v.xWidth() }

// RAMFiles is the exported form of ramFiles.
func (v Version) RAMFiles() int { return v.ramFiles() }

// RWidth is the exported form of rWidth.
func (v Version) RWidth() int { return v.rWidth() }

func (v Version) xWidth() int {
	return families[v].xWidth
}

func (v Version) ramFiles() int {
	return families[v].ramFiles
}

func (v Version) rWidth() int {
	return families[v].rWidth
}
