// Package pla parses the sum-of-products dumps that describe a TMS1000
// family Programmable Logic Array and expands them into a concrete
// lookup table from input bit pattern to output bitmask.
//
// The instruction-decode PLA and the output PLA are both represented by
// a *Table; only the bit width of the input pattern differs between
// them.
package pla

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseError reports a PLA file that could not produce a usable table.
type ParseError struct {
	Reason string
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("pla: %s", e.Reason)
}

// Table is a lookup from an expanded input bit pattern to an output
// bitmask. Inputs not present in the table read as zero, matching the
// hardware's "missing inputs are a no-op" behavior (spec.md §4.2).
type Table struct {
	width   int
	entries map[byte]uint16
}

// Width returns the bit width of inputs this table was built for.
func (t *Table) Width() int {
	return t.width
}

// Lookup returns the OR-combined output bitmask for input, or zero if
// input has no matching product term.
func (t *Table) Lookup(input byte) uint16 {
	return t.entries[input]
}

// Parse reads a PLA dump of "<input-pattern> <output-pattern>" lines
// over the alphabet {0,1,-} and expands don't-cares into concrete table
// entries. Blank lines, lines that don't tokenize into exactly two
// fields, and lines whose output pattern is all zeros are skipped
// silently: canonical PLA dumps carry free-form commentary and
// all-zero lines carry no signal.
func Parse(r io.Reader) (*Table, error) {
	t := &Table{entries: make(map[byte]uint16)}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		inPat, outPat := fields[0], fields[1]
		if !validPattern(inPat) || !validPattern(outPat) {
			continue
		}
		if isAllZero(outPat) {
			continue
		}
		if t.width == 0 {
			t.width = len(inPat)
		} else if len(inPat) != t.width {
			return nil, ParseError{Reason: fmt.Sprintf("line %d: input width %d does not match table width %d", lineNo, len(inPat), t.width)}
		}
		out, err := parseBits(outPat)
		if err != nil {
			continue
		}
		for _, concrete := range expand(inPat) {
			t.entries[concrete] |= out
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, ParseError{Reason: err.Error()}
	}
	if t.width == 0 {
		return nil, ParseError{Reason: "no usable product terms found"}
	}
	return t, nil
}

func validPattern(s string) bool {
	for _, c := range s {
		if c != '0' && c != '1' && c != '-' {
			return false
		}
	}
	return len(s) > 0
}

func isAllZero(s string) bool {
	for _, c := range s {
		if c != '0' {
			return false
		}
	}
	return true
}

func parseBits(s string) (uint16, error) {
	var v uint16
	for _, c := range s {
		v <<= 1
		switch c {
		case '1':
			v |= 1
		case '0':
		default:
			return 0, ParseError{Reason: fmt.Sprintf("non-concrete output bit %q", c)}
		}
	}
	return v, nil
}

// expand enumerates every concrete byte value matching pattern, treating
// the leftmost character as the high order bit of the result. Dashes are
// resolved right-to-left: the rightmost don't-care splits the
// accumulated set first, which keeps the final bit-to-position mapping
// consistent with the hardware's left-is-high wiring regardless of how
// many dashes a term carries.
func expand(pattern string) []byte {
	results := []byte{0}
	width := len(pattern)
	for i := width - 1; i >= 0; i-- {
		bitPos := uint(width - 1 - i)
		c := pattern[i]
		switch c {
		case '0':
			// bit stays clear, nothing to do.
		case '1':
			for idx := range results {
				results[idx] |= 1 << bitPos
			}
		case '-':
			next := make([]byte, 0, len(results)*2)
			for _, r := range results {
				next = append(next, r)
				next = append(next, r|(1<<bitPos))
			}
			results = next
		}
	}
	return results
}
