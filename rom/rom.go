// Package rom implements the flat, read-mostly address space that backs
// a TMS1000 family ROM image: a byte array indexed by (chapter, page,
// program-counter storage value) per spec.md §6's address formula.
//
// Adapted from the teacher repo's memory.Bank: that interface chains
// parent banks to recover databus state across a memory map, which the
// TMS1000's single flat ROM never needs, so this package keeps only the
// addressing and power-on behavior and drops the Bank/Parent/DatabusVal
// plumbing (see DESIGN.md).
package rom

import (
	"fmt"
	"io"
)

// Size is the number of addressable bytes: one chapter bit, four page
// bits, six PC bits.
const Size = 1 << 11

// Image is a flat, chapter/page/pc-addressed ROM.
type Image struct {
	data [Size]byte
}

// Addr computes the linear offset for (chapter, page, pc) per spec.md
// §6: (chapter<<10)|(page<<6)|pc.
func Addr(chapter, page, pc byte) int {
	return (int(chapter&0x01) << 10) | (int(page&0x0F) << 6) | int(pc&0x3F)
}

// New returns an Image with every slot filled with 0x7F, matching the
// convention spec.md §8 scenarios assume ("ROM is padded with 0x7F").
// 0x7F falls in the CKI opcode range (0x40-0x7F, cki.go), not BR/CALL
// (0x80-0xFF), so an unpopulated region feeds a CKI constant to
// whatever the instruction PLA decodes rather than altering control
// flow.
func New() *Image {
	img := &Image{}
	for i := range img.data {
		img.data[i] = 0x7F
	}
	return img
}

// Load reads a raw ROM binary, linear by ascending PRPC storage word
// within a page, ascending page within a chapter, ascending chapter, and
// returns the Image. Bytes beyond Size are an error; a short image
// leaves the unfilled region at the 0x7F padding set by New.
func Load(r io.Reader) (*Image, error) {
	img := New()
	n, err := io.ReadFull(r, img.data[:])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("rom: read failed after %d bytes: %w", n, err)
	}
	// A short read leaves the 0x7F padding from New() in place for the
	// remainder, matching hardware behavior for an unburned ROM region.
	var extra [1]byte
	if m, _ := r.Read(extra[:]); m > 0 {
		return nil, fmt.Errorf("rom: image larger than %d bytes", Size)
	}
	return img, nil
}

// Read returns the byte stored at (chapter, page, pc).
func (i *Image) Read(chapter, page, pc byte) byte {
	return i.data[Addr(chapter, page, pc)]
}

// Write updates the byte stored at (chapter, page, pc). Used by the
// assembler to populate an Image; the running engine never calls this.
func (i *Image) Write(chapter, page, pc, val byte) {
	i.data[Addr(chapter, page, pc)] = val
}

// Bytes returns the raw linear backing array in the same layout Load
// expects, suitable for writing back out to a file.
func (i *Image) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, i.data[:])
	return out
}
