package rom

import (
	"bytes"
	"testing"
)

func TestAddrFormula(t *testing.T) {
	tests := []struct {
		chapter, page, pc byte
		want              int
	}{
		{0, 0, 0, 0},
		{0, 0, 0x3F, 0x3F},
		{0, 1, 0, 0x40},
		{0, 15, 0x3F, 0x3FF},
		{1, 0, 0, 0x400},
		{1, 15, 0x3F, 0x7FF},
	}
	for _, tc := range tests {
		if got := Addr(tc.chapter, tc.page, tc.pc); got != tc.want {
			t.Errorf("Addr(%d,%d,%#02x) = %#04x, want %#04x", tc.chapter, tc.page, tc.pc, got, tc.want)
		}
	}
}

func TestNewPadsWithNoOp(t *testing.T) {
	img := New()
	for chapter := byte(0); chapter <= 1; chapter++ {
		if got := img.Read(chapter, 3, 10); got != 0x7F {
			t.Errorf("Read(%d,3,10) = %#02x, want 0x7F", chapter, got)
		}
	}
}

func TestLoadRoundTrip(t *testing.T) {
	data := make([]byte, Size)
	for i := range data {
		data[i] = byte(i)
	}
	img, err := Load(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := img.Read(0, 1, 2); got != data[Addr(0, 1, 2)] {
		t.Errorf("Read(0,1,2) = %#02x, want %#02x", got, data[Addr(0, 1, 2)])
	}
	if !bytes.Equal(img.Bytes(), data) {
		t.Errorf("Bytes() did not round trip the loaded image")
	}
}

func TestLoadShortImageKeepsPadding(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	img, err := Load(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := img.Read(0, 0, 0); got != 0x01 {
		t.Errorf("Read(0,0,0) = %#02x, want 0x01", got)
	}
	if got := img.Read(0, 0, 10); got != 0x7F {
		t.Errorf("Read(0,0,10) = %#02x, want 0x7F (padding)", got)
	}
}

func TestLoadOversizedImageErrors(t *testing.T) {
	data := make([]byte, Size+1)
	if _, err := Load(bytes.NewReader(data)); err == nil {
		t.Fatalf("Load: expected error for oversized image")
	}
}

func TestWrite(t *testing.T) {
	img := New()
	img.Write(1, 2, 3, 0x42)
	if got := img.Read(1, 2, 3); got != 0x42 {
		t.Errorf("Read(1,2,3) = %#02x, want 0x42", got)
	}
}
