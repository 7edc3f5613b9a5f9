package bits

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		value byte
		width int
		want  byte
	}{
		{"4 bit full", 0xFF, 4, 0x0F},
		{"2 bit", 0x07, 2, 0x03},
		{"6 bit", 0xFF, 6, 0x3F},
		{"already fits", 0x03, 4, 0x03},
		{"zero", 0x00, 4, 0x00},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.value, tc.width); got != tc.want {
				t.Errorf("Truncate(%#02x, %d) = %#02x, want %#02x", tc.value, tc.width, got, tc.want)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name  string
		value byte
		width int
		want  byte
	}{
		{"2 bit 10->01", 0x02, 2, 0x01},
		{"4 bit 0001->1000", 0x01, 4, 0x08},
		{"4 bit 1100->0011", 0x0C, 4, 0x03},
		{"6 bit 000001->100000", 0x01, 6, 0x20},
		{"4 bit symmetric", 0x09, 4, 0x09}, // 1001 reversed is 1001
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Reverse(tc.value, tc.width); got != tc.want {
				t.Errorf("Reverse(%#02x, %d) = %#02x, want %#02x", tc.value, tc.width, got, tc.want)
			}
		})
	}
}

func TestReverseIsInvolution(t *testing.T) {
	for width := 2; width <= 6; width++ {
		max := 1 << uint(width)
		for v := 0; v < max; v++ {
			got := Reverse(Reverse(byte(v), width), width)
			if got != byte(v) {
				t.Errorf("Reverse(Reverse(%#02x, %d), %d) = %#02x, want %#02x", v, width, width, got, v)
			}
		}
	}
}
