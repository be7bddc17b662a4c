package bits

import (
	"testing"
)

func TestMask(t *testing.T) {
	tests := []struct {
		desc       string
		start, end uint64
		want       uint64
	}{
		{desc: "single low bit", start: 0, end: 1, want: 0x1},
		{desc: "low byte", start: 0, end: 8, want: 0xFF},
		{desc: "middle bits", start: 4, end: 8, want: 0xF0},
		{desc: "full word", start: 0, end: 64, want: ^uint64(0)},
		{desc: "28 bits", start: 0, end: 28, want: 0x0FFFFFFF},
	}

	for _, test := range tests {
		got := Mask[uint64](test.start, test.end)
		if got != test.want {
			t.Errorf("TestMask(%s): got %#x, want %#x", test.desc, got, test.want)
		}
	}
}

func TestSetGetValue(t *testing.T) {
	tests := []struct {
		desc       string
		val        uint64
		start, end uint64
	}{
		{desc: "bit at zero", val: 1, start: 0, end: 1},
		{desc: "byte at offset", val: 0xAB, start: 8, end: 16},
		{desc: "high nibble", val: 0xF, start: 60, end: 64},
		{desc: "mid range", val: 0xDEAD, start: 17, end: 33},
	}

	for _, test := range tests {
		store := SetValue(test.val, uint64(0), test.start, test.end)
		mask := Mask[uint64](test.start, test.end)
		got := GetValue[uint64, uint64](store, mask, test.start)
		if got != test.val {
			t.Errorf("TestSetGetValue(%s): got %#x, want %#x", test.desc, got, test.val)
		}
	}
}

func TestSetGetBit(t *testing.T) {
	var store uint8

	store = SetBit(store, 3, true)
	if !GetBit(store, 3) {
		t.Fatalf("TestSetGetBit: bit 3 was not set")
	}
	if GetBit(store, 2) {
		t.Fatalf("TestSetGetBit: bit 2 set unexpectedly")
	}

	store = SetBit(store, 3, false)
	if GetBit(store, 3) {
		t.Fatalf("TestSetGetBit: bit 3 was not cleared")
	}
}

func TestClearBit(t *testing.T) {
	store := uint8(0xFF)
	store = ClearBit(store, 0)
	store = ClearBit(store, 7)
	if store != 0x7E {
		t.Fatalf("TestClearBit: got %#x, want 0x7e", store)
	}
}
