package mnemonic

import (
	"bytes"
	"testing"
)

func TestBitBuffer_RoundTrip(t *testing.T) {
	b := newBitBuffer(132)
	b.appendBytes([]byte{0x33, 0xE4, 0x6B})
	b.appendBits(0x5, 4)

	if b.len() != 28 {
		t.Fatalf("len = %d, want 28", b.len())
	}
	if got := b.readBits(0, 8); got != 0x33 {
		t.Errorf("readBits(0,8) = %#x, want 0x33", got)
	}
	if got := b.readBits(8, 11); got != (0xE4<<3)|(0x6B>>5) {
		t.Errorf("readBits(8,11) = %#x", got)
	}
	if got := b.readBits(24, 4); got != 0x5 {
		t.Errorf("readBits(24,4) = %#x, want 0x5", got)
	}
}

func TestBitBuffer_MSBFirst(t *testing.T) {
	b := newBitBuffer(11)
	b.appendBits(0b10000000001, 11)
	if got := b.readBits(0, 1); got != 1 {
		t.Errorf("first bit = %d, want 1 (MSB written first)", got)
	}
	if got := b.readBits(10, 1); got != 1 {
		t.Errorf("last bit = %d, want 1", got)
	}
	if got := b.readBits(1, 9); got != 0 {
		t.Errorf("middle bits = %d, want 0", got)
	}
}

func TestBitBuffer_BytesRange(t *testing.T) {
	b := newBitBuffer(40)
	b.appendBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	b.appendBits(0xA, 4)

	if got := b.bytesRange(0, 32); !bytes.Equal(got, []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("bytesRange(0,32) = %x", got)
	}
	if got := b.bytesRange(8, 16); !bytes.Equal(got, []byte{0xAD, 0xBE}) {
		t.Errorf("bytesRange(8,16) = %x", got)
	}
}

func TestBitBuffer_OverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("appendBits past capacity should panic")
		}
	}()
	b := newBitBuffer(8)
	b.appendBits(0, 9)
}
