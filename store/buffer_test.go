package store

import (
	"errors"
	"testing"
	"unicode/utf16"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func TestNewRoundsCapacityToBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbuilder")
	defer teardown()

	b := New(BlockUnits, nil, 0)
	if b.Cap() != BlockUnits || b.Len() != 0 {
		t.Fatalf("empty buffer: cap=%d len=%d, want cap=%d len=0", b.Cap(), b.Len(), BlockUnits)
	}
	b = New(BlockUnits, units("hello"), 129)
	if b.Cap() != 2*BlockUnits {
		t.Fatalf("capacity request 129: got cap=%d, want %d", b.Cap(), 2*BlockUnits)
	}
	if string(utf16.Decode(b.Units())) != "hello" {
		t.Fatalf("unexpected content %q", string(utf16.Decode(b.Units())))
	}
	content := make([]uint16, 300)
	b = New(BlockUnits, content, 10)
	if b.Cap() != 3*BlockUnits {
		t.Fatalf("content of 300 units: got cap=%d, want %d", b.Cap(), 3*BlockUnits)
	}
}

func TestNewRejectsInvalidBlock(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidBlockSize) {
			t.Fatalf("expected panic with ErrInvalidBlockSize, got %v", r)
		}
	}()
	New(100, nil, 0)
}

func TestSetLenBeyondCapacity(t *testing.T) {
	b := New(BlockUnits, nil, 0)
	b.SetLen(b.Cap())
	if b.Len() != b.Cap() {
		t.Fatalf("expected len=%d, got %d", b.Cap(), b.Len())
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrLength) {
			t.Fatalf("expected panic with ErrLength, got %v", r)
		}
	}()
	b.SetLen(b.Cap() + 1)
}

func TestEnsureCapacityGrowsInBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textbuilder")
	defer teardown()

	b := New(BlockUnits, units("abc"), 0)
	b.EnsureCapacity(BlockUnits)
	if b.Cap() != BlockUnits {
		t.Fatalf("EnsureCapacity(cap) must be a no-op, cap=%d", b.Cap())
	}
	b.EnsureCapacity(BlockUnits + 1)
	if b.Cap() != 2*BlockUnits {
		t.Fatalf("expected cap=%d, got %d", 2*BlockUnits, b.Cap())
	}
	b.EnsureCapacity(5*BlockUnits - 3)
	if b.Cap() != 5*BlockUnits {
		t.Fatalf("expected cap=%d, got %d", 5*BlockUnits, b.Cap())
	}
	if string(utf16.Decode(b.Units())) != "abc" {
		t.Fatalf("content not preserved: %q", string(utf16.Decode(b.Units())))
	}
}

func TestAppendPayloadOf300Bytes(t *testing.T) {
	b := New(BlockUnits, nil, 0)
	payload := make([]uint16, 150) // 300 bytes
	for i := range payload {
		payload[i] = uint16('a' + i%26)
	}
	b.Append(payload)
	if b.Cap()*2 != 512 {
		t.Fatalf("expected capacity of 512 bytes, got %d", b.Cap()*2)
	}
	for i, u := range b.Units() {
		if u != payload[i] {
			t.Fatalf("content mismatch at %d", i)
		}
	}
}

func TestInsertAndRemove(t *testing.T) {
	b := New(BlockUnits, units("Hello World"), 0)
	b.Insert(5, units(","))
	if got := string(utf16.Decode(b.Units())); got != "Hello, World" {
		t.Fatalf("after insert: %q", got)
	}
	b.Insert(b.Len(), units("!"))
	b.Insert(0, units(">"))
	if got := string(utf16.Decode(b.Units())); got != ">Hello, World!" {
		t.Fatalf("after insert at ends: %q", got)
	}
	b.Remove(0, 1)
	b.Remove(5, 6)
	b.Remove(b.Len()-1, b.Len())
	if got := string(utf16.Decode(b.Units())); got != "Hello World" {
		t.Fatalf("after remove: %q", got)
	}
	b.Remove(3, 3)
	if b.Len() != 11 {
		t.Fatalf("empty remove changed length to %d", b.Len())
	}
}

func TestShrink(t *testing.T) {
	b := New(BlockUnits, units("abc"), 10*BlockUnits)
	if b.Cap() != 10*BlockUnits {
		t.Fatalf("unexpected cap %d", b.Cap())
	}
	if c := b.Shrink(); c != BlockUnits {
		t.Fatalf("shrink: got cap=%d, want %d", c, BlockUnits)
	}
	if string(utf16.Decode(b.Units())) != "abc" {
		t.Fatalf("content lost on shrink")
	}
	b.Reset()
	if c := b.Shrink(); c != BlockUnits {
		t.Fatalf("shrink of empty buffer must keep one block, got %d", c)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New(BlockUnits, units("abc"), 0)
	c := b.Clone()
	c.Write(0, units("X"))
	if string(utf16.Decode(b.Units())) != "abc" {
		t.Fatalf("clone aliases original")
	}
	if c.Cap() != b.Cap() || c.Len() != b.Len() {
		t.Fatalf("clone differs in cap/len")
	}
}

func TestMoveOverlapping(t *testing.T) {
	b := New(BlockUnits, units("abcdef"), 0)
	b.Move(2, 0, 4)
	if got := string(utf16.Decode(b.Units())); got != "ababcd" {
		t.Fatalf("overlapping move right: %q", got)
	}
	b.Move(0, 2, 4)
	if got := string(utf16.Decode(b.Units())); got != "abcdcd" {
		t.Fatalf("overlapping move left: %q", got)
	}
}
