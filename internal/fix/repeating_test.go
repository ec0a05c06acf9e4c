package fix

import (
	"math"
	"testing"
)

// pxLevel is the quote-row schema used across the container tests.
type pxLevel struct {
	BidPx     Float
	BidSize   Float
	OfferPx   Float
	OfferSize Float

	group *Group
}

func newPxLevel() *pxLevel {
	l := &pxLevel{
		BidPx:     NewFloat(TagBidPx, 32),
		BidSize:   NewFloat(TagBidSize, 32),
		OfferPx:   NewFloat(TagOfferPx, 32),
		OfferSize: NewFloat(TagOfferSize, 32),
	}
	l.group = NewGroup(&l.BidPx, &l.BidSize, &l.OfferPx, &l.OfferSize)
	return l
}

func (l *pxLevel) Group() *Group { return l.group }

func fillLevel(l *pxLevel, px float64) {
	l.BidPx.SetPrec(px, 2)
	l.BidSize.SetPrec(1.5, 1)
	l.OfferPx.SetPrec(px+0.5, 2)
	l.OfferSize.SetPrec(2.5, 1)
}

func TestVectorCountDrivenParse(t *testing.T) {
	count := NewInt(TagNoMDEntries, 8)
	levels := NewVector(newPxLevel)
	g := NewGroup(&count, levels)

	count.Set(2)
	levels.Resize(2)
	fillLevel(levels.At(0), 100.25)
	fillLevel(levels.At(1), 101.25)

	var buf [256]byte
	n := g.Dump(buf[:])

	count2 := NewInt(TagNoMDEntries, 8)
	levels2 := NewVector(newPxLevel)
	g2 := NewGroup(&count2, levels2)
	if got := g2.Parse(NewCursor(buf[:n])); got != n {
		t.Fatalf("parse consumed %d of %d", got, n)
	}
	if levels2.Len() != 2 {
		t.Fatalf("vector resized to %d, want 2", levels2.Len())
	}
	if math.Abs(levels2.At(1).OfferPx.Get()-101.75) > 1e-9 {
		t.Fatalf("row 1 offer px %v", levels2.At(1).OfferPx.Get())
	}
}

func TestVectorZeroLength(t *testing.T) {
	count := NewInt(TagNoMDEntries, 8)
	levels := NewVector(newPxLevel)
	g := NewGroup(&count, levels)

	count.Set(0)
	var buf [64]byte
	n := g.Dump(buf[:])
	if string(buf[:n]) != "268=0\x01" {
		t.Fatalf("unexpected wire form %q", buf[:n])
	}

	count2 := NewInt(TagNoMDEntries, 8)
	levels2 := NewVector(newPxLevel)
	g2 := NewGroup(&count2, levels2)
	g2.Parse(NewCursor(buf[:n]))
	if levels2.Len() != 0 {
		t.Fatalf("zero-count vector has %d rows", levels2.Len())
	}
	var out [64]byte
	if m := g2.Dump(out[:]); string(out[:m]) != string(buf[:n]) {
		t.Fatalf("zero-count re-encode mismatch: %q", out[:m])
	}
}

func TestArrayWidthIgnoresUnusedMembers(t *testing.T) {
	arr := NewArray(newPxLevel, 4)
	fillLevel(arr.Use(0), 100.25)
	fillLevel(arr.Use(1), 101.25)
	// touch a member beyond the logical length without using it
	fillLevel(arr.At(3), 999.25)

	want := arr.At(0).Group().Width() + arr.At(1).Group().Width()
	if arr.Len() != 2 {
		t.Fatalf("logical length %d, want 2", arr.Len())
	}
	if arr.Width() != want {
		t.Fatalf("width %d, want %d", arr.Width(), want)
	}
}

func TestArrayParseRejectsOverflow(t *testing.T) {
	count := NewInt(TagNoMDEntries, 8)
	levels := NewVector(newPxLevel)
	g := NewGroup(&count, levels)
	count.Set(3)
	levels.Resize(3)
	for i := 0; i < 3; i++ {
		fillLevel(levels.At(i), 100.25)
	}
	var buf [512]byte
	n := g.Dump(buf[:])

	count2 := NewInt(TagNoMDEntries, 8)
	arr := NewArray(newPxLevel, 2)
	g2 := NewGroup(&count2, arr)
	defer func() {
		if recover() == nil {
			t.Fatal("count above array capacity did not panic")
		}
	}()
	g2.Parse(NewCursor(buf[:n]))
}

func TestArrayParseWithoutCountPanics(t *testing.T) {
	arr := NewArray(newPxLevel, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("parse without a preceding count did not panic")
		}
	}()
	arr.Parse(NewCursor([]byte("132=1.00\x01")))
}
