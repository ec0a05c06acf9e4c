package fix

import (
	"testing"
)

func TestGroupDumpOrder(t *testing.T) {
	a := NewString(TagSymbol, 16)
	b := NewInt(TagMsgSeqNum, 8)
	g := NewGroup(&a, &b)

	a.Set("ETH")
	b.Set(12)

	var buf [64]byte
	n := g.Dump(buf[:])
	if string(buf[:n]) != "55=ETH\x0134=12\x01" {
		t.Fatalf("unexpected wire form %q", buf[:n])
	}
	if g.Width() != n {
		t.Fatalf("width %d != dumped %d", g.Width(), n)
	}
}

func TestGroupParseSkipsAbsentFields(t *testing.T) {
	a := NewString(TagSymbol, 16)
	b := NewInt(TagMsgSeqNum, 8)
	c := NewChar(TagSide)
	g := NewGroup(&a, &b, &c)

	// MsgSeqNum missing on the wire: the field stays unset, the rest parse.
	wire := []byte("55=ETH\x0154=1\x01")
	n := g.Parse(NewCursor(wire))
	if n != len(wire) {
		t.Fatalf("parse consumed %d of %d", n, len(wire))
	}
	if b.IsSet() {
		t.Fatal("absent field reported set")
	}
	if a.Get() != "ETH" || c.Get() != '1' {
		t.Fatal("present fields lost")
	}
}

func TestGroupRejectsDuplicateTags(t *testing.T) {
	a := NewString(TagSymbol, 16)
	b := NewString(TagSymbol, 8)
	defer func() {
		if recover() == nil {
			t.Fatal("duplicate tag did not panic")
		}
	}()
	NewGroup(&a, &b)
}

func TestGroupRejectsDuplicateNestedLeader(t *testing.T) {
	a := NewString(TagSymbol, 16)
	inner := NewString(TagSymbol, 8)
	nested := NewGroup(&inner)
	defer func() {
		if recover() == nil {
			t.Fatal("duplicate nested leader did not panic")
		}
	}()
	NewGroup(&a, nested)
}

func TestGroupSumMatchesByteSum(t *testing.T) {
	a := NewString(TagSymbol, 16)
	b := NewInt(TagMsgSeqNum, 8)
	g := NewGroup(&a, &b)
	a.Set("BTC-PERPETUAL")
	b.Set(1002)

	var buf [64]byte
	n := g.Dump(buf[:])
	var want uint8
	for _, x := range buf[:n] {
		want += x
	}
	if g.Sum() != want {
		t.Fatalf("sum %d != byte sum %d", g.Sum(), want)
	}
}
