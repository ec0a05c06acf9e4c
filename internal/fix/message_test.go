package fix

import (
	"bytes"
	"strings"
	"testing"
)

// mdRefresh mirrors the quote-level incremental refresh schema used by the
// message-level tests: a flat header plus a count-driven vector of rows.
type mdRefresh struct {
	MsgType      String
	MsgSeqNum    Int
	SenderCompID String
	TargetCompID String
	SendingTime  UTCTimestamp
	MDReqID      String
	NoMDEntries  Int
	Levels       *Vector[*pxLevel]

	msg *Message
}

func newMDRefresh() *mdRefresh {
	m := &mdRefresh{
		MsgType:      NewString(TagMsgType, 4),
		MsgSeqNum:    NewInt(TagMsgSeqNum, 20),
		SenderCompID: NewString(TagSenderCompID, 32),
		TargetCompID: NewString(TagTargetCompID, 32),
		SendingTime:  NewUTCTimestamp(TagSendingTime, Millis),
		MDReqID:      NewString(TagMDReqID, 32),
		NoMDEntries:  NewInt(TagNoMDEntries, 8),
		Levels:       NewVector(newPxLevel),
	}
	m.msg = NewMessage(FIX44, NewGroup(
		&m.MsgType, &m.MsgSeqNum, &m.SenderCompID, &m.TargetCompID,
		&m.SendingTime, &m.MDReqID, &m.NoMDEntries, m.Levels,
	))
	return m
}

func soh(s string) []byte {
	return []byte(strings.ReplaceAll(s, "|", "\x01"))
}

const incrementalRefreshWire = "8=FIX.4.4|9=234|35=X|34=0|49=DERIBITSERVER|56=TSERVER|" +
	"52=20250211-12:28:38.728|262=19985|268=4|" +
	"132=125.30|134=4.1|133=220.93|135=9.1|" +
	"132=144.97|134=4.8|133=207.69|135=5.9|" +
	"132=170.00|134=18.5|133=289.20|135=8.0|" +
	"132=161.83|134=16.4|133=294.64|135=11.0|10=090|"

func TestIncrementalRefreshRoundTrip(t *testing.T) {
	wire := soh(incrementalRefreshWire)
	m := newMDRefresh()
	if n := m.msg.Parse(wire); n != len(wire) {
		t.Fatalf("parse consumed %d of %d", n, len(wire))
	}
	if m.msg.BodyLength() != 234 {
		t.Fatalf("body length %d, want 234", m.msg.BodyLength())
	}
	if m.Levels.Len() != 4 {
		t.Fatalf("parsed %d quote rows, want 4", m.Levels.Len())
	}
	if got := string(m.Levels.At(0).BidPx.Bytes()); got != "125.30" {
		t.Fatalf("row 0 bid px %q", got)
	}
	if got := string(m.Levels.At(3).OfferSize.Bytes()); got != "11.0" {
		t.Fatalf("row 3 offer size %q", got)
	}
	if m.SenderCompID.Get() != "DERIBITSERVER" || m.TargetCompID.Get() != "TSERVER" {
		t.Fatal("comp IDs lost")
	}

	var out [512]byte
	n := m.msg.Dump(out[:], false, false)
	if !bytes.Equal(out[:n], wire) {
		t.Fatalf("re-encode differs:\n got %q\nwant %q", out[:n], wire)
	}

	// recomputing the housekeeping fields reproduces the captured values
	if got := m.msg.UpdateBodyLength(); got != 234 {
		t.Fatalf("recomputed body length %d", got)
	}
	m.msg.UpdateCheckSum()
	if m.msg.CheckSum() != "090" {
		t.Fatalf("recomputed checksum %q", m.msg.CheckSum())
	}
}

func TestMessageBuildMatchesParse(t *testing.T) {
	m := newMDRefresh()
	m.MsgType.Set("X")
	m.MsgSeqNum.Set(7)
	m.SenderCompID.Set("CLIENT")
	m.TargetCompID.Set("SERVER")
	m.MDReqID.Set("42")
	m.NoMDEntries.Set(2)
	m.Levels.Resize(2)
	fillLevel(m.Levels.At(0), 100.25)
	fillLevel(m.Levels.At(1), 101.25)

	var buf [512]byte
	n := m.msg.Dump(buf[:], true, true)

	p := newMDRefresh()
	if got := p.msg.Parse(buf[:n]); got != n {
		t.Fatalf("parse consumed %d of %d", got, n)
	}
	if p.msg.BodyLength() != m.msg.BodyLength() {
		t.Fatalf("body length %d != %d", p.msg.BodyLength(), m.msg.BodyLength())
	}
	if p.msg.CheckSum() != m.msg.CheckSum() {
		t.Fatalf("checksum %q != %q", p.msg.CheckSum(), m.msg.CheckSum())
	}
	var out [512]byte
	if got := p.msg.Dump(out[:], false, false); !bytes.Equal(out[:got], buf[:n]) {
		t.Fatal("parse/dump not byte identical")
	}
}

// textMsg is a minimal schema for checksum-focused tests.
type textMsg struct {
	MsgType String
	Text    Data

	msg *Message
}

func newTextMsg() *textMsg {
	m := &textMsg{
		MsgType: NewString(TagMsgType, 4),
		Text:    NewData(TagText),
	}
	m.msg = NewMessage(FIX44, NewGroup(&m.MsgType, &m.Text))
	return m
}

func TestCheckSumLeadingZeros(t *testing.T) {
	m := newTextMsg()
	m.MsgType.Set("0")
	// header and body bytes sum to 1341, which is 61 modulo 256
	m.Text.Set("aa")
	m.msg.UpdateBodyLength()
	m.msg.UpdateCheckSum()
	if len(m.msg.CheckSum()) != 3 {
		t.Fatalf("checksum %q is not three digits", m.msg.CheckSum())
	}
}

func TestCheckSumWraparound(t *testing.T) {
	// Find a three-character text whose total drives the sum to 256k+7;
	// the rendering must then be exactly "007".
	m := newTextMsg()
	m.MsgType.Set("0")
	m.Text.Set("aaa")
	m.msg.UpdateBodyLength()
	base := int(m.msg.header.Sum()+m.msg.body.Sum()) - 3*'a'

	target := (7 - base%256 + 256*2) % 256
	for target < 3*33 {
		target += 256
	}
	var text []byte
	for c1 := 33; c1 <= 126 && text == nil; c1++ {
		for c2 := 33; c2 <= 126; c2++ {
			c3 := target - c1 - c2
			if c3 >= 33 && c3 <= 126 {
				text = []byte{byte(c1), byte(c2), byte(c3)}
				break
			}
		}
	}
	if text == nil {
		t.Fatalf("no printable text reaches byte sum %d", target)
	}

	m.Text.Set(string(text))
	m.msg.UpdateBodyLength()
	m.msg.UpdateCheckSum()
	if m.msg.CheckSum() != "007" {
		t.Fatalf("checksum %q, want \"007\"", m.msg.CheckSum())
	}
}

func TestMessageRejectsBodyNotLedByMsgType(t *testing.T) {
	text := NewData(TagText)
	defer func() {
		if recover() == nil {
			t.Fatal("body without MsgType leader did not panic")
		}
	}()
	NewMessage(FIX44, NewGroup(&text))
}

func TestMessageRejectsHeaderTagInBody(t *testing.T) {
	msgType := NewString(TagMsgType, 4)
	rogue := NewString(TagBeginString, 16)
	defer func() {
		if recover() == nil {
			t.Fatal("body reusing a header tag did not panic")
		}
	}()
	NewMessage(FIX44, NewGroup(&msgType, &rogue))
}

func TestInitialsPeek(t *testing.T) {
	wire := soh(incrementalRefreshWire)
	p := NewInitials()
	msgLen := p.Peek(wire)
	if msgLen != len(wire) {
		t.Fatalf("peeked length %d, want %d", msgLen, len(wire))
	}
	if p.MsgType.Get() != "X" {
		t.Fatalf("peeked msg type %q", p.MsgType.Get())
	}
	if p.BodyLength.Get() != 234 {
		t.Fatalf("peeked body length %d", p.BodyLength.Get())
	}
}
