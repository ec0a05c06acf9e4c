package fix

// Version selects the BeginString value of a message schema.
type Version int

const (
	FIX40 Version = iota
	FIX41
	FIX42
	FIX43
	FIX44
	FIX50
)

// BeginString returns the tag-8 value for this version.
func (v Version) BeginString() string {
	switch v {
	case FIX40:
		return "FIX.4.0"
	case FIX41:
		return "FIX.4.1"
	case FIX42:
		return "FIX.4.2"
	case FIX43:
		return "FIX.4.3"
	case FIX44:
		return "FIX.4.4"
	case FIX50:
		return "FIX.5.0"
	default:
		return ""
	}
}

// Message assembles a FIX message from its three parts: the header
// (BeginString + BodyLength), a schema-specific body group, and the trailer
// (CheckSum). The body length covers the body group only; the checksum
// covers header and body.
type Message struct {
	beginString String
	bodyLength  Int
	checkSum    String
	header      *Group
	body        *Group
	trailer     *Group
	bodyLen     int
}

// NewMessage binds a body schema to a FIX version. The body's leading field
// must be MsgType, and no body member may reuse a header or trailer tag;
// either violation is a schema bug and panics at construction.
func NewMessage(v Version, body *Group) *Message {
	if body.leader() != TagMsgType {
		panic("fix: message body must start with MsgType")
	}
	m := &Message{
		beginString: NewString(TagBeginString, 16),
		bodyLength:  NewInt(TagBodyLength, 16),
		checkSum:    NewString(TagCheckSum, 3),
		body:        body,
	}
	m.beginString.Set(v.BeginString())
	m.header = NewGroup(&m.beginString, &m.bodyLength)
	m.trailer = NewGroup(&m.checkSum)
	seen := map[Tag]struct{}{
		TagBeginString: {},
		TagBodyLength:  {},
		TagCheckSum:    {},
	}
	for _, mem := range body.members {
		t := mem.leader()
		if _, dup := seen[t]; dup {
			panic("fix: duplicate tag " + string(t) + " in message")
		}
		seen[t] = struct{}{}
	}
	return m
}

// BodyLength returns the body width captured by the last UpdateBodyLength
// or Parse.
func (m *Message) BodyLength() int { return m.bodyLen }

// CheckSum returns the trailer value as three ASCII digits.
func (m *Message) CheckSum() string { return m.checkSum.Get() }

// UpdateBodyLength measures the body and stores the result in the header.
func (m *Message) UpdateBodyLength() int {
	m.bodyLen = m.body.Width()
	m.bodyLength.Set(int64(m.bodyLen))
	return m.bodyLen
}

// UpdateCheckSum sums header and body bytes modulo 256 and stores the
// three-digit rendering in the trailer. The header must already carry the
// final body length.
func (m *Message) UpdateCheckSum() {
	sum := m.header.Sum() + m.body.Sum()
	m.checkSum.value[0] = '0' + sum/100
	m.checkSum.value[1] = '0' + sum/10%10
	m.checkSum.value[2] = '0' + sum%10
	m.checkSum.used = 3
}

// Dump serialises header, body and trailer in wire order and returns the
// bytes written. setBodyLength and setCheckSum run the respective updates
// first, in that order.
func (m *Message) Dump(dst []byte, setBodyLength, setCheckSum bool) int {
	if setBodyLength {
		m.UpdateBodyLength()
	}
	if setCheckSum {
		m.UpdateCheckSum()
	}
	n := m.header.Dump(dst)
	n += m.body.Dump(dst[n:])
	n += m.trailer.Dump(dst[n:])
	return n
}

// Parse populates the message from src, which must hold one complete
// message, and returns the bytes consumed. Neither the body length nor the
// checksum is validated against the payload.
func (m *Message) Parse(src []byte) int {
	c := NewCursor(src)
	n := m.header.Parse(c)
	n += m.body.Parse(c)
	n += m.trailer.Parse(c)
	m.bodyLen = int(m.bodyLength.Get())
	return n
}

// Initials is the reusable peek schema over a message's first three fields.
// The engine uses it to size a buffered message without consuming it.
type Initials struct {
	BeginString String
	BodyLength  Int
	MsgType     String

	group *Group
}

func NewInitials() *Initials {
	p := &Initials{
		BeginString: NewString(TagBeginString, 16),
		BodyLength:  NewInt(TagBodyLength, 16),
		MsgType:     NewString(TagMsgType, 4),
	}
	p.group = NewGroup(&p.BeginString, &p.BodyLength, &p.MsgType)
	return p
}

// Peek parses the three leading fields from buf and returns the total
// on-wire message length: the first two field widths, plus the body length,
// plus the 7-byte checksum field.
func (p *Initials) Peek(buf []byte) int {
	p.BeginString.Clear()
	p.BodyLength.Clear()
	p.MsgType.Clear()
	c := NewCursor(buf)
	p.group.Parse(c)
	return p.BeginString.Width() + p.BodyLength.Width() + int(p.BodyLength.Get()) + 7
}
