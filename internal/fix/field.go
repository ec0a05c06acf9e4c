package fix

import (
	"bytes"
	"time"
)

// SOH is the FIX field separator byte.
const SOH = '\x01'

// Cursor tracks the read position during a parse. meta carries the most
// recently observed integer value; repeating containers read it as their
// element count.
type Cursor struct {
	buf  []byte
	meta int64
}

// NewCursor starts a parse at the beginning of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf, meta: -1}
}

// Remaining returns the unconsumed input.
func (c *Cursor) Remaining() []byte { return c.buf }

// Meta returns the count side-channel value, -1 when unset.
func (c *Cursor) Meta() int64 { return c.meta }

// Member is the encode/decode contract shared by fields, groups and
// repeating containers.
type Member interface {
	Dump(dst []byte) int
	Parse(c *Cursor) int
	Width() int
	Sum() uint8
	leader() Tag
}

// field is the tag=value storage shared by every field kind. A field with
// used == 0 is unset and invisible on the wire.
type field struct {
	tag   []byte
	value []byte
	used  int
	grow  bool
}

func newField(tag Tag, capacity int) field {
	return field{tag: []byte(tag), value: make([]byte, capacity)}
}

// Clear marks the field unset without releasing its storage.
func (f *field) Clear() { f.used = 0 }

// IsSet reports whether the field carries a value.
func (f *field) IsSet() bool { return f.used != 0 }

// Dump writes tag '=' value SOH, or nothing when the field is unset.
func (f *field) Dump(dst []byte) int {
	if f.used == 0 {
		return 0
	}
	n := copy(dst, f.tag)
	dst[n] = '='
	n++
	n += copy(dst[n:], f.value[:f.used])
	dst[n] = SOH
	return n + 1
}

// Parse consumes tag '=' value SOH at the cursor. A tag mismatch returns 0
// without advancing; the field is then treated as absent. A value with no
// terminating SOH in the buffer is likewise left unconsumed.
func (f *field) Parse(c *Cursor) int {
	buf := c.buf
	tl := len(f.tag)
	if len(buf) < tl+1 || buf[tl] != '=' || !bytes.Equal(buf[:tl], f.tag) {
		return 0
	}
	i := tl + 1
	start := i
	for i < len(buf) && buf[i] != SOH {
		i++
	}
	if i == len(buf) {
		return 0
	}
	n := i - start
	if n > len(f.value) {
		if !f.grow {
			panic("fix: value exceeds field capacity for tag " + string(f.tag))
		}
		f.value = make([]byte, n)
	}
	copy(f.value, buf[start:i])
	f.used = n
	c.buf = buf[i+1:]
	return i + 1
}

// Width returns the encoded byte count, 0 when unset.
func (f *field) Width() int {
	if f.used == 0 {
		return 0
	}
	return len(f.tag) + 1 + f.used + 1
}

// Sum returns the wrap-around byte sum of the encoding, 0 when unset.
func (f *field) Sum() uint8 {
	if f.used == 0 {
		return 0
	}
	var s uint8
	for _, b := range f.tag {
		s += b
	}
	s += '='
	for _, b := range f.value[:f.used] {
		s += b
	}
	s += SOH
	return s
}

func (f *field) leader() Tag { return Tag(f.tag) }

// Char holds a single-character value.
type Char struct{ field }

func NewChar(tag Tag) Char { return Char{newField(tag, 1)} }

func (f *Char) Set(c byte) {
	f.value[0] = c
	f.used = 1
}

func (f *Char) Get() byte {
	if f.used == 0 {
		return 0
	}
	return f.value[0]
}

// String holds an ASCII value with a fixed capacity.
type String struct{ field }

func NewString(tag Tag, capacity int) String {
	return String{newField(tag, capacity)}
}

func (f *String) Set(s string) {
	if len(s) > len(f.value) {
		panic("fix: value exceeds field capacity for tag " + string(f.tag))
	}
	copy(f.value, s)
	f.used = len(s)
}

func (f *String) Get() string { return string(f.value[:f.used]) }

// Bytes returns the value bytes, borrowed from the field's storage.
func (f *String) Bytes() []byte { return f.value[:f.used] }

// Data holds an ASCII value whose backing storage grows as needed.
type Data struct{ field }

func NewData(tag Tag) Data {
	d := Data{newField(tag, 0)}
	d.grow = true
	return d
}

func (f *Data) Set(s string) {
	if len(s) > len(f.value) {
		f.value = make([]byte, len(s))
	}
	copy(f.value, s)
	f.used = len(s)
}

func (f *Data) Get() string { return string(f.value[:f.used]) }

// Int holds a signed integer rendered in decimal ASCII. Parsing an Int
// publishes the value to the cursor's meta side-channel so a following
// repeating container can size itself.
type Int struct{ field }

func NewInt(tag Tag, capacity int) Int { return Int{newField(tag, capacity)} }

func (f *Int) Set(v int64) { f.used = AppendInt(f.value, v) }

func (f *Int) Get() int64 {
	v, _ := ParseInt(f.value[:f.used])
	return v
}

func (f *Int) Parse(c *Cursor) int {
	n := f.field.Parse(c)
	if n > 0 {
		if v, ok := ParseInt(f.value[:f.used]); ok {
			c.meta = v
		}
	}
	return n
}

// Float holds a floating-point value rendered with a configurable number of
// fractional digits, 4 unless overridden per set call.
type Float struct {
	field
	decimals int
}

func NewFloat(tag Tag, capacity int) Float {
	return Float{field: newField(tag, capacity), decimals: 4}
}

func (f *Float) Set(v float64) { f.SetPrec(v, f.decimals) }

func (f *Float) SetPrec(v float64, decimals int) {
	f.used = AppendFloat(f.value, v, decimals)
}

func (f *Float) Get() float64 {
	v, _ := ParseFloat(f.value[:f.used])
	return v
}

// Bytes returns the rendered value bytes, borrowed from the field's storage.
func (f *Float) Bytes() []byte { return f.value[:f.used] }

// UTCTimestamp holds a FIX UTC timestamp at a fixed precision.
type UTCTimestamp struct {
	field
	prec Precision
}

func NewUTCTimestamp(tag Tag, p Precision) UTCTimestamp {
	return UTCTimestamp{field: newField(tag, Nanos.Width()), prec: p}
}

// Set renders ts (epoch nanoseconds) at the field's precision.
func (f *UTCTimestamp) Set(ts int64) { f.used = AppendUTC(f.value, ts, f.prec) }

// SetNow stamps the current wall-clock time.
func (f *UTCTimestamp) SetNow() { f.Set(time.Now().UnixNano()) }

// Get returns the parsed timestamp in epoch nanoseconds.
func (f *UTCTimestamp) Get() int64 { return ParseUTC(f.value[:f.used]) }
