/*
Package engine frames FIX messages over a transport.

# Module
  - Perform: one cooperative receive step; peeks the leading fields,
    dispatches complete buffered messages to the visitor
  - SendMsg / SendStamped: serialise outbound messages with body-length,
    checksum, sequence-number and sending-time housekeeping

# Source
  - a transport's ring buffer

# Produce
  - visitor callbacks with complete raw messages

# Sharded
  - none; one engine per session, driven from a single goroutine
*/
package engine

import (
	"time"

	"main/internal/fix"
	"main/internal/obs"
	"main/internal/transport"
)

const (
	// minPeekSize is the least buffered byte count under which the three
	// leading fields are guaranteed complete on a well-formed stream.
	minPeekSize = 32
	// sendBufSize bounds a single outbound message. Larger messages must be
	// serialised by the caller and written through the transport directly.
	sendBufSize = 8 * 1024
)

// Visitor receives each complete inbound message. buf borrows from the
// transport's ring buffer and is only valid for the duration of the call.
type Visitor interface {
	OnMessage(msgType fix.MsgType, buf []byte)
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(msgType fix.MsgType, buf []byte)

func (f VisitorFunc) OnMessage(msgType fix.MsgType, buf []byte) { f(msgType, buf) }

// Stampable is an outbound message schema accepting the engine's
// per-session housekeeping values before serialisation.
type Stampable interface {
	Stamp(seqNum int64, tsNano int64)
	Message() *fix.Message
}

// Engine couples one transport with one visitor. It is not safe for
// concurrent use; callers drive Perform from a single loop.
type Engine struct {
	source   transport.Transport
	visitor  Visitor
	initials *fix.Initials
	metrics  *obs.Metrics
	seqNum   int64
	sendBuf  [sendBufSize]byte
}

func New(source transport.Transport, visitor Visitor) *Engine {
	return &Engine{
		source:   source,
		visitor:  visitor,
		initials: fix.NewInitials(),
	}
}

// SetMetrics attaches an optional metrics collector.
func (e *Engine) SetMetrics(m *obs.Metrics) { e.metrics = m }

// SeqNum returns the last outbound sequence number stamped by SendStamped.
func (e *Engine) SeqNum() int64 { return e.seqNum }

// Connect brings the transport up; already-active transports succeed
// immediately.
func (e *Engine) Connect() bool {
	if e.source.Active() {
		return true
	}
	return e.source.Connect() == nil
}

func (e *Engine) Disconnect() bool {
	return e.source.Disconnect() == nil
}

// Perform runs one non-blocking step of the receive loop. With at least
// minPeekSize bytes buffered it peeks the leading fields, computes the
// total message length, and dispatches one message when the buffer holds
// strictly more than that length; otherwise it polls the transport for
// more bytes. Returns true when a message was dispatched.
func (e *Engine) Perform() bool {
	if e.source.Size() >= minPeekSize {
		buf := e.source.ReadPtr()
		msgLen := e.initials.Peek(buf)
		if e.source.Size() > msgLen {
			start := time.Now()
			msgType := fix.MsgTypeFromBytes(e.initials.MsgType.Bytes())
			e.visitor.OnMessage(msgType, buf[:msgLen])
			e.source.MoveHead(msgLen)
			e.metrics.ObserveInbound(msgType, msgLen, time.Since(start))
			return msgLen > 0
		}
	}
	e.source.Poll()
	return false
}

// SendMsg finalises body length and checksum, serialises msg into the
// scratch buffer and writes it to the transport. Returns bytes sent, 0
// when the message serialised empty.
func (e *Engine) SendMsg(msg *fix.Message) int {
	return e.send(msg, true, true)
}

// SendMsgRaw serialises without the implicit body-length/checksum updates.
func (e *Engine) SendMsgRaw(msg *fix.Message, setBodyLength, setCheckSum bool) int {
	return e.send(msg, setBodyLength, setCheckSum)
}

// SendStamped assigns the next sequence number and the current sending
// time before serialising.
func (e *Engine) SendStamped(msg Stampable) int {
	e.seqNum++
	msg.Stamp(e.seqNum, time.Now().UnixNano())
	return e.SendMsg(msg.Message())
}

func (e *Engine) send(msg *fix.Message, setBodyLength, setCheckSum bool) int {
	n := msg.Dump(e.sendBuf[:], setBodyLength, setCheckSum)
	if n == 0 {
		return 0
	}
	sent, err := e.source.SendMessage(e.sendBuf[:n])
	if err != nil {
		return sent
	}
	e.metrics.ObserveOutbound(sent)
	return sent
}
