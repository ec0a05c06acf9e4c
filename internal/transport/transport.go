// Package transport provides the byte-stream sources a FIX session runs
// over: TCP, TLS, UDP and file replay, all buffering inbound bytes through
// a shared ring with a zero-copy read view.
package transport

import (
	"net"
	"time"

	"main/pkg/exception"
)

const (
	// DefaultRingCapacity buffers 1 MiB of inbound data per session.
	DefaultRingCapacity = 1 << 20
	// maxReadSize bounds a single poll's read.
	maxReadSize = 8 * 1024
	// pollTimeout is the readiness wait of a non-blocking poll step.
	pollTimeout = 5 * time.Microsecond
)

// Callbacks notify user code of connection lifecycle events. Nil entries
// are skipped.
type Callbacks struct {
	OnConnect    func()
	OnDisconnect func()
	OnError      func(code int, msg string)
}

// Transport is the byte-stream contract the session engine consumes.
// Inbound bytes accumulate in a ring buffer exposed through ReadPtr; the
// engine commits consumption with MoveHead. SendMessage blocks until the
// full buffer is written or the connection fails.
type Transport interface {
	Connect() error
	Disconnect() error
	Poll() int
	ReadPtr() []byte
	MoveHead(n int)
	Size() int
	SendMessage(buf []byte) (int, error)
	Active() bool
	LastSentAt() int64
	LastReadAt() int64
}

// conn carries the state every transport flavour shares.
type conn struct {
	ring     *Ring
	cbs      Callbacks
	active   bool
	lastRead int64
	lastSent int64
}

func newConn(cbs Callbacks) conn {
	return conn{ring: NewRing(DefaultRingCapacity), cbs: cbs}
}

func (c *conn) ReadPtr() []byte   { return c.ring.ReadPtr() }
func (c *conn) MoveHead(n int)    { c.ring.MoveHead(n) }
func (c *conn) Size() int         { return c.ring.Size() }
func (c *conn) Active() bool      { return c.active }
func (c *conn) LastSentAt() int64 { return c.lastSent }
func (c *conn) LastReadAt() int64 { return c.lastRead }

func (c *conn) notifyConnect() {
	c.active = true
	if c.cbs.OnConnect != nil {
		c.cbs.OnConnect()
	}
}

func (c *conn) notifyDisconnect() {
	c.active = false
	if c.cbs.OnDisconnect != nil {
		c.cbs.OnDisconnect()
	}
}

func (c *conn) notifyError(code int, msg string) {
	if c.cbs.OnError != nil {
		c.cbs.OnError(code, msg)
	}
}

// pollStream runs one non-blocking read step over a net.Conn into the
// ring. Deadline expiry counts as "nothing available"; EOF tears the
// connection down.
func (c *conn) pollStream(sock net.Conn) int {
	if sock == nil || !c.active {
		return 0
	}
	dst := c.ring.WriteSlice(maxReadSize)
	if len(dst) == 0 {
		return 0
	}
	_ = sock.SetReadDeadline(time.Now().Add(pollTimeout))
	n, err := sock.Read(dst)
	if n > 0 {
		c.ring.MoveTail(n)
		c.lastRead = time.Now().UnixNano()
	}
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return n
		}
		c.notifyError(-1, err.Error())
		c.notifyDisconnect()
		_ = sock.Close()
	}
	return n
}

// sendStream writes the whole buffer, looping over short writes.
func (c *conn) sendStream(sock net.Conn, buf []byte) (int, error) {
	if sock == nil || !c.active {
		return 0, exception.ErrNotConnected
	}
	now := time.Now().UnixNano()
	written := 0
	for written < len(buf) {
		n, err := sock.Write(buf[written:])
		written += n
		if err != nil {
			c.notifyError(-1, err.Error())
			return written, err
		}
	}
	c.lastSent = now
	return written, nil
}
