package exception

import "github.com/yanun0323/errors"

var (
	ErrConnectionClose  = errors.New("connection closed")
	ErrNotConnected     = errors.New("transport is not connected")
	ErrUnknownTransport = errors.New("unknown transport flavour")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrEndOfStream      = errors.New("end of stream")
	ErrHandshakeFailed  = errors.New("tls handshake failed")
)
