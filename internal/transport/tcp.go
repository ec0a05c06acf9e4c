package transport

import (
	"net"
	"strconv"

	"github.com/yanun0323/errors"
)

// TCPClient is a FIX transport over a plain TCP connection.
type TCPClient struct {
	conn
	host string
	port int
	sock net.Conn
}

func NewTCPClient(host string, port int, cbs Callbacks) *TCPClient {
	return &TCPClient{conn: newConn(cbs), host: host, port: port}
}

func (t *TCPClient) Connect() error {
	if t.active {
		return nil
	}
	sock, err := net.Dial("tcp", net.JoinHostPort(t.host, strconv.Itoa(t.port)))
	if err != nil {
		t.notifyError(-1, err.Error())
		return errors.Wrap(err, "dial tcp").With("host", t.host).With("port", t.port)
	}
	t.sock = sock
	t.notifyConnect()
	return nil
}

func (t *TCPClient) Disconnect() error {
	if !t.active {
		return nil
	}
	t.notifyDisconnect()
	if err := t.sock.Close(); err != nil {
		return errors.Wrap(err, "close tcp socket")
	}
	return nil
}

func (t *TCPClient) Poll() int { return t.pollStream(t.sock) }

func (t *TCPClient) SendMessage(buf []byte) (int, error) {
	return t.sendStream(t.sock, buf)
}
