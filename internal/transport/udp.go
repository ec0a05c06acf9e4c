package transport

import (
	"net"
	"strconv"

	"github.com/yanun0323/errors"
)

// UDPClient is a FIX transport over UDP datagrams. Each poll moves at most
// one datagram into the ring; datagram boundaries are not preserved, the
// framer finds message boundaries from the FIX header.
type UDPClient struct {
	conn
	host string
	port int
	sock *net.UDPConn
}

func NewUDPClient(host string, port int, cbs Callbacks) *UDPClient {
	return &UDPClient{conn: newConn(cbs), host: host, port: port}
}

func (u *UDPClient) Connect() error {
	if u.active {
		return nil
	}
	addr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(u.host, strconv.Itoa(u.port)))
	if err != nil {
		u.notifyError(-1, err.Error())
		return errors.Wrap(err, "resolve udp address").With("host", u.host)
	}
	sock, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		u.notifyError(-1, err.Error())
		return errors.Wrap(err, "dial udp").With("host", u.host).With("port", u.port)
	}
	u.sock = sock
	u.notifyConnect()
	return nil
}

func (u *UDPClient) Disconnect() error {
	if !u.active {
		return nil
	}
	u.notifyDisconnect()
	if err := u.sock.Close(); err != nil {
		return errors.Wrap(err, "close udp socket")
	}
	return nil
}

func (u *UDPClient) Poll() int { return u.pollStream(u.sock) }

func (u *UDPClient) SendMessage(buf []byte) (int, error) {
	return u.sendStream(u.sock, buf)
}
