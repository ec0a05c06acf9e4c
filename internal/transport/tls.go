package transport

import (
	"crypto/tls"
	"net"
	"strconv"
	"sync"

	"github.com/yanun0323/errors"
)

// The base TLS config is shared process-wide and reference counted: created
// on the first acquire, released when the last session holding it
// disconnects.
var (
	tlsConfigMu   sync.Mutex
	tlsConfigRefs int
	tlsConfig     *tls.Config
)

func acquireTLSConfig() *tls.Config {
	tlsConfigMu.Lock()
	defer tlsConfigMu.Unlock()
	if tlsConfig == nil {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	tlsConfigRefs++
	return tlsConfig
}

func releaseTLSConfig() {
	tlsConfigMu.Lock()
	defer tlsConfigMu.Unlock()
	if tlsConfigRefs == 0 {
		return
	}
	tlsConfigRefs--
	if tlsConfigRefs == 0 {
		tlsConfig = nil
	}
}

// TLSClient is a FIX transport over TLS.
type TLSClient struct {
	conn
	host string
	port int
	sock net.Conn
}

func NewTLSClient(host string, port int, cbs Callbacks) *TLSClient {
	return &TLSClient{conn: newConn(cbs), host: host, port: port}
}

func (t *TLSClient) Connect() error {
	if t.active {
		return nil
	}
	cfg := acquireTLSConfig().Clone()
	cfg.ServerName = t.host
	sock, err := tls.Dial("tcp", net.JoinHostPort(t.host, strconv.Itoa(t.port)), cfg)
	if err != nil {
		releaseTLSConfig()
		t.notifyError(-1, err.Error())
		return errors.Wrap(err, "dial tls").With("host", t.host).With("port", t.port)
	}
	t.sock = sock
	t.notifyConnect()
	return nil
}

func (t *TLSClient) Disconnect() error {
	if !t.active {
		return nil
	}
	t.notifyDisconnect()
	releaseTLSConfig()
	if err := t.sock.Close(); err != nil {
		return errors.Wrap(err, "close tls socket")
	}
	return nil
}

func (t *TLSClient) Poll() int { return t.pollStream(t.sock) }

func (t *TLSClient) SendMessage(buf []byte) (int, error) {
	return t.sendStream(t.sock, buf)
}
