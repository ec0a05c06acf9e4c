package ops

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/yanun0323/decimal"
	"github.com/yanun0323/errors"

	"main/internal/transport"
	"main/pkg/exception"
)

// FileConfig mirrors the JSON config layout.
type FileConfig struct {
	Endpoint EndpointConfig `json:"endpoint"`
	Session  SessionConfig  `json:"session"`
	Auth     AuthConfig     `json:"auth"`
	Limits   LimitsConfig   `json:"limits"`
}

// EndpointConfig describes where and how to reach the FIX gateway.
type EndpointConfig struct {
	Transport string `json:"transport"` // tcp, tls, udp or file
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Path      string `json:"path"` // replay file for the file transport
}

// SessionConfig identifies the FIX session.
type SessionConfig struct {
	SenderCompID       string `json:"senderCompId"`
	TargetCompID       string `json:"targetCompId"`
	HeartBtInt         int    `json:"heartBtInt"`
	CancelOnDisconnect bool   `json:"cancelOnDisconnect"`
}

// AuthConfig carries the venue API credentials.
type AuthConfig struct {
	APIKey    string `json:"apiKey"`
	SecretKey string `json:"secretKey"`
}

// LimitsConfig bounds what the order flow built on this session may do.
type LimitsConfig struct {
	MaxOrderQty decimal.Decimal `json:"maxOrderQty"`
	TickSize    decimal.Decimal `json:"tickSize"`
}

// Loaded is the resolved configuration ready for use.
type Loaded struct {
	Endpoint EndpointConfig
	Session  SessionConfig
	Auth     AuthConfig
	Limits   LimitsConfig
}

// Load reads a JSON config file and validates it.
func Load(path string) (Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, errors.Wrap(err, "read config file").With("path", path)
	}
	var cfg FileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, errors.Wrap(err, "unmarshal config")
	}
	if err := validate(cfg); err != nil {
		return Loaded{}, err
	}
	if cfg.Session.HeartBtInt <= 0 {
		cfg.Session.HeartBtInt = 15
	}
	return Loaded{
		Endpoint: cfg.Endpoint,
		Session:  cfg.Session,
		Auth:     cfg.Auth,
		Limits:   cfg.Limits,
	}, nil
}

func validate(cfg FileConfig) error {
	switch strings.ToLower(cfg.Endpoint.Transport) {
	case "tcp", "tls", "udp":
		if cfg.Endpoint.Host == "" {
			return errors.New("endpoint host is empty")
		}
		if cfg.Endpoint.Port <= 0 || cfg.Endpoint.Port > 65535 {
			return errors.Errorf("endpoint port out of range: %d", cfg.Endpoint.Port)
		}
	case "file":
		if cfg.Endpoint.Path == "" {
			return errors.New("endpoint path is empty for file transport")
		}
	default:
		return errors.Wrap(exception.ErrUnknownTransport, "validate endpoint").
			With("transport", cfg.Endpoint.Transport)
	}
	if cfg.Session.SenderCompID == "" {
		return errors.New("session senderCompId is empty")
	}
	if cfg.Session.TargetCompID == "" {
		return errors.New("session targetCompId is empty")
	}
	return nil
}

// NewTransport builds the configured transport flavour.
func (l Loaded) NewTransport(cbs transport.Callbacks) (transport.Transport, error) {
	switch strings.ToLower(l.Endpoint.Transport) {
	case "tcp":
		return transport.NewTCPClient(l.Endpoint.Host, l.Endpoint.Port, cbs), nil
	case "tls":
		return transport.NewTLSClient(l.Endpoint.Host, l.Endpoint.Port, cbs), nil
	case "udp":
		return transport.NewUDPClient(l.Endpoint.Host, l.Endpoint.Port, cbs), nil
	case "file":
		return transport.NewFileClient(l.Endpoint.Path, cbs), nil
	default:
		return nil, exception.ErrUnknownTransport
	}
}
