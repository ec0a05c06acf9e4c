package deribit

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogonRoundTrip(t *testing.T) {
	logon := NewLogon()
	logon.Session("WObvEb02", "DERIBITSERVER")
	require.NoError(t, logon.Authenticate("WObvEb02", "secretKey", 15))
	logon.Stamp(1, 1739276918728000000)
	logon.CancelOnDisconnect.Set('Y')

	var buf [1024]byte
	n := logon.Message().Dump(buf[:], true, true)
	require.NotZero(t, n)

	parsed := NewLogon()
	require.Equal(t, n, parsed.Message().Parse(buf[:n]))

	assert.Equal(t, "A", parsed.MsgType.Get())
	assert.Equal(t, int64(15), parsed.HeartBtInt.Get())
	assert.Equal(t, "WObvEb02", parsed.Username.Get())
	assert.Equal(t, logon.Password.Get(), parsed.Password.Get())
	assert.Equal(t, logon.RawData.Get(), parsed.RawData.Get())
	assert.Equal(t, byte('Y'), parsed.CancelOnDisconnect.Get())
	assert.Equal(t, int64(1), parsed.MsgSeqNum.Get())
}

func TestLogonPasswordDerivation(t *testing.T) {
	logon := NewLogon()
	require.NoError(t, logon.Authenticate("key", "secret", 15))

	rawData := logon.RawData.Get()
	require.NotEmpty(t, rawData)
	assert.Equal(t, int64(len(rawData)), logon.RawDataLength.Get())

	// rawData is "<epoch ms>.<base64 nonce>"
	parts := strings.SplitN(rawData, ".", 2)
	require.Len(t, parts, 2)
	nonce, err := base64.StdEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	assert.Len(t, nonce, 32)

	sum := sha256.Sum256([]byte(rawData + "secret"))
	assert.Equal(t, base64.StdEncoding.EncodeToString(sum[:]), logon.Password.Get())
}

func TestLogonNoncesDiffer(t *testing.T) {
	a, b := NewLogon(), NewLogon()
	require.NoError(t, a.Authenticate("key", "secret", 15))
	require.NoError(t, b.Authenticate("key", "secret", 15))
	assert.NotEqual(t, a.RawData.Get(), b.RawData.Get())
}

func TestHeartbeatAnswersTestRequest(t *testing.T) {
	req := NewTestRequest()
	req.Session("SERVER", "CLIENT")
	req.Stamp(9, 1739276918728000000)
	req.TestReqID.Set("ping-1")

	var buf [512]byte
	n := req.Message().Dump(buf[:], true, true)
	require.NotZero(t, n)

	inbound := NewTestRequest()
	inbound.Message().Parse(buf[:n])
	require.Equal(t, "ping-1", inbound.TestReqID.Get())

	hb := NewHeartbeat()
	hb.Session("CLIENT", "SERVER")
	hb.TestReqID.Set(inbound.TestReqID.Get())
	hb.Stamp(2, 1739276918729000000)

	var out [512]byte
	m := hb.Message().Dump(out[:], true, true)
	require.NotZero(t, m)

	echoed := NewHeartbeat()
	echoed.Message().Parse(out[:m])
	assert.Equal(t, "0", echoed.MsgType.Get())
	assert.Equal(t, "ping-1", echoed.TestReqID.Get())
}

func TestLogoutCarriesStatus(t *testing.T) {
	lo := NewLogout()
	lo.Session("CLIENT", "SERVER")
	lo.Stamp(3, 1739276918728000000)
	lo.Text.Set("session closed by user")
	lo.SessionStatus.Set(4)

	var buf [512]byte
	n := lo.Message().Dump(buf[:], true, true)

	parsed := NewLogout()
	parsed.Message().Parse(buf[:n])
	assert.Equal(t, "5", parsed.MsgType.Get())
	assert.Equal(t, "session closed by user", parsed.Text.Get())
	assert.Equal(t, int64(4), parsed.SessionStatus.Get())
}
