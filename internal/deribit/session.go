package deribit

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"time"

	"github.com/yanun0323/errors"

	"main/internal/fix"
)

// Logon is the session authentication request. The password is the venue's
// signed-nonce scheme: base64(SHA256(rawData + secret)) where rawData is
// "<epoch ms>.<base64 nonce>".
type Logon struct {
	*Header
	RawDataLength                  fix.Int
	RawData                        fix.Data
	HeartBtInt                     fix.Int
	Username                       fix.String
	Password                       fix.String
	CancelOnDisconnect             fix.Char
	UnsubscribeExecutionReports    fix.Char
	ConnectionOnlyExecutionReports fix.Char

	msg *fix.Message
}

func NewLogon() *Logon {
	l := &Logon{
		Header:                         newHeader(fix.MsgTypeLogon),
		RawDataLength:                  fix.NewInt(fix.TagRawDataLength, 8),
		RawData:                        fix.NewData(fix.TagRawData),
		HeartBtInt:                     fix.NewInt(fix.TagHeartBtInt, 8),
		Username:                       fix.NewString(fix.TagUsername, 64),
		Password:                       fix.NewString(fix.TagPassword, 64),
		CancelOnDisconnect:             fix.NewChar(TagCancelOnDisconnect),
		UnsubscribeExecutionReports:    fix.NewChar(TagUnsubscribeExecutionReports),
		ConnectionOnlyExecutionReports: fix.NewChar(TagConnectionOnlyExecutionReports),
	}
	l.msg = fix.NewMessage(fix.FIX44, fix.NewGroup(
		l.Group(), &l.RawDataLength, &l.RawData, &l.HeartBtInt,
		&l.Username, &l.Password, &l.CancelOnDisconnect,
		&l.UnsubscribeExecutionReports, &l.ConnectionOnlyExecutionReports,
	))
	return l
}

func (l *Logon) Message() *fix.Message { return l.msg }

// Authenticate fills the credential fields from the venue's API key pair.
func (l *Logon) Authenticate(apiKey, secretKey string, heartBtInt int) error {
	var nonce [32]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return errors.Wrap(err, "read logon nonce")
	}
	nonce64 := base64.StdEncoding.EncodeToString(nonce[:])
	rawData := strconv.FormatInt(time.Now().UnixNano()/int64(time.Millisecond), 10) + "." + nonce64

	l.RawDataLength.Set(int64(len(rawData)))
	l.RawData.Set(rawData)
	l.HeartBtInt.Set(int64(heartBtInt))

	sum := sha256.Sum256([]byte(rawData + secretKey))
	l.Username.Set(apiKey)
	l.Password.Set(base64.StdEncoding.EncodeToString(sum[:]))
	return nil
}

// LogonResponse is the server's logon acknowledgment.
type LogonResponse struct {
	*Header
	EncryptMethod          fix.Int
	HeartBtInt             fix.Int
	ResetSeqNumFlag        fix.Char
	CancelOnDisconnectType fix.Char

	msg *fix.Message
}

func NewLogonResponse() *LogonResponse {
	r := &LogonResponse{
		Header:                 newHeader(fix.MsgTypeLogon),
		EncryptMethod:          fix.NewInt(fix.TagEncryptMethod, 4),
		HeartBtInt:             fix.NewInt(fix.TagHeartBtInt, 8),
		ResetSeqNumFlag:        fix.NewChar(fix.TagResetSeqNumFlag),
		CancelOnDisconnectType: fix.NewChar(TagCancelOnDisconnectType),
	}
	r.msg = fix.NewMessage(fix.FIX44, fix.NewGroup(
		r.Group(), &r.EncryptMethod, &r.HeartBtInt,
		&r.ResetSeqNumFlag, &r.CancelOnDisconnectType,
	))
	return r
}

func (r *LogonResponse) Message() *fix.Message { return r.msg }

// Logout carries the optional reason text and session status.
type Logout struct {
	*Header
	Text          fix.Data
	SessionStatus fix.Int

	msg *fix.Message
}

func NewLogout() *Logout {
	l := &Logout{
		Header:        newHeader(fix.MsgTypeLogout),
		Text:          fix.NewData(fix.TagText),
		SessionStatus: fix.NewInt(fix.TagSessionStatus, 4),
	}
	l.msg = fix.NewMessage(fix.FIX44, fix.NewGroup(
		l.Group(), &l.Text, &l.SessionStatus,
	))
	return l
}

func (l *Logout) Message() *fix.Message { return l.msg }

// Heartbeat answers a TestRequest or keeps an idle session alive.
type Heartbeat struct {
	*Header
	TestReqID fix.String

	msg *fix.Message
}

func NewHeartbeat() *Heartbeat {
	h := &Heartbeat{
		Header:    newHeader(fix.MsgTypeHeartbeat),
		TestReqID: fix.NewString(fix.TagTestReqID, 64),
	}
	h.msg = fix.NewMessage(fix.FIX44, fix.NewGroup(h.Group(), &h.TestReqID))
	return h
}

func (h *Heartbeat) Message() *fix.Message { return h.msg }

// TestRequest solicits a Heartbeat from the peer.
type TestRequest struct {
	*Header
	TestReqID fix.String

	msg *fix.Message
}

func NewTestRequest() *TestRequest {
	t := &TestRequest{
		Header:    newHeader(fix.MsgTypeTestRequest),
		TestReqID: fix.NewString(fix.TagTestReqID, 64),
	}
	t.msg = fix.NewMessage(fix.FIX44, fix.NewGroup(t.Group(), &t.TestReqID))
	return t
}

func (t *TestRequest) Message() *fix.Message { return t.msg }
