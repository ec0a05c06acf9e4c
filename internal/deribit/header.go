package deribit

import "main/internal/fix"

// Header is the standard message header shared by every Deribit message.
// MsgType leads, satisfying the message schema assertion.
type Header struct {
	MsgType      fix.String
	PossDupFlag  fix.Char
	SenderCompID fix.String
	TargetCompID fix.String
	MsgSeqNum    fix.Int
	SendingTime  fix.UTCTimestamp
	PossResend   fix.Char

	group *fix.Group
}

func newHeader(msgType fix.MsgType) *Header {
	h := &Header{
		MsgType:      fix.NewString(fix.TagMsgType, 4),
		PossDupFlag:  fix.NewChar(fix.TagPossDupFlag),
		SenderCompID: fix.NewString(fix.TagSenderCompID, 32),
		TargetCompID: fix.NewString(fix.TagTargetCompID, 32),
		MsgSeqNum:    fix.NewInt(fix.TagMsgSeqNum, 20),
		SendingTime:  fix.NewUTCTimestamp(fix.TagSendingTime, fix.Millis),
		PossResend:   fix.NewChar(fix.TagPossResend),
	}
	h.group = fix.NewGroup(
		&h.MsgType, &h.PossDupFlag, &h.SenderCompID, &h.TargetCompID,
		&h.MsgSeqNum, &h.SendingTime, &h.PossResend,
	)
	h.MsgType.Set(msgType.Code())
	return h
}

func (h *Header) Group() *fix.Group { return h.group }

// Stamp applies the engine's outbound housekeeping values.
func (h *Header) Stamp(seqNum int64, tsNano int64) {
	h.MsgSeqNum.Set(seqNum)
	h.SendingTime.Set(tsNano)
}

// Session sets the comp IDs identifying this session.
func (h *Header) Session(senderCompID, targetCompID string) {
	h.SenderCompID.Set(senderCompID)
	h.TargetCompID.Set(targetCompID)
}
