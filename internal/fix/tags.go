package fix

// Tag is an ASCII numeric field identifier, up to six digits.
type Tag string

// Standard FIX 4.x tags used across the codec, engine and adapters.
const (
	TagBeginString  Tag = "8"
	TagBodyLength   Tag = "9"
	TagCheckSum     Tag = "10"
	TagClOrdID      Tag = "11"
	TagMsgSeqNum    Tag = "34"
	TagMsgType      Tag = "35"
	TagOrderID      Tag = "37"
	TagOrderQty     Tag = "38"
	TagOrdStatus    Tag = "39"
	TagOrdType      Tag = "40"
	TagOrigClOrdID  Tag = "41"
	TagPossDupFlag  Tag = "43"
	TagPrice        Tag = "44"
	TagSenderCompID Tag = "49"
	TagSendingTime  Tag = "52"
	TagSide         Tag = "54"
	TagSymbol       Tag = "55"
	TagTargetCompID Tag = "56"
	TagText         Tag = "58"
	TagTimeInForce  Tag = "59"

	TagRawDataLength      Tag = "95"
	TagRawData            Tag = "96"
	TagPossResend         Tag = "97"
	TagEncryptMethod      Tag = "98"
	TagHeartBtInt         Tag = "108"
	TagTestReqID          Tag = "112"
	TagBidPx              Tag = "132"
	TagOfferPx            Tag = "133"
	TagBidSize            Tag = "134"
	TagOfferSize          Tag = "135"
	TagResetSeqNumFlag    Tag = "141"
	TagNoRelatedSym       Tag = "146"
	TagSecondaryOrderID   Tag = "198"
	TagPutOrCall          Tag = "201"
	TagContractMultiplier Tag = "231"

	TagMDReqID                 Tag = "262"
	TagSubscriptionRequestType Tag = "263"
	TagMarketDepth             Tag = "264"
	TagMDUpdateType            Tag = "265"
	TagNoMDEntryTypes          Tag = "267"
	TagNoMDEntries             Tag = "268"
	TagMDEntryType             Tag = "269"
	TagMDEntryPx               Tag = "270"
	TagMDEntrySize             Tag = "271"
	TagMDEntryDate             Tag = "272"
	TagMDUpdateAction          Tag = "279"

	TagUnderlyingSymbol Tag = "311"
	TagUsername         Tag = "553"
	TagPassword         Tag = "554"
	TagOpenInterest     Tag = "746"
	TagUnderlyingPrice  Tag = "810"
	TagTrdMatchID       Tag = "880"
	TagSessionStatus    Tag = "1409"
)
