package deribit

import "main/internal/fix"

// EntryType is one element of the requested MD entry-type group.
type EntryType struct {
	MDEntryType fix.Char

	group *fix.Group
}

func NewEntryType() *EntryType {
	e := &EntryType{MDEntryType: fix.NewChar(fix.TagMDEntryType)}
	e.group = fix.NewGroup(&e.MDEntryType)
	return e
}

func (e *EntryType) Group() *fix.Group { return e.group }

// RelatedSymbol is one element of the requested instrument group.
type RelatedSymbol struct {
	Symbol fix.String

	group *fix.Group
}

func NewRelatedSymbol() *RelatedSymbol {
	s := &RelatedSymbol{Symbol: fix.NewString(fix.TagSymbol, 32)}
	s.group = fix.NewGroup(&s.Symbol)
	return s
}

func (s *RelatedSymbol) Group() *fix.Group { return s.group }

// MarketDataRequest subscribes or unsubscribes market data streams.
type MarketDataRequest struct {
	*Header
	MDReqID                 fix.String
	SubscriptionRequestType fix.Char
	MarketDepth             fix.Int
	MDUpdateType            fix.Int
	TradeAmount             fix.Int
	NoMDEntryTypes          fix.Int
	EntryTypes              *fix.Array[*EntryType]
	NoRelatedSym            fix.Int
	Symbols                 *fix.Vector[*RelatedSymbol]

	msg *fix.Message
}

func NewMarketDataRequest() *MarketDataRequest {
	r := &MarketDataRequest{
		Header:                  newHeader(fix.MsgTypeMarketDataRequest),
		MDReqID:                 fix.NewString(fix.TagMDReqID, 32),
		SubscriptionRequestType: fix.NewChar(fix.TagSubscriptionRequestType),
		MarketDepth:             fix.NewInt(fix.TagMarketDepth, 8),
		MDUpdateType:            fix.NewInt(fix.TagMDUpdateType, 4),
		TradeAmount:             fix.NewInt(TagTradeAmount, 16),
		NoMDEntryTypes:          fix.NewInt(fix.TagNoMDEntryTypes, 4),
		EntryTypes:              fix.NewArray(NewEntryType, 3),
		NoRelatedSym:            fix.NewInt(fix.TagNoRelatedSym, 8),
		Symbols:                 fix.NewVector(NewRelatedSymbol),
	}
	r.msg = fix.NewMessage(fix.FIX44, fix.NewGroup(
		r.Group(), &r.MDReqID, &r.SubscriptionRequestType, &r.MarketDepth,
		&r.MDUpdateType, &r.TradeAmount, &r.NoMDEntryTypes, r.EntryTypes,
		&r.NoRelatedSym, r.Symbols,
	))
	return r
}

func (r *MarketDataRequest) Message() *fix.Message { return r.msg }

// MarketDataRequestReject reports a failed subscription.
type MarketDataRequestReject struct {
	*Header
	MDReqRejReason fix.Char
	MDReqID        fix.String
	Text           fix.Data

	msg *fix.Message
}

// MDReqRejReason is tag 281.
const tagMDReqRejReason fix.Tag = "281"

func NewMarketDataRequestReject() *MarketDataRequestReject {
	r := &MarketDataRequestReject{
		Header:         newHeader(fix.MsgTypeMarketDataRequestReject),
		MDReqRejReason: fix.NewChar(tagMDReqRejReason),
		MDReqID:        fix.NewString(fix.TagMDReqID, 32),
		Text:           fix.NewData(fix.TagText),
	}
	r.msg = fix.NewMessage(fix.FIX44, fix.NewGroup(
		r.Group(), &r.MDReqRejReason, &r.MDReqID, &r.Text,
	))
	return r
}

func (r *MarketDataRequestReject) Message() *fix.Message { return r.msg }

// MDEntry is one row of a market-data refresh: a quote, trade or index
// level with the venue's custom annotations.
type MDEntry struct {
	MDUpdateAction   fix.Char
	MDEntryType      fix.Char
	MDEntryPx        fix.Float
	MDEntrySize      fix.Float
	MDEntryDate      fix.String
	TradeID          fix.String
	Side             fix.Char
	OrderID          fix.String
	SecondaryOrderID fix.String
	OrdStatus        fix.Char
	Label            fix.String
	Price            fix.Float
	Text             fix.Data
	Liquidation      fix.String
	TrdMatchID       fix.String

	group *fix.Group
}

func NewMDEntry() *MDEntry {
	e := &MDEntry{
		MDUpdateAction:   fix.NewChar(fix.TagMDUpdateAction),
		MDEntryType:      fix.NewChar(fix.TagMDEntryType),
		MDEntryPx:        fix.NewFloat(fix.TagMDEntryPx, 32),
		MDEntrySize:      fix.NewFloat(fix.TagMDEntrySize, 32),
		MDEntryDate:      fix.NewString(fix.TagMDEntryDate, 24),
		TradeID:          fix.NewString(TagTradeID, 32),
		Side:             fix.NewChar(fix.TagSide),
		OrderID:          fix.NewString(fix.TagOrderID, 32),
		SecondaryOrderID: fix.NewString(fix.TagSecondaryOrderID, 32),
		OrdStatus:        fix.NewChar(fix.TagOrdStatus),
		Label:            fix.NewString(TagLabel, 64),
		Price:            fix.NewFloat(fix.TagPrice, 32),
		Text:             fix.NewData(fix.TagText),
		Liquidation:      fix.NewString(TagLiquidation, 4),
		TrdMatchID:       fix.NewString(fix.TagTrdMatchID, 32),
	}
	e.group = fix.NewGroup(
		&e.MDUpdateAction, &e.MDEntryType, &e.MDEntryPx, &e.MDEntrySize,
		&e.MDEntryDate, &e.TradeID, &e.Side, &e.OrderID, &e.SecondaryOrderID,
		&e.OrdStatus, &e.Label, &e.Price, &e.Text, &e.Liquidation, &e.TrdMatchID,
	)
	return e
}

func (e *MDEntry) Group() *fix.Group { return e.group }

// MarketDataIncrementalRefresh streams order book and trade deltas.
type MarketDataIncrementalRefresh struct {
	*Header
	Symbol             fix.String
	ContractMultiplier fix.Float
	TradeVolume24h     fix.Float
	MarkPrice          fix.Float
	OpenInterest       fix.Float
	PutOrCall          fix.Int
	MDReqID            fix.String
	NoMDEntries        fix.Int
	Entries            *fix.Vector[*MDEntry]

	msg *fix.Message
}

func NewMarketDataIncrementalRefresh() *MarketDataIncrementalRefresh {
	r := &MarketDataIncrementalRefresh{
		Header:             newHeader(fix.MsgTypeMarketDataIncrementalRefresh),
		Symbol:             fix.NewString(fix.TagSymbol, 32),
		ContractMultiplier: fix.NewFloat(fix.TagContractMultiplier, 16),
		TradeVolume24h:     fix.NewFloat(TagTradeVolume24h, 32),
		MarkPrice:          fix.NewFloat(TagMarkPrice, 32),
		OpenInterest:       fix.NewFloat(fix.TagOpenInterest, 32),
		PutOrCall:          fix.NewInt(fix.TagPutOrCall, 4),
		MDReqID:            fix.NewString(fix.TagMDReqID, 32),
		NoMDEntries:        fix.NewInt(fix.TagNoMDEntries, 8),
		Entries:            fix.NewVector(NewMDEntry),
	}
	r.msg = fix.NewMessage(fix.FIX44, fix.NewGroup(
		r.Group(), &r.Symbol, &r.ContractMultiplier, &r.TradeVolume24h,
		&r.MarkPrice, &r.OpenInterest, &r.PutOrCall, &r.MDReqID,
		&r.NoMDEntries, r.Entries,
	))
	return r
}

func (r *MarketDataIncrementalRefresh) Message() *fix.Message { return r.msg }

// MarketDataSnapshotFullRefresh carries the full book image plus the
// venue's funding and underlying annotations.
type MarketDataSnapshotFullRefresh struct {
	*Header
	Symbol             fix.String
	ContractMultiplier fix.Float
	UnderlyingSymbol   fix.String
	UnderlyingPrice    fix.Float
	TradeVolume24h     fix.Float
	MarkPrice          fix.Float
	OpenInterest       fix.Float
	PutOrCall          fix.Int
	CurrentFunding     fix.Float
	Funding8h          fix.Float
	MDReqID            fix.String
	NoMDEntries        fix.Int
	Entries            *fix.Vector[*MDEntry]

	msg *fix.Message
}

func NewMarketDataSnapshotFullRefresh() *MarketDataSnapshotFullRefresh {
	r := &MarketDataSnapshotFullRefresh{
		Header:             newHeader(fix.MsgTypeMarketDataSnapshotFullRefresh),
		Symbol:             fix.NewString(fix.TagSymbol, 32),
		ContractMultiplier: fix.NewFloat(fix.TagContractMultiplier, 16),
		UnderlyingSymbol:   fix.NewString(fix.TagUnderlyingSymbol, 32),
		UnderlyingPrice:    fix.NewFloat(fix.TagUnderlyingPrice, 32),
		TradeVolume24h:     fix.NewFloat(TagTradeVolume24h, 32),
		MarkPrice:          fix.NewFloat(TagMarkPrice, 32),
		OpenInterest:       fix.NewFloat(fix.TagOpenInterest, 32),
		PutOrCall:          fix.NewInt(fix.TagPutOrCall, 4),
		CurrentFunding:     fix.NewFloat(TagCurrentFunding, 32),
		Funding8h:          fix.NewFloat(TagFunding8h, 32),
		MDReqID:            fix.NewString(fix.TagMDReqID, 32),
		NoMDEntries:        fix.NewInt(fix.TagNoMDEntries, 8),
		Entries:            fix.NewVector(NewMDEntry),
	}
	r.msg = fix.NewMessage(fix.FIX44, fix.NewGroup(
		r.Group(), &r.Symbol, &r.ContractMultiplier, &r.UnderlyingSymbol,
		&r.UnderlyingPrice, &r.TradeVolume24h, &r.MarkPrice, &r.OpenInterest,
		&r.PutOrCall, &r.CurrentFunding, &r.Funding8h, &r.MDReqID,
		&r.NoMDEntries, r.Entries,
	))
	return r
}

func (r *MarketDataSnapshotFullRefresh) Message() *fix.Message { return r.msg }
