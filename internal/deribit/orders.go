package deribit

import "main/internal/fix"

// NewOrderSingle places one order.
type NewOrderSingle struct {
	*Header
	ClOrdID     fix.String
	Symbol      fix.String
	Side        fix.Char
	OrderQty    fix.Float
	Price       fix.Float
	OrdType     fix.Char
	TimeInForce fix.Char
	Label       fix.String

	msg *fix.Message
}

func NewNewOrderSingle() *NewOrderSingle {
	o := &NewOrderSingle{
		Header:      newHeader(fix.MsgTypeNewOrderSingle),
		ClOrdID:     fix.NewString(fix.TagClOrdID, 32),
		Symbol:      fix.NewString(fix.TagSymbol, 32),
		Side:        fix.NewChar(fix.TagSide),
		OrderQty:    fix.NewFloat(fix.TagOrderQty, 32),
		Price:       fix.NewFloat(fix.TagPrice, 32),
		OrdType:     fix.NewChar(fix.TagOrdType),
		TimeInForce: fix.NewChar(fix.TagTimeInForce),
		Label:       fix.NewString(TagLabel, 64),
	}
	o.msg = fix.NewMessage(fix.FIX44, fix.NewGroup(
		o.Group(), &o.ClOrdID, &o.Symbol, &o.Side, &o.OrderQty,
		&o.Price, &o.OrdType, &o.TimeInForce, &o.Label,
	))
	return o
}

func (o *NewOrderSingle) Message() *fix.Message { return o.msg }

// ExecutionReport is the venue's order state notification.
type ExecutionReport struct {
	*Header
	ClOrdID     fix.String
	OrigClOrdID fix.String
	OrderID     fix.String
	OrdStatus   fix.Char
	Symbol      fix.String
	Side        fix.Char
	Price       fix.Float
	OrderQty    fix.Float
	TradeAmount fix.Int
	Text        fix.Data

	msg *fix.Message
}

func NewExecutionReport() *ExecutionReport {
	e := &ExecutionReport{
		Header:      newHeader(fix.MsgTypeExecutionReport),
		ClOrdID:     fix.NewString(fix.TagClOrdID, 32),
		OrigClOrdID: fix.NewString(fix.TagOrigClOrdID, 32),
		OrderID:     fix.NewString(fix.TagOrderID, 32),
		OrdStatus:   fix.NewChar(fix.TagOrdStatus),
		Symbol:      fix.NewString(fix.TagSymbol, 32),
		Side:        fix.NewChar(fix.TagSide),
		Price:       fix.NewFloat(fix.TagPrice, 32),
		OrderQty:    fix.NewFloat(fix.TagOrderQty, 32),
		TradeAmount: fix.NewInt(TagTradeAmount, 16),
		Text:        fix.NewData(fix.TagText),
	}
	e.msg = fix.NewMessage(fix.FIX44, fix.NewGroup(
		e.Group(), &e.ClOrdID, &e.OrigClOrdID, &e.OrderID, &e.OrdStatus,
		&e.Symbol, &e.Side, &e.Price, &e.OrderQty, &e.TradeAmount, &e.Text,
	))
	return e
}

func (e *ExecutionReport) Message() *fix.Message { return e.msg }
