// Package deribit builds the venue-specific message schemas for a Deribit
// FIX session: logon with the venue's signed-nonce authentication, session
// keepalive, and the market-data request/refresh flows.
package deribit

import "main/internal/fix"

// Custom server defined tags.
const (
	TagCancelOnDisconnect             fix.Tag = "9001"
	TagUnsubscribeExecutionReports    fix.Tag = "9009"
	TagConnectionOnlyExecutionReports fix.Tag = "9010"
	TagCancelOnDisconnectType         fix.Tag = "35002"
	TagTradeAmount                    fix.Tag = "100007"
	TagTradeID                        fix.Tag = "100009"
	TagLabel                          fix.Tag = "100010"
	TagTradeVolume24h                 fix.Tag = "100087"
	TagMarkPrice                      fix.Tag = "100090"
	TagLiquidation                    fix.Tag = "100091"
	TagCurrentFunding                 fix.Tag = "100092"
	TagFunding8h                      fix.Tag = "100093"
)
