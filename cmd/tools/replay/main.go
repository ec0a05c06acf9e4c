package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"main/internal/deribit"
	"main/internal/engine"
	"main/internal/fix"
	"main/internal/obs"
	"main/internal/transport"
)

func main() {
	path := flag.String("file", "", "Recorded FIX byte stream to replay")
	decode := flag.Bool("decode", false, "Decode market data messages through the typed schemas")
	dump := flag.Bool("dump", false, "Print each message with '|' separators")
	flag.Parse()

	if *path == "" {
		log.Fatal("missing -file")
	}

	source := transport.NewFileClient(*path, transport.Callbacks{
		OnError: func(code int, msg string) {
			log.Printf("transport error %d: %s", code, msg)
		},
	})

	metrics := obs.NewMetrics()
	increment := deribit.NewMarketDataIncrementalRefresh()
	snapshot := deribit.NewMarketDataSnapshotFullRefresh()

	var count int
	visitor := engine.VisitorFunc(func(msgType fix.MsgType, buf []byte) {
		count++
		if *dump {
			fmt.Println(fix.FixString(buf))
		}
		if !*decode {
			return
		}
		switch msgType {
		case fix.MsgTypeMarketDataIncrementalRefresh:
			increment.Message().Parse(buf)
		case fix.MsgTypeMarketDataSnapshotFullRefresh:
			snapshot.Message().Parse(buf)
		}
	})

	eng := engine.New(source, visitor)
	eng.SetMetrics(metrics)
	if !eng.Connect() {
		log.Fatalf("open %s failed", *path)
	}

	start := time.Now()
	for source.Active() {
		eng.Perform()
	}
	elapsed := time.Since(start)

	snap := metrics.Snapshot()
	fmt.Printf("replayed %d messages (%d bytes) in %s\n", count, snap.BytesIn, elapsed)
	if left := source.Size(); left > 0 {
		// framing dispatches only when the buffer holds more bytes than the
		// message, so a trailing message with no byte after it stays queued
		fmt.Printf("  %d bytes left undispatched\n", left)
	}
	for msgType, n := range snap.MsgCounts {
		fmt.Printf("  %-32s %d\n", msgType, n)
	}
}
