package main

import (
	"context"
	"flag"
	"log"
	"sync"
	"time"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"

	"main/internal/bus"
	"main/internal/deribit"
	"main/internal/engine"
	"main/internal/fix"
	"main/internal/obs"
	"main/internal/ops"
	"main/internal/transport"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON session config")
	pyroscopeAddr := flag.String("pyroscope", "", "Pyroscope server address (empty=disabled)")
	queueDepth := flag.Int("queue-depth", 1024, "Market data hand-off queue capacity")
	flag.Parse()

	if *configPath == "" {
		log.Fatal("missing -config")
	}
	cfg, err := ops.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if *pyroscopeAddr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "fix/client",
			ServerAddress:   *pyroscopeAddr,
			Tags: map[string]string{
				"session": cfg.Session.SenderCompID,
			},
			Logger: emptyLogger{},
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseObjects,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer func() {
			_ = profiler.Stop()
		}()
	}

	source, err := cfg.NewTransport(transport.Callbacks{
		OnConnect:    func() { logs.Info("connected") },
		OnDisconnect: func() { logs.Info("disconnected") },
		OnError: func(code int, msg string) {
			logs.Errorf("transport error %d: %s", code, msg)
		},
	})
	if err != nil {
		log.Fatalf("build transport: %v", err)
	}

	metrics := obs.NewMetrics()
	queue := bus.NewQueue(*queueDepth)
	client := newClient(cfg, queue)
	eng := engine.New(source, client)
	eng.SetMetrics(metrics)
	client.eng = eng

	// market data is consumed off the session thread; the session loop
	// only copies bytes onto the queue
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var consumers sync.WaitGroup
	consumers.Add(1)
	go func() {
		defer consumers.Done()
		consumer := newMarketDataConsumer()
		queue.Run(ctx, consumer.consume)
	}()

	if !eng.Connect() {
		log.Fatal("connect failed")
	}
	if err := client.logon(); err != nil {
		log.Fatalf("logon: %v", err)
	}

	heartBt := time.Duration(cfg.Session.HeartBtInt) * time.Second
	for source.Active() {
		select {
		case <-sys.Shutdown():
			eng.Disconnect()
		default:
		}
		eng.Perform()
		if time.Now().UnixNano()-source.LastSentAt() > int64(heartBt) {
			client.heartbeat("")
		}
	}
	queue.Close()
	consumers.Wait()

	snap := metrics.Snapshot()
	logs.Infof("session closed: in=%dB out=%dB sent=%d dropped=%d dispatch avg=%s",
		snap.BytesIn, snap.BytesOut, snap.Sent, queue.Drops(), snap.DispatchLatency.Avg)
	for msgType, count := range snap.MsgCounts {
		logs.Infof("  %s: %d", msgType, count)
	}
}

// client is the visitor wiring the session's admin flow: it answers
// TestRequests inline and hands market data off to the queue consumer.
type client struct {
	cfg   ops.Loaded
	eng   *engine.Engine
	queue *bus.Queue

	logonMsg *deribit.Logon
	hb       *deribit.Heartbeat
	testReq  *deribit.TestRequest
}

func newClient(cfg ops.Loaded, queue *bus.Queue) *client {
	return &client{
		cfg:      cfg,
		queue:    queue,
		logonMsg: deribit.NewLogon(),
		hb:       deribit.NewHeartbeat(),
		testReq:  deribit.NewTestRequest(),
	}
}

func (c *client) logon() error {
	c.logonMsg.Session(c.cfg.Session.SenderCompID, c.cfg.Session.TargetCompID)
	if err := c.logonMsg.Authenticate(c.cfg.Auth.APIKey, c.cfg.Auth.SecretKey, c.cfg.Session.HeartBtInt); err != nil {
		return err
	}
	if c.cfg.Session.CancelOnDisconnect {
		c.logonMsg.CancelOnDisconnect.Set('Y')
	}
	c.eng.SendStamped(c.logonMsg)
	return nil
}

func (c *client) heartbeat(testReqID string) {
	c.hb.Session(c.cfg.Session.SenderCompID, c.cfg.Session.TargetCompID)
	if testReqID != "" {
		c.hb.TestReqID.Set(testReqID)
	}
	c.eng.SendStamped(c.hb)
}

func (c *client) OnMessage(msgType fix.MsgType, buf []byte) {
	switch msgType {
	case fix.MsgTypeLogon:
		logs.Infof("logon accepted: %s", fix.FixString(buf))
	case fix.MsgTypeTestRequest:
		c.testReq.TestReqID.Clear()
		c.testReq.Message().Parse(buf)
		c.heartbeat(c.testReq.TestReqID.Get())
	case fix.MsgTypeMarketDataIncrementalRefresh,
		fix.MsgTypeMarketDataSnapshotFullRefresh,
		fix.MsgTypeMarketDataRequestReject,
		fix.MsgTypeExecutionReport:
		if err := c.queue.Publish(msgType, buf); err != nil {
			logs.Errorf("drop %s: %v", msgType, err)
		}
	case fix.MsgTypeLogout:
		logs.Infof("logout: %s", fix.FixString(buf))
		c.eng.Disconnect()
	default:
		logs.Infof("inbound %s: %s", msgType, fix.FixString(buf))
	}
}

// marketDataConsumer decodes queued messages through the typed schemas,
// away from the session loop.
type marketDataConsumer struct {
	increment *deribit.MarketDataIncrementalRefresh
	snapshot  *deribit.MarketDataSnapshotFullRefresh
	reject    *deribit.MarketDataRequestReject
	report    *deribit.ExecutionReport
}

func newMarketDataConsumer() *marketDataConsumer {
	return &marketDataConsumer{
		increment: deribit.NewMarketDataIncrementalRefresh(),
		snapshot:  deribit.NewMarketDataSnapshotFullRefresh(),
		reject:    deribit.NewMarketDataRequestReject(),
		report:    deribit.NewExecutionReport(),
	}
}

func (m *marketDataConsumer) consume(e bus.Event) {
	switch e.MsgType {
	case fix.MsgTypeMarketDataIncrementalRefresh:
		m.increment.Message().Parse(e.Payload)
		logs.Infof("%s %d entries", m.increment.Symbol.Get(), m.increment.Entries.Len())
	case fix.MsgTypeMarketDataSnapshotFullRefresh:
		m.snapshot.Message().Parse(e.Payload)
		logs.Infof("snapshot %s %d entries", m.snapshot.Symbol.Get(), m.snapshot.Entries.Len())
	case fix.MsgTypeMarketDataRequestReject:
		m.reject.Message().Parse(e.Payload)
		logs.Errorf("md request %s rejected: %s", m.reject.MDReqID.Get(), m.reject.Text.Get())
	case fix.MsgTypeExecutionReport:
		m.report.Message().Parse(e.Payload)
		logs.Infof("execution %s status %c", m.report.ClOrdID.Get(), m.report.OrdStatus.Get())
	}
}

type emptyLogger struct{}

func (emptyLogger) Infof(_ string, _ ...interface{})  {}
func (emptyLogger) Debugf(_ string, _ ...interface{}) {}
func (emptyLogger) Errorf(_ string, _ ...interface{}) {}
