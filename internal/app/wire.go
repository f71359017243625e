package app

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/flow"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/gateway"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/hostbridge"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/platform/console"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/platform/logger"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/platform/metrics"
)

// Console is the terminal the session talks to.
type Console struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer // logs
}

// Wire bundles the bridge, clients and telemetry for the CLI.
type Wire struct {
	Config   Config
	Log      *slog.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Host     *hostbridge.Terminal
	Gateway  *gateway.Client
	HTTP     *http.Client

	in  *console.Reader
	out io.Writer
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, con Console) *Wire {
	if con.Out == nil {
		con.Out = io.Discard
	}
	if con.Err == nil {
		con.Err = io.Discard
	}
	log := logger.New(cfg.LogLevel, con.Err)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// The bridge and the screen prompts read from the same stdin.
	in := console.NewReader(con.In)
	host := hostbridge.New(hostbridge.Options{
		InitData: cfg.InitData,
		In:       in,
		Out:      con.Out,
		Log:      log,
	})

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	gw := gateway.New(cfg.APIURL, httpClient, host,
		gateway.WithLogger(log),
		gateway.WithMetrics(m),
	)

	return &Wire{
		Config:   cfg,
		Log:      log,
		Registry: reg,
		Metrics:  m,
		Host:     host,
		Gateway:  gw,
		HTTP:     httpClient,
		in:       in,
		out:      con.Out,
	}
}

// Runner returns a flow runner for a fresh session on the console.
func (w *Wire) Runner() *flow.Runner {
	return flow.NewRunner(flow.Config{
		Controller: flow.NewController(w.Log, w.Metrics),
		Host:       w.Host,
		Gateway:    w.Gateway,
		UI:         flow.NewTerminal(w.in, w.out),
		Log:        w.Log,
	})
}

// MetricsHandler exposes the registry in the Prometheus text format.
func (w *Wire) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(w.Registry, promhttp.HandlerOpts{Registry: w.Registry})
}
