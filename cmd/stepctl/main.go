// Command stepctl talks to a STEP400 or STEP800 board from the command line.
//
// Usage:
//
//	stepctl [flags] <get|set|watch|shell> [args...]
//
// Flags:
//
//	-config string        YAML or TOML configuration file
//	-model string         Board model: step400, step800 (default "step400")
//	-id int               DIP-switch ID of the board (default 1)
//	-address string       Board address before the ID offset (default "10.0.0.100")
//	-port int             Board port (default 50000)
//	-listen-port int      Local port before the ID offset (default 50100)
//	-no-id-offset         Use address and listen port as given
//	-timeout duration     Reply deadline (default 2s)
//	-trace string         Write a protocol trace to this file
//	-metrics-addr string  Serve Prometheus metrics on this address
//	-log-level string     Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Read the microstep mode of every motor
//	stepctl -id 1 get GetMicrostepMode 255
//
//	# Enable busy reports on motor 2 and print them
//	stepctl set EnableBusyReport 2 true
//	stepctl watch Busy
//
//	# Open the shell against a STEP800 described in a config file
//	stepctl -config board.toml shell
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stepseries/stepseries-go/cmd/stepctl/commands"
	"github.com/stepseries/stepseries-go/cmd/stepctl/interactive"
	"github.com/stepseries/stepseries-go/pkg/board"
	"github.com/stepseries/stepseries-go/pkg/connection"
	"github.com/stepseries/stepseries-go/pkg/device"
	steplog "github.com/stepseries/stepseries-go/pkg/log"
	"github.com/stepseries/stepseries-go/pkg/metrics"
)

func main() {
	cfg, args, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "stepctl:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "stepctl:", err)
		stop()
		os.Exit(1)
	}
}

// parseArgs resolves the configuration: defaults, then the config file,
// then explicitly set flags.
func parseArgs(argv []string, stderr io.Writer) (Config, []string, error) {
	fs := flag.NewFlagSet("stepctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: stepctl [flags] <get|set|watch|shell> [args...]")
		fs.PrintDefaults()
	}

	def := DefaultConfig()
	var (
		configFile  = fs.String("config", "", "YAML or TOML configuration file")
		model       = fs.String("model", def.Device.Model.String(), "Board model: step400, step800")
		id          = fs.Int("id", def.Device.ID, "DIP-switch ID of the board")
		address     = fs.String("address", def.Device.Address, "Board address before the ID offset")
		port        = fs.Int("port", def.Device.Port, "Board port")
		listenPort  = fs.Int("listen-port", def.Device.ListenPort, "Local port before the ID offset")
		noIDOffset  = fs.Bool("no-id-offset", false, "Use address and listen port as given")
		timeout     = fs.Duration("timeout", def.Device.Timeout, "Reply deadline")
		trace       = fs.String("trace", "", "Write a protocol trace to this file")
		metricsAddr = fs.String("metrics-addr", "", "Serve Prometheus metrics on this address")
		logLevel    = fs.String("log-level", def.LogLevel, "Log level: debug, info, warn, error")
	)
	if err := fs.Parse(argv); err != nil {
		return Config{}, nil, err
	}

	cfg := def
	if *configFile != "" {
		if err := loadConfig(*configFile, &cfg); err != nil {
			return Config{}, nil, err
		}
	}

	var ferr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			m, err := board.ParseModel(*model)
			if err != nil {
				ferr = err
				return
			}
			cfg.Device.Model = m
		case "id":
			cfg.Device.ID = *id
		case "address":
			cfg.Device.Address = *address
		case "port":
			cfg.Device.Port = *port
		case "listen-port":
			cfg.Device.ListenPort = *listenPort
		case "no-id-offset":
			cfg.Device.AddIDToArgs = !*noIDOffset
		case "timeout":
			cfg.Device.Timeout = *timeout
		case "trace":
			cfg.Trace = *trace
		case "metrics-addr":
			cfg.MetricsAddr = *metricsAddr
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if ferr != nil {
		return Config{}, nil, ferr
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return Config{}, nil, fmt.Errorf("%w: missing subcommand", commands.ErrUsage)
	}
	if _, err := cfg.Device.Identity(); err != nil {
		return Config{}, nil, err
	}
	return cfg, fs.Args(), nil
}

func newLogger(level string, w io.Writer) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

// run connects to the board and executes the subcommand in args.
func run(ctx context.Context, cfg Config, args []string, stdout io.Writer) error {
	logger := newLogger(cfg.LogLevel, os.Stderr)

	var trace steplog.Logger
	if cfg.Trace != "" {
		fl, err := steplog.NewFileLogger(cfg.Trace)
		if err != nil {
			return err
		}
		defer fl.Close()
		trace = fl
	}

	if cfg.MetricsAddr != "" {
		metrics.RegisterMetrics()
		cfg.Device.Metrics = true
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           promhttp.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer srv.Close()
		logger.Info("serving metrics", "addr", cfg.MetricsAddr)
	}

	mgr := connection.NewManager(connection.Config{
		Logger: logger,
		Trace:  trace,
	})
	defer mgr.Close()

	cfg.Device.Logger = logger
	cfg.Device.Trace = trace
	dev, err := device.New(cfg.Device, mgr)
	if err != nil {
		return err
	}
	defer dev.Close()

	hctx, cancel := context.WithTimeout(ctx, 4*cfg.Device.Timeout)
	dest, err := dev.Handshake(hctx)
	cancel()
	if err != nil {
		return fmt.Errorf("handshake with %s: %w", dev.Identity().Remote, err)
	}
	logger.Debug("handshake complete", "dest", commands.FormatResponse(dest))

	return dispatch(ctx, dev, args, stdout)
}

// dispatch runs one subcommand against dev.
func dispatch(ctx context.Context, dev *device.Device, args []string, stdout io.Writer) error {
	sub, rest := args[0], args[1:]
	switch strings.ToLower(sub) {
	case "get":
		return commands.Get(ctx, dev, rest, stdout)

	case "set":
		return commands.Set(ctx, dev, rest)

	case "watch":
		return commands.NewWatcher(dev, stdout).Run(ctx, rest...)

	case "shell":
		sh, err := interactive.New(dev)
		if err != nil {
			return err
		}
		sctx, cancel := context.WithCancel(ctx)
		defer cancel()
		sh.Run(sctx, cancel)
		return nil

	default:
		return fmt.Errorf("%w: unknown subcommand %q", commands.ErrUsage, sub)
	}
}
