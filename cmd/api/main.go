package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"fastfoodpos/pkg/api"
	"fastfoodpos/pkg/config"
	"fastfoodpos/pkg/logger"
	"fastfoodpos/pkg/order/dispatch"
	"fastfoodpos/pkg/order/redisfeed"
	"fastfoodpos/pkg/otel"
)

const serviceName = "fastfoodpos"

// @title Fast-food POS API
// @version 1.0
// @description Product catalog and order intake for the counter
// @BasePath /
func main() {
	app := &cli.App{
		Name:  serviceName,
		Usage: "serve the point-of-sale API and front-end assets",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address (overrides POS_ADDR)"},
			&cli.StringFlag{Name: "public-dir", Usage: "static asset directory (overrides POS_PUBLIC_DIR)"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error (overrides POS_LOG_LEVEL)"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.New(os.Stderr, logger.LevelError, serviceName, nil).Error(context.Background(), "startup", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.IsSet("addr") {
		cfg.Addr = c.String("addr")
	}
	if c.IsSet("public-dir") {
		cfg.PublicDir = c.String("public-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := logger.New(os.Stdout, level, serviceName, otel.GetTraceID)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, shutdownTracing, err := otel.InitTracing(log, otel.Config{
		ServiceName: serviceName,
		Host:        cfg.OtelHost,
		Stdout:      cfg.OtelStdout,
		Probability: cfg.OtelProbability,
	})
	if err != nil {
		return errors.Wrap(err, "init tracing")
	}
	defer shutdownTracing(context.Background())

	apiCfg := api.Config{
		State:     api.NewState(),
		Log:       log,
		Tracer:    tp.Tracer(serviceName),
		PublicDir: cfg.PublicDir,
	}

	var dispatcher *dispatch.Dispatcher
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn(ctx, "redis unavailable, orders will not be published until it recovers", "addr", cfg.RedisAddr, "error", err)
		}
		feed := redisfeed.New(rdb, cfg.RedisChannel)
		dispatcher = dispatch.New(feed, log, cfg.FeedBuffer, cfg.FeedTimeout)
		apiCfg.Publisher = dispatcher
		log.Info(ctx, "order feed enabled", "addr", cfg.RedisAddr, "channel", feed.Channel(), "buffer", cfg.FeedBuffer)
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.New(apiCfg).Routes(),
	}

	if dispatcher != nil {
		go dispatcher.Run()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info(gctx, "listening", "addr", cfg.Addr, "public_dir", cfg.PublicDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "listen")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info(context.Background(), "shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(sctx)
		if dispatcher != nil {
			if cerr := dispatcher.Close(sctx); cerr != nil {
				log.Warn(sctx, "order feed not drained", "error", cerr)
			}
		}
		return err
	})

	return g.Wait()
}
