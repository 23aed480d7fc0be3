package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sales_dashboard/api"
	"sales_dashboard/internal/config"
	"sales_dashboard/internal/metrics"
	"sales_dashboard/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("error loading configuration: %v", err))
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	st := store.New(logger)
	if cfg.SeedSales > 0 {
		st.Seed(cfg.SeedSales)
	}

	m := metrics.New()

	r := gin.Default()
	r.Use(m.Middleware())
	r.GET("/metrics", gin.WrapH(m.Handler()))
	api.InitRoutes(r, st, logger)

	if err := run(cfg.HTTPAddr, r, logger); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}

// run serves until SIGINT/SIGTERM, then shuts down gracefully.
func run(addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info("shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
