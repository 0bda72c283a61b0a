package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-directory/internal/config"
	"github.com/umalmyha/customer-directory/internal/infra"
	"github.com/umalmyha/customer-directory/internal/service"
	"github.com/umalmyha/customer-directory/internal/validation"
)

const defaultConnectTimeout = 10 * time.Second

// @title       Customer directory API
// @version     1.0
// @description Maintains customer records: list, read, create, update and delete.
// @host        localhost:3000
// @BasePath    /
func main() {
	cfg, err := config.BuildAPI()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := infra.ConfigureLogger(cfg.LogLevel); err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultConnectTimeout)
	defer cancel()

	store, err := infra.OpenStore(ctx, cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logrus.Errorf("failed to close %s store - %v", cfg.StoreDriver, err)
		}
	}()

	customerCache, closeCache, err := infra.CustomerCache(ctx, cfg.RedisCfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer func() {
		if err := closeCache(); err != nil {
			logrus.Errorf("failed to close redis client - %v", err)
		}
	}()

	v, err := validation.New()
	if err != nil {
		logrus.Fatal(err)
	}

	customerSvc := service.NewCustomerService(store.Transactor, store.Customers, customerCache)
	e := infra.Router(customerSvc, v)

	logrus.Infof("customers API is using %s store", cfg.StoreDriver)
	start(e, cfg.Port, cfg.ShutdownTimeout)
}

func start(e *echo.Echo, port int, shutdownTimeout time.Duration) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		errorCh <- e.Start(fmt.Sprintf(":%d", port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := e.Shutdown(ctx); err != nil {
			logrus.Errorf("failed to stop server gracefully - %v", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("shutting down the server, unexpected error occurred - %v", err)
		}
	}
}
