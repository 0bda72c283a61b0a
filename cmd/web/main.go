package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-directory/internal/client"
	"github.com/umalmyha/customer-directory/internal/config"
	"github.com/umalmyha/customer-directory/internal/infra"
	"github.com/umalmyha/customer-directory/internal/validation"
	"github.com/umalmyha/customer-directory/internal/web"
)

func main() {
	cfg, err := config.BuildWeb()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := infra.ConfigureLogger(cfg.LogLevel); err != nil {
		logrus.Fatal(err)
	}

	apiClient, err := client.NewCustomerClient(cfg.APIBaseURL, &http.Client{})
	if err != nil {
		logrus.Fatal(err)
	}

	v, err := validation.New()
	if err != nil {
		logrus.Fatal(err)
	}

	e, err := web.Router(apiClient, v)
	if err != nil {
		logrus.Fatal(err)
	}

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		errorCh <- e.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	logrus.Infof("web front end is talking to API at %s", cfg.APIBaseURL)

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
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
