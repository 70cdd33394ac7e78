package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bellacucina/api/config"
	"github.com/bellacucina/api/server"
	"github.com/bellacucina/api/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.Init()

	// All state is process memory; seed data is rebuilt on every start.
	menuStore := storage.NewMenuStore(storage.SeedMenuItems())
	orderStore := storage.NewOrderStore(storage.SeedOrders(time.Now()))

	svr := server.SetupRoutes(menuStore, orderStore)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Printf("listening on :%s", config.Port)
		if err := svr.Run(":" + config.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Panicf("failed to run server, error: %v", err)
		}
	}()

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeout); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
