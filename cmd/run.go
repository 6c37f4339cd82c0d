// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	goakt "github.com/tochemey/goakt/v4/actor"
	"github.com/tochemey/goakt/v4/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/tochemey/goakt-ledger/internal/ledger"
	"github.com/tochemey/goakt-ledger/internal/service"
	"github.com/tochemey/goakt-ledger/internal/telemetry"
)

func getLogLevel(level string) log.Level {
	var logLevel log.Level
	switch level {
	case "debug":
		logLevel = log.DebugLevel
	case "info":
		logLevel = log.InfoLevel
	case "warn":
		logLevel = log.WarningLevel
	case "error":
		logLevel = log.ErrorLevel
	default:
		logLevel = log.InfoLevel
	}
	return logLevel
}

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the ledger service",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		// get the configuration from the env vars
		config, err := service.GetConfig()
		if err != nil {
			return err
		}

		logger := log.NewSlog(getLogLevel(config.LogLevel), os.Stdout)

		res, err := telemetry.NewResource(ctx, config.SystemName)
		if err != nil {
			return err
		}

		var tracerProvider *sdktrace.TracerProvider
		if config.TraceEnabled {
			tracerProvider, err = telemetry.InitTracer(ctx, res, config.TraceProtocol, config.TraceURL)
			if err != nil {
				return err
			}
		}

		metrics, err := telemetry.NewMetrics(res, logger)
		if err != nil {
			return err
		}
		metrics.Serve(config.MetricsPort)

		actorSystem, err := goakt.NewActorSystem(
			config.SystemName,
			goakt.WithLogger(logger),
			goakt.WithActorInitMaxRetries(3))
		if err != nil {
			return err
		}

		if err := actorSystem.Start(ctx); err != nil {
			return err
		}

		ledgerService := ledger.NewService(actorSystem, logger, config.AskTimeout)
		if err := ledgerService.Start(ctx); err != nil {
			_ = actorSystem.Stop(ctx)
			return err
		}

		rpcService := service.NewLedgerService(ledgerService, logger, config.Port)
		if err := rpcService.Start(); err != nil {
			_ = actorSystem.Stop(ctx)
			return err
		}

		// capture ctrl+c
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs

		logger.Info("Shutting down...")
		newCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()

		// stop taking requests before the registry goes away
		if err := rpcService.Stop(newCtx); err != nil {
			logger.Errorf("error stopping ledger service: %v", err)
		}

		if err := actorSystem.Stop(ctx); err != nil {
			logger.Errorf("error stopping actor system: %v", err)
		}

		if err := metrics.Shutdown(newCtx); err != nil {
			logger.Errorf("error stopping metrics: %v", err)
		}

		if tracerProvider != nil {
			if err := tracerProvider.Shutdown(newCtx); err != nil {
				logger.Errorf("error stopping tracer: %v", err)
			}
		}

		logger.Info("Shutdown complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
