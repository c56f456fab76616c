/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package main is the entry point for starting the onboarding server.
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/venuely/onboarding/internal/system/cert"
	"github.com/venuely/onboarding/internal/system/config"
	"github.com/venuely/onboarding/internal/system/constants"
	"github.com/venuely/onboarding/internal/system/database/provider"
	"github.com/venuely/onboarding/internal/system/log"
)

func main() {
	logger := log.GetLogger()
	defer logger.Sync()

	serverHome := getServerHome(logger)

	cfg := initServerConfigurations(logger, serverHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	dbProvider := provider.GetDBProvider()
	mux := http.NewServeMux()
	if err := registerServices(mux, cfg, serverHome, dbProvider); err != nil {
		logger.Fatal("Failed to register the services", log.Error(err))
	}

	server, serverAddr := createHTTPServer(logger, cfg, mux)
	if cfg.Server.HTTPOnly {
		logger.Info("TLS is not enabled, starting server without TLS")
		runServer(logger, server, dbProvider, func() error {
			logger.Info("Onboarding server started (HTTP)...", log.String("address", serverAddr))
			return server.ListenAndServe()
		})
		return
	}

	tlsConfig, err := cert.GetTLSConfig(cfg, serverHome)
	if err != nil {
		logger.Fatal("Failed to load TLS configuration", log.Error(err))
	}
	ln, err := tls.Listen("tcp", serverAddr, tlsConfig)
	if err != nil {
		logger.Fatal("Failed to start TLS listener", log.Error(err))
	}
	runServer(logger, server, dbProvider, func() error {
		logger.Info("Onboarding server started (HTTPS)...", log.String("address", serverAddr))
		return server.Serve(ln)
	})
}

// getServerHome retrieves and returns the server home directory.
func getServerHome(logger *log.Logger) string {
	serverHome := ""
	serverHomeFlag := flag.String("serverHome", "", "Path to the onboarding server home directory")
	flag.Parse()

	if *serverHomeFlag != "" {
		logger.Info("Using serverHome from command line argument", log.String("serverHome", *serverHomeFlag))
		serverHome = *serverHomeFlag
	} else {
		// Fall back to the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		serverHome = dir
	}

	return serverHome
}

// initServerConfigurations loads the deployment configuration and initializes the server runtime.
func initServerConfigurations(logger *log.Logger, serverHome string) *config.Config {
	configFilePath := path.Join(serverHome, constants.DeploymentConfigPath)
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeServerRuntime(serverHome, cfg); err != nil {
		logger.Fatal("Failed to initialize server runtime", log.Error(err))
	}

	return cfg
}

// runServer serves requests until the process receives an interrupt or termination signal.
func runServer(logger *log.Logger, server *http.Server, dbProvider provider.DBProviderInterface,
	serve func() error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- serve()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to serve requests", log.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutting down the onboarding server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down the server gracefully", log.Error(err))
		}
	}

	if err := dbProvider.Close(); err != nil {
		logger.Error("Failed to close database connections", log.Error(err))
	}
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	wrappedMux := log.AccessLogHandler(logger, mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}
