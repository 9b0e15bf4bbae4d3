/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

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

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/demo-qa/test/api/fakeapi"
)

type options struct {
	listenAddress   string
	latency         time.Duration
	shutdownTimeout time.Duration
	verbosity       int
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.listenAddress, "listen-address", ":8080", "API listener address.")
	f.DurationVar(&o.latency, "latency", 0, "Delay added to every response.")
	f.DurationVar(&o.shutdownTimeout, "shutdown-timeout", 5*time.Second, "Time to wait for in flight requests on shutdown.")
	f.IntVarP(&o.verbosity, "verbosity", "v", 0, "Log verbosity.")
}

// logRequests logs every request at verbosity 1.
func logRequests(logger logr.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		logger.V(1).Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func run(ctx context.Context, logger logr.Logger, o *options) error {
	server := &http.Server{
		Addr:              o.listenAddress,
		Handler:           logRequests(logger, fakeapi.New(fakeapi.WithLatency(o.latency))),
		ReadHeaderTimeout: time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		errs <- server.ListenAndServe()
	}()

	logger.Info("fake api listening", "address", o.listenAddress, "posts", fakeapi.PostCount, "users", fakeapi.UserCount)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), o.shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func main() {
	o := &options{}

	o.AddFlags(pflag.CommandLine)

	pflag.Parse()

	logger := funcr.New(func(prefix, args string) {
		fmt.Fprintln(os.Stderr, prefix, args)
	}, funcr.Options{
		LogTimestamp: true,
		Verbosity:    o.verbosity,
	}).WithName("fakeapi")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, o); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
