// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mdhender/svgicons/catalog"
	store "github.com/mdhender/svgicons/stores/sqlite"
	"github.com/mdhender/svgicons/web/handlers"
	"github.com/spf13/cobra"
)

func cmdServe() *cobra.Command {
	addr := ":8787"
	var dbPath string
	var timeout time.Duration
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&addr, "addr", addr, "HTTP listen address")
		cmd.Flags().StringVar(&dbPath, "db", dbPath, "serve the icon sets stored in a SQLite export (empty = built-in sets)")
		cmd.Flags().DurationVar(&timeout, "timeout", timeout, "auto-shutdown after duration (e.g., 5s, 1m)")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "serve",
		Short:        "serve icons over HTTP",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(addr, dbPath, timeout)
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

// loadSets returns every built-in set, or every set in the database.
func loadSets(ctx context.Context, dbPath string) ([]*catalog.Set, error) {
	if dbPath == "" {
		var sets []*catalog.Set
		for _, name := range catalog.BuiltinNames() {
			set, _ := catalog.Builtin(name)
			sets = append(sets, set)
		}
		return sets, nil
	}
	log.Printf("store: using file-based SQLite: %s", dbPath)
	s, err := store.NewSQLiteStoreWithConfig(ctx, store.StoreConfig{Path: dbPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite store: %w", err)
	}
	defer s.Close()
	names, err := s.SetNames(ctx)
	if err != nil {
		return nil, err
	}
	var sets []*catalog.Set
	for _, name := range names {
		set, err := s.LoadSet(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

func serve(addr, dbPath string, timeout time.Duration) error {
	sets, err := loadSets(context.Background(), dbPath)
	if err != nil {
		return err
	}
	for _, set := range sets {
		log.Printf("store: %s: %d icons", set.Name(), set.Len())
	}

	r, err := newRenderer()
	if err != nil {
		return err
	}
	h, err := handlers.New(r, sets...)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	h.Register(mux)

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	if timeout > 0 {
		go func() {
			log.Printf("server: will auto-shutdown in %v", timeout)
			time.Sleep(timeout)
			log.Printf("server: timeout reached, initiating shutdown")
			shutdown <- os.Interrupt
		}()
	}

	return run(server, shutdown)
}

// run serves until a signal arrives on shutdown or the listener fails.
func run(server *http.Server, shutdown <-chan os.Signal) error {
	errc := make(chan error, 1)
	go func() {
		log.Printf("server: listening on %s", server.Addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-shutdown:
	}
	log.Printf("server: shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown error: %w", err)
	}

	log.Printf("server: stopped")
	return nil
}
