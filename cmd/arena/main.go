// cmd/arena/main.go runs encounters headless and streams them to websocket spectators.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"go-magic-survivor/internal/app"
	"go-magic-survivor/internal/defs"
	"go-magic-survivor/internal/spectate"
	"go-magic-survivor/internal/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := utils.GetEnvDefault("ADDR", "localhost")
	port := utils.GetEnvDefault("PORT", "9090")

	spells, err := defs.SpellLibraryFrom(os.Getenv("SPELLS_PATH"))
	if err != nil {
		slog.ErrorContext(ctx, "failed to load spells", "err", err)
		os.Exit(1)
	}
	enemies, err := defs.EnemyLibraryFrom(os.Getenv("ENEMIES_PATH"))
	if err != nil {
		slog.ErrorContext(ctx, "failed to load enemies", "err", err)
		os.Exit(1)
	}

	hub := spectate.NewHub(utils.GetEnvInt("SPECTATOR_BUFFER", spectate.DefaultBuffer))
	arena, err := spectate.NewArena(spectate.ArenaConfig{
		Options: app.Options{
			Seed:    utils.GetEnvInt64("ARENA_SEED", time.Now().UnixNano()),
			Spells:  spells,
			Enemies: enemies,
		},
		TickHz:       utils.GetEnvInt("ARENA_TICK_HZ", spectate.DefaultTickHz),
		PublishEvery: utils.GetEnvInt("ARENA_PUBLISH_EVERY", spectate.DefaultPublishEvery),
		Restart:      os.Getenv("ARENA_RESTART") != "",
	}, hub)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create arena", "err", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	s := &http.Server{Addr: fmt.Sprintf("%s:%s", addr, port), Handler: mux}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		defer stop()
		return arena.Run(egCtx)
	})
	eg.Go(func() error {
		<-egCtx.Done()
		slog.InfoContext(ctx, "shutdown initiated", "spectators", hub.Count(), "dropped_frames", hub.Dropped())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(ctx, "graceful shutdown failed", "error", err)
			return s.Close()
		}
		return nil
	})
	slog.InfoContext(ctx, "arena listening", "addr", s.Addr)

	if err := eg.Wait(); err != nil {
		slog.ErrorContext(ctx, "arena stopped", "err", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "arena shutdown complete")
}
