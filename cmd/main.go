package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/l3montree-dev/sensor-errstack/packages/config"
	"github.com/l3montree-dev/sensor-errstack/packages/errstack"
	"github.com/l3montree-dev/sensor-errstack/packages/pipeline"
	"github.com/l3montree-dev/sensor-errstack/packages/store"
	"github.com/l3montree-dev/sensor-errstack/packages/types"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	InitLogger(slog.LevelDebug)

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Error loading config: %s", err)
	}
	// config has been validated, the level parses
	level, _ := cfg.Level()
	InitLogger(level)

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		slog.Error("demo run failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	logger := slog.With("run", uuid.New().String())

	stack := errstack.New()
	defer stack.Destroy()

	var sensorStore store.Store[types.ErrorCode] = stack
	if cfg.Metrics {
		metrics, err := store.NewMetrics(prometheus.NewRegistry(), "sensor")
		if err != nil {
			return err
		}
		sensorStore = store.NewInstrumented(sensorStore, metrics)
		defer func() {
			logger.Debug("store metrics", "values", metrics.Snapshot())
		}()
	}
	sensorStore = store.NewLocked(sensorStore)

	fmt.Fprintf(out, "--- Pushing %d sensor codes (Max size is %d) ---\n", cfg.PushCount, errstack.Capacity)
	codes := pipeline.Generate(ctx, types.ErrorCode(cfg.FirstCode), cfg.PushCount)
	if err := <-pipeline.Sink(codes, sensorStore); err != nil {
		return fmt.Errorf("could not push sensor codes: %w", err)
	}
	logger.Info("pushed sensor codes", "count", stack.Len(), "evicted", stack.Evicted())

	fmt.Fprintln(out, "\n--- Current Stack State (Top to Bottom) ---")
	if err := stack.Print(out); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n--- Popping %d items ---\n", cfg.PopCount)
	for range cfg.PopCount {
		code, ok := sensorStore.Pop()
		if !ok {
			logger.Warn("stack is empty, nothing to pop")
			break
		}
		fmt.Fprintf(out, "Popped: %d\n", code)
	}

	fmt.Fprintln(out, "\n--- Final Stack State ---")
	return stack.Print(out)
}

func InitLogger(level slog.Level) {
	loggingHandler := tint.NewHandler(os.Stderr, &tint.Options{
		AddSource: true,
		Level:     level,
	})
	logger := slog.New(loggingHandler)
	slog.SetDefault(logger)
}
