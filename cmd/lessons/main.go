package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ib-77/lessons/pkg/conc"
	"github.com/ib-77/lessons/pkg/lessons"
	"github.com/ib-77/lessons/pkg/rop"
)

const usage = "Please specify a lesson to run (e.g., 'lessons lesson1')"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if len(args) == 0 {
		fmt.Fprintln(stdout, usage)
		return 2
	}

	lesson, err := lessons.Lookup(args[0])
	if err != nil {
		logger.DebugContext(ctx, "lookup failed", "err", err)
		fmt.Fprintln(stdout, "Lesson not found")
		return 1
	}

	ctx = conc.WithOptions(ctx, conc.Options{Logger: logger})
	if err := lesson.Run(ctx, stdout); err != nil {
		if rop.IsCancelled(err) {
			logger.WarnContext(ctx, "lesson interrupted", "lesson", lesson.Name, "err", err)
			return 130
		}
		for _, e := range rop.Flatten(err) {
			logger.ErrorContext(ctx, "lesson failed", "lesson", lesson.Name, "err", e)
		}
		return 1
	}
	return 0
}
