package conc

import (
	"context"
	"log/slog"
	"time"
)

type OptionKey string

const OptionsKey OptionKey = "conc_options"

const (
	DefaultSpawnedIterations = 9
	DefaultMainIterations    = 4
	DefaultPause             = time.Millisecond
	DefaultUnits             = 10
)

type Options struct {
	// SpawnedIterations is the loop size of the unit started by Interleave.
	SpawnedIterations int
	// MainIterations is the loop size of the caller in Interleave.
	MainIterations int
	// Pause is slept after every loop iteration. Zero means DefaultPause,
	// a negative value means no pause.
	Pause time.Duration

	// Units is how many units Accumulate spawns.
	Units int
	// Parallelism caps the number of Accumulate units running at once.
	// Zero means no cap.
	Parallelism int

	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.SpawnedIterations <= 0 {
		o.SpawnedIterations = DefaultSpawnedIterations
	}
	if o.MainIterations <= 0 {
		o.MainIterations = DefaultMainIterations
	}
	if o.Pause == 0 {
		o.Pause = DefaultPause
	}
	if o.Units <= 0 {
		o.Units = DefaultUnits
	}
	if o.Parallelism < 0 {
		o.Parallelism = 0
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

func WithOptions(ctx context.Context, opts Options) context.Context {
	return context.WithValue(ctx, OptionsKey, opts)
}

// WithUnits overrides only the Accumulate unit count.
func WithUnits(ctx context.Context, units int) context.Context {
	opts, _ := ctx.Value(OptionsKey).(Options)
	opts.Units = units
	return WithOptions(ctx, opts)
}

// OptionsFrom returns the options stored in ctx with defaults filled in.
func OptionsFrom(ctx context.Context) Options {
	opts, _ := ctx.Value(OptionsKey).(Options)
	return opts.withDefaults()
}
