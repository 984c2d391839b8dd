package lessons

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/ib-77/lessons/pkg/conc"
)

// Lesson8 runs three independent concurrency demos in order: a spawned loop
// next to the caller's loop, ten units sharing a counter and a one-shot
// channel. Any unit failure is returned, as is the first failed write.
func Lesson8(ctx context.Context, w io.Writer) error {
	// w is written from two goroutines.
	out := conc.NewMutex(w)

	var (
		once     sync.Once
		writeErr error
	)
	printf := func(format string, args ...any) {
		var err error
		if lockErr := out.With(func(w *io.Writer) { _, err = fmt.Fprintf(*w, format, args...) }); lockErr != nil {
			err = lockErr
		}
		if err != nil {
			once.Do(func() { writeErr = err })
		}
	}
	// writeErr is only read once every writer has been joined.
	written := func() error {
		if writeErr != nil {
			return fmt.Errorf("write output: %w", writeErr)
		}
		return nil
	}

	if _, err := conc.Interleave(ctx,
		func(i int) { printf("hi number %d from the spawned goroutine!\n", i) },
		func(i int) { printf("hi number %d from the main goroutine!\n", i) },
	); err != nil {
		return fmt.Errorf("interleave: %w", err)
	}
	if err := written(); err != nil {
		return err
	}

	counter := conc.NewCounter(nil)
	defer counter.Release()

	total, err := conc.Accumulate(ctx, counter)
	if err != nil {
		return err
	}
	printf("Result: %d\n", total)

	tx, rx := conc.NewOneShot[string]()
	sender := conc.Go(ctx, func(context.Context) error {
		val := "hello"
		return tx.Send(val)
	})

	received, err := rx.Recv(ctx)
	if err != nil {
		return fmt.Errorf("receive: %w", err)
	}
	printf("Got: %s\n", received)

	if _, err := sender.Join(); err != nil {
		return fmt.Errorf("sender: %w", err)
	}
	return written()
}
