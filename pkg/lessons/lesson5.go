package lessons

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ib-77/lessons/pkg/rop"
	"github.com/ib-77/lessons/pkg/rop/chain"
	"github.com/ib-77/lessons/pkg/rop/solo"
)

// Divide returns None when denominator is zero.
func Divide(numerator, denominator float64) rop.Option[float64] {
	if denominator == 0 {
		return rop.None[float64]()
	}
	return rop.Some(numerator / denominator)
}

// ReadFileContents reads the file at path. A missing or unreadable file
// is a failure, never an empty success.
func ReadFileContents(ctx context.Context, path string) rop.Result[string] {
	read := chain.ThenTry(
		chain.ThenTry(chain.FromValue(ctx, path),
			func(_ context.Context, p string) (*os.File, error) { return os.Open(p) }),
		func(_ context.Context, f *os.File) (string, error) {
			defer f.Close()
			b, err := io.ReadAll(f)
			if err != nil {
				return "", fmt.Errorf("read %s: %w", path, err)
			}
			return string(b), nil
		})
	return read.Result()
}

func Lesson5(ctx context.Context, w io.Writer) error {
	fmt.Fprintln(w, solo.Match(ctx, Divide(10, 0),
		func(_ context.Context, q float64) string { return fmt.Sprintf("Quotient is %g", q) },
		func(context.Context) string { return "Cannot divide by 0" }))

	filePath := "hello.txt"
	fmt.Fprintln(w, solo.Finally(ctx, ReadFileContents(ctx, filePath),
		func(_ context.Context, contents string) string {
			return fmt.Sprintf("File contents of '%s': %s", filePath, contents)
		},
		func(_ context.Context, err error) string {
			return fmt.Sprintf("Error reading file '%s': %v", filePath, err)
		}))

	if q, ok := Divide(10, 2).Get(); ok {
		fmt.Fprintf(w, "Result: %g\n", q)
	} else {
		fmt.Fprintln(w, "Failed to divide.")
	}

	missing := "nonexistent_file.txt"
	res := ReadFileContents(ctx, missing)
	if res.IsSuccess() {
		fmt.Fprintf(w, "File contents: %s\n", res.Result())
	} else {
		fmt.Fprintf(w, "Failed to read '%s': %v\n", missing, res.Err())
	}
	return nil
}
