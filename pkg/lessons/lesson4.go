package lessons

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// FirstWord returns s up to the first space, or all of s.
func FirstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// SecondWord returns what follows the first space. Without a space it
// skips only the first byte.
func SecondWord(s string) string {
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		i = 0
	}
	if i+1 > len(s) {
		return ""
	}
	return s[i+1:]
}

func Lesson4(_ context.Context, w io.Writer) error {
	s := "hello world"
	fmt.Fprintf(w, "First word: %s, Second word: %s\n", FirstWord(s), SecondWord(s))
	return nil
}
