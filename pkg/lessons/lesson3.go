package lessons

import (
	"context"
	"fmt"
	"io"

	"github.com/ib-77/lessons/pkg/rop"
)

type Book struct {
	Title  string
	Author string
	Pages  uint32
}

// WebEvent is one of PageLoad, PageUnload, KeyPress, Paste or Click.
type WebEvent interface {
	webEvent()
}

type (
	PageLoad   struct{}
	PageUnload struct{}
	KeyPress   rune
	Paste      string
	Click      struct{ X, Y int64 }
)

func (PageLoad) webEvent()   {}
func (PageUnload) webEvent() {}
func (KeyPress) webEvent()   {}
func (Paste) webEvent()      {}
func (Click) webEvent()      {}

// Inspect describes an event.
func Inspect(event WebEvent) string {
	switch e := event.(type) {
	case PageLoad:
		return "page loaded"
	case PageUnload:
		return "page unloaded"
	case KeyPress:
		return fmt.Sprintf("pressed '%c'.", rune(e))
	case Paste:
		return fmt.Sprintf("pasted \"%s\".", string(e))
	case Click:
		return fmt.Sprintf("clicked at x=%d, y=%d.", e.X, e.Y)
	default:
		return fmt.Sprintf("unknown event %T", e)
	}
}

func MatchNumber(n int32) string {
	switch {
	case n == 1:
		return "One!"
	case n == 2, n == 3, n == 5, n == 7, n == 11:
		return "This is a prime"
	case n >= 13 && n <= 19:
		return "A teen"
	default:
		return "Ain't special"
	}
}

func Lesson3(_ context.Context, w io.Writer) error {
	book := Book{
		Title:  "The Go Programming Language",
		Author: "Alan Donovan and Brian Kernighan",
		Pages:  380,
	}
	fmt.Fprintf(w, "%s by %s has %d pages.\n", book.Title, book.Author, book.Pages)

	events := []WebEvent{
		KeyPress('x'),
		Paste("my text"),
		Click{X: 20, Y: 80},
		PageLoad{},
		PageUnload{},
	}
	for _, event := range events {
		fmt.Fprintln(w, Inspect(event))
	}

	for _, n := range []int32{2, 13, 42} {
		fmt.Fprintln(w, MatchNumber(n))
	}

	someU8 := rop.Some[uint8](3)
	if v, ok := someU8.Get(); ok && v == 3 {
		fmt.Fprintln(w, "three")
	}
	return nil
}
