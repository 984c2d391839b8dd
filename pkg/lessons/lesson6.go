package lessons

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

var ErrEmptyList = errors.New("empty list")

// Largest returns the greatest element of list.
func Largest[T cmp.Ordered](list []T) (T, error) {
	if len(list) == 0 {
		var zero T
		return zero, ErrEmptyList
	}
	largest := list[0]
	for _, item := range list[1:] {
		if item > largest {
			largest = item
		}
	}
	return largest, nil
}

// Summary is implemented by anything that can summarize itself.
type Summary interface {
	Summarize() string
}

type NewsArticle struct {
	Headline string
	Location string
	Author   string
	Content  string
}

func (a NewsArticle) Summarize() string {
	return fmt.Sprintf("%s, by %s (%s)", a.Headline, a.Author, a.Location)
}

// Notify accepts any type implementing Summary.
func Notify[T Summary](w io.Writer, item T) {
	fmt.Fprintf(w, "Breaking news! %s\n", item.Summarize())
}

func Lesson6(_ context.Context, w io.Writer) error {
	var v []int32
	v = append(v, 5, 6, 7)
	for _, i := range v {
		fmt.Fprintf(w, "Vec item: %d\n", i)
	}

	var s strings.Builder
	s.WriteString("hello")
	s.WriteByte(' ')
	s.WriteString("world")
	fmt.Fprintf(w, "String: %s\n", s.String())

	scores := map[string]int{"Blue": 10, "Yellow": 50}
	for _, team := range slices.Sorted(maps.Keys(scores)) {
		fmt.Fprintf(w, "%s team's score: %d\n", team, scores[team])
	}

	largest, err := Largest([]int32{34, 50, 25, 100, 65})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "The largest number is %d\n", largest)

	Notify(w, NewsArticle{
		Headline: "Penguins win the Stanley Cup Championship!",
		Location: "Pittsburgh, PA, USA",
		Author:   "Iceburgh",
		Content:  "The Pittsburgh Penguins once again are the best hockey team in the NHL.",
	})

	fmt.Fprintf(w, "The longest string is %s\n", Longest("long string is long", "short"))
	return nil
}
