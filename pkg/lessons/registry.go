package lessons

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
)

var ErrLessonNotFound = errors.New("lesson not found")

// Func runs a lesson, printing to w.
type Func func(ctx context.Context, w io.Writer) error

type Lesson struct {
	Name  string
	Title string
	Run   Func
}

// Registry maps lesson names to lessons.
var Registry = map[string]Lesson{
	"lesson1": {Name: "lesson1", Title: "Variables, mutability and functions", Run: Lesson1},
	"lesson2": {Name: "lesson2", Title: "Ownership, borrowing and control flow", Run: Lesson2},
	"lesson3": {Name: "lesson3", Title: "Structs, variants and matching", Run: Lesson3},
	"lesson4": {Name: "lesson4", Title: "Slices of strings", Run: Lesson4},
	"lesson5": {Name: "lesson5", Title: "Option and Result", Run: Lesson5},
	"lesson6": {Name: "lesson6", Title: "Collections, generics and interfaces", Run: Lesson6},
	"lesson7": {Name: "lesson7", Title: "Interfaces and dynamic dispatch", Run: Lesson7},
	"lesson8": {Name: "lesson8", Title: "Goroutines, mutexes and channels", Run: Lesson8},
}

// Lookup finds a lesson by its exact name.
func Lookup(name string) (Lesson, error) {
	l, ok := Registry[name]
	if !ok {
		return Lesson{}, fmt.Errorf("%q: %w", name, ErrLessonNotFound)
	}
	return l, nil
}

// Names returns the registered lesson names in order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
