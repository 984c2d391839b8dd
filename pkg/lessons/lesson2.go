package lessons

import (
	"context"
	"fmt"
	"io"
)

// CalculateLength returns the byte length of s.
func CalculateLength(s string) int {
	return len(s)
}

// Longest returns the longer of x and y, y on a tie.
func Longest(x, y string) string {
	if len(x) > len(y) {
		return x
	}
	return y
}

func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

func Lesson2(_ context.Context, w io.Writer) error {
	// Strings are immutable values; assigning copies the header, not the bytes.
	s1 := "Hello, Go!"
	s2 := s1
	fmt.Fprintln(w, s2)

	fmt.Fprintf(w, "The length of '%s' is %d.\n", s2, CalculateLength(s2))

	string1 := "abcd"
	string2 := "xyz"
	fmt.Fprintf(w, "The longest string is %s\n", Longest(string1, string2))

	var (
		intExample   int32   = 100
		floatExample float64 = 3.14
		boolExample          = true
		charExample          = 'G'
		tupleExample         = struct {
			A int32
			B float64
			C uint8
		}{500, 6.4, 1}
		arrayExample = [3]int32{1, 2, 3}
	)

	fmt.Fprintf(w, "Int: %d, Float: %g, Bool: %t, Char: %c\n", intExample, floatExample, boolExample, charExample)
	fmt.Fprintf(w, "Tuple: (%d, %g, %d)\n", tupleExample.A, tupleExample.B, tupleExample.C)
	fmt.Fprintf(w, "Array: %v\n", arrayExample)

	fmt.Fprintln(w, Greet("Gopher"))

	number := 7
	if number < 5 {
		fmt.Fprintln(w, "condition was true")
	} else {
		fmt.Fprintln(w, "condition was false")
	}

	count := 0
	for {
		count++
		if count == 3 {
			break
		}
	}
	fmt.Fprintf(w, "Loop exited at count = %d\n", count)

	for n := 3; n != 0; n-- {
		fmt.Fprintf(w, "%d!\n", n)
	}

	for _, element := range [...]int{10, 20, 30, 40, 50} {
		fmt.Fprintf(w, "the value is: %d\n", element)
	}
	return nil
}
