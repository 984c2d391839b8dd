package lessons

import (
	"context"
	"fmt"
	"io"
)

// AddTwo adds two to x.
func AddTwo(x int32) int32 {
	return x + 2
}

func Lesson1(_ context.Context, w io.Writer) error {
	fmt.Fprintln(w, "Hello world from Lesson 1")

	// constants cannot change, variables can
	const x = 5
	fmt.Fprintf(w, "The value of x is: %d\n", x)
	y := 5
	fmt.Fprintf(w, "The value of y is: %d\n", y)
	y = 6
	fmt.Fprintf(w, "The value of y after modification is: %d\n", y)

	var z int32 = 5
	fmt.Fprintf(w, "The value of z is: %d\n", z)
	var isTrue bool = true
	fmt.Fprintf(w, "The value of is_true is: %t\n", isTrue)

	fmt.Fprintf(w, "The result of adding two to z is: %d\n", AddTwo(z))

	if z > 5 {
		fmt.Fprintln(w, "z is greater than 5")
	} else {
		fmt.Fprintln(w, "z is not greater than 5")
	}
	return nil
}
