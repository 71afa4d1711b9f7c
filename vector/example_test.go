package vector_test

import (
	"fmt"

	"github.com/katalvlaran/blueberrymath/vector"
)

// ExampleVector_Dot computes a dot product and shows the mismatch error.
func ExampleVector_Dot() {
	a := vector.New(1, 2, 3)
	b := vector.New(4, 5, 6)

	d, _ := a.Dot(b)
	fmt.Println(d)

	_, err := vector.New(1, 2).Dot(b)
	fmt.Println(err)

	// Output:
	// 32
	// Vector.Dot: dim 2 vs 3: vector: dimension mismatch
}

// ExampleVector_Cross shows the standard right-handed cross product.
func ExampleVector_Cross() {
	c, _ := vector.New(1, 0, 0).Cross(vector.New(0, 1, 0))
	fmt.Println(c)

	// Output:
	// [0, 0, 1]
}
