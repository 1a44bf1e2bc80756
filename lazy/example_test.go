package lazy_test

import (
	"fmt"

	"github.com/softwareeureka/functional/lazy"
)

func ExampleValue() {
	greeting, _ := lazy.New(func() string {
		fmt.Println("loading")
		return "Hello World"
	})
	fmt.Println(greeting.Evaluated())
	fmt.Println(greeting.MustGet())
	fmt.Println(greeting.MustGet())
	// Output:
	// false
	// loading
	// Hello World
	// Hello World
}
