package bisect_test

import (
	"fmt"

	"github.com/vipcxj/bisect"
)

func ExampleSearch() {
	low, high := bisect.Search(
		bisect.Endpoint[int, struct{}]{Index: 1},
		bisect.Endpoint[int, struct{}]{Index: 100},
		func(x int) bisect.Direction[struct{}, struct{}] {
			if x < 23 {
				return bisect.Low[struct{}, struct{}](struct{}{})
			}
			return bisect.High[struct{}, struct{}](struct{}{})
		},
	)
	fmt.Println(low.Index, high.Index)
	// Output: 22 23
}
