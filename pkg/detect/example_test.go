package detect_test

import (
	"fmt"

	"github.com/matzehuels/linkviz/pkg/detect"
	"github.com/matzehuels/linkviz/pkg/list"
)

func ExampleRun() {
	a := list.FromValues(1, 2)
	_ = a.SetNext(2, 1) // tail points back at the head

	r := detect.Run(a)
	fmt.Println("visited:", r.Len())
	fmt.Println("cycle:", r.HasCycle)
	for _, msg := range r.Messages() {
		fmt.Println(msg)
	}
	// Output:
	// visited: 2
	// cycle: true
	// Cycle detected at node with value: 1
}
