package filterfn

import (
	"fmt"

	"github.com/cwbudde/algo-dd/dds"
)

func ExampleArea() {
	ramsey, _ := dds.NewRamsey(2)
	echo, _ := dds.NewSpinEcho(2)

	a, _ := Area(ramsey, 64)
	b, _ := Area(echo, 64)
	fmt.Println(a, b)
	// Output:
	// 2 0
}
