package window

import "fmt"

func ExampleGenerate() {
	w := Generate(TypeHann, 4)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleApply() {
	buf := []float64{1, 1, 1, 1}
	Apply(TypeHann, buf)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", buf[0], buf[1], buf[2], buf[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleEnvelope() {
	env := NewEnvelope(TypeHann)

	grain := []float64{1, 1, 1, 1, 1}
	env.ApplyTo(grain)
	fmt.Printf("%.2f %.2f %.2f %.2f %.2f\n", grain[0], grain[1], grain[2], grain[3], grain[4])
	// Output:
	// 0.00 0.50 1.00 0.50 0.00
}
