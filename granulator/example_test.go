package granulator_test

import (
	"fmt"

	"github.com/splitmoong/synthesis/dsp/signal"
	"github.com/splitmoong/synthesis/granulator"
)

func ExampleEngine() {
	gen := signal.NewGenerator(granulator.DefaultSampleRate)
	src, _ := gen.Sine(220, 0.8, granulator.DefaultSampleRate)

	e := granulator.New(granulator.WithSeed(1))
	e.SetAudioSource(src, granulator.DefaultSampleRate)
	e.SetGrainLengthPercentage(25)
	e.SetGrainDensity(50)
	e.SetStartPositionPercentage(50)

	out := e.GenerateBuffer(granulator.DefaultBufferSize)

	start, end := e.CurrentLoopRegion()
	fmt.Printf("frames=%d loop=[%d,%d) grains=%d\n", len(out), start, end, e.ActiveGrains())
	// Output:
	// frames=1024 loop=[22050,33075) grains=1
}

func ExampleEngine_noSource() {
	e := granulator.New()

	out := e.GenerateBuffer(4)
	fmt.Println(out)
	// Output:
	// [0 0 0 0]
}
