// Command granulate renders granulated audio to a WAV file.
//
// Usage:
//
//	granulate [flags]
//
// Without -in it granulates a built-in 440 Hz test tone.
//
// Examples:
//
//	granulate -in voice.wav -out grains.wav -seconds 8
//	granulate -in pad.wav -length 80 -density 40 -start 25
//	granulate -density 30 -pitch 12 -shifter spectral -seconds 4
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/splitmoong/synthesis/dsp/core"
	"github.com/splitmoong/synthesis/dsp/grain"
	"github.com/splitmoong/synthesis/dsp/pitch"
	"github.com/splitmoong/synthesis/dsp/signal"
	"github.com/splitmoong/synthesis/dsp/window"
	"github.com/splitmoong/synthesis/granulator"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("granulate: ")

	var (
		inPath   = flag.String("in", "", "input WAV file (empty: built-in test tone)")
		outPath  = flag.String("out", "out.wav", "output WAV file")
		seconds  = flag.Float64("seconds", 5, "duration to render")
		length   = flag.Int("length", 50, "grain length in percent of the loop region")
		density  = flag.Int("density", 10, "grains per second")
		start    = flag.Int("start", 0, "loop start position in percent of the source")
		pitchSt  = flag.Float64("pitch", 0, "pitch shift in semitones (requires -shifter)")
		shifter  = flag.String("shifter", "none", "pitch shifter: none, resample or spectral")
		seed     = flag.Int64("seed", 1, "random seed for grain placement")
		gainDB   = flag.Float64("gain", 0, "output gain in dB")
		winName  = flag.String("window", "hann", "grain envelope: rectangular, hann, hamming, blackman or tukey")
		capacity = flag.Int("grains", grain.DefaultPoolCapacity, "maximum simultaneous grains")
	)
	flag.Parse()

	if *seconds <= 0 {
		log.Fatal("-seconds must be positive")
	}

	source, sampleRate, err := loadSource(*inPath)
	if err != nil {
		log.Fatal(err)
	}

	winType, err := parseWindow(*winName)
	if err != nil {
		log.Fatal(err)
	}

	opts := []granulator.Option{
		granulator.WithSeed(*seed),
		granulator.WithWindowType(winType),
		granulator.WithGrainCapacity(*capacity),
	}
	if p, err := parseShifter(*shifter); err != nil {
		log.Fatal(err)
	} else if p != nil {
		opts = append(opts, granulator.WithPitchProcessor(p))
	}

	engine := granulator.New(opts...)
	engine.SetAudioSource(source, sampleRate)
	engine.SetGrainLengthPercentage(*length)
	engine.SetGrainDensity(*density)
	engine.SetStartPositionPercentage(*start)
	engine.SetPitchShift(*pitchSt)

	total := int(*seconds * float64(sampleRate))
	rendered := render(engine, total, core.DBToLinear(*gainDB))

	if err := writeWAV(*outPath, rendered, sampleRate); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s: %d frames at %d Hz\n", *outPath, total, sampleRate)
}

func render(engine *granulator.Engine, total int, gain float64) []float64 {
	out := make([]float64, 0, total)
	block := make([]float64, granulator.DefaultBufferSize)
	for len(out) < total {
		n := total - len(out)
		if n > len(block) {
			n = len(block)
		}
		chunk := block[:n]
		engine.RenderBuffer(chunk)
		if gain != 1 {
			for i := range chunk {
				chunk[i] *= gain
			}
		}
		out = append(out, chunk...)
	}
	return out
}

// loadSource reads a WAV file as mono float64 samples, or synthesizes a
// test tone when path is empty.
func loadSource(path string) ([]float64, int, error) {
	if path == "" {
		gen := signal.NewGenerator(granulator.DefaultSampleRate)
		tone, err := gen.Sine(440, 0.8, 2*granulator.DefaultSampleRate)
		return tone, granulator.DefaultSampleRate, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("decode %s: missing format chunk", path)
	}

	channels := buf.Format.NumChannels
	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := 1.0 / float64(int(1)<<(bitDepth-1))
	frames := len(buf.Data) / channels
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c])
		}
		samples[i] = sum * scale / float64(channels)
	}
	return samples, buf.Format.SampleRate, nil
}

func writeWAV(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(core.Clamp(s, -1, 1) * 32767)
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return enc.Close()
}

func parseWindow(name string) (window.Type, error) {
	switch name {
	case "rectangular":
		return window.TypeRectangular, nil
	case "hann":
		return window.TypeHann, nil
	case "hamming":
		return window.TypeHamming, nil
	case "blackman":
		return window.TypeBlackman, nil
	case "tukey":
		return window.TypeTukey, nil
	default:
		return 0, fmt.Errorf("unknown window %q", name)
	}
}

func parseShifter(name string) (pitch.Processor, error) {
	switch name {
	case "none", "":
		return nil, nil
	case "resample":
		return pitch.NewResamplingShifter(), nil
	case "spectral":
		return pitch.NewSpectralShifter(), nil
	default:
		return nil, fmt.Errorf("unknown shifter %q", name)
	}
}
