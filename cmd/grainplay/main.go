// Command grainplay plays granulated audio through the default sound device.
//
// Usage:
//
//	grainplay [flags]
//
// Without -in it granulates a built-in 440 Hz test tone.
//
// Examples:
//
//	grainplay -in voice.wav -seconds 10
//	grainplay -in pad.wav -length 80 -density 40 -volume -6
//	grainplay -density 30 -pitch -12 -shifter resample
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/go-audio/wav"

	"github.com/splitmoong/synthesis/dsp/core"
	"github.com/splitmoong/synthesis/dsp/pitch"
	"github.com/splitmoong/synthesis/dsp/signal"
	"github.com/splitmoong/synthesis/granulator"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("grainplay: ")

	var (
		inPath   = flag.String("in", "", "input WAV file (empty: built-in test tone)")
		seconds  = flag.Float64("seconds", 10, "duration to play")
		length   = flag.Int("length", 50, "grain length in percent of the loop region")
		density  = flag.Int("density", 10, "grains per second")
		start    = flag.Int("start", 0, "loop start position in percent of the source")
		pitchSt  = flag.Float64("pitch", 0, "pitch shift in semitones (requires -shifter)")
		shifter  = flag.String("shifter", "none", "pitch shifter: none, resample or spectral")
		seed     = flag.Int64("seed", 1, "random seed for grain placement")
		volumeDB = flag.Float64("volume", 0, "playback volume in dB")
	)
	flag.Parse()

	if *seconds <= 0 {
		log.Fatal("-seconds must be positive")
	}

	source, sampleRate, err := loadSource(*inPath)
	if err != nil {
		log.Fatal(err)
	}

	opts := []granulator.Option{granulator.WithSeed(*seed)}
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

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		log.Fatal(err)
	}
	<-ready

	stream := granulator.NewStream(engine, core.DBToLinear(*volumeDB))
	player := ctx.NewPlayer(stream)
	player.Play()

	fmt.Printf("playing %d Hz source for %.1fs (density %d, length %d%%)\n",
		sampleRate, *seconds, *density, *length)
	time.Sleep(time.Duration(*seconds * float64(time.Second)))

	if err := player.Close(); err != nil {
		log.Fatal(err)
	}
}

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
