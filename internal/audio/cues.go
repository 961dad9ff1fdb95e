package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type note struct {
	freq float64
	dur  time.Duration
	wave WaveType
}

// cues maps cue names to the notes played in sequence.
var cues = map[string][]note{
	"start": {
		{523.25, 90 * time.Millisecond, WaveSquare},
		{659.25, 90 * time.Millisecond, WaveSquare},
		{783.99, 160 * time.Millisecond, WaveSquare},
	},
	"collision": {
		{110, 220 * time.Millisecond, WaveSaw},
	},
	"zombie": {
		{392, 80 * time.Millisecond, WaveSine},
		{196, 180 * time.Millisecond, WaveSine},
	},
	"drop": {
		{880, 60 * time.Millisecond, WaveSine},
	},
	"pickup": {
		{987.77, 60 * time.Millisecond, WaveSquare},
		{1318.51, 120 * time.Millisecond, WaveSquare},
	},
	"gameover": {
		{392, 200 * time.Millisecond, WaveSaw},
		{311.13, 200 * time.Millisecond, WaveSaw},
		{261.63, 400 * time.Millisecond, WaveSaw},
	},
}

// CueNames lists the cues Play understands.
func CueNames() []string {
	names := make([]string, 0, len(cues))
	for name := range cues {
		names = append(names, name)
	}
	return names
}

// buildCue returns a finite stream for the cue, or nil if the name is unknown.
func buildCue(name string, rate beep.SampleRate) beep.Streamer {
	notes, ok := cues[name]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.freq, n.dur, n.wave, rate)
		parts = append(parts, NewEnvelope(osc, n.dur, 5*time.Millisecond, n.dur/3, rate))
	}
	return newVolume(beep.Seq(parts...), volume)
}

// cueSamples is the total length of a cue in samples.
func cueSamples(name string, rate beep.SampleRate) int {
	total := 0
	for _, n := range cues[name] {
		total += rate.N(n.dur)
	}
	return total
}

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	seed     uint32
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		seed:     1,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			o.seed = o.seed*1664525 + 1013904223
			val = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
