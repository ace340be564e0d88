package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/duckshoot/internal/core"
)

// noiseBurst is a white noise click that fades out linearly.
type noiseBurst struct {
	rng      *rand.Rand
	position int
	total    int
}

func newNoiseBurst(d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &noiseBurst{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		total: rate.N(d),
	}
}

func (n *noiseBurst) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.position >= n.total {
			return i, i > 0
		}
		fade := 1 - float64(n.position)/float64(n.total)
		v := (n.rng.Float64()*2 - 1) * fade
		samples[i][0] = v
		samples[i][1] = v
		n.position++
	}
	return len(samples), true
}

func (n *noiseBurst) Err() error { return nil }

// tone is a sine note of fixed length. Falls back to silence if the generator rejects the frequency.
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), sine)
}

// withVolume scales a stream by a linear factor.
// math.Log2(0) is -Inf, so zero volume is handled as silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Effect returns the sound for a game event, or nil if the event is silent.
func Effect(kind core.EventKind, rate beep.SampleRate) beep.Streamer {
	switch kind {
	case core.EventShot:
		return withVolume(newNoiseBurst(60*time.Millisecond, rate), 0.25)
	case core.EventHit:
		return withVolume(beep.Seq(
			tone(880, 50*time.Millisecond, rate),
			tone(1320, 70*time.Millisecond, rate),
		), 0.3)
	case core.EventMiss:
		return withVolume(tone(196, 120*time.Millisecond, rate), 0.25)
	case core.EventStart:
		return withVolume(beep.Seq(
			tone(523.25, 90*time.Millisecond, rate),
			tone(659.25, 90*time.Millisecond, rate),
			tone(783.99, 140*time.Millisecond, rate),
		), 0.25)
	case core.EventGameOver:
		return withVolume(beep.Seq(
			tone(440, 180*time.Millisecond, rate),
			tone(349.23, 180*time.Millisecond, rate),
			tone(261.63, 360*time.Millisecond, rate),
		), 0.3)
	default:
		return nil
	}
}
