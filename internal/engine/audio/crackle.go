package audio

import (
	"math"
	"math/rand"
)

// Crackle synthesis parameters. The sound is a quiet filtered hiss with
// random short pops layered on top, which reads as burning wood.
const (
	hissLevel      = 0.035
	hissFilter     = 0.12
	popLevelMin    = 0.25
	popLevelMax    = 0.85
	popDecayMin    = 0.0006
	popDecayMax    = 0.0025
	popIntervalMin = 0.04 // seconds
	popIntervalMax = 0.45
)

// CrackleStreamer is an endless beep.Streamer producing procedural
// campfire crackle. It never drains.
type CrackleStreamer struct {
	sampleRate int
	rng        *rand.Rand

	hissState float64
	popAmp    float64
	popDecay  float64
	popPhase  float64
	popTone   float64
	untilPop  int
}

// NewCrackleStreamer creates a crackle streamer. The seed makes the pop
// pattern reproducible, which the tests rely on.
func NewCrackleStreamer(sampleRate int, seed int64) *CrackleStreamer {
	s := &CrackleStreamer{
		sampleRate: sampleRate,
		rng:        rand.New(rand.NewSource(seed)),
	}
	s.scheduleNextPop()
	return s
}

func (s *CrackleStreamer) scheduleNextPop() {
	interval := popIntervalMin + s.rng.Float64()*(popIntervalMax-popIntervalMin)
	s.untilPop = int(interval * float64(s.sampleRate))
	if s.untilPop < 1 {
		s.untilPop = 1
	}
}

func (s *CrackleStreamer) firePop() {
	s.popAmp = popLevelMin + s.rng.Float64()*(popLevelMax-popLevelMin)
	s.popDecay = popDecayMin + s.rng.Float64()*(popDecayMax-popDecayMin)
	// Pops sit between roughly 600Hz and 2.4kHz.
	freq := 600 + s.rng.Float64()*1800
	s.popTone = 2 * math.Pi * freq / float64(s.sampleRate)
	s.popPhase = 0
	s.scheduleNextPop()
}

// Stream fills samples with the next chunk of crackle. It always
// returns (len(samples), true).
func (s *CrackleStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		s.untilPop--
		if s.untilPop <= 0 {
			s.firePop()
		}

		// One-pole lowpass over white noise for the bed of hiss.
		white := s.rng.Float64()*2 - 1
		s.hissState += hissFilter * (white - s.hissState)
		v := s.hissState * hissLevel

		if s.popAmp > 1e-5 {
			v += s.popAmp * math.Sin(s.popPhase)
			s.popPhase += s.popTone
			s.popAmp *= 1 - s.popDecay
		}

		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

// Err always returns nil; crackle synthesis cannot fail.
func (s *CrackleStreamer) Err() error {
	return nil
}
