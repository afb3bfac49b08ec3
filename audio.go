package orbitshot

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// DefaultSampleRate is the sample rate sounds are synthesized at.
const DefaultSampleRate beep.SampleRate = 44100

// maxClipDuration bounds RenderPCM for streamers that never end.
const maxClipDuration = 5 * time.Second

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave with a linear decay.
type oscillator struct {
	freq     float64
	phase    float64
	total    int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// Tone returns a streamer that plays a wave of freq Hz for duration, fading
// linearly to silence.
func Tone(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, total: rate.N(duration), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		val *= 1 - float64(o.position)/float64(o.total)

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Volume scales s by a linear gain. A gain of 0 or less is silent.
func Volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// ShotSound is a short falling zap mixed with a noise burst.
func ShotSound(rate beep.SampleRate) beep.Streamer {
	const d = 120 * time.Millisecond
	return beep.Mix(
		Volume(Tone(880, d, WaveSquare, rate), 0.25),
		Volume(Tone(0, d/2, WaveNoise, rate), 0.15),
	)
}

// HitSound is a two-tone chime.
func HitSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		Volume(Tone(660, 60*time.Millisecond, WaveSine, rate), 0.4),
		Volume(Tone(990, 140*time.Millisecond, WaveSine, rate), 0.4),
	)
}

// RenderPCM drains s into 16-bit little-endian stereo PCM, the format ebiten's
// audio players expect. Streamers longer than five seconds are cut off.
func RenderPCM(s beep.Streamer, rate beep.SampleRate) []byte {
	limit := rate.N(maxClipDuration)
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4*1024)
	frames := 0
	for frames < limit {
		want := min(len(buf), limit-frames)
		n, ok := s.Stream(buf[:want])
		for _, smp := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(pcm16(smp[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(pcm16(smp[1])))
		}
		frames += n
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func pcm16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// SoundBank holds pre-rendered clips and plays them through an ebiten audio
// context. A nil bank, or one without a context, is silent.
type SoundBank struct {
	// Muted silences Play.
	Muted bool

	ctx   *audio.Context
	rate  beep.SampleRate
	clips map[string][]byte
}

// NewSoundBank creates a bank bound to ctx. ctx may be nil for a silent bank
// that still records registrations.
func NewSoundBank(ctx *audio.Context) *SoundBank {
	rate := DefaultSampleRate
	if ctx != nil {
		rate = beep.SampleRate(ctx.SampleRate())
	}
	return &SoundBank{ctx: ctx, rate: rate, clips: make(map[string][]byte)}
}

// SampleRate returns the rate clips are rendered at.
func (b *SoundBank) SampleRate() beep.SampleRate {
	return b.rate
}

// Register renders s and stores it under name, replacing any earlier clip.
func (b *SoundBank) Register(name string, s beep.Streamer) {
	b.clips[name] = RenderPCM(s, b.rate)
}

// Has reports whether a clip is registered under name.
func (b *SoundBank) Has(name string) bool {
	if b == nil {
		return false
	}
	_, ok := b.clips[name]
	return ok
}

// Play starts the named clip. Unknown names, a muted bank, and a bank with
// no context are no-ops.
func (b *SoundBank) Play(name string) {
	if b == nil || b.Muted || b.ctx == nil {
		return
	}
	data, ok := b.clips[name]
	if !ok {
		return
	}
	b.ctx.NewPlayerFromBytes(data).Play()
}
