package orbitshot

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate beep.SampleRate = 8000

func firstSample(t *testing.T, pcm []byte) int16 {
	t.Helper()
	if len(pcm) < 4 {
		t.Fatalf("pcm too short: %d bytes", len(pcm))
	}
	return int16(binary.LittleEndian.Uint16(pcm[:2]))
}

func TestToneLength(t *testing.T) {
	tests := []struct {
		name string
		wave Wave
		d    time.Duration
	}{
		{"sine", WaveSine, 100 * time.Millisecond},
		{"square", WaveSquare, 10 * time.Millisecond},
		{"saw", WaveSaw, 250 * time.Millisecond},
		{"noise", WaveNoise, 50 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm := RenderPCM(Tone(440, tt.d, tt.wave, testRate), testRate)
			if want := 4 * testRate.N(tt.d); len(pcm) != want {
				t.Errorf("len = %d, want %d", len(pcm), want)
			}
		})
	}
}

func TestToneDecays(t *testing.T) {
	s := Tone(100, 100*time.Millisecond, WaveSquare, testRate)
	buf := make([][2]float64, testRate.N(100*time.Millisecond))
	n, ok := s.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, len(buf))
	}
	if buf[0][0] != 1 {
		t.Errorf("first sample = %v, want 1", buf[0][0])
	}
	if last := math.Abs(buf[n-1][0]); last > 0.01 {
		t.Errorf("last sample = %v, want close to silence", last)
	}
	if n, ok := s.Stream(buf); n != 0 || ok {
		t.Errorf("drained Stream = (%d, %v), want (0, false)", n, ok)
	}
}

func TestVolume(t *testing.T) {
	tests := []struct {
		name string
		gain float64
		want int16
	}{
		{"unity", 1, math.MaxInt16},
		{"half", 0.5, math.MaxInt16 / 2},
		{"silent", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm := RenderPCM(Volume(Tone(100, 10*time.Millisecond, WaveSquare, testRate), tt.gain), testRate)
			if got := firstSample(t, pcm); got != tt.want {
				t.Errorf("first sample = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPCM16Clamps(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{1, math.MaxInt16},
		{-1, -math.MaxInt16},
		{3, math.MaxInt16},
		{-3, -math.MaxInt16},
	}
	for _, tt := range tests {
		if got := pcm16(tt.in); got != tt.want {
			t.Errorf("pcm16(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRenderPCMCapsEndlessStreamers(t *testing.T) {
	pcm := RenderPCM(beep.Silence(-1), testRate)
	if want := 4 * testRate.N(maxClipDuration); len(pcm) != want {
		t.Errorf("len = %d, want %d", len(pcm), want)
	}
}

func TestEffectSounds(t *testing.T) {
	hit := RenderPCM(HitSound(testRate), testRate)
	want := 4 * (testRate.N(60*time.Millisecond) + testRate.N(140*time.Millisecond))
	if len(hit) != want {
		t.Errorf("hit len = %d, want %d", len(hit), want)
	}

	shot := RenderPCM(ShotSound(testRate), testRate)
	if len(shot) == 0 || len(shot)%4 != 0 || len(shot) > 4*testRate.N(120*time.Millisecond) {
		t.Errorf("shot len = %d", len(shot))
	}
}

func TestSoundBankWithoutContext(t *testing.T) {
	b := NewSoundBank(nil)
	if b.SampleRate() != DefaultSampleRate {
		t.Errorf("SampleRate = %v, want %v", b.SampleRate(), DefaultSampleRate)
	}
	if b.Has("hit") {
		t.Error("empty bank reports a clip")
	}
	b.Register("hit", Tone(440, 10*time.Millisecond, WaveSine, b.SampleRate()))
	if !b.Has("hit") {
		t.Error("registered clip missing")
	}
	// No context: silent but safe.
	b.Play("hit")
	b.Play("missing")
	b.Muted = true
	b.Play("hit")
}

func TestNilSoundBank(t *testing.T) {
	var b *SoundBank
	if b.Has("hit") {
		t.Error("nil bank reports a clip")
	}
	b.Play("hit")
}
