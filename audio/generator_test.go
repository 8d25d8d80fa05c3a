package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestOscillatorProducesBoundedSamples(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, beep.SampleRate(44100))

	samples := make([][2]float64, 128)
	n, ok := osc.Stream(samples)
	if !ok || n != 128 {
		t.Fatalf("Stream = (%d, %v), want (128, true)", n, ok)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Errorf("sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("sample %d channels differ: %f vs %f", i, samples[i][0], samples[i][1])
		}
	}

	if osc.Err() != nil {
		t.Errorf("unexpected error: %v", osc.Err())
	}
}

func TestOscillatorEndsAfterDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	duration := 10 * time.Millisecond
	osc := NewOscillator(880, duration, rate)

	total := 0
	samples := make([][2]float64, 64)
	for {
		n, ok := osc.Stream(samples)
		total += n
		if !ok {
			break
		}
	}

	if want := rate.N(duration); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestEnvelopeRampsAttack(t *testing.T) {
	rate := beep.SampleRate(48000)
	osc := NewOscillator(440, 60*time.Millisecond, rate)
	env := NewEnvelope(osc, 60*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 4)
	n, _ := env.Stream(samples)
	if n != 4 {
		t.Fatalf("Stream = %d, want 4", n)
	}
	// First sample of the attack is fully attenuated.
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", samples[0][0])
	}
}

func TestEnvelopeEndsWithStreamer(t *testing.T) {
	rate := beep.SampleRate(48000)
	duration := 20 * time.Millisecond
	osc := NewOscillator(440, duration, rate)
	env := NewEnvelope(osc, duration, 2*time.Millisecond, 5*time.Millisecond, rate)

	total := 0
	samples := make([][2]float64, 512)
	for {
		n, ok := env.Stream(samples)
		total += n
		if !ok {
			break
		}
	}

	if want := rate.N(duration); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}
