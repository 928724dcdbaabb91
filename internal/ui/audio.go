package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundCheck
	SoundInvalid
	SoundNewGame
)

const sampleRate = 44100

// AudioManager plays procedurally generated sound effects.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager.
func NewAudioManager() *AudioManager {
	return &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds: map[SoundType][]byte{
			SoundMove:    synthesize(0.08, 0.3, click(440)),
			SoundCapture: synthesize(0.12, 0.5, click(330)),
			SoundCheck:   synthesize(0.15, 0.4, tone(880, 0.15)),
			SoundInvalid: synthesize(0.1, 0.15, buzz(150, 0.1)),
			SoundNewGame: synthesize(0.4, 0.5, chord(0.4, 261.63, 329.63, 392.00)),
		},
		enabled: true,
		volume:  0.5,
	}
}

// waveform returns the sample at time t in seconds, before amplitude.
type waveform func(i int, t float64) float64

// synthesize renders a waveform as 16-bit little-endian stereo PCM.
func synthesize(duration, amplitude float64, wave waveform) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		v := math.Max(-1, math.Min(1, wave(i, t)*amplitude))
		val := int16(v * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// click is a short percussive knock with a little noise for wood texture.
func click(freq float64) waveform {
	return func(i int, t float64) float64 {
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		return (math.Sin(2*math.Pi*freq*t) + noise) * math.Exp(-t*30)
	}
}

// tone is a sine with a fast attack and linear decay.
func tone(freq, duration float64) waveform {
	return func(_ int, t float64) float64 {
		progress := t / duration
		envelope := 1.0 - (progress-0.1)/0.9
		if progress < 0.1 {
			envelope = progress / 0.1
		}
		return math.Sin(2*math.Pi*freq*t) * envelope
	}
}

// buzz is a low square-ish wave that fades out.
func buzz(freq, duration float64) waveform {
	return func(_ int, t float64) float64 {
		wave := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		return wave * (1.0 - t/duration)
	}
}

// chord mixes the given frequencies with a fade in and out.
func chord(duration float64, freqs ...float64) waveform {
	return func(_ int, t float64) float64 {
		progress := t / duration
		envelope := 1.0
		if progress < 0.1 {
			envelope = progress / 0.1
		} else if progress > 0.7 {
			envelope = (1.0 - progress) / 0.3
		}

		sum := 0.0
		for _, f := range freqs {
			sum += math.Sin(2 * math.Pi * f * t)
		}
		return sum / float64(len(freqs)) * envelope
	}
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}

	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	// A new player per play lets sounds overlap.
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
