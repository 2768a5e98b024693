// Package audio synthesizes the short sound cues played on line clears and
// top-out.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const SampleRate = beep.SampleRate(44100)

const (
	noteLength = 60 * time.Millisecond
	gapLength  = 20 * time.Millisecond
)

// Clear tones rise by a fourth per extra row.
var clearNotes = []float64{523.25, 698.46, 932.33, 1244.51}

var topOutNotes = []float64{392.00, 329.63, 261.63, 196.00}

// Cues builds the cue streamers. Volume is a base-2 exponent applied to
// every cue, so -1 halves the amplitude.
type Cues struct {
	Rate   beep.SampleRate
	Volume float64
}

func NewCues(volume float64) Cues {
	return Cues{Rate: SampleRate, Volume: volume}
}

// Cleared returns an ascending arpeggio with one note per cleared row,
// capped at four notes.
func (c Cues) Cleared(rows int) (beep.Streamer, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("cleared cue needs at least one row, got %d", rows)
	}
	return c.sequence(clearNotes[:min(rows, len(clearNotes))])
}

// ToppedOut returns a descending phrase.
func (c Cues) ToppedOut() (beep.Streamer, error) {
	return c.sequence(topOutNotes)
}

// Length is the number of samples a cue of n notes produces.
func (c Cues) Length(notes int) int {
	return notes*c.Rate.N(noteLength) + (notes-1)*c.Rate.N(gapLength)
}

func (c Cues) sequence(freqs []float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(freqs)*2)
	for i, freq := range freqs {
		if i > 0 {
			parts = append(parts, beep.Silence(c.Rate.N(gapLength)))
		}
		s, err := generators.SineTone(c.Rate, freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2fHz: %w", freq, err)
		}
		parts = append(parts, beep.Take(c.Rate.N(noteLength), s))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   c.Volume,
	}, nil
}

// Player plays cues on the default output device. A Player whose Init
// failed, or that was never initialized, drops every cue.
type Player struct {
	Cues  Cues
	ready bool
}

func NewPlayer(volume float64) *Player {
	return &Player{Cues: NewCues(volume)}
}

// Init opens the speaker with a 100ms buffer.
func (p *Player) Init() error {
	if err := speaker.Init(p.Cues.Rate, p.Cues.Rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.ready = true
	return nil
}

func (p *Player) Ready() bool {
	return p.ready
}

func (p *Player) Cleared(rows int) {
	if !p.ready {
		return
	}
	if s, err := p.Cues.Cleared(rows); err == nil {
		speaker.Play(s)
	}
}

func (p *Player) ToppedOut() {
	if !p.ready {
		return
	}
	if s, err := p.Cues.ToppedOut(); err == nil {
		speaker.Play(s)
	}
}

func (p *Player) Close() {
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}
