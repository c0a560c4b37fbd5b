package asset

import "time"

// Clip is an animation clip. Only its length matters to playback.
type Clip struct {
	Name     string
	Duration time.Duration
}

// Player loops a single clip.
type Player struct {
	clip   Clip
	t      time.Duration
	played time.Duration
}

// NewPlayer starts clip at time zero.
func NewPlayer(clip Clip) *Player {
	return &Player{clip: clip}
}

// Advance moves the clip clock forward by dt, wrapping at the clip length.
func (p *Player) Advance(dt time.Duration) {
	if p == nil || dt <= 0 {
		return
	}
	p.t += dt
	p.played += dt
	if p.clip.Duration > 0 {
		p.t %= p.clip.Duration
	}
}

// Time returns the current clip time.
func (p *Player) Time() time.Duration { return p.t }

// Played returns the total time advanced, ignoring wraps.
func (p *Player) Played() time.Duration { return p.played }

// Clip returns the clip being played.
func (p *Player) Clip() Clip { return p.clip }

// Phase returns the clip time as a fraction of its length in [0, 1).
func (p *Player) Phase() float64 {
	if p == nil || p.clip.Duration <= 0 {
		return 0
	}
	return float64(p.t) / float64(p.clip.Duration)
}
